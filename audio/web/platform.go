//go:build js
// +build js

// Package web is the browser backend of the audio service.
package web

import "github.com/simukka/swarm-audio/audio"

// NewPlatform returns the browser platform: an <audio> element for music,
// document gestures and a lazily created AudioContext for effects.
func NewPlatform() audio.Platform {
	return audio.Platform{
		Music:    NewMusicElement(),
		Gestures: DocumentGestures{},
		Tones:    NewToneContext,
	}
}
