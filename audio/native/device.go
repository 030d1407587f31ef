//go:build !js

// Package native is the desktop backend of the audio service, playing
// through the system audio device with oto.
package native

import (
	"fmt"
	"sync"

	"github.com/decred/slog"
	"github.com/ebitengine/oto/v3"
	"github.com/simukka/swarm-audio/audio"
)

var (
	deviceOnce sync.Once
	device     *oto.Context
	deviceErr  error
)

// Device returns the process-wide oto context, opening it on first use.
// oto allows one context per process, so music and effects share it.
func Device() (*oto.Context, error) {
	deviceOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   audio.SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			deviceErr = fmt.Errorf("native: open audio device: %w", err)
			return
		}
		<-ready
		device = ctx
	})
	return device, deviceErr
}

// NewPlatform returns the desktop platform. Tracks are read from tracks;
// gestures come from the caller's input layer.
func NewPlatform(tracks TrackSource, gestures audio.GestureSource, log slog.Logger) audio.Platform {
	return audio.Platform{
		Music:    NewMusicPlayer(tracks, log),
		Gestures: gestures,
		Tones:    NewToneContext,
	}
}
