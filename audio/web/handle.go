//go:build js
// +build js

package web

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/swarm-audio/audio"
)

// MusicElement is a looping HTML audio element used as the music handle.
type MusicElement struct {
	el *js.Object
}

// NewMusicElement creates a detached <audio> element.
func NewMusicElement() *MusicElement {
	el := js.Global.Get("Audio").New()
	el.Set("loop", true)
	el.Set("preload", "auto")
	return &MusicElement{el: el}
}

func (m *MusicElement) Bind(path string) {
	m.el.Set("src", path)
	m.el.Call("load")
}

// Play calls play() and reports the promise outcome. Rejections, such as
// the autoplay NotAllowedError, wrap audio.ErrPlaybackRejected.
func (m *MusicElement) Play(done func(error)) {
	promise := m.el.Call("play")

	// Old browsers return nothing from play()
	if promise == nil || promise == js.Undefined {
		go done(nil)
		return
	}
	promise.Call("then",
		func() {
			go done(nil)
		},
		func(e *js.Object) {
			go done(rejection(e))
		},
	)
}

func (m *MusicElement) Pause() {
	m.el.Call("pause")
}

func (m *MusicElement) Rewind() {
	m.el.Set("currentTime", 0)
}

func (m *MusicElement) SetVolume(v float64) {
	m.el.Set("volume", v)
}

func rejection(e *js.Object) error {
	if e == nil || e == js.Undefined {
		return audio.ErrPlaybackRejected
	}
	name := e.Get("name")
	if name == js.Undefined {
		return fmt.Errorf("%w: %s", audio.ErrPlaybackRejected, e.String())
	}
	return fmt.Errorf("%w: %s: %s", audio.ErrPlaybackRejected, name.String(), e.Get("message").String())
}
