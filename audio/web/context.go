//go:build js
// +build js

package web

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/swarm-audio/audio"
)

// ToneContext synthesizes voices with the Web Audio API.
type ToneContext struct {
	ctx        *js.Object
	masterGain *js.Object
}

// NewToneContext creates the AudioContext. It is used as the engine's
// ToneContextFactory so the context only exists once an effect is played.
func NewToneContext() (audio.ToneContext, error) {
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return nil, audio.ErrSynthesisUnsupported
	}

	t := &ToneContext{ctx: audioCtx.New()}
	t.masterGain = t.ctx.Call("createGain")
	t.masterGain.Get("gain").Set("value", 1)
	t.masterGain.Call("connect", t.ctx.Get("destination"))
	return t, nil
}

// Play builds an oscillator -> gain graph for v and starts it. The nodes
// disconnect themselves when the oscillator ends.
func (t *ToneContext) Play(v audio.Voice) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("web audio: %v", r)
		}
	}()

	// Resume context if suspended
	if t.ctx.Get("state").String() == "suspended" {
		t.ctx.Call("resume")
	}
	now := t.ctx.Get("currentTime").Float()
	stopAt := now + v.Duration

	osc := t.ctx.Call("createOscillator")
	osc.Set("type", v.Waveform.String())
	schedule(osc.Get("frequency"), v.Frequency, now)

	gainNode := t.ctx.Call("createGain")
	schedule(gainNode.Get("gain"), v.Gain, now)
	osc.Call("connect", gainNode)

	nodes := []*js.Object{osc, gainNode}
	out := gainNode
	if m := v.Modulator; m != nil {
		// Tremolo: the LFO swings the gain around 1-depth/2 by depth/2
		tremolo := t.ctx.Call("createGain")
		tremolo.Get("gain").Set("value", 1-m.Depth/2)

		lfo := t.ctx.Call("createOscillator")
		lfo.Set("type", "sine")
		lfo.Get("frequency").Set("value", m.Rate)
		lfoGain := t.ctx.Call("createGain")
		lfoGain.Get("gain").Set("value", m.Depth/2)

		lfo.Call("connect", lfoGain)
		lfoGain.Call("connect", tremolo.Get("gain"))
		gainNode.Call("connect", tremolo)
		lfo.Call("start", now)
		lfo.Call("stop", stopAt)

		nodes = append(nodes, tremolo, lfo, lfoGain)
		out = tremolo
	}
	out.Call("connect", t.masterGain)

	osc.Set("onended", func() {
		for _, n := range nodes {
			n.Call("disconnect")
		}
	})
	osc.Call("start", now)
	osc.Call("stop", stopAt)
	return nil
}

// schedule replays an automation onto an AudioParam starting at now.
func schedule(param *js.Object, a audio.Automation, now float64) {
	for _, ev := range a {
		at := now + ev.Time
		switch ev.Kind {
		case audio.SetValue:
			param.Call("setValueAtTime", ev.Value, at)
		case audio.LinearRamp:
			param.Call("linearRampToValueAtTime", ev.Value, at)
		case audio.ExponentialRamp:
			param.Call("exponentialRampToValueAtTime", ev.Value, at)
		}
	}
}
