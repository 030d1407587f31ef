package audio

import (
	"errors"
	"testing"
)

func newTestEngine(cfg Config, f *countingFactory) (*Engine, *Mix) {
	mix := NewMix(cfg)
	return NewEngine(f.New, mix, nil), mix
}

func TestEngine_LazyContextCreatedOnce(t *testing.T) {
	tone := &fakeTone{}
	f := &countingFactory{ctx: tone}
	e, _ := newTestEngine(DefaultConfig, f)

	if f.calls != 0 {
		t.Errorf("Expected no context before the first effect, got %d", f.calls)
	}
	e.PlayEffect(EffectExplosion, EffectOptions{})
	e.PlayEffect(EffectBuzz, EffectOptions{})
	e.PlayEffect(EffectVictory, EffectOptions{})

	if f.calls != 1 {
		t.Errorf("Expected 1 context construction, got %d", f.calls)
	}
	if len(tone.played()) != 3 {
		t.Errorf("Expected 3 voices, got %d", len(tone.played()))
	}
}

func TestEngine_DisabledAllocatesNothing(t *testing.T) {
	cfg := DefaultConfig
	cfg.EffectsEnabled = false
	tone := &fakeTone{}
	f := &countingFactory{ctx: tone}
	e, _ := newTestEngine(cfg, f)

	for _, kind := range EffectKinds {
		e.PlayEffect(kind, EffectOptions{})
	}
	if f.calls != 0 || len(tone.played()) != 0 {
		t.Errorf("Expected no context and no voices, got %d/%d", f.calls, len(tone.played()))
	}
}

func TestEngine_SilentPeakAllocatesNothing(t *testing.T) {
	tests := []struct {
		name   string
		effect float64
		master float64
	}{
		{"zero effect volume", 0, 0.6},
		{"zero master", 0.6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &countingFactory{ctx: &fakeTone{}}
			e, mix := newTestEngine(DefaultConfig, f)
			mix.SetEffectVolume(tt.effect)
			mix.SetMasterVolume(tt.master)

			e.PlayEffect(EffectPowerUp, EffectOptions{})
			if f.calls != 0 {
				t.Errorf("Expected no context for a silent effect, got %d", f.calls)
			}
		})
	}
}

func TestEngine_FactoryFailureDisablesForGood(t *testing.T) {
	f := &countingFactory{err: errNoAudioContext}
	e, _ := newTestEngine(DefaultConfig, f)

	e.PlayEffect(EffectExplosion, EffectOptions{})
	if e.Available() {
		t.Errorf("Expected engine disabled after factory failure")
	}

	// A later working platform is never consulted again
	f.err = nil
	f.ctx = &fakeTone{}
	e.PlayEffect(EffectExplosion, EffectOptions{})
	e.PlayEffect(EffectBuzz, EffectOptions{})
	if f.calls != 1 {
		t.Errorf("Expected a single construction attempt, got %d", f.calls)
	}
}

func TestEngine_NilContextIsUnsupported(t *testing.T) {
	f := &countingFactory{}
	e, _ := newTestEngine(DefaultConfig, f)

	e.PlayEffect(EffectBuzz, EffectOptions{})
	if e.Available() {
		t.Errorf("Expected engine disabled for a nil context")
	}
}

func TestEngine_NilFactory(t *testing.T) {
	e := NewEngine(nil, NewMix(DefaultConfig), nil)
	e.PlayEffect(EffectBuzz, EffectOptions{})
	if e.Available() {
		t.Errorf("Expected engine without factory to be unavailable")
	}
}

func TestEngine_PlayFailuresAreSwallowed(t *testing.T) {
	tone := &fakeTone{err: errors.New("node graph full")}
	f := &countingFactory{ctx: tone}
	e, _ := newTestEngine(DefaultConfig, f)

	e.PlayEffect(EffectCrunch, EffectOptions{})
	tone.err = nil
	e.PlayEffect(EffectCrunch, EffectOptions{})

	if len(tone.played()) != 1 {
		t.Errorf("Expected the next effect to play, got %d voices", len(tone.played()))
	}
	if !e.Available() {
		t.Errorf("A single failed voice must not disable the engine")
	}
}

func TestEngine_PanicIsRecovered(t *testing.T) {
	tone := &fakeTone{panic: true}
	f := &countingFactory{ctx: tone}
	e, _ := newTestEngine(DefaultConfig, f)

	e.PlayEffect(EffectVictory, EffectOptions{})

	tone.panic = false
	e.PlayEffect(EffectVictory, EffectOptions{})
	if len(tone.played()) != 1 {
		t.Errorf("Expected engine to keep working after a panic, got %d voices", len(tone.played()))
	}
}

func TestEngine_PeakVolume(t *testing.T) {
	tests := []struct {
		name   string
		effect float64
		master float64
		opts   EffectOptions
		want   float64
	}{
		{"category volume", 0.5, 0.8, EffectOptions{}, 0.4},
		{"override", 0.5, 0.8, EffectOptions{Volume: 1}, 0.8},
		{"override clamped", 0.5, 0.5, EffectOptions{Volume: 3}, 0.5},
		{"negative override ignored", 0.5, 1, EffectOptions{Volume: -1}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone := &fakeTone{}
			e, mix := newTestEngine(DefaultConfig, &countingFactory{ctx: tone})
			mix.SetEffectVolume(tt.effect)
			mix.SetMasterVolume(tt.master)

			e.PlayEffect(EffectCollision, tt.opts)
			voices := tone.played()
			if len(voices) != 1 {
				t.Fatalf("Expected 1 voice, got %d", len(voices))
			}
			// Crunch attack reaches the peak at 0.01s
			if got := voices[0].Gain.ValueAt(0.01); !floatNear(got, tt.want, 1e-9) {
				t.Errorf("Expected peak %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEngine_OverlappingVoicesAreIndependent(t *testing.T) {
	tone := &fakeTone{}
	e, _ := newTestEngine(DefaultConfig, &countingFactory{ctx: tone})

	e.PlayEffect(EffectVictory, EffectOptions{})
	e.PlayEffect(EffectExplosion, EffectOptions{Volume: 1})
	e.PlayEffect(EffectVictory, EffectOptions{Duration: 2})

	voices := tone.played()
	if len(voices) != 3 {
		t.Fatalf("Expected 3 voices, got %d", len(voices))
	}
	if voices[0].Duration != 0.8 || voices[2].Duration != 2 {
		t.Errorf("Expected each voice to keep its own duration, got %v and %v",
			voices[0].Duration, voices[2].Duration)
	}
	if voices[1].Kind != EffectExplosion {
		t.Errorf("Expected explosion in the middle, got %s", voices[1].Kind)
	}
}

func TestEngine_VolumeChangesApplyToNextEffect(t *testing.T) {
	tone := &fakeTone{}
	e, mix := newTestEngine(DefaultConfig, &countingFactory{ctx: tone})
	mix.SetMasterVolume(1)

	mix.SetEffectVolume(0.2)
	e.PlayEffect(EffectCrunch, EffectOptions{})
	mix.SetEffectVolume(0.9)
	e.PlayEffect(EffectCrunch, EffectOptions{})

	voices := tone.played()
	if got := voices[0].Gain.ValueAt(0.01); !floatNear(got, 0.2, 1e-9) {
		t.Errorf("Expected first voice at 0.2, got %v", got)
	}
	if got := voices[1].Gain.ValueAt(0.01); !floatNear(got, 0.9, 1e-9) {
		t.Errorf("Expected second voice at 0.9, got %v", got)
	}
}
