package audio

import (
	"fmt"
	"sync"

	"github.com/decred/slog"
)

// Engine plays synthesized effects. Every effect is an independent voice
// built, started and discarded per call; voices may overlap freely.
type Engine struct {
	mu         sync.Mutex
	mix        *Mix
	newContext ToneContextFactory
	ctx        ToneContext
	disabled   bool
	log        slog.Logger
}

// NewEngine creates an engine. The tone context is created by factory on
// the first audible effect.
func NewEngine(factory ToneContextFactory, mix *Mix, log slog.Logger) *Engine {
	if log == nil {
		log = slog.Disabled
	}
	return &Engine{
		mix:        mix,
		newContext: factory,
		log:        log,
	}
}

// PlayEffect synthesizes kind. It never fails: disabled effects, silent
// volumes and platform errors all degrade to no sound.
func (e *Engine) PlayEffect(kind EffectKind, opts EffectOptions) {
	mix := e.mix.Snapshot()
	if !mix.EffectsEnabled {
		e.log.Tracef("Effects disabled, not playing %s", kind)
		return
	}

	volume := mix.EffectVolume
	if opts.Volume > 0 {
		volume = clampUnit(opts.Volume)
	}
	peak := volume * mix.MasterVolume
	if peak <= 0 {
		e.log.Tracef("Effect %s is silent at current volume", kind)
		return
	}

	ctx := e.context()
	if ctx == nil {
		return
	}

	voice := NewVoice(kind, peak, opts.Duration)
	if err := e.play(ctx, voice); err != nil {
		e.log.Warnf("Sound effect %s failed: %v", kind, err)
	}
}

// Available reports whether the engine can still produce sound.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.disabled
}

// context returns the tone context, creating it on first use. A failed
// creation disables the engine for good.
func (e *Engine) context() ToneContext {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disabled {
		return nil
	}
	if e.ctx != nil {
		return e.ctx
	}
	if e.newContext == nil {
		e.disabled = true
		e.log.Warnf("No tone synthesis available, effects disabled")
		return nil
	}
	ctx, err := e.newContext()
	if err == nil && ctx == nil {
		err = ErrSynthesisUnsupported
	}
	if err != nil {
		e.disabled = true
		e.log.Warnf("Tone synthesis unavailable, effects disabled: %v", err)
		return nil
	}
	e.ctx = ctx
	e.log.Debugf("Tone synthesis context created")
	return ctx
}

// play starts one voice and turns a platform panic into an error.
func (e *Engine) play(ctx ToneContext, v Voice) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ctx.Play(v)
}
