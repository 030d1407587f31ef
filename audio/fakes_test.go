package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

func floatNear(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

var errBlocked = fmt.Errorf("%w: NotAllowedError", ErrPlaybackRejected)

// fakeHandle records every call and holds start outcomes until the test
// resolves them, like a browser play() promise.
type fakeHandle struct {
	mu      sync.Mutex
	ops     []string
	bound   string
	volume  float64
	pending []func(error)
	starts  int

	// sounding is the path audible right now, "" when silent
	sounding string
}

func (h *fakeHandle) Bind(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, "bind:"+path)
	h.bound = path
}

func (h *fakeHandle) Play(done func(error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, "play")
	h.starts++
	path := h.bound
	h.pending = append(h.pending, func(err error) {
		if err == nil {
			h.mu.Lock()
			if h.bound == path {
				h.sounding = path
			}
			h.mu.Unlock()
		}
		done(err)
	})
}

func (h *fakeHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, "pause")
	h.sounding = ""
}

func (h *fakeHandle) Rewind() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, "rewind")
}

func (h *fakeHandle) SetVolume(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.volume = v
}

// resolve delivers the outcome of the oldest outstanding start.
func (h *fakeHandle) resolve(err error) bool {
	h.mu.Lock()
	if len(h.pending) == 0 {
		h.mu.Unlock()
		return false
	}
	done := h.pending[0]
	h.pending = h.pending[1:]
	h.mu.Unlock()
	done(err)
	return true
}

// resolveAll delivers err to every outstanding start, oldest first.
func (h *fakeHandle) resolveAll(err error) {
	for h.resolve(err) {
	}
}

func (h *fakeHandle) startCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.starts
}

func (h *fakeHandle) currentVolume() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.volume
}

func (h *fakeHandle) audible() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sounding
}

func (h *fakeHandle) opLog() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.ops...)
}

// fakeTone records voices instead of sounding them.
type fakeTone struct {
	mu     sync.Mutex
	voices []Voice
	err    error
	panic  bool
}

func (f *fakeTone) Play(v Voice) error {
	if f.panic {
		panic("oscillator exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.voices = append(f.voices, v)
	return nil
}

func (f *fakeTone) played() []Voice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Voice(nil), f.voices...)
}

// countingFactory counts context constructions.
type countingFactory struct {
	calls int
	ctx   ToneContext
	err   error
}

func (f *countingFactory) New() (ToneContext, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ctx, nil
}

var errNoAudioContext = errors.New("AudioContext missing")

func newTestController(cfg Config) (*Controller, *fakeHandle, *GestureBus) {
	h := &fakeHandle{}
	bus := NewGestureBus()
	c := NewController(h, bus, DefaultCatalog(), NewMix(cfg), nil)
	return c, h, bus
}
