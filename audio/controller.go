package audio

import (
	"sync"

	"github.com/decred/slog"
)

// HandleState is the state of the music handle.
type HandleState int

const (
	Idle HandleState = iota
	Playing
	Paused
)

func (s HandleState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Session describes the current playback session.
type Session struct {
	Cue    CueKey
	Path   string // empty when no session exists
	State  HandleState
	Volume float64 // effective volume applied to the handle

	Pending  bool // start issued, outcome not yet delivered
	Deferred bool // waiting for a user gesture to retry the start
}

// Active reports whether a track is bound.
func (s Session) Active() bool {
	return s.Path != ""
}

// startOrigin records why a start was issued.
type startOrigin int

const (
	startCue startOrigin = iota
	startResume
	startGesture
)

// Controller serializes all music requests against one MusicHandle so that
// at most one track is ever audible.
type Controller struct {
	mu       sync.Mutex
	handle   MusicHandle
	gestures GestureSource
	catalog  *Catalog
	mix      *Mix
	log      slog.Logger

	cue   CueKey
	path  string
	state HandleState

	// gen identifies the latest start; outcomes of older starts are dropped.
	gen     uint64
	pending bool

	// Armed deferred-start listener
	cancelGesture func()
	gestureToken  uint64

	// Set by Mute when the session should resume on Unmute
	resumeOnUnmute bool
}

// NewController creates a controller around the given handle.
func NewController(handle MusicHandle, gestures GestureSource, catalog *Catalog, mix *Mix, log slog.Logger) *Controller {
	if log == nil {
		log = slog.Disabled
	}
	return &Controller{
		handle:   handle,
		gestures: gestures,
		catalog:  catalog,
		mix:      mix,
		log:      log,
	}
}

// Session returns a copy of the current playback session.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Session{
		Path:     c.path,
		State:    c.state,
		Pending:  c.pending,
		Deferred: c.cancelGesture != nil,
	}
	if c.path != "" {
		s.Cue = c.cue
		s.Volume = c.mix.Snapshot().EffectiveMusic()
	}
	return s
}

// PlayCue makes k the current track. Requests for the track already bound
// are ignored; anything else stops the handle before rebinding it.
func (c *Controller) PlayCue(k CueKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mix := c.mix.Snapshot()
	if !mix.MusicEnabled {
		c.log.Debugf("Music disabled, not playing %v", k)
		return
	}
	path, ok := c.catalog.Resolve(k)
	if !ok {
		c.log.Warnf("No music configured for %v", k)
		return
	}
	if path == c.path {
		c.log.Debugf("%v music already bound (%s), no change needed", k, path)
		return
	}

	c.log.Infof("Music change to %v: %s -> %s", k, orNone(c.path), path)

	// Pausing before the rebind is required: some platforms keep sounding
	// a paused-mid-file source after the source changes.
	c.disarmGesture()
	c.handle.Pause()
	c.handle.Rewind()
	c.state = Idle

	c.handle.Bind(path)
	c.handle.SetVolume(mix.EffectiveMusic())
	c.cue = k
	c.path = path
	c.resumeOnUnmute = false

	c.start(startCue)
}

// Stop silences the handle and ends the session.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stop()
}

func (c *Controller) stop() {
	c.disarmGesture()
	c.resumeOnUnmute = false
	if c.path == "" && c.state == Idle {
		return
	}
	c.gen++
	c.pending = false
	c.handle.Pause()
	c.handle.Rewind()
	c.log.Infof("Music stopped (%s)", c.path)
	c.cue = CueIntro
	c.path = ""
	c.state = Idle
}

// Pause pauses the current session. It does nothing without a session.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pause()
}

func (c *Controller) pause() {
	if c.path == "" || c.state == Paused {
		return
	}
	c.disarmGesture()
	c.gen++
	c.pending = false
	c.handle.Pause()
	c.state = Paused
	c.log.Debugf("Music paused (%s)", c.path)
}

// Resume restarts a paused session. It does nothing without a session,
// while music is disabled, or while a start is already in flight.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resume()
}

func (c *Controller) resume() {
	if c.path == "" || c.state == Playing || c.pending {
		return
	}
	mix := c.mix.Snapshot()
	if !mix.MusicEnabled {
		c.log.Debugf("Music disabled, not resuming %s", c.path)
		return
	}
	c.disarmGesture()
	c.handle.SetVolume(mix.EffectiveMusic())
	c.start(startResume)
}

// SetMusicVolume clamps and stores the music volume and re-applies the
// effective volume to an active session.
func (c *Controller) SetMusicVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v = c.mix.SetMusicVolume(v)
	c.applyVolume()
	c.log.Debugf("Music volume set to %.2f", v)
}

// SetMasterVolume clamps and stores the master volume and re-applies the
// effective music volume to an active session.
func (c *Controller) SetMasterVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v = c.mix.SetMasterVolume(v)
	c.applyVolume()
	c.log.Debugf("Master volume set to %.2f", v)
}

func (c *Controller) applyVolume() {
	if c.path == "" {
		return
	}
	c.handle.SetVolume(c.mix.Snapshot().EffectiveMusic())
}

// Mute zeroes the category volumes, disables music and pauses a session
// that is sounding or about to sound.
func (c *Controller) Mute() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mute()
}

func (c *Controller) mute() {
	if !c.mix.mute() {
		c.log.Debugf("Already muted")
		return
	}
	intended := c.state == Playing || c.pending || c.cancelGesture != nil
	c.resumeOnUnmute = c.path != "" && intended
	c.applyVolume()
	if c.resumeOnUnmute {
		c.pause()
	}
	c.log.Infof("Audio muted")
}

// Unmute restores the volumes saved by Mute (or the configured defaults),
// enables music and resumes the session if Mute paused it.
func (c *Controller) Unmute() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unmute()
}

func (c *Controller) unmute() {
	c.mix.unmute()
	c.applyVolume()
	if c.resumeOnUnmute {
		c.resumeOnUnmute = false
		c.resume()
	}
	c.log.Infof("Audio unmuted")
}

// ToggleMusic flips music on or off through Mute and Unmute and returns
// whether music is now enabled. Enabling never starts a track by itself.
func (c *Controller) ToggleMusic() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mix.Snapshot().MusicEnabled {
		c.mute()
		c.log.Infof("Music disabled via toggle")
		return false
	}
	c.unmute()
	c.log.Infof("Music enabled via toggle")
	return true
}

// start issues an asynchronous start for the bound track.
func (c *Controller) start(origin startOrigin) {
	c.gen++
	gen := c.gen
	c.pending = true
	c.handle.Play(func(err error) {
		c.onStarted(gen, origin, err)
	})
}

func (c *Controller) onStarted(gen uint64, origin startOrigin, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debugf("Dropping outcome of superseded start (err=%v)", err)
		return
	}
	c.pending = false

	if err == nil {
		c.state = Playing
		c.log.Infof("%v music started: %s", c.cue, c.path)
		return
	}

	if origin == startGesture {
		c.log.Errorf("Still cannot play %s after user interaction: %v", c.path, err)
		return
	}
	c.log.Warnf("%v music needs user interaction: %v", c.cue, err)
	c.armGesture()
}

// armGesture registers the one-shot deferred-start listener.
func (c *Controller) armGesture() {
	if c.cancelGesture != nil || c.gestures == nil {
		return
	}
	c.gestureToken++
	token := c.gestureToken
	c.cancelGesture = c.gestures.Subscribe(func() {
		c.onGesture(token)
	})
	c.log.Debugf("Music will start on next user interaction")
}

func (c *Controller) disarmGesture() {
	if c.cancelGesture == nil {
		return
	}
	c.cancelGesture()
	c.cancelGesture = nil
}

func (c *Controller) onGesture(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelGesture == nil || token != c.gestureToken {
		return
	}
	c.disarmGesture()

	if c.path == "" || c.state == Playing || c.pending {
		return
	}
	if !c.mix.Snapshot().MusicEnabled {
		return
	}
	c.log.Infof("Starting %s on user interaction", c.path)
	c.start(startGesture)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
