// Package audio plays background music and synthesized sound effects for
// the game. Platform backends live in audio/web and audio/native.
package audio

import "github.com/decred/slog"

// Platform bundles what a backend provides to the service.
type Platform struct {
	Music    MusicHandle
	Gestures GestureSource
	Tones    ToneContextFactory
}

// MusicInfo describes the current music for display.
type MusicInfo struct {
	Cue       string  `json:"cue"`
	Src       string  `json:"src"`
	State     string  `json:"state"`
	IsPlaying bool    `json:"isPlaying"`
	Volume    float64 `json:"volume"`
	Deferred  bool    `json:"deferred"`
}

// Service is the process-wide audio service. Gameplay code calls it with
// cues and effect kinds and never sees resource paths.
type Service struct {
	mix     *Mix
	catalog *Catalog
	music   *Controller
	effects *Engine
	log     slog.Logger
}

// NewService creates the service for a platform. A nil catalog uses
// DefaultCatalog.
func NewService(p Platform, cfg Config, catalog *Catalog, log slog.Logger) *Service {
	if log == nil {
		log = slog.Disabled
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	catalog = catalog.WithRoot(cfg.TrackRoot)

	mix := NewMix(cfg)
	s := &Service{
		mix:     mix,
		catalog: catalog,
		music:   NewController(p.Music, p.Gestures, catalog, mix, log),
		effects: NewEngine(p.Tones, mix, log),
		log:     log,
	}
	state := mix.Snapshot()
	log.Infof("Audio service ready: %d tracks, music %s, effects %s",
		catalog.Len(), onOff(state.MusicEnabled), onOff(state.EffectsEnabled))
	return s
}

// Mix returns the shared mix configuration.
func (s *Service) Mix() *Mix { return s.mix }

// Catalog returns the track catalog.
func (s *Service) Catalog() *Catalog { return s.catalog }

// Controller returns the playback controller.
func (s *Service) Controller() *Controller { return s.music }

// Engine returns the synthesis engine.
func (s *Service) Engine() *Engine { return s.effects }

// PlayIntroMusic plays the title screen track.
func (s *Service) PlayIntroMusic() { s.music.PlayCue(CueIntro) }

// PlayLevelMusic plays the track of a level.
func (s *Service) PlayLevelMusic(level int) { s.music.PlayCue(Level(level)) }

// PlayCue plays the track of a cue.
func (s *Service) PlayCue(k CueKey) { s.music.PlayCue(k) }

func (s *Service) StopMusic()   { s.music.Stop() }
func (s *Service) PauseMusic()  { s.music.Pause() }
func (s *Service) ResumeMusic() { s.music.Resume() }

// StopAllAudio stops the music. Effects always run to completion.
func (s *Service) StopAllAudio() {
	s.music.Stop()
	s.log.Debugf("All audio stopped")
}

// PlaySound plays a synthesized effect.
func (s *Service) PlaySound(kind EffectKind, opts EffectOptions) {
	s.effects.PlayEffect(kind, opts)
}

// PlayPowerUpSound plays the power-up sparkle.
func (s *Service) PlayPowerUpSound() {
	s.effects.PlayEffect(EffectPowerUp, EffectOptions{})
}

func (s *Service) SetMusicVolume(v float64)  { s.music.SetMusicVolume(v) }
func (s *Service) SetMasterVolume(v float64) { s.music.SetMasterVolume(v) }

// SetEffectVolume sets the effect category volume for the next effect.
func (s *Service) SetEffectVolume(v float64) {
	v = s.mix.SetEffectVolume(v)
	s.log.Debugf("Effect volume set to %.2f", v)
}

// ToggleMusic flips music on or off and returns the new state.
func (s *Service) ToggleMusic() bool { return s.music.ToggleMusic() }

// SetEffectsEnabled switches effects on or off.
func (s *Service) SetEffectsEnabled(on bool) {
	s.mix.SetEffectsEnabled(on)
	s.log.Infof("Sound effects %s", onOff(on))
}

// ToggleEffects flips effects on or off and returns the new state.
func (s *Service) ToggleEffects() bool {
	on := !s.mix.Snapshot().EffectsEnabled
	s.SetEffectsEnabled(on)
	return on
}

func (s *Service) Mute()   { s.music.Mute() }
func (s *Service) Unmute() { s.music.Unmute() }

// MusicInfo returns the current music, or false without a session.
func (s *Service) MusicInfo() (MusicInfo, bool) {
	sess := s.music.Session()
	if !sess.Active() {
		return MusicInfo{}, false
	}
	return MusicInfo{
		Cue:       sess.Cue.String(),
		Src:       sess.Path,
		State:     sess.State.String(),
		IsPlaying: sess.State == Playing,
		Volume:    sess.Volume,
		Deferred:  sess.Deferred,
	}, true
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
