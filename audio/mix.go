package audio

import (
	"math"
	"sync"
)

// MixState is a point-in-time copy of the mix configuration.
type MixState struct {
	MusicEnabled   bool
	EffectsEnabled bool
	MusicVolume    float64
	EffectVolume   float64
	MasterVolume   float64
	Muted          bool
}

// EffectiveMusic returns the music volume as applied to the handle.
func (s MixState) EffectiveMusic() float64 {
	return s.MusicVolume * s.MasterVolume
}

// Mix holds the volumes and switches read by the controller and the engine
// on every operation. Nothing is pushed; changes apply to the next read.
type Mix struct {
	mu sync.RWMutex

	musicEnabled   bool
	effectsEnabled bool
	musicVolume    float64
	effectVolume   float64
	masterVolume   float64

	// Mute snapshot; muted is set from Mute until the next Unmute, the
	// saved volumes stay for later unmutes once hasSnapshot is set
	muted             bool
	hasSnapshot       bool
	savedMusicVolume  float64
	savedEffectVolume float64

	unmuteMusicVolume  float64
	unmuteEffectVolume float64
}

// NewMix creates a mix from cfg.
func NewMix(cfg Config) *Mix {
	return &Mix{
		musicEnabled:       cfg.MusicEnabled,
		effectsEnabled:     cfg.EffectsEnabled,
		musicVolume:        clampUnit(cfg.MusicVolume),
		effectVolume:       clampUnit(cfg.EffectVolume),
		masterVolume:       clampUnit(cfg.MasterVolume),
		unmuteMusicVolume:  clampUnit(cfg.UnmuteMusicVolume),
		unmuteEffectVolume: clampUnit(cfg.UnmuteEffectVolume),
	}
}

// Snapshot returns the current state.
func (m *Mix) Snapshot() MixState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MixState{
		MusicEnabled:   m.musicEnabled,
		EffectsEnabled: m.effectsEnabled,
		MusicVolume:    m.musicVolume,
		EffectVolume:   m.effectVolume,
		MasterVolume:   m.masterVolume,
		Muted:          m.muted,
	}
}

// SetMusicVolume stores v clamped to [0,1] and returns the stored value.
func (m *Mix) SetMusicVolume(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicVolume = clampUnit(v)
	return m.musicVolume
}

// SetEffectVolume stores v clamped to [0,1] and returns the stored value.
func (m *Mix) SetEffectVolume(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effectVolume = clampUnit(v)
	return m.effectVolume
}

// SetMasterVolume stores v clamped to [0,1] and returns the stored value.
func (m *Mix) SetMasterVolume(v float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clampUnit(v)
	return m.masterVolume
}

// SetMusicEnabled switches music without touching the volumes.
func (m *Mix) SetMusicEnabled(on bool) {
	m.mu.Lock()
	m.musicEnabled = on
	m.mu.Unlock()
}

// SetEffectsEnabled switches effects without touching the volumes.
func (m *Mix) SetEffectsEnabled(on bool) {
	m.mu.Lock()
	m.effectsEnabled = on
	m.mu.Unlock()
}

// mute snapshots and zeroes both category volumes and disables music.
// It reports false when a snapshot is already held.
func (m *Mix) mute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted {
		m.musicEnabled = false
		return false
	}
	m.muted = true
	m.hasSnapshot = true
	m.savedMusicVolume = m.musicVolume
	m.savedEffectVolume = m.effectVolume
	m.musicVolume = 0
	m.effectVolume = 0
	m.musicEnabled = false
	return true
}

// unmute restores the last snapshot taken by mute, or the configured
// unmute defaults when mute never ran, and enables music.
func (m *Mix) unmute() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasSnapshot {
		m.musicVolume = m.savedMusicVolume
		m.effectVolume = m.savedEffectVolume
	} else {
		m.musicVolume = m.unmuteMusicVolume
		m.effectVolume = m.unmuteEffectVolume
	}
	m.muted = false
	m.musicEnabled = true
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
