package audio

import (
	"encoding/json"
	"fmt"
	"io"
)

type Config struct {
	// Category switches
	MusicEnabled   bool `json:"musicEnabled"`   // Background music on/off
	EffectsEnabled bool `json:"effectsEnabled"` // Synthesized effects on/off

	// Volumes, 0.0 - 1.0
	MusicVolume  float64 `json:"musicVolume"`  // Music category volume
	EffectVolume float64 `json:"effectVolume"` // Effect category volume
	MasterVolume float64 `json:"masterVolume"` // Multiplies both categories

	// Restored by Unmute when no mute snapshot exists
	UnmuteMusicVolume  float64 `json:"unmuteMusicVolume"`
	UnmuteEffectVolume float64 `json:"unmuteEffectVolume"`

	// Prefix joined to every catalog path (asset base URL or directory)
	TrackRoot string `json:"trackRoot"`
}

// LoadConfig reads a JSON document and overlays it on DefaultConfig.
// Missing fields keep their defaults; volumes are clamped to [0,1].
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return DefaultConfig, fmt.Errorf("audio: decode config: %w", err)
	}
	cfg.MusicVolume = clampUnit(cfg.MusicVolume)
	cfg.EffectVolume = clampUnit(cfg.EffectVolume)
	cfg.MasterVolume = clampUnit(cfg.MasterVolume)
	cfg.UnmuteMusicVolume = clampUnit(cfg.UnmuteMusicVolume)
	cfg.UnmuteEffectVolume = clampUnit(cfg.UnmuteEffectVolume)
	return cfg, nil
}
