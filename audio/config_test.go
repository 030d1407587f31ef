package audio

import (
	"strings"
	"testing"
)

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`{"musicVolume": 0.8, "effectsEnabled": false}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.MusicVolume != 0.8 {
		t.Errorf("Expected music volume 0.8, got %v", cfg.MusicVolume)
	}
	if cfg.EffectsEnabled {
		t.Errorf("Expected effects disabled")
	}
	if cfg.MasterVolume != DefaultConfig.MasterVolume {
		t.Errorf("Expected default master %v, got %v", DefaultConfig.MasterVolume, cfg.MasterVolume)
	}
	if !cfg.MusicEnabled {
		t.Errorf("Expected music enabled by default")
	}
}

func TestLoadConfig_ClampsVolumes(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`{"musicVolume": 4, "masterVolume": -1, "unmuteEffectVolume": 2}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.MusicVolume != 1 || cfg.MasterVolume != 0 || cfg.UnmuteEffectVolume != 1 {
		t.Errorf("Expected clamped volumes, got %+v", cfg)
	}
}

func TestLoadConfig_BadJSON(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`{"musicVolume":`))
	if err == nil {
		t.Fatalf("Expected a decode error")
	}
	if cfg != DefaultConfig {
		t.Errorf("Expected defaults on error, got %+v", cfg)
	}
}
