package audio

import "testing"

func newTestService(cfg Config) (*Service, *fakeHandle, *GestureBus, *fakeTone) {
	h := &fakeHandle{}
	bus := NewGestureBus()
	tone := &fakeTone{}
	f := &countingFactory{ctx: tone}
	s := NewService(Platform{Music: h, Gestures: bus, Tones: f.New}, cfg, nil, nil)
	return s, h, bus, tone
}

func TestService_MusicInfo(t *testing.T) {
	s, h, _, _ := newTestService(DefaultConfig)

	if _, ok := s.MusicInfo(); ok {
		t.Errorf("Expected no music info before any cue")
	}

	s.PlayLevelMusic(3)
	h.resolveAll(nil)

	info, ok := s.MusicInfo()
	if !ok {
		t.Fatalf("Expected music info")
	}
	if info.Cue != "level 3" || !info.IsPlaying || info.State != "playing" {
		t.Errorf("Unexpected info %+v", info)
	}
	if info.Src != "/sounds/level3-lost-in-space.mp3" {
		t.Errorf("Unexpected src %q", info.Src)
	}
	if !floatNear(info.Volume, 0.25*0.6, 1e-12) {
		t.Errorf("Expected volume 0.15, got %v", info.Volume)
	}

	s.StopAllAudio()
	if _, ok := s.MusicInfo(); ok {
		t.Errorf("Expected no music info after stop")
	}
}

func TestService_DeferredInfo(t *testing.T) {
	s, h, bus, _ := newTestService(DefaultConfig)

	s.PlayIntroMusic()
	h.resolve(errBlocked)

	info, ok := s.MusicInfo()
	if !ok || !info.Deferred || info.IsPlaying {
		t.Errorf("Expected deferred, not playing intro, got %+v (%v)", info, ok)
	}

	bus.Fire()
	h.resolve(nil)
	info, _ = s.MusicInfo()
	if !info.IsPlaying || info.Deferred {
		t.Errorf("Expected intro playing after gesture, got %+v", info)
	}
}

func TestService_TrackRoot(t *testing.T) {
	cfg := DefaultConfig
	cfg.TrackRoot = "https://cdn.example.com"
	s, h, _, _ := newTestService(cfg)

	s.PlayIntroMusic()
	want := "bind:https://cdn.example.com/sounds/intro-cinematic-battle-score.mp3"
	ops := h.opLog()
	found := false
	for _, op := range ops {
		if op == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected %q in %v", want, ops)
	}
}

func TestService_Effects(t *testing.T) {
	s, _, _, tone := newTestService(DefaultConfig)

	s.PlayPowerUpSound()
	s.PlaySound(EffectExplosion, EffectOptions{})
	if len(tone.played()) != 2 {
		t.Fatalf("Expected 2 voices, got %d", len(tone.played()))
	}

	if s.ToggleEffects() {
		t.Errorf("Expected effects off after toggle")
	}
	s.PlaySound(EffectExplosion, EffectOptions{})
	if len(tone.played()) != 2 {
		t.Errorf("Expected no voice while effects are off")
	}

	if !s.ToggleEffects() {
		t.Errorf("Expected effects on after second toggle")
	}
	s.SetEffectVolume(0)
	s.PlaySound(EffectExplosion, EffectOptions{})
	if len(tone.played()) != 2 {
		t.Errorf("Expected silence at zero effect volume")
	}
}

func TestService_MuteSilencesEffectsAndMusic(t *testing.T) {
	s, h, _, tone := newTestService(DefaultConfig)
	s.PlayLevelMusic(1)
	h.resolveAll(nil)

	s.Mute()
	s.PlayPowerUpSound()
	if len(tone.played()) != 0 {
		t.Errorf("Expected no effect while muted")
	}
	if h.audible() != "" {
		t.Errorf("Expected music paused while muted")
	}

	s.Unmute()
	h.resolveAll(nil)
	if h.audible() == "" {
		t.Errorf("Expected music to resume after unmute")
	}
	s.PlayPowerUpSound()
	if len(tone.played()) != 1 {
		t.Errorf("Expected effects audible after unmute")
	}
}
