//go:build js
// +build js

package main

import (
	"os"
	"strings"

	"github.com/decred/slog"
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/swarm-audio/audio"
	"github.com/simukka/swarm-audio/audio/web"
)

func main() {
	backend := slog.NewBackend(os.Stdout)
	log := backend.Logger("AUDI")
	log.SetLevel(slog.LevelInfo)

	// Optional page-provided settings, same shape as the JSON config
	cfg := audio.DefaultConfig
	if raw := js.Global.Get("SwarmAudioConfig"); raw != nil && raw != js.Undefined {
		doc := js.Global.Get("JSON").Call("stringify", raw).String()
		loaded, err := audio.LoadConfig(strings.NewReader(doc))
		if err != nil {
			log.Warnf("Ignoring SwarmAudioConfig: %v", err)
		} else {
			cfg = loaded
		}
		if lvl := raw.Get("logLevel"); lvl != js.Undefined {
			if l, ok := slog.LevelFromString(lvl.String()); ok {
				log.SetLevel(l)
			}
		}
	}

	svc := audio.NewService(web.NewPlatform(), cfg, nil, log)

	// Expose audio API to JavaScript
	js.Global.Set("SwarmAudio", map[string]interface{}{
		"playIntroMusic": svc.PlayIntroMusic,
		"playLevelMusic": func(level int) {
			svc.PlayLevelMusic(level)
		},
		"stopMusic":   svc.StopMusic,
		"pauseMusic":  svc.PauseMusic,
		"resumeMusic": svc.ResumeMusic,
		"stopAll":     svc.StopAllAudio,
		"playSound": func(kind string, opts *js.Object) {
			var o audio.EffectOptions
			if opts != nil && opts != js.Undefined {
				if v := opts.Get("volume"); v != js.Undefined {
					o.Volume = v.Float()
				}
				if d := opts.Get("duration"); d != js.Undefined {
					o.Duration = d.Float()
				}
			}
			svc.PlaySound(audio.EffectKind(kind), o)
		},
		"playPowerUpSound": svc.PlayPowerUpSound,
		"setMusicVolume": func(v float64) {
			svc.SetMusicVolume(v)
		},
		"setMasterVolume": func(v float64) {
			svc.SetMasterVolume(v)
		},
		"setEffectVolume": func(v float64) {
			svc.SetEffectVolume(v)
		},
		"toggleMusic":   svc.ToggleMusic,
		"toggleEffects": svc.ToggleEffects,
		"mute":          svc.Mute,
		"unmute":        svc.Unmute,
		"getMusicInfo": func() interface{} {
			info, ok := svc.MusicInfo()
			if !ok {
				return nil
			}
			return map[string]interface{}{
				"cue":       info.Cue,
				"src":       info.Src,
				"state":     info.State,
				"isPlaying": info.IsPlaying,
				"volume":    info.Volume,
				"deferred":  info.Deferred,
			}
		},
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		svc.StopAllAudio()
	})

	select {}
}
