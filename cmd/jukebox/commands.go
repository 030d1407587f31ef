//go:build !js

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/simukka/swarm-audio/audio"
)

const usage = `commands:
  intro | level N | play CUE    play music
  stop | pause | resume         music transport
  click                         simulate a user gesture
  sfx KIND [VOLUME [DURATION]]  play an effect
  music|effects|master VOLUME   set a category volume
  mute | unmute | toggle        music switches
  effects-toggle                effect switch
  tracks | kinds | info         listings
  quit`

type jukebox struct {
	svc      *audio.Service
	gestures *audio.GestureBus
	out      io.Writer
}

// exec runs one command line and reports whether the session should end.
func (j *jukebox) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(j.out, usage)
	case "intro":
		j.svc.PlayIntroMusic()
	case "level":
		n, err := intArg(args, 0)
		if err != nil {
			return false, err
		}
		j.svc.PlayLevelMusic(n)
	case "play":
		k, err := audio.ParseCueKey(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		j.svc.PlayCue(k)
	case "stop":
		j.svc.StopMusic()
	case "pause":
		j.svc.PauseMusic()
	case "resume":
		j.svc.ResumeMusic()
	case "click":
		j.gestures.Fire()
	case "sfx":
		if len(args) == 0 {
			return false, fmt.Errorf("sfx needs an effect kind")
		}
		var opts audio.EffectOptions
		var err error
		if len(args) > 1 {
			if opts.Volume, err = floatArg(args, 1); err != nil {
				return false, err
			}
		}
		if len(args) > 2 {
			if opts.Duration, err = floatArg(args, 2); err != nil {
				return false, err
			}
		}
		j.svc.PlaySound(audio.EffectKind(args[0]), opts)
	case "music", "effects", "master":
		v, err := floatArg(args, 0)
		if err != nil {
			return false, err
		}
		switch cmd {
		case "music":
			j.svc.SetMusicVolume(v)
		case "effects":
			j.svc.SetEffectVolume(v)
		default:
			j.svc.SetMasterVolume(v)
		}
	case "mute":
		j.svc.Mute()
	case "unmute":
		j.svc.Unmute()
	case "toggle":
		fmt.Fprintf(j.out, "music enabled: %v\n", j.svc.ToggleMusic())
	case "effects-toggle":
		fmt.Fprintf(j.out, "effects enabled: %v\n", j.svc.ToggleEffects())
	case "tracks":
		for _, e := range j.svc.Catalog().Entries() {
			fmt.Fprintf(j.out, "%-9s %s\n", e.Cue, e.Path)
		}
	case "kinds":
		for _, k := range audio.EffectKinds {
			fmt.Fprintln(j.out, k)
		}
	case "info":
		info, ok := j.svc.MusicInfo()
		if !ok {
			fmt.Fprintln(j.out, "no music")
			return false, nil
		}
		enc := json.NewEncoder(j.out)
		enc.SetIndent("", "  ")
		return false, enc.Encode(info)
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
	return false, nil
}

func intArg(args []string, i int) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing argument")
	}
	return strconv.Atoi(args[i])
}

func floatArg(args []string, i int) (float64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing argument")
	}
	return strconv.ParseFloat(args[i], 64)
}
