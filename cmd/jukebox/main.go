//go:build !js

// Command jukebox drives the audio service from the terminal using the
// system audio device.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/decred/slog"
	"github.com/simukka/swarm-audio/audio"
	"github.com/simukka/swarm-audio/audio/native"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON audio config file")
		tracksDir  = flag.String("tracks", ".", "directory holding the sounds/ folder")
		logLevel   = flag.String("loglevel", "info", "log level (trace, debug, info, warn, error)")
	)
	flag.Parse()

	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("AUDI")
	lvl, ok := slog.LevelFromString(*logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *logLevel)
		os.Exit(2)
	}
	log.SetLevel(lvl)

	cfg := audio.DefaultConfig
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			log.Criticalf("Open config: %v", err)
			os.Exit(1)
		}
		cfg, err = audio.LoadConfig(f)
		f.Close()
		if err != nil {
			log.Criticalf("%v", err)
			os.Exit(1)
		}
	}

	gestures := audio.NewGestureBus()
	platform := native.NewPlatform(os.DirFS(*tracksDir), gestures, log)
	svc := audio.NewService(platform, cfg, nil, log)
	j := &jukebox{svc: svc, gestures: gestures, out: os.Stdout}

	fmt.Fprintln(os.Stdout, "jukebox ready, type help")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		quit, err := j.exec(scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stdout, "error:", err)
		}
		if quit {
			break
		}
	}
	svc.StopAllAudio()
}
