//go:build !js

// Command sfxdump renders every effect recipe to a WAV file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/slog"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/simukka/swarm-audio/audio"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		outDir = flag.String("out", ".", "output directory")
		kinds  = flag.String("kinds", "", "comma separated effect kinds (default all)")
		peak   = flag.Float64("peak", 0.8, "peak amplitude 0.0 - 1.0")
		jobs   = flag.Int("j", 4, "parallel renders")
	)
	flag.Parse()

	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("SFXD")

	list := audio.EffectKinds
	if *kinds != "" {
		list = nil
		for _, k := range strings.Split(*kinds, ",") {
			list = append(list, audio.EffectKind(strings.TrimSpace(k)))
		}
	}

	if err := dumpAll(*outDir, list, *peak, *jobs, log); err != nil {
		log.Criticalf("%v", err)
		os.Exit(1)
	}
}

// dumpAll renders list into outDir with at most jobs renders at a time.
func dumpAll(outDir string, list []audio.EffectKind, peak float64, jobs int, log slog.Logger) error {
	if jobs < 1 {
		return fmt.Errorf("parallel renders must be at least 1, got %d", jobs)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, kind := range list {
		g.Go(func() error {
			name := filepath.Join(outDir, string(kind)+".wav")
			if err := dump(name, audio.NewVoice(kind, peak, 0)); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			log.Infof("Wrote %s", name)
			return nil
		})
	}
	return g.Wait()
}

func dump(name string, v audio.Voice) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := wav.Encode(f, newVoiceStreamer(v), wavFormat); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var wavFormat = beep.Format{
	SampleRate:  beep.SampleRate(audio.SampleRate),
	NumChannels: 2,
	Precision:   2,
}

// voiceStreamer streams a rendered voice as a beep.Streamer.
type voiceStreamer struct {
	samples []float32
	pos     int
}

func newVoiceStreamer(v audio.Voice) *voiceStreamer {
	return &voiceStreamer{samples: audio.Render(v, audio.SampleRate)}
}

func (s *voiceStreamer) Stream(buf [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy2(buf, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *voiceStreamer) Err() error { return nil }

func copy2(dst [][2]float64, src []float32) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i][0] = float64(src[i])
		dst[i][1] = float64(src[i])
	}
	return n
}
