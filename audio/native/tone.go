//go:build !js

package native

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/simukka/swarm-audio/audio"
)

// ToneContext renders voices to PCM and plays each on its own oto player.
type ToneContext struct {
	ctx *oto.Context
}

// NewToneContext opens the audio device for synthesis.
func NewToneContext() (audio.ToneContext, error) {
	ctx, err := Device()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrSynthesisUnsupported, err)
	}
	return &ToneContext{ctx: ctx}, nil
}

// Play starts v and returns. The player is closed once the voice ends.
func (t *ToneContext) Play(v audio.Voice) error {
	pcm := audio.PutStereo16(audio.Render(v, audio.SampleRate))
	if len(pcm) == 0 {
		return nil
	}
	player := t.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
	return nil
}
