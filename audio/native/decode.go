//go:build !js

package native

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep/v2"
	"github.com/hajimehoshi/go-mp3"
	"github.com/simukka/swarm-audio/audio"
)

// TrackSource is where catalog paths are resolved.
type TrackSource = fs.FS

// DecodeTrack reads name from tracks and returns interleaved 16-bit
// little endian stereo PCM at audio.SampleRate. The decoder is picked by
// file extension.
func DecodeTrack(tracks TrackSource, name string) ([]byte, error) {
	data, err := fs.ReadFile(tracks, strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("native: %w", err)
	}

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".mp3":
		return decodeMP3(data)
	case ".wav":
		return decodeWAV(data)
	default:
		return nil, fmt.Errorf("native: unsupported track format %q", ext)
	}
}

// go-mp3 always produces 16-bit stereo
func decodeMP3(data []byte) ([]byte, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return resample(pcm, dec.SampleRate())
}

func decodeWAV(data []byte) ([]byte, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if dec == nil || !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: not a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}
	if buf.Format == nil {
		buf.Format = &goaudio.Format{NumChannels: int(dec.NumChans), SampleRate: int(dec.SampleRate)}
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = int(dec.BitDepth)
	}
	return resample(stereo16(buf), buf.Format.SampleRate)
}

// stereo16 converts a decoded buffer to 16-bit stereo frames. Mono is
// duplicated to both channels; extra channels are dropped.
func stereo16(buf *goaudio.IntBuffer) []byte {
	chans := buf.Format.NumChannels
	if chans < 1 {
		return nil
	}
	frames := len(buf.Data) / chans
	out := make([]byte, 0, frames*4)
	for i := 0; i < frames; i++ {
		left := to16(buf.Data[i*chans], buf.SourceBitDepth)
		right := left
		if chans > 1 {
			right = to16(buf.Data[i*chans+1], buf.SourceBitDepth)
		}
		out = append(out, byte(left), byte(left>>8), byte(right), byte(right>>8))
	}
	return out
}

func to16(v, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		// 8-bit wav is unsigned
		return int16((v - 128) << 8)
	case bitDepth > 16:
		return int16(v >> (bitDepth - 16))
	default:
		return int16(v)
	}
}

// trackFormat is the PCM layout handed to the device.
var trackFormat = beep.Format{
	SampleRate:  beep.SampleRate(audio.SampleRate),
	NumChannels: 2,
	Precision:   2,
}

const resampleQuality = 4

// resample converts 16-bit stereo PCM recorded at rate to trackFormat.
func resample(pcm []byte, rate int) ([]byte, error) {
	if rate <= 0 || rate == audio.SampleRate {
		return pcm, nil
	}
	src := &pcmStreamer{pcm: pcm}
	rs := beep.Resample(resampleQuality, beep.SampleRate(rate), trackFormat.SampleRate, src)

	out := make([]byte, 0, int(int64(len(pcm))*int64(audio.SampleRate)/int64(rate))+4)
	frame := make([]byte, trackFormat.Width())
	samples := make([][2]float64, 1024)
	for {
		n, ok := rs.Stream(samples)
		for _, sample := range samples[:n] {
			trackFormat.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	return out, nil
}

// pcmStreamer streams 16-bit stereo PCM bytes as a beep.Streamer.
type pcmStreamer struct {
	pcm []byte
	pos int
}

func (s *pcmStreamer) Stream(samples [][2]float64) (int, bool) {
	width := trackFormat.Width()
	n := 0
	for n < len(samples) && s.pos+width <= len(s.pcm) {
		samples[n], _ = trackFormat.DecodeSigned(s.pcm[s.pos:])
		s.pos += width
		n++
	}
	return n, n > 0
}

func (s *pcmStreamer) Err() error { return nil }
