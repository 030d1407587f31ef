package audio

import "math"

// SampleRate is the default rendering rate.
const SampleRate = 44100

// Render synthesizes v as mono float32 samples in [-1,1].
func Render(v Voice, sampleRate int) []float32 {
	if sampleRate <= 0 || v.Duration <= 0 {
		return nil
	}
	length := int(v.Duration * float64(sampleRate))
	out := make([]float32, length)

	dt := 1 / float64(sampleRate)
	phase := 0.0
	for i := 0; i < length; i++ {
		t := float64(i) * dt

		sample := oscillate(v.Waveform, phase) * v.Gain.ValueAt(t)
		if m := v.Modulator; m != nil {
			sample *= 1 - m.Depth*0.5*(1-math.Sin(2*math.Pi*m.Rate*t))
		}
		out[i] = float32(clampSample(sample))

		// Advance phase
		phase += v.Frequency.ValueAt(t) * dt
		phase -= math.Floor(phase)
	}
	return out
}

// oscillate returns one period of w at phase in [0,1).
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		// Starts at zero and rises, like a Web Audio sawtooth
		if phase < 0.5 {
			return 2 * phase
		}
		return 2*phase - 2
	case WaveTriangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func clampSample(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

// Int16Samples converts float samples to signed 16-bit PCM.
func Int16Samples(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = int16(clampSample(float64(s)) * 32767)
	}
	return out
}

// PutStereo16 encodes mono samples as interleaved 16-bit little-endian
// stereo frames.
func PutStereo16(samples []float32) []byte {
	pcm := Int16Samples(samples)
	data := make([]byte, len(pcm)*4)
	for i, s := range pcm {
		offset := i * 4
		data[offset] = byte(s)
		data[offset+1] = byte(s >> 8)
		data[offset+2] = byte(s)
		data[offset+3] = byte(s >> 8)
	}
	return data
}
