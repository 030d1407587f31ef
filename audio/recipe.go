package audio

import "math"

// Waveform is the oscillator shape of a voice.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// String returns the Web Audio OscillatorType name.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "sine"
	}
}

// EffectKind names a sound effect. Unknown kinds play a short beep.
type EffectKind string

const (
	EffectPowerUp    EffectKind = "powerup"
	EffectSparkles   EffectKind = "sparkles"
	EffectCollision  EffectKind = "collision"
	EffectCrunch     EffectKind = "crunch"
	EffectBossAttack EffectKind = "boss_attack"
	EffectBuzz       EffectKind = "buzz"
	EffectExplosion  EffectKind = "explosion"
	EffectLevelStart EffectKind = "level_start"
	EffectVictory    EffectKind = "victory"
)

// EffectKinds lists one name per distinct recipe.
var EffectKinds = []EffectKind{
	EffectPowerUp,
	EffectCollision,
	EffectBossAttack,
	EffectExplosion,
	EffectLevelStart,
	EffectVictory,
}

// EffectOptions overrides parts of an effect. Zero fields are not applied.
type EffectOptions struct {
	Volume   float64 // requested volume before master, 0.0 - 1.0
	Duration float64 // stop time in seconds
}

// Modulator is a low-frequency oscillator scaling the voice amplitude
// between 1-Depth and 1.
type Modulator struct {
	Rate  float64 // Hz
	Depth float64 // 0.0 - 1.0
}

// Voice is a fully resolved generator and envelope, ready to be played.
type Voice struct {
	Kind      EffectKind
	Waveform  Waveform
	Frequency Automation // Hz
	Gain      Automation // linear amplitude
	Modulator *Modulator
	Duration  float64 // seconds until the generator stops
}

// releaseFloor is the target of every exponential release.
const releaseFloor = 0.0001

// Recipe builds the voice of one effect kind for a peak amplitude.
type Recipe struct {
	Name     string
	Duration float64
	Build    func(peak float64) Voice
}

// Recipes maps effect kinds, aliases included, to their recipe.
var Recipes = map[EffectKind]*Recipe{
	EffectPowerUp:    sparkleRecipe,
	EffectSparkles:   sparkleRecipe,
	EffectCollision:  crunchRecipe,
	EffectCrunch:     crunchRecipe,
	EffectBossAttack: buzzRecipe,
	EffectBuzz:       buzzRecipe,
	EffectExplosion:  explosionRecipe,
	EffectLevelStart: fanfareRecipe,
	EffectVictory:    victoryRecipe,
}

// RecipeFor returns the recipe of kind, or the beep recipe.
func RecipeFor(kind EffectKind) *Recipe {
	if r, ok := Recipes[kind]; ok {
		return r
	}
	return beepRecipe
}

// Ascending shimmer, like collecting stars
var sparkleRecipe = &Recipe{
	Name:     "sparkle",
	Duration: 0.4,
	Build: func(p float64) Voice {
		return Voice{
			Waveform:  WaveSine,
			Frequency: Automation{}.Set(800, 0).Exponential(1600, 0.3),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p, 0.05).
				Linear(p*0.7, 0.15).
				Linear(p, 0.25).
				Exponential(releaseFloor, 0.4),
		}
	},
}

// Harsh descending thud
var crunchRecipe = &Recipe{
	Name:     "crunch",
	Duration: 0.25,
	Build: func(p float64) Voice {
		return Voice{
			Waveform:  WaveSawtooth,
			Frequency: Automation{}.Set(200, 0).Exponential(50, 0.2),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p, 0.01).
				Exponential(releaseFloor, 0.25),
		}
	},
}

// Menacing insect-wing tremolo
var buzzRecipe = &Recipe{
	Name:     "buzz",
	Duration: 0.6,
	Build: func(p float64) Voice {
		return Voice{
			Waveform:  WaveSawtooth,
			Frequency: Automation{}.Set(120, 0),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p*0.8, 0.01).
				Exponential(releaseFloor, 0.6),
			Modulator: &Modulator{Rate: 15, Depth: 0.5},
		}
	},
}

// Sharp burst with a two-stage pitch drop
var explosionRecipe = &Recipe{
	Name:     "explosion",
	Duration: 0.4,
	Build: func(p float64) Voice {
		return Voice{
			Waveform: WaveSawtooth,
			Frequency: Automation{}.
				Set(300, 0).
				Exponential(60, 0.1).
				Exponential(30, 0.3),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p, 0.005).
				Exponential(p*0.3, 0.1).
				Exponential(releaseFloor, 0.4),
		}
	},
}

// A, C, E
var fanfareRecipe = &Recipe{
	Name:     "fanfare",
	Duration: 0.6,
	Build: func(p float64) Voice {
		return Voice{
			Waveform: WaveTriangle,
			Frequency: Automation{}.
				Set(440, 0).
				Set(523, 0.15).
				Set(659, 0.3),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p*0.7, 0.05).
				Set(p*0.7, 0.45).
				Exponential(releaseFloor, 0.6),
		}
	},
}

// C, E, G, C
var victoryRecipe = &Recipe{
	Name:     "victory",
	Duration: 0.8,
	Build: func(p float64) Voice {
		return Voice{
			Waveform: WaveSine,
			Frequency: Automation{}.
				Set(523, 0).
				Set(659, 0.1).
				Set(784, 0.2).
				Set(1047, 0.3),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p*0.8, 0.05).
				Set(p*0.8, 0.35).
				Exponential(releaseFloor, 0.8),
		}
	},
}

var beepRecipe = &Recipe{
	Name:     "beep",
	Duration: 0.3,
	Build: func(p float64) Voice {
		return Voice{
			Waveform:  WaveSine,
			Frequency: Automation{}.Set(440, 0),
			Gain: Automation{}.
				Set(0, 0).
				Linear(p, 0.01).
				Exponential(releaseFloor, 0.3),
		}
	},
}

// MaxEffectDuration caps a duration override, in seconds.
const MaxEffectDuration = 5.0

// Release of an effect shortened below its recipe
const cutRelease = 0.05

// NewVoice resolves kind into a voice with the given peak amplitude.
// A positive duration, capped at MaxEffectDuration, replaces the recipe's
// stop time. A shorter stop gets its own release so the voice ends silent.
func NewVoice(kind EffectKind, peak, duration float64) Voice {
	r := RecipeFor(kind)
	v := r.Build(peak)
	v.Kind = kind
	v.Duration = r.Duration
	if duration > 0 {
		v.Duration = math.Min(duration, MaxEffectDuration)
		v.Gain = v.Gain.ReleaseBy(v.Duration, cutRelease, releaseFloor)
	}
	return v
}
