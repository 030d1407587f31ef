package audio

import "math"

// RampKind is the kind of an automation event.
type RampKind int

const (
	SetValue RampKind = iota // jump to Value at Time
	LinearRamp               // ramp linearly from the previous event to Value at Time
	ExponentialRamp          // ramp exponentially from the previous event to Value at Time
)

// ParamEvent is one scheduled change of a parameter, in seconds from the
// start of a voice.
type ParamEvent struct {
	Kind  RampKind
	Time  float64
	Value float64
}

// Automation is a time-ordered list of parameter events, evaluated like a
// Web Audio AudioParam.
type Automation []ParamEvent

// Set appends a SetValue event.
func (a Automation) Set(v, t float64) Automation {
	return append(a, ParamEvent{Kind: SetValue, Time: t, Value: v})
}

// Linear appends a LinearRamp event.
func (a Automation) Linear(v, t float64) Automation {
	return append(a, ParamEvent{Kind: LinearRamp, Time: t, Value: v})
}

// Exponential appends an ExponentialRamp event.
func (a Automation) Exponential(v, t float64) Automation {
	return append(a, ParamEvent{Kind: ExponentialRamp, Time: t, Value: v})
}

// ValueAt returns the parameter value at time t.
func (a Automation) ValueAt(t float64) float64 {
	if len(a) == 0 {
		return 0
	}
	prevTime, prevValue := 0.0, a[0].Value
	if a[0].Kind != SetValue {
		prevValue = 0
	}

	for _, ev := range a {
		if t < ev.Time {
			switch ev.Kind {
			case LinearRamp:
				return linearAt(prevTime, prevValue, ev.Time, ev.Value, t)
			case ExponentialRamp:
				return exponentialAt(prevTime, prevValue, ev.Time, ev.Value, t)
			default:
				return prevValue
			}
		}
		prevTime, prevValue = ev.Time, ev.Value
	}
	return prevValue
}

// End returns the time of the last event.
func (a Automation) End() float64 {
	if len(a) == 0 {
		return 0
	}
	return a[len(a)-1].Time
}

// ReleaseBy returns a copy of a cut so that it ends with an exponential
// release reaching floor at end. The release starts release seconds
// before end, or halfway to end when end is shorter. Automations already
// over by end are returned unchanged.
func (a Automation) ReleaseBy(end, release, floor float64) Automation {
	if len(a) == 0 || a.End() <= end {
		return a
	}
	if release > end/2 {
		release = end / 2
	}
	at := end - release

	out := make(Automation, 0, len(a)+2)
	var cut *ParamEvent
	for i := range a {
		if a[i].Time > at {
			cut = &a[i]
			break
		}
		out = append(out, a[i])
	}

	// Land the ramp in progress at its current value
	if cut != nil && (len(out) == 0 || out[len(out)-1].Time < at) {
		v := a.ValueAt(at)
		kind := cut.Kind
		if kind == SetValue || (kind == ExponentialRamp && v <= 0) {
			kind = LinearRamp
		}
		out = append(out, ParamEvent{Kind: kind, Time: at, Value: v})
	}
	return out.Exponential(floor, end)
}

func linearAt(t0, v0, t1, v1, t float64) float64 {
	if t1 <= t0 {
		return v1
	}
	return v0 + (v1-v0)*(t-t0)/(t1-t0)
}

// exponentialAt holds v0 when the ramp cannot be exponential (zero or a
// sign change), as Web Audio does.
func exponentialAt(t0, v0, t1, v1, t float64) float64 {
	if t1 <= t0 {
		return v1
	}
	if v0 == 0 || v1 == 0 || (v0 < 0) != (v1 < 0) {
		return v0
	}
	return v0 * math.Pow(v1/v0, (t-t0)/(t1-t0))
}
