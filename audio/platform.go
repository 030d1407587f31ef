package audio

import "errors"

var (
	// ErrPlaybackRejected is reported by a MusicHandle when the platform
	// refuses to start playback, typically because no user gesture has
	// happened yet.
	ErrPlaybackRejected = errors.New("audio: playback rejected")

	// ErrSynthesisUnsupported is returned by a ToneContextFactory when the
	// platform has no tone synthesis support.
	ErrSynthesisUnsupported = errors.New("audio: synthesis unsupported")

	// ErrUnknownCue is returned by ParseCueKey for keys outside the catalog range.
	ErrUnknownCue = errors.New("audio: unknown cue")
)

// MusicHandle is the single reusable music playback object. The Controller
// owns it exclusively.
//
// Play starts playback of the bound resource asynchronously. The outcome is
// delivered to done later and never from inside the Play call itself.
type MusicHandle interface {
	Bind(path string)
	Play(done func(err error))
	Pause()
	Rewind()
	SetVolume(v float64)
}

// GestureSource delivers user-originated pointer or touch interactions.
// Subscribe registers fn and returns a function removing it again.
type GestureSource interface {
	Subscribe(fn func()) (cancel func())
}

// ToneContext schedules transient synthesized voices. Play returns once the
// voice is started; the voice runs to its end on its own.
type ToneContext interface {
	Play(v Voice) error
}

// ToneContextFactory creates the synthesis context on first use.
type ToneContextFactory func() (ToneContext, error)
