//go:build !js

package native

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/decred/slog"
)

// streamPlayer is the part of *oto.Player the music handle drives.
type streamPlayer interface {
	Play()
	Pause()
	SetVolume(v float64)
	Seek(offset int64, whence int) (int64, error)
	Close() error
}

func newDevicePlayer(r io.ReadSeeker) (streamPlayer, error) {
	ctx, err := Device()
	if err != nil {
		return nil, err
	}
	return ctx.NewPlayer(r), nil
}

var errStartSuperseded = errors.New("native: start superseded")

// MusicPlayer is the desktop music handle. A bound track is decoded on
// its first Play and then loops until it is rebound.
type MusicPlayer struct {
	mu     sync.Mutex
	tracks TrackSource
	log    slog.Logger

	decode    func(TrackSource, string) ([]byte, error)
	newPlayer func(io.ReadSeeker) (streamPlayer, error)

	path   string
	volume float64
	player streamPlayer

	// intent is bumped by every Pause, Rewind and Bind; a start only
	// sounds if no such call happened since its Play.
	intent uint64
}

func NewMusicPlayer(tracks TrackSource, log slog.Logger) *MusicPlayer {
	if log == nil {
		log = slog.Disabled
	}
	return &MusicPlayer{
		tracks:    tracks,
		log:       log,
		decode:    DecodeTrack,
		newPlayer: newDevicePlayer,
		volume:    1,
	}
}

// Bind selects path and releases the previously bound track.
func (m *MusicPlayer) Bind(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intent++
	m.closePlayer()
	m.path = path
}

// Play starts the bound track in the background and reports to done.
func (m *MusicPlayer) Play(done func(error)) {
	m.mu.Lock()
	intent := m.intent
	m.mu.Unlock()

	go func() {
		done(m.start(intent))
	}()
}

func (m *MusicPlayer) start(intent uint64) error {
	m.mu.Lock()
	path, player := m.path, m.player
	m.mu.Unlock()

	if path == "" {
		return fmt.Errorf("native: no track bound")
	}
	if player == nil {
		pcm, err := m.decode(m.tracks, path)
		if err != nil {
			return err
		}
		m.log.Debugf("Decoded %s: %d bytes", path, len(pcm))

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.path != path {
			return fmt.Errorf("%w: %s was replaced while loading", errStartSuperseded, path)
		}
		if m.player == nil {
			p, err := m.newPlayer(&loopReader{r: bytes.NewReader(pcm)})
			if err != nil {
				return err
			}
			m.player = p
		}
		player = m.player
	} else {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.player != player {
			return fmt.Errorf("%w: %s was replaced while starting", errStartSuperseded, path)
		}
	}

	// A Pause or Rewind since Play means the caller no longer wants sound
	if m.intent != intent {
		return fmt.Errorf("%w: %s was paused while starting", errStartSuperseded, path)
	}
	player.SetVolume(m.volume)
	player.Play()
	return nil
}

func (m *MusicPlayer) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intent++
	if m.player != nil {
		m.player.Pause()
	}
}

func (m *MusicPlayer) Rewind() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intent++
	if m.player == nil {
		return
	}
	if _, err := m.player.Seek(0, io.SeekStart); err != nil {
		m.log.Warnf("Rewind of %s failed: %v", m.path, err)
	}
}

func (m *MusicPlayer) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = v
	if m.player != nil {
		m.player.SetVolume(v)
	}
}

func (m *MusicPlayer) closePlayer() {
	if m.player == nil {
		return
	}
	m.player.Pause()
	if err := m.player.Close(); err != nil {
		m.log.Warnf("Closing player for %s: %v", m.path, err)
	}
	m.player = nil
}

// loopReader restarts r at its end so the stream never runs out.
type loopReader struct {
	r io.ReadSeeker
}

func (l *loopReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if err != io.EOF {
		return n, err
	}
	if _, err := l.r.Seek(0, io.SeekStart); err != nil {
		return n, err
	}
	if n > 0 {
		return n, nil
	}
	return l.r.Read(p)
}

func (l *loopReader) Seek(offset int64, whence int) (int64, error) {
	return l.r.Seek(offset, whence)
}
