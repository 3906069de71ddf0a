// Package audio plays a track through the speaker and reports its volume.
package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var (
	// ErrNoTrack is returned by Start before a track has been loaded.
	ErrNoTrack = errors.New("audio: no track loaded")
	// ErrUnsupportedFormat is returned for files that are not wav, mp3 or flac.
	ErrUnsupportedFormat = errors.New("audio: unsupported file type")
)

// Options tune the player.
type Options struct {
	Buffer      time.Duration // speaker buffer length
	TapSize     int           // frames kept for level measurement
	LevelWindow int           // frames per RMS reading
}

// Player is a looping single-track player. It satisfies anim.AudioSource.
type Player struct {
	opts   Options
	logger *slog.Logger

	// mu guards the track fields; speaker callbacks only touch playing.
	mu       sync.Mutex
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *tap
	initDone bool

	playing atomic.Bool
}

// NewPlayer returns a player with no track.
func NewPlayer(opts Options, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{opts: opts, logger: logger}
}

// Decode opens path and returns a seekable stream for its format.
func Decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return f, streamer, format, nil
}

// Load replaces the current track. Playback is stopped.
func (p *Player) Load(path string) error {
	f, streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.closeLocked(); err != nil {
		p.logger.Warn("closing previous track", "error", err)
	}
	p.file = f
	p.streamer = streamer
	p.format = format
	p.tap = nil
	p.logger.Info("track loaded",
		"path", path,
		"sample_rate", int(format.SampleRate),
		"duration", format.SampleRate.D(streamer.Len()).Round(time.Second),
	)
	return nil
}

// Loaded reports whether a track is ready to play.
func (p *Player) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.streamer != nil
}

// Start plays the track from the beginning, repeating it forever when loop is set.
func (p *Player) Start(loop bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNoTrack
	}
	if p.playing.Load() {
		return nil
	}
	if !p.initDone {
		bufferSize := p.format.SampleRate.N(p.opts.Buffer)
		if err := speaker.Init(p.format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("initialising speaker: %w", err)
		}
		p.initDone = true
	}

	speaker.Lock()
	err := p.streamer.Seek(0)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("rewinding track: %w", err)
	}

	var src beep.Streamer = p.streamer
	if loop {
		src = beep.Loop(-1, p.streamer)
	}
	p.tap = newTap(src, p.opts.TapSize)
	p.playing.Store(true)
	speaker.Play(beep.Seq(p.tap, beep.Callback(func() { p.playing.Store(false) })))
	return nil
}

// Stop silences the speaker. The track stays loaded.
func (p *Player) Stop() {
	if !p.playing.Swap(false) {
		return
	}
	speaker.Clear()

	p.mu.Lock()
	t := p.tap
	p.mu.Unlock()
	if t != nil {
		t.reset()
	}
}

// IsPlaying reports whether the track is being streamed.
func (p *Player) IsPlaying() bool {
	return p.playing.Load()
}

// Level is the RMS volume of the most recently streamed frames.
func (p *Player) Level() float64 {
	p.mu.Lock()
	t := p.tap
	p.mu.Unlock()
	if t == nil {
		return 0
	}
	return t.rms(p.opts.LevelWindow)
}

// Close stops playback and releases the track.
func (p *Player) Close() error {
	p.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *Player) closeLocked() error {
	var err error
	if p.streamer != nil {
		err = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		// Decoders usually close the file themselves.
		_ = p.file.Close()
		p.file = nil
	}
	return err
}
