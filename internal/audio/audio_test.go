package audio

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// constant streams n frames of the given value on both channels.
func constant(value float64, n int) beep.Streamer {
	left := n
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		k := min(len(samples), left)
		for i := 0; i < k; i++ {
			samples[i] = [2]float64{value, value}
		}
		left -= k
		return k, true
	})
}

func drain(s beep.Streamer, chunk int) int {
	buf := make([][2]float64, chunk)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTapRMS(t *testing.T) {
	tp := newTap(constant(0.5, 300), 128)
	if got := tp.rms(64); got != 0 {
		t.Fatalf("expected 0 before streaming, got %g", got)
	}
	if n := drain(tp, 50); n != 300 {
		t.Fatalf("expected 300 frames, got %d", n)
	}
	if got := tp.rms(64); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected rms 0.5, got %g", got)
	}
	// Window larger than the ring is capped.
	if got := tp.rms(10000); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected rms 0.5 over the whole ring, got %g", got)
	}
}

func TestTapRMSRecentFrames(t *testing.T) {
	tp := newTap(beep.Seq(constant(1, 100), constant(0, 40)), 256)
	drain(tp, 32)
	if got := tp.rms(40); got != 0 {
		t.Errorf("last 40 frames are silent, got %g", got)
	}
	// 60 loud frames out of 100: sqrt(0.6)
	if got := tp.rms(100); math.Abs(got-math.Sqrt(0.6)) > 1e-12 {
		t.Errorf("expected %g, got %g", math.Sqrt(0.6), got)
	}
}

func TestTapMonoMix(t *testing.T) {
	opposite := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.8, -0.8}
		}
		return len(samples), true
	})
	tp := newTap(opposite, 16)
	buf := make([][2]float64, 16)
	tp.Stream(buf)
	if got := tp.rms(16); got != 0 {
		t.Errorf("opposite channels cancel in the mono mix, got %g", got)
	}
}

func TestTapReset(t *testing.T) {
	tp := newTap(constant(0.3, 64), 64)
	drain(tp, 64)
	tp.reset()
	if got := tp.rms(64); got != 0 {
		t.Errorf("expected 0 after reset, got %g", got)
	}
}

func TestTapErr(t *testing.T) {
	tp := newTap(beep.Silence(10), 8)
	if err := tp.Err(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeWav(t *testing.T, frames int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, constant(0.25, frames), format); err != nil {
		t.Fatalf("encoding wav: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeWav(t *testing.T) {
	path := writeWav(t, 4410)
	f, s, format, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer f.Close()
	defer s.Close()

	if format.SampleRate != 44100 {
		t.Errorf("expected 44100 Hz, got %d", format.SampleRate)
	}
	if s.Len() != 4410 {
		t.Errorf("expected 4410 frames, got %d", s.Len())
	}
	if d := format.SampleRate.D(s.Len()); d != 100*time.Millisecond {
		t.Errorf("expected 100ms, got %v", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, _, err := Decode(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("expected error for a missing file")
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Decode(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	broken := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(broken, []byte("not a riff header"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Decode(broken); err == nil {
		t.Error("expected decode error for a corrupt wav")
	}
}

func TestPlayerWithoutTrack(t *testing.T) {
	p := NewPlayer(Options{Buffer: 50 * time.Millisecond, TapSize: 1024, LevelWindow: 256}, quietLogger())
	if p.Loaded() || p.IsPlaying() {
		t.Fatal("new player should be empty and silent")
	}
	if err := p.Start(true); !errors.Is(err, ErrNoTrack) {
		t.Errorf("expected ErrNoTrack, got %v", err)
	}
	if got := p.Level(); got != 0 {
		t.Errorf("expected level 0, got %g", got)
	}
	p.Stop()
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestPlayerLoad(t *testing.T) {
	p := NewPlayer(Options{Buffer: 50 * time.Millisecond, TapSize: 1024, LevelWindow: 256}, quietLogger())
	if err := p.Load(writeWav(t, 2205)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.Loaded() {
		t.Fatal("expected a loaded track")
	}
	if p.IsPlaying() {
		t.Error("loading must not start playback")
	}
	if err := p.Load("missing.mp3"); err == nil {
		t.Error("expected error loading a missing file")
	}
	if !p.Loaded() {
		t.Error("a failed load keeps the previous track")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if p.Loaded() {
		t.Error("Close should release the track")
	}
}
