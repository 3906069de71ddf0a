package game

import (
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/anim"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/config"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/layout"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
)

type fakePlayer struct {
	loaded  string
	playing bool
	level   float64
	loadErr error
}

func (f *fakePlayer) IsPlaying() bool { return f.playing }
func (f *fakePlayer) Level() float64  { return f.level }
func (f *fakePlayer) Start(bool) error {
	f.playing = true
	return nil
}
func (f *fakePlayer) Stop()        { f.playing = false }
func (f *fakePlayer) Loaded() bool { return f.loaded != "" }
func (f *fakePlayer) Load(path string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = path
	return nil
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 320, 240
	cfg.Export.Dir = t.TempDir()
	return cfg
}

func newTestGame(t *testing.T, p *fakePlayer) *Game {
	t.Helper()
	g := New(testConfig(t), p, 42, slog.New(slog.NewTextHandler(io.Discard, nil)))
	g.pick = func() (string, error) { return "song.wav", nil }
	g.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	return g
}

func TestNewGeneratesWithSeed(t *testing.T) {
	g := newTestGame(t, &fakePlayer{})
	comp := g.state.Current()
	if comp == nil || comp.Seed != 42 {
		t.Fatalf("expected a composition for seed 42, got %+v", comp)
	}
	want := layout.Generate(42, 320, 240, layout.DefaultNeighbors)
	if !reflect.DeepEqual(comp, want) {
		t.Error("game composition should match layout.Generate for the same seed and size")
	}
}

func TestTogglePlayLoadsTrack(t *testing.T) {
	p := &fakePlayer{}
	g := newTestGame(t, p)

	g.togglePlay()
	if p.loaded != "song.wav" || g.ctrl.State() != anim.Playing {
		t.Fatalf("expected the picked track to play, loaded=%q state=%v", p.loaded, g.ctrl.State())
	}

	g.togglePlay()
	if g.ctrl.State() != anim.Idle || p.playing {
		t.Fatal("second toggle should stop playback")
	}
	if g.ctrl.Params() != anim.Rest() {
		t.Errorf("expected rest parameters after stop, got %+v", g.ctrl.Params())
	}
}

func TestTogglePlayCancelledAndFailures(t *testing.T) {
	p := &fakePlayer{}
	g := newTestGame(t, p)

	g.pick = func() (string, error) { return "", nil }
	g.togglePlay()
	if g.ctrl.State() != anim.Idle || g.lastErr != nil {
		t.Fatal("cancelling the dialog is not an error and keeps the game idle")
	}

	g.pick = func() (string, error) { return "", errors.New("no display") }
	g.togglePlay()
	if g.lastErr == nil || !strings.Contains(g.lastErr.Error(), "selecting track") {
		t.Errorf("expected a selection error, got %v", g.lastErr)
	}

	g.pick = func() (string, error) { return "x.ogg", nil }
	p.loadErr = errors.New("unsupported")
	g.togglePlay()
	if !errors.Is(g.lastErr, p.loadErr) {
		t.Errorf("expected the load error, got %v", g.lastErr)
	}
	if !strings.Contains(g.status(), "Error:") {
		t.Errorf("status should show the error: %q", g.status())
	}
}

func TestRegenerate(t *testing.T) {
	g := newTestGame(t, &fakePlayer{})
	first := g.state.Current()

	g.regenerate(true)
	same := g.state.Current()
	if same == first || !reflect.DeepEqual(same, first) {
		t.Fatal("regenerating with the same seed should rebuild an identical composition")
	}
	if !g.ctrl.Tick() {
		t.Error("regeneration should schedule a frame")
	}

	g.state.SetSeed(7)
	g.regenerate(true)
	if g.state.Current().Seed != 7 {
		t.Errorf("expected seed 7, got %d", g.state.Current().Seed)
	}
}

func TestLayoutResizeRegenerates(t *testing.T) {
	g := newTestGame(t, &fakePlayer{})
	if w, h := g.Layout(320, 240); w != 320 || h != 240 || g.resized {
		t.Fatalf("unchanged size should not flag a resize, got %dx%d resized=%v", w, h, g.resized)
	}
	if w, h := g.Layout(500, 400); w != 500 || h != 400 || !g.resized {
		t.Fatalf("expected a resize to 500x400, got %dx%d resized=%v", w, h, g.resized)
	}

	g.resized = false
	g.regenerate(true)
	comp := g.state.Current()
	if comp.Width != 500 || comp.Height != 400 || comp.Seed != 42 {
		t.Errorf("expected a 500x400 composition with seed 42, got %gx%g seed %d", comp.Width, comp.Height, comp.Seed)
	}
}

func TestExportFrame(t *testing.T) {
	g := newTestGame(t, &fakePlayer{})
	g.exportFrame()
	if g.lastErr != nil {
		t.Fatalf("export failed: %v", g.lastErr)
	}

	path := filepath.Join(g.cfg.Export.Dir, "wheels_of_fortune_audio-42-20240506-070809.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected exported file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 320, 240) {
		t.Errorf("unexpected export size %v", img.Bounds())
	}
}

func TestExportName(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := ExportName("wheels", 99, at); got != "wheels-99-20250102-030405.png" {
		t.Errorf("unexpected name %q", got)
	}
}

// countingCanvas records how many primitives a frame uses.
type countingCanvas struct {
	clears int
	discs  int
	other  int
	bg     palette.Color
}

func (c *countingCanvas) Clear(col palette.Color)              { c.clears++; c.bg = col }
func (c *countingCanvas) Fill(palette.Color)                    {}
func (c *countingCanvas) Disc(geom.Vec, float64)                { c.discs++ }
func (c *countingCanvas) Wedge([]geom.Vec, palette.Color)       { c.other++ }
func (c *countingCanvas) ArcBand(geom.Vec, float64, float64, float64, palette.Color) {
	c.other++
}
func (c *countingCanvas) Push()                    {}
func (c *countingCanvas) Pop()                     {}
func (c *countingCanvas) Translate(float64, float64) {}
func (c *countingCanvas) Rotate(float64)           {}

func TestDrawFrame(t *testing.T) {
	c := &countingCanvas{}
	DrawFrame(c, nil, anim.Rest())
	if c.clears != 1 || c.discs != 0 || c.bg != palette.Canvas {
		t.Fatalf("an empty frame is just the background, got %+v", c)
	}

	comp := layout.Generate(3, 400, 300, layout.DefaultNeighbors)
	c = &countingCanvas{}
	DrawFrame(c, comp, anim.Rest())
	if c.discs < len(comp.BackgroundDots)+len(comp.Wheels) {
		t.Errorf("expected at least one disc per dot and wheel, got %d", c.discs)
	}
}

func TestButtonRect(t *testing.T) {
	r := buttonRect(800, 600)
	if r.Dx() != config.ButtonWidth || r.Dy() != config.ButtonHeight {
		t.Errorf("unexpected button size %v", r)
	}
	if r.Min.X != (800-config.ButtonWidth)/2 || r.Max.Y != 600-config.ButtonMargin {
		t.Errorf("button should be centred at the bottom, got %v", r)
	}
}
