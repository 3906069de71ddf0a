// Package game hosts the composition in an ebiten window: it turns frame ticks,
// resizes and input into regeneration, playback and export.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/anim"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/config"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/layout"
)

// TrackPlayer is the audio engine: an anim.AudioSource that can load a file.
type TrackPlayer interface {
	anim.AudioSource
	Loaded() bool
	Load(path string) error
}

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger

	state  *layout.State
	ctrl   *anim.Controller
	player TrackPlayer
	screen *screenRenderer

	width, height int
	resized       bool
	dirty         bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
	now     func() time.Time
	pick    func() (string, error)
}

// New builds a game showing the composition for seed. The first composition is
// generated at the configured window size.
func New(cfg *config.Config, player TrackPlayer, seed uint32, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		state:   layout.NewState(cfg.Layout.NeighborsPerWheel, logger),
		ctrl:    anim.NewController(player, anim.MapperFromConfig(cfg), logger),
		player:  player,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		prevKey: map[ebiten.Key]bool{},
		now:     time.Now,
		pick:    selectTrack,
	}
	g.state.SetSeed(seed)
	g.regenerate(true)
	return g
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	if g.cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// Idle frames are only repainted on request; the last one stays on screen.
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(g)
	g.ctrl.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.resized {
		g.resized = false
		g.regenerate(true)
	}

	mouseX, mouseY := ebiten.CursorPosition()
	hovered := image.Pt(mouseX, mouseY).In(buttonRect(g.width, g.height))
	if hovered != g.buttonHovered {
		g.buttonHovered = hovered
		g.ctrl.RequestRedraw()
	}
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.togglePlay()
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.togglePlay()
	}
	if justPressed(ebiten.KeyR) {
		g.regenerate(ebiten.IsKeyPressed(ebiten.KeyShift))
	}
	if justPressed(ebiten.KeyS) {
		g.exportFrame()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.ctrl.Tick() {
		g.dirty = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false

	if g.screen == nil {
		g.screen = newScreenRenderer()
	}
	g.screen.begin(screen)
	DrawFrame(g.screen, g.state.Current(), g.ctrl.Params())

	g.drawButton(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}

func (g *Game) status() string {
	p := g.ctrl.Params()
	status := fmt.Sprintf("seed %d | %s", g.state.Seed(), g.ctrl.State())
	if g.ctrl.State() == anim.Playing {
		status += fmt.Sprintf(" | level %.3f", clamp01(p.Level))
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) drawButton(screen *ebiten.Image) {
	r := buttonRect(g.width, g.height)

	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Play/Pause"
	textWidth := len(text) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, text, r.Min.X+(r.Dx()-textWidth)/2, r.Min.Y+(r.Dy()-16)/2)
}

// togglePlay starts or stops the music. With no track loaded the user is asked
// to pick one first.
func (g *Game) togglePlay() {
	if g.ctrl.State() == anim.Idle && !g.player.Loaded() {
		path, err := g.pick()
		if err != nil {
			g.fail("selecting track", err)
			return
		}
		if path == "" {
			return
		}
		if err := g.player.Load(path); err != nil {
			g.fail("loading track", err)
			return
		}
	}
	if err := g.ctrl.Toggle(); err != nil {
		g.fail("toggling playback", err)
		return
	}
	g.lastErr = nil
}

// regenerate rebuilds the composition at the current canvas size.
func (g *Game) regenerate(keepSeed bool) {
	g.state.Regenerate(keepSeed, float64(g.width), float64(g.height))
	g.ctrl.RequestRedraw()
}

// exportFrame saves the current frame as a PNG in the export directory.
func (g *Game) exportFrame() {
	comp := g.state.Current()
	if comp == nil {
		return
	}
	path := filepath.Join(g.cfg.Export.Dir, ExportName(g.cfg.Export.Prefix, comp.Seed, g.now()))
	if err := WritePNG(path, comp, g.ctrl.Params()); err != nil {
		g.fail("exporting frame", err)
		return
	}
	g.logger.Info("frame exported", "path", path)
}

func (g *Game) fail(what string, err error) {
	g.lastErr = fmt.Errorf("%s: %w", what, err)
	g.logger.Error(what, "error", err)
	g.ctrl.RequestRedraw()
}

// selectTrack asks for an audio file. Cancelling returns an empty path.
func selectTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
