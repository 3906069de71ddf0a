package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/anim"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/layout"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/render/raster"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/scene"
)

// Canvas is a scene.Renderer that can also be flooded with a colour.
type Canvas interface {
	scene.Renderer
	Clear(c palette.Color)
}

// DrawFrame paints comp with the animation parameters p: background, dots,
// bead arcs, then wheels.
func DrawFrame(c Canvas, comp *layout.Composition, p anim.Parameters) {
	c.Clear(palette.Canvas)
	if comp == nil {
		return
	}
	for _, d := range comp.BackgroundDots {
		d.Display(c, p.BackgroundScale)
	}
	for _, a := range comp.BeadArcs {
		a.Display(c, p.BeadScale)
	}
	for _, w := range comp.Wheels {
		w.Display(c, p.Rotation, p.BeadScale)
	}
}

// ExportName is the file name of a saved frame.
func ExportName(prefix string, seed uint32, at time.Time) string {
	return fmt.Sprintf("%s-%d-%s.png", prefix, seed, at.Format("20060102-150405"))
}

// WritePNG rasterises comp at its canvas size and writes it to path.
func WritePNG(path string, comp *layout.Composition, p anim.Parameters) error {
	c := raster.New(int(comp.Width), int(comp.Height))
	DrawFrame(c, comp, p)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
