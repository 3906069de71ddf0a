package scene

import (
	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
)

// BackgroundDot is a small disc scattered between the wheels.
type BackgroundDot struct {
	Pos    geom.Vec
	Radius float64
	Color  palette.Color
}

// Display draws the dot with its diameter scaled by scale.
func (d BackgroundDot) Display(r Renderer, scale float64) {
	r.Fill(d.Color)
	r.Disc(d.Pos, d.Radius*2*scale)
}
