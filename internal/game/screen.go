package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/render"
)

// screenRenderer draws scene primitives onto an ebiten image.
type screenRenderer struct {
	*render.Stack

	dst   *ebiten.Image
	white *ebiten.Image
	fill  palette.Color

	vs []ebiten.Vertex
	is []uint16
}

func newScreenRenderer() *screenRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &screenRenderer{
		Stack: render.NewStack(),
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// begin targets dst with a fresh transform.
func (s *screenRenderer) begin(dst *ebiten.Image) {
	s.dst = dst
	s.Reset()
}

func (s *screenRenderer) Clear(c palette.Color) {
	s.dst.Fill(c.NRGBA())
}

func (s *screenRenderer) Fill(c palette.Color) { s.fill = c }

func (s *screenRenderer) Disc(center geom.Vec, diameter float64) {
	if diameter <= 0 {
		return
	}
	p := s.Apply(center)
	vector.DrawFilledCircle(s.dst, float32(p.X), float32(p.Y), float32(diameter/2), s.fill.NRGBA(), true)
}

func (s *screenRenderer) Wedge(vertices []geom.Vec, c palette.Color) {
	s.polygon(append([]geom.Vec(nil), vertices...), c)
}

func (s *screenRenderer) ArcBand(center geom.Vec, diameter, a0, a1 float64, c palette.Color) {
	if diameter <= 0 {
		return
	}
	s.polygon(render.PieSlice(center, diameter/2, a0, a1), c)
}

func (s *screenRenderer) polygon(pts []geom.Vec, c palette.Color) {
	if len(pts) < 3 {
		return
	}
	pts = s.ApplyAll(pts)

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	col := c.NRGBA()
	r, g, b := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = 1
	}
	s.dst.DrawTriangles(s.vs, s.is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
