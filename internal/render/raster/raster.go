// Package raster draws a composition into an in-memory image, for PNG export
// and the headless render command.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/render"
)

// Canvas is a scene.Renderer backed by an *image.RGBA.
type Canvas struct {
	*render.Stack

	img  *image.RGBA
	z    *vector.Rasterizer
	fill palette.Color
}

// New returns a width x height canvas.
func New(width, height int) *Canvas {
	return &Canvas{
		Stack: render.NewStack(),
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
	}
}

// Image returns the pixels drawn so far.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear floods the canvas with col.
func (c *Canvas) Clear(col palette.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) Fill(col palette.Color) { c.fill = col }

func (c *Canvas) Disc(center geom.Vec, diameter float64) {
	if diameter <= 0 {
		return
	}
	c.polygon(render.Circle(center, diameter/2), c.fill)
}

func (c *Canvas) Wedge(vertices []geom.Vec, col palette.Color) {
	c.polygon(append([]geom.Vec(nil), vertices...), col)
}

func (c *Canvas) ArcBand(center geom.Vec, diameter, a0, a1 float64, col palette.Color) {
	if diameter <= 0 {
		return
	}
	c.polygon(render.PieSlice(center, diameter/2, a0, a1), col)
}

// polygon fills pts, given in local coordinates, which it may overwrite. The
// rasterizer only covers the polygon's bounding box.
func (c *Canvas) polygon(pts []geom.Vec, col palette.Color) {
	if len(pts) < 3 {
		return
	}
	pts = c.ApplyAll(pts)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if math.IsNaN(minX+minY+maxX+maxY) || math.IsInf(minX+minY+maxX+maxY, 0) {
		return
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{})
}

// EncodePNG writes the canvas as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
