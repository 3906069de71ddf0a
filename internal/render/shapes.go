package render

import (
	"math"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
)

// maxSegmentAngle bounds the angle one polygon edge of a curved outline spans.
const maxSegmentAngle = math.Pi / 48

// PieSlice returns the outline of the slice of a circle of radius r around c
// between angles a0 and a1, starting at the center.
func PieSlice(c geom.Vec, r, a0, a1 float64) []geom.Vec {
	steps := max(1, int(math.Ceil(math.Abs(a1-a0)/maxSegmentAngle)))
	pts := make([]geom.Vec, 0, steps+2)
	pts = append(pts, c)
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		p := geom.Polar(a, r)
		pts = append(pts, geom.Vec{X: c.X + p.X, Y: c.Y + p.Y})
	}
	return pts
}

// Circle returns a polygon approximating a circle, with more vertices for
// larger radii.
func Circle(c geom.Vec, r float64) []geom.Vec {
	n := int(math.Max(12, math.Min(96, r*0.75)))
	pts := make([]geom.Vec, n)
	for i := range pts {
		p := geom.Polar(2*math.Pi*float64(i)/float64(n), r)
		pts[i] = geom.Vec{X: c.X + p.X, Y: c.Y + p.Y}
	}
	return pts
}
