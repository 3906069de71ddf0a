// Package geom holds the small amount of plane geometry the composition needs:
// range mapping, distances and quadratic Bézier evaluation.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or direction in canvas coordinates.
type Vec = r2.Vec

// Map linearly re-maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Constrain clamps v to [lo, hi].
func Constrain(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Dist returns the euclidean distance between p and q.
func Dist(p, q Vec) float64 {
	return r2.Norm(r2.Sub(p, q))
}

// Clear reports whether two circles keep their centers at least factor times the
// sum of their radii apart.
func Clear(p Vec, pr float64, q Vec, qr float64, factor float64) bool {
	return Dist(p, q) >= (pr+qr)*factor
}

// Quad evaluates the quadratic Bézier through start, control and end at t:
// (1-t)^2 start + 2(1-t)t control + t^2 end.
func Quad(start, control, end Vec, t float64) Vec {
	mt := 1 - t
	return Vec{
		X: mt*mt*start.X + 2*mt*t*control.X + t*t*end.X,
		Y: mt*mt*start.Y + 2*mt*t*control.Y + t*t*end.Y,
	}
}

// Polar returns the point at angle a (radians) and distance r from the origin.
func Polar(a, r float64) Vec {
	return Vec{X: math.Cos(a) * r, Y: math.Sin(a) * r}
}
