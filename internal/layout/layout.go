// Package layout places the wheels, bead arcs and background dots of a
// composition. Placement is greedy and single pass in row-major order: a
// rejected candidate is never revisited. All randomness comes from the rng
// passed in, so a layout is a function of the seed and the canvas size.
package layout

import (
	"math"
	"math/rand"
	"sort"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/scene"
)

const (
	wheelGridDivisions = 9
	wheelProbability   = 0.8
	wheelJitter        = 0.25
	wheelMinRadius     = 0.55
	wheelMaxRadius     = 1.05
	// WheelSpacing is the minimum center distance between two wheels as a
	// fraction of the sum of their radii.
	WheelSpacing = 0.85

	// ArcMinGap is the minimum center distance of two joined wheels as a
	// fraction of the sum of their radii.
	ArcMinGap = 0.95
	// ArcBlockRadius is the fraction of a third wheel's radius that an arc's
	// midpoint must stay out of.
	ArcBlockRadius = 0.9

	dotGridDivisions = 28
	dotSkip          = 0.6
	dotJitter        = 0.3
	dotMinRadius     = 0.06
	dotMaxRadius     = 0.12
	// DotClearance is the fraction of a wheel's radius kept free of dots.
	DotClearance = 0.9
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Wheels scatters wheels over a width x height canvas.
func Wheels(rng *rand.Rand, width, height float64) []*scene.Wheel {
	unit := math.Min(width, height) / wheelGridDivisions
	if unit <= 0 {
		return nil
	}
	cols := int(width/unit) + 1
	rows := int(height/unit) + 1

	var out []*scene.Wheel
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			if rng.Float64() >= wheelProbability {
				continue
			}
			c := geom.Vec{
				X: (float64(i)+0.5)*unit + uniform(rng, -unit*wheelJitter, unit*wheelJitter),
				Y: (float64(j)+0.5)*unit + uniform(rng, -unit*wheelJitter, unit*wheelJitter),
			}
			r := unit * uniform(rng, wheelMinRadius, wheelMaxRadius)
			if !fits(out, c, r) {
				continue
			}
			out = append(out, scene.NewWheel(rng, c.X, c.Y, r))
		}
	}
	return out
}

func fits(placed []*scene.Wheel, c geom.Vec, r float64) bool {
	for _, w := range placed {
		if !geom.Clear(c, r, w.Center, w.BaseRadius, WheelSpacing) {
			return false
		}
	}
	return true
}

type candidate struct {
	j int
	d float64
}

// BeadArcs joins each wheel to up to k of its nearest neighbours. A pair is only
// considered from the wheel that comes first in the slice. Candidates that are
// too close, farther than half the smaller canvas side, or whose midpoint lies
// inside a third wheel are skipped.
func BeadArcs(rng *rand.Rand, wheels []*scene.Wheel, k int, width, height float64) []*scene.BeadArc {
	maxDist := math.Min(width, height) / 2

	var arcs []*scene.BeadArc
	for i, w1 := range wheels {
		cands := make([]candidate, 0, len(wheels)-1)
		for j, w2 := range wheels {
			if i == j {
				continue
			}
			cands = append(cands, candidate{j: j, d: geom.Dist(w1.Center, w2.Center)})
		}
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].d < cands[b].d })

		added := 0
		for _, c := range cands {
			if added >= k {
				break
			}
			if c.j < i {
				continue
			}
			w2 := wheels[c.j]
			if c.d < (w1.BaseRadius+w2.BaseRadius)*ArcMinGap || c.d > maxDist {
				continue
			}

			arc := scene.NewBeadArc(rng, w1, w2)
			if blocked(wheels, arc.PointAt(0.5), i, c.j) {
				continue
			}
			arcs = append(arcs, arc)
			added++
		}
	}
	return arcs
}

func blocked(wheels []*scene.Wheel, p geom.Vec, i, j int) bool {
	for k, w := range wheels {
		if k == i || k == j {
			continue
		}
		if geom.Dist(p, w.Center) < w.BaseRadius*ArcBlockRadius {
			return true
		}
	}
	return false
}

// BackgroundDots scatters small dots on a fine grid, keeping them out of the
// wheels. Dots may overlap each other.
func BackgroundDots(rng *rand.Rand, wheels []*scene.Wheel, width, height float64) []scene.BackgroundDot {
	step := math.Min(width, height) / dotGridDivisions
	if step <= 0 {
		return nil
	}

	var dots []scene.BackgroundDot
	for y := step * 0.5; y < height; y += step {
		for x := step * 0.5; x < width; x += step {
			if rng.Float64() < dotSkip {
				continue
			}
			p := geom.Vec{
				X: x + uniform(rng, -step*dotJitter, step*dotJitter),
				Y: y + uniform(rng, -step*dotJitter, step*dotJitter),
			}
			if insideWheel(wheels, p) {
				continue
			}
			dots = append(dots, scene.BackgroundDot{
				Pos:    p,
				Radius: uniform(rng, step*dotMinRadius, step*dotMaxRadius),
				Color:  palette.PickBackground(rng),
			})
		}
	}
	return dots
}

func insideWheel(wheels []*scene.Wheel, p geom.Vec) bool {
	for _, w := range wheels {
		if geom.Dist(p, w.Center) < w.BaseRadius*DotClearance {
			return true
		}
	}
	return false
}
