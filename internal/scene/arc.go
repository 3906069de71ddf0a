package scene

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
)

// MinArcBeads is the fewest beads an arc is strung with.
const MinArcBeads = 4

// BeadArc is a string of beads along a quadratic Bézier between the rims of two
// wheels. It keeps no reference to the wheels it joins.
type BeadArc struct {
	Start    geom.Vec
	End      geom.Vec
	Control  geom.Vec
	Color    palette.Color
	Count    int // beads are drawn at t = i/Count for i = 0..Count
	BeadSize float64
}

// NewBeadArc strings an arc from wheel a to wheel b. The bend is drawn once from
// rng: chord length times 0.25 +- 0.08 along the chord's left normal.
func NewBeadArc(rng *rand.Rand, a, b *Wheel) *BeadArc {
	var dir geom.Vec
	if d := r2.Sub(b.Center, a.Center); r2.Norm(d) > 0 {
		dir = r2.Unit(d)
	}

	start := r2.Add(a.Center, r2.Scale(a.BaseRadius*0.95, dir))
	end := r2.Sub(b.Center, r2.Scale(b.BaseRadius*0.95, dir))

	chord := r2.Sub(end, start)
	chordLen := r2.Norm(chord)
	mid := r2.Add(start, r2.Scale(0.5, chord))

	var normal geom.Vec
	if chordLen > 0 {
		normal = r2.Unit(geom.Vec{X: -chord.Y, Y: chord.X})
	}
	curvature := chordLen * (0.25 + (rng.Float64()*0.16 - 0.08))

	beadSize := math.Min(a.BaseRadius, b.BaseRadius) * 0.06
	spacing := beadSize * 1.4
	approxLen := chordLen * 1.1

	return &BeadArc{
		Start:    start,
		End:      end,
		Control:  r2.Add(mid, r2.Scale(curvature, normal)),
		Color:    a.BeadColor,
		Count:    max(MinArcBeads, int(approxLen/spacing)),
		BeadSize: beadSize,
	}
}

// PointAt samples the arc's curve at t in [0, 1].
func (a *BeadArc) PointAt(t float64) geom.Vec {
	return geom.Quad(a.Start, a.Control, a.End, t)
}

// Display draws every bead as a dark halo under a coloured disc, both scaled by
// beadScale.
func (a *BeadArc) Display(r Renderer, beadScale float64) {
	for i := 0; i <= a.Count; i++ {
		p := a.PointAt(float64(i) / float64(a.Count))
		r.Fill(palette.Dark)
		r.Disc(p, a.BeadSize*1.45*beadScale)
		r.Fill(a.Color)
		r.Disc(p, a.BeadSize*beadScale)
	}
}
