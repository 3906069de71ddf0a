package scene

import (
	"math"
	"math/rand"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
)

// Style is the decoration of one wheel layer.
type Style int

const (
	Solid Style = iota
	Dots
	Sunburst
	Stripes
)

var styleNames = [...]string{"solid", "dots", "sunburst", "stripes"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// RingDot is one precomputed disc of a Dots layer, relative to the wheel center.
type RingDot struct {
	Pos    geom.Vec
	Radius float64
}

// Layer is one concentric band of a wheel.
type Layer struct {
	Ratio float64 // fraction of the wheel's base radius
	Style Style
	Color palette.Color

	// Dots holds the fixed ring of a Dots layer; nil for other styles.
	Dots []RingDot
	// Bands is the stripe count of a Stripes layer; zero for other styles.
	Bands int
}

// BeadRing is the ring of beads around a wheel's rim.
type BeadRing struct {
	Radius   float64
	BeadSize float64
	Count    int
}

// Wheel is a decorated disc. Its recipe is fixed at construction; rotation and
// bead scale are supplied on every Display call.
type Wheel struct {
	Center     geom.Vec
	BaseRadius float64
	CoreColor  palette.Color
	BeadColor  palette.Color
	Layers     []Layer
	Ring       BeadRing
}

// NewWheel draws a wheel recipe from rng. The draw order is core colour, bead
// colour, layer count, then per layer: style, colour and style extras.
func NewWheel(rng *rand.Rand, x, y, baseRadius float64) *Wheel {
	w := &Wheel{
		Center:     geom.Vec{X: x, Y: y},
		BaseRadius: baseRadius,
		CoreColor:  palette.Pick(rng),
		BeadColor:  palette.Pick(rng),
	}

	n := 3 + rng.Intn(2)
	w.Layers = make([]Layer, 0, n)
	for i := 0; i < n; i++ {
		l := Layer{
			Ratio: geom.Map(float64(i), 0, float64(n-1), 0.25, 1.0),
			Style: Style(rng.Intn(len(styleNames))),
			Color: palette.Pick(rng),
		}
		switch l.Style {
		case Dots:
			l.Dots = ringDots(rng, baseRadius*l.Ratio*0.9)
		case Stripes:
			l.Bands = 4 + rng.Intn(2)
		}
		w.Layers = append(w.Layers, l)
	}

	ringR := baseRadius * 0.88
	beadSize := baseRadius * 0.09
	circumference := 2 * math.Pi * ringR
	w.Ring = BeadRing{
		Radius:   ringR,
		BeadSize: beadSize,
		Count:    max(10, int(circumference/(beadSize*1.2))),
	}
	return w
}

func ringDots(rng *rand.Rand, rad float64) []RingDot {
	count := int(geom.Map(rad, 20, 220, 16, 32))
	var dots []RingDot
	for k := 0; k < count; k++ {
		a := 2 * math.Pi * float64(k) / float64(count)
		rr := rad * (0.8 + rng.Float64()*0.15)
		dots = append(dots, RingDot{Pos: geom.Polar(a, rr), Radius: rad * 0.10})
	}
	return dots
}

// layerRadius is the radius a layer is drawn at.
func (w *Wheel) layerRadius(l Layer) float64 {
	return w.BaseRadius * l.Ratio * 0.9
}

// Display draws the wheel rotated by rotation about its center. Bead ring discs
// are scaled by beadScale; layer dots are not.
func (w *Wheel) Display(r Renderer, rotation, beadScale float64) {
	r.Push()
	defer r.Pop()
	r.Translate(w.Center.X, w.Center.Y)
	r.Rotate(rotation)

	for i := 0; i < w.Ring.Count; i++ {
		p := geom.Polar(2*math.Pi*float64(i)/float64(w.Ring.Count), w.Ring.Radius)
		r.Fill(palette.Dark)
		r.Disc(p, w.Ring.BeadSize*1.4*beadScale)
		r.Fill(w.BeadColor)
		r.Disc(p, w.Ring.BeadSize*beadScale)
	}

	for _, l := range w.Layers {
		rad := w.layerRadius(l)
		switch l.Style {
		case Solid:
			r.Fill(l.Color)
			r.Disc(geom.Vec{}, rad*2)
		case Dots:
			r.Fill(l.Color)
			for _, d := range l.Dots {
				r.Disc(d.Pos, d.Radius*2)
			}
		case Sunburst:
			drawSunburst(r, rad, l.Color)
		case Stripes:
			drawStripes(r, rad, l.Bands, l.Color)
		}
	}

	r.Fill(w.CoreColor)
	r.Disc(geom.Vec{}, w.BaseRadius*0.18)
}

func drawSunburst(r Renderer, rad float64, c palette.Color) {
	rays := int(geom.Map(rad, 20, 220, 20, 40))
	for i := 0; i < rays; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(rays)
		a1 := 2 * math.Pi * (float64(i) + 0.5) / float64(rays)
		fill := c
		if i%2 == 1 {
			fill = palette.Dark
		}
		r.Wedge([]geom.Vec{{}, geom.Polar(a0, rad), geom.Polar(a1, rad)}, fill)
	}
}

// drawStripes paints concentric pie bands; each segment shifts the base hue by
// band*8 + segment*3 degrees.
func drawStripes(r Renderer, rad float64, bands int, c palette.Color) {
	if bands <= 0 {
		return
	}
	thick := rad * 0.9 / float64(bands)
	segs := int(geom.Map(rad, 20, 220, 12, 24))
	for b := 0; b < bands; b++ {
		rr := rad*0.1 + float64(b)*thick
		for i := 0; i < segs; i++ {
			a0 := 2 * math.Pi * float64(i) / float64(segs)
			a1 := 2 * math.Pi * (float64(i) + 0.6) / float64(segs)
			r.ArcBand(geom.Vec{}, rr*2, a0, a1, c.Shift(float64(b*8+i*3)))
		}
	}
}
