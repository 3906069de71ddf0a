// Package palette picks the colours of the composition. Colours are kept in HSB
// (hue 0-360, saturation and brightness 0-100) so that layers can derive
// related shades from a base colour.
package palette

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque colour in HSB space.
type Color struct {
	H, S, B float64
}

// HSB builds a colour from hue in degrees and saturation/brightness in percent.
func HSB(h, s, b float64) Color {
	return Color{H: h, S: s, B: b}
}

// Shift returns c with its hue rotated by deg degrees, wrapped into [0, 360).
func (c Color) Shift(deg float64) Color {
	c.H = math.Mod(math.Mod(c.H+deg, 360)+360, 360)
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to 8-bit RGB.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := colorful.Hsv(c.H, c.S/100, c.B/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

var (
	// Dark is the near-black used for bead halos and sunburst gaps.
	Dark = HSB(0, 0, 15)
	// Canvas is the background fill behind everything.
	Canvas = HSB(200, 40, 20)
)

var base = []Color{
	HSB(340, 90, 100), // magenta
	HSB(25, 95, 100),  // orange
	HSB(55, 90, 100),  // yellow
	HSB(200, 60, 90),  // cyan-blue
	HSB(120, 70, 90),  // green
	HSB(0, 0, 100),    // white
	HSB(0, 0, 15),     // black
}

var background = []Color{
	HSB(0, 0, 100),
	HSB(0, 0, 15),
	HSB(25, 95, 100),
	HSB(340, 90, 100),
}

// Base returns a copy of the base palette.
func Base() []Color {
	return append([]Color(nil), base...)
}

// Pick draws one base colour and jitters it: hue by +-8 degrees, saturation by
// +-6 within [50, 100], brightness by +-6 within [40, 100].
func Pick(rng *rand.Rand) Color {
	p := base[rng.Intn(len(base))]
	h := math.Mod(p.H+uniform(rng, -8, 8)+360, 360)
	s := clamp(p.S+uniform(rng, -6, 6), 50, 100)
	b := clamp(p.B+uniform(rng, -6, 6), 40, 100)
	return HSB(h, s, b)
}

// PickBackground draws one of the four background dot colours unchanged.
func PickBackground(rng *rand.Rand) Color {
	return background[rng.Intn(len(background))]
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
