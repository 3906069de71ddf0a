// Package scene models the drawable parts of a composition: wheels, the bead
// arcs strung between them and the background dots. Every type draws itself
// through a Renderer; none of them hold pixel state.
package scene

import (
	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/palette"
)

// Renderer is the drawing backend. Coordinates passed to the primitives are in
// the current transform, which Push/Translate/Rotate/Pop manipulate.
type Renderer interface {
	// Fill sets the colour used by Disc.
	Fill(c palette.Color)
	// Disc draws a filled circle of the given diameter.
	Disc(center geom.Vec, diameter float64)
	// Wedge fills the convex polygon described by vertices.
	Wedge(vertices []geom.Vec, c palette.Color)
	// ArcBand fills the pie slice of a circle between two angles.
	ArcBand(center geom.Vec, diameter, startAngle, endAngle float64, c palette.Color)

	Push()
	Translate(x, y float64)
	Rotate(theta float64)
	Pop()
}
