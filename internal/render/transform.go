// Package render holds what the drawing backends share: a push/pop transform
// stack and the tessellation of pie slices and discs into polygons.
package render

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
)

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// mul returns m*n: n is applied first.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Stack is a p5-style transform stack. Translate and Rotate act in the current
// local frame.
type Stack struct {
	cur   f64.Aff3
	saved []f64.Aff3
}

// NewStack returns a stack holding the identity transform.
func NewStack() *Stack {
	return &Stack{cur: identity}
}

// Reset drops every saved transform and returns to the identity.
func (s *Stack) Reset() {
	s.cur = identity
	s.saved = s.saved[:0]
}

func (s *Stack) Push() {
	s.saved = append(s.saved, s.cur)
}

// Pop restores the last pushed transform. An unbalanced Pop resets to identity.
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		s.cur = identity
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(x, y float64) {
	s.cur = mul(s.cur, f64.Aff3{1, 0, x, 0, 1, y})
}

func (s *Stack) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	s.cur = mul(s.cur, f64.Aff3{cos, -sin, 0, sin, cos, 0})
}

// Apply maps a local point to canvas coordinates.
func (s *Stack) Apply(p geom.Vec) geom.Vec {
	m := s.cur
	return geom.Vec{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// ApplyAll maps pts in place and returns them.
func (s *Stack) ApplyAll(pts []geom.Vec) []geom.Vec {
	for i, p := range pts {
		pts[i] = s.Apply(p)
	}
	return pts
}
