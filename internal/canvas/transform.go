package canvas

import "math"

// Matrix is a 2D affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Matrix{A: 1, D: 1}

// Apply maps a user space point to device space.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Translate returns m followed by a translation in user space.
func (m Matrix) Translate(dx, dy float64) Matrix {
	m.E += m.A*dx + m.C*dy
	m.F += m.B*dx + m.D*dy
	return m
}

// Rotate returns m followed by a rotation in user space.
func (m Matrix) Rotate(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{
		A: m.A*cos + m.C*sin,
		B: m.B*cos + m.D*sin,
		C: m.C*cos - m.A*sin,
		D: m.D*cos - m.B*sin,
		E: m.E,
		F: m.F,
	}
}

// Invert returns the inverse of m. ok is false when m is singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, false
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// Scale returns the average linear scale factor of m, used to size radii
// and stroke widths in device space.
func (m Matrix) Scale() float64 {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	return (sx + sy) / 2
}

// TransformStack implements the Save/Restore/Translate/Rotate part of
// Canvas for hosts that rasterize themselves.
type TransformStack struct {
	current Matrix
	saved   []Matrix
	init    bool
}

// Current returns the active transform.
func (s *TransformStack) Current() Matrix {
	if !s.init {
		return Identity
	}
	return s.current
}

func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.Current())
}

// Restore pops the last saved transform. An unbalanced Restore is ignored.
func (s *TransformStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.init = true
}

func (s *TransformStack) Translate(dx, dy float64) {
	s.current = s.Current().Translate(dx, dy)
	s.init = true
}

func (s *TransformStack) Rotate(rad float64) {
	s.current = s.Current().Rotate(rad)
	s.init = true
}

// Reset drops every saved transform and returns to identity.
func (s *TransformStack) Reset() {
	s.current = Identity
	s.saved = s.saved[:0]
	s.init = true
}

// Depth is the number of saved transforms.
func (s *TransformStack) Depth() int {
	return len(s.saved)
}
