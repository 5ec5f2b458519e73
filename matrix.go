package transform

import (
	"fmt"
	"math"
)

// Matrix describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// This is the coefficient order of the matrix(a b c d e f) fragment, so a
// fragment's arguments map one-to-one onto the fields. The idea is that
// (A * B) * v == A * (B * v).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

func translation(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

func scaling(x, y float64) Matrix {
	return Matrix{x, 0, 0, y, 0, 0}
}

// rotation returns a rotation by th radians.
//
// The convention for rotation is that a positive angle rotates a positive
// X direction into positive Y. In the Y-down coordinate system used by
// renderers, that is a clockwise rotation.
func rotation(th float64) Matrix {
	sin, cos := math.Sincos(th)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// rotationAbout returns a rotation by th radians about center.
func rotationAbout(th float64, center Point) Matrix {
	return translation(-center.X, -center.Y).
		ThenRotate(th).
		ThenTranslate(center.X, center.Y)
}

// scalingAbout returns a scale by (x, y) about center.
func scalingAbout(x, y float64, center Point) Matrix {
	return translation(-center.X, -center.Y).
		ThenScale(x, y).
		ThenTranslate(center.X, center.Y)
}

// skew returns a skew with horizontal factor x and vertical factor y.
func skew(x, y float64) Matrix {
	return Matrix{1, y, x, 1, 0, 0}
}

func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m.A*o.A + m.C*o.B,
		m.B*o.A + m.D*o.B,
		m.A*o.C + m.C*o.D,
		m.B*o.C + m.D*o.D,
		m.A*o.E + m.C*o.F + m.E,
		m.B*o.E + m.D*o.F + m.F,
	}
}

// ThenTranslate creates m followed by a translation of (x, y).
//
// Equivalent to "translation(x, y) * m".
func (m Matrix) ThenTranslate(x, y float64) Matrix {
	m.E += x
	m.F += y
	return m
}

// ThenRotate creates m followed by a rotation of th radians.
//
// Equivalent to "rotation(th) * m".
func (m Matrix) ThenRotate(th float64) Matrix {
	return rotation(th).Mul(m)
}

// ThenScale creates m followed by a scale of (x, y).
//
// Equivalent to "scaling(x, y) * m".
func (m Matrix) ThenScale(x, y float64) Matrix {
	return scaling(x, y).Mul(m)
}

// PreTranslate creates a translation of (x, y) followed by m.
//
// Equivalent to "m * translation(x, y)".
func (m Matrix) PreTranslate(x, y float64) Matrix {
	return m.Mul(translation(x, y))
}

// Coefficients returns the coefficients of the transform in fragment
// argument order.
func (m Matrix) Coefficients() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// IsFinite reports whether all coefficients are finite, that is, neither
// NaN nor infinite.
func (m Matrix) IsFinite() bool {
	for _, c := range m.Coefficients() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Matrix returns the fragment's matrix equivalent. It recognizes the full
// transform-list vocabulary: translate (one or two arguments), scale (one
// or two), rotate (one, or three with a center), matrix (six), skewX, and
// skewY (one argument each). Angles are in degrees, per the descriptor
// grammar.
func (f Fragment) Matrix() (Matrix, error) {
	switch f.Name {
	case "translate":
		switch len(f.Args) {
		case 1:
			return translation(f.Args[0], 0), nil
		case 2:
			return translation(f.Args[0], f.Args[1]), nil
		}
	case "scale":
		switch len(f.Args) {
		case 1:
			return scaling(f.Args[0], f.Args[0]), nil
		case 2:
			return scaling(f.Args[0], f.Args[1]), nil
		}
	case "rotate":
		switch len(f.Args) {
		case 1:
			return rotation(radians(f.Args[0])), nil
		case 3:
			return rotationAbout(radians(f.Args[0]), Pt(f.Args[1], f.Args[2])), nil
		}
	case "matrix":
		if len(f.Args) == 6 {
			return Matrix{f.Args[0], f.Args[1], f.Args[2], f.Args[3], f.Args[4], f.Args[5]}, nil
		}
	case "skewX":
		if len(f.Args) == 1 {
			return skew(math.Tan(radians(f.Args[0])), 0), nil
		}
	case "skewY":
		if len(f.Args) == 1 {
			return skew(0, math.Tan(radians(f.Args[0]))), nil
		}
	default:
		return Identity, fmt.Errorf("transform: unknown fragment %q", f.Name)
	}
	return Identity, fmt.Errorf("transform: %s: unsupported argument count %d", f.Name, len(f.Args))
}

// Matrix folds the list into a single affine matrix, composing fragments
// left to right: the leftmost fragment is outermost, and each fragment
// transforms the coordinate frame established by those before it. This
// matches how the rendering layer consumes a descriptor. In column-vector
// terms, a list f1 f2 … fn folds to M1 * M2 * … * Mn.
func (l List) Matrix() (Matrix, error) {
	m := Identity
	for _, f := range l {
		fm, err := f.Matrix()
		if err != nil {
			return Identity, err
		}
		m = m.Mul(fm)
	}
	return m, nil
}

func radians(deg float64) float64 {
	return deg / 180 * math.Pi
}
