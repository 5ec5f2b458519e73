package transform

import "fmt"

// Point is a 2D point. It is used for transform centers and for
// evaluating folded matrices.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Transform applies m to the point.
func (pt Point) Transform(m Matrix) Point {
	return Point{
		X: m.A*pt.X + m.C*pt.Y + m.E,
		Y: m.B*pt.X + m.D*pt.Y + m.F,
	}
}
