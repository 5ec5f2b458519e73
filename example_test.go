package transform_test

import (
	"fmt"

	"github.com/vgkit/transform"
)

func ExampleApply() {
	obj := transform.Object{
		Data:       []float64{0, 0, 10, 0, 10, 10},
		Attributes: map[string]string{"fill": "#222"},
	}

	obj, _ = transform.Apply(obj, transform.Translate{X: 10, Y: 20})
	obj, _ = transform.Apply(obj, transform.Rotate{Angle: 45})

	fmt.Println(obj.Transform())
	// Output: translate(10 20) rotate(45)
}

func ExampleList_Matrix() {
	list, _ := transform.Parse("translate(3 4) scale(2)")
	m, _ := list.Matrix()

	fmt.Println(m.Coefficients())
	fmt.Println(transform.Pt(1, 1).Transform(m))
	// Output:
	// [2 0 0 2 3 4]
	// (5, 6)
}
