package transform

import (
	"testing"
)

func TestObjectClone(t *testing.T) {
	type geometry struct {
		Points []float64
		Closed bool
	}

	obj := Object{
		Data:       geometry{Points: []float64{0, 0, 10, 10}, Closed: true},
		Attributes: map[string]string{"fill": "#222"},
	}
	c := obj.Clone()
	diff(t, obj, c)

	// No shared substructure in either direction.
	c.Data.(geometry).Points[0] = 99
	if got := obj.Data.(geometry).Points[0]; got != 0 {
		t.Errorf("clone shares geometry with original: got %v", got)
	}
	c.Attributes["fill"] = "#fff"
	if got := obj.Attributes["fill"]; got != "#222" {
		t.Errorf("clone shares attributes with original: got %q", got)
	}
}

func TestObjectCloneZero(t *testing.T) {
	c := Object{}.Clone()
	if c.Data != nil {
		t.Errorf("clone of zero object has data %v", c.Data)
	}
	if c.Attributes != nil {
		t.Error("clone of zero object grew an attribute map")
	}
}

func TestObjectTransform(t *testing.T) {
	if got := (Object{}).Transform(); got != "" {
		t.Errorf("zero object has descriptor %q", got)
	}
	obj := Object{Attributes: map[string]string{TransformAttribute: "rotate(45)"}}
	if got, want := obj.Transform(), "rotate(45)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
