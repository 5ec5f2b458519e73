package transform

import (
	"maps"

	"github.com/mitchellh/copystructure"
)

// TransformAttribute is the attribute key under which an object's
// accumulated transform descriptor is stored.
const TransformAttribute = "transform"

// Object is a vector graphics object: opaque base geometry plus a string
// attribute map. The geometry's format is owned by the producing format
// module; this package never inspects or modifies it. Only the transform
// attribute changes, and only ever on copies.
//
// Object values are treated as immutable. Every operation that would
// change one returns a structurally independent copy instead.
type Object struct {
	// Data is the base geometry.
	Data any
	// Attributes maps attribute names to their string values. An object
	// that has never been transformed has no transform attribute (or an
	// empty one); the first applied transformation establishes it.
	Attributes map[string]string
}

// Transform returns the object's accumulated transform descriptor, or ""
// if no transformation has been applied.
func (o Object) Transform() string {
	return o.Attributes[TransformAttribute]
}

// Clone returns a structurally independent copy of the object: Data is
// deep-copied so that no mutable substructure is shared, and Attributes
// is copied into a fresh map.
//
// Data must consist of plain data (scalars, strings, and any nesting of
// maps, slices, arrays, and structs thereof). Clone panics on values that
// have no structural copy, such as channels or functions.
func (o Object) Clone() Object {
	c := Object{Attributes: maps.Clone(o.Attributes)}
	if o.Data != nil {
		c.Data = copystructure.Must(copystructure.Copy(o.Data))
	}
	return c
}

// setTransform stores a descriptor, allocating the attribute map if the
// object had none.
func (o *Object) setTransform(desc string) {
	if o.Attributes == nil {
		o.Attributes = make(map[string]string, 1)
	}
	o.Attributes[TransformAttribute] = desc
}
