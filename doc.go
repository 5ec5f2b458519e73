// Package transform accumulates display transformations on vector
// graphics objects.
//
// A vector object ([Object]) carries opaque base geometry and a string
// attribute map. How the object is displayed is controlled by its
// transform descriptor: an ordered, space-separated list of
// transformation fragments such as "translate(10 20) rotate(45)", stored
// in the object's transform attribute and consumed by the rendering
// layer. The descriptor is the single source of truth for display
// transformations. Base geometry is never rewritten, so any sequence of
// applied transformations stays composable, and earlier fragments are
// never replaced, merged, or reordered.
//
// # Applying transformations
//
// [Apply] takes an object and a transformation request and returns a new
// object whose descriptor has the request's fragment appended:
//
//	obj, _ = transform.Apply(obj, transform.Translate{X: 10, Y: 20})
//	obj, _ = transform.Apply(obj, transform.Rotate{Angle: 45})
//	obj.Transform() // "translate(10 20) rotate(45)"
//
// The input object is never modified. The result shares no mutable
// substructure with it: the base geometry is deep-copied and the
// attribute map is fresh, so both objects can be held and transformed
// further independently.
//
// The four transformation kinds are [Translate], [Rotate], [Scale], and
// [Affine]. [Transformation] is an interface rather than a closed set so
// that requests produced by newer format modules remain representable;
// Apply ignores kinds it does not recognize and returns an unchanged
// copy instead of failing.
//
// # Descriptors as data
//
// A descriptor string can be taken apart and reasoned about without the
// rendering layer. [Parse] turns one into a [List] of [Fragment] values,
// [List.String] renders it back, and [List.Matrix] folds it into a single
// affine [Matrix], composing fragments left to right the way a renderer
// would. Folding is composition only; this package never inverts or
// decomposes matrices.
//
// # Preconditions
//
// Numeric parameters are expected to be finite. By default they pass
// through unvalidated — a renderer rejecting NaN is the renderer's
// business — but [WithStrictValidation] rejects them up front with a
// [ValidationError]. Parameters are never silently coerced.
package transform
