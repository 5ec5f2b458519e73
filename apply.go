package transform

// Option configures how [Apply] renders and validates a transformation.
type Option func(*config)

type config struct {
	composeScaleCenter bool
	strict             bool
}

// WithComposedScaleCenter renders a centered [Scale] as a single matrix(…)
// fragment carrying the full translate·scale·translate composition about
// the center. The default leaves the center out of the fragment entirely
// — scale(sx sy) — and defers its interpretation to the rendering layer,
// which is what the current renderer contract expects.
func WithComposedScaleCenter() Option {
	return func(c *config) { c.composeScaleCenter = true }
}

// WithStrictValidation rejects transformations that violate the
// accumulator's precondition — NaN or infinite parameters, or a center
// with only one coordinate — with a [ValidationError]. The default policy
// passes parameters through untouched and leaves rejection to the
// renderer. Values are never coerced under either policy.
func WithStrictValidation() Option {
	return func(c *config) { c.strict = true }
}

// Apply applies a transformation request to a vector object and returns
// the result as a structurally independent copy: its Data is a deep copy
// of the input's, its attribute map is fresh, and its transform attribute
// is the input's descriptor with the request's rendered fragment
// appended. The input object is never modified, and applying N
// transformations in sequence yields a descriptor of exactly N fragments
// in call order.
//
// A request of an unrecognized kind is not an error: Apply logs a warning
// and returns an unchanged copy, so that requests handed through from a
// newer format module degrade gracefully instead of failing.
//
// The returned error is always nil unless [WithStrictValidation] is in
// effect; on error, the zero Object is returned.
func Apply(obj Object, t Transformation, opts ...Option) (Object, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var r interface {
		validate() error
		fragment(config) Fragment
	}
	switch t := t.(type) {
	case Translate:
		r = t
	case Rotate:
		r = t
	case Scale:
		r = t
	case Affine:
		r = t
	default:
		Logger().Warn("ignoring transformation of unknown kind", "kind", string(t.Kind()))
		return obj.Clone(), nil
	}

	if cfg.strict {
		if err := r.validate(); err != nil {
			return Object{}, err
		}
	}

	out := obj.Clone()
	out.setTransform(AppendTransform(out.Transform(), r.fragment(cfg).String()))
	return out, nil
}
