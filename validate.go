package transform

import (
	"fmt"
	"math"
)

// ValidationError reports a transformation parameter that violates the
// accumulator's precondition. It is returned by [Apply] only when
// [WithStrictValidation] is in effect.
type ValidationError struct {
	Kind   Kind   // kind of the offending transformation
	Field  string // offending parameter
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transform: %s: %s %s", e.Kind, e.Field, e.Reason)
}

func checkFinite(kind Kind, field string, v float64) error {
	switch {
	case math.IsNaN(v):
		return &ValidationError{Kind: kind, Field: field, Reason: "is NaN"}
	case math.IsInf(v, 0):
		return &ValidationError{Kind: kind, Field: field, Reason: "is infinite"}
	}
	return nil
}

// checkCenter validates an optional center pair: both coordinates absent
// is fine, both present must be finite, and a lone coordinate is a
// precondition violation.
func checkCenter(kind Kind, cx, cy *float64) error {
	if cx == nil && cy == nil {
		return nil
	}
	if cx == nil || cy == nil {
		field := "centerX"
		if cy == nil {
			field = "centerY"
		}
		return &ValidationError{
			Kind:   kind,
			Field:  field,
			Reason: "is missing; center coordinates must be supplied together",
		}
	}
	if err := checkFinite(kind, "centerX", *cx); err != nil {
		return err
	}
	return checkFinite(kind, "centerY", *cy)
}

func (t Translate) validate() error {
	if err := checkFinite(KindTranslate, "x", t.X); err != nil {
		return err
	}
	return checkFinite(KindTranslate, "y", t.Y)
}

func (t Rotate) validate() error {
	if err := checkFinite(KindRotate, "angle", t.Angle); err != nil {
		return err
	}
	return checkCenter(KindRotate, t.CenterX, t.CenterY)
}

func (t Scale) validate() error {
	if err := checkFinite(KindScale, "sx", t.SX); err != nil {
		return err
	}
	if err := checkFinite(KindScale, "sy", t.SY); err != nil {
		return err
	}
	return checkCenter(KindScale, t.CenterX, t.CenterY)
}

func (t Affine) validate() error {
	fields := [6]string{"a", "b", "c", "d", "e", "f"}
	for i, v := range Matrix(t).Coefficients() {
		if err := checkFinite(KindAffine, fields[i], v); err != nil {
			return err
		}
	}
	return nil
}
