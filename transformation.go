package transform

// Kind tags a transformation request.
type Kind string

// The transformation kinds this package renders.
const (
	KindTranslate Kind = "translate"
	KindRotate    Kind = "rotate"
	KindScale     Kind = "scale"
	KindAffine    Kind = "affine"
)

// Transformation is a single transformation request, consumed once by
// [Apply]. The kinds this package renders are [Translate], [Rotate],
// [Scale], and [Affine]. Other implementations are permitted — a format
// module may hand through kinds introduced after this package was built —
// and degrade gracefully: Apply ignores them rather than failing.
type Transformation interface {
	Kind() Kind
}

// Translate moves geometry by (X, Y). It renders as translate(x y).
type Translate struct {
	X, Y float64
}

func (Translate) Kind() Kind { return KindTranslate }

// Matrix returns the transform's matrix equivalent.
func (t Translate) Matrix() Matrix {
	return translation(t.X, t.Y)
}

func (t Translate) fragment(config) Fragment {
	return Fragment{Name: "translate", Args: []float64{t.X, t.Y}}
}

// Rotate rotates geometry by Angle degrees, optionally about a center
// point. It renders as rotate(angle) or rotate(angle cx cy).
//
// CenterX and CenterY must be supplied together. A lone center coordinate
// is ignored and the rotation is rendered centerless, unless strict
// validation is enabled, in which case it is rejected.
type Rotate struct {
	Angle            float64
	CenterX, CenterY *float64
}

// RotateAbout returns a rotation of angle degrees about (cx, cy).
func RotateAbout(angle, cx, cy float64) Rotate {
	return Rotate{Angle: angle, CenterX: &cx, CenterY: &cy}
}

func (Rotate) Kind() Kind { return KindRotate }

// Matrix returns the transform's matrix equivalent.
func (t Rotate) Matrix() Matrix {
	if c, ok := t.center(); ok {
		return rotationAbout(radians(t.Angle), c)
	}
	return rotation(radians(t.Angle))
}

// center returns the rotation center, if both coordinates were supplied.
func (t Rotate) center() (Point, bool) {
	if t.CenterX == nil || t.CenterY == nil {
		return Point{}, false
	}
	return Pt(*t.CenterX, *t.CenterY), true
}

func (t Rotate) fragment(config) Fragment {
	if c, ok := t.center(); ok {
		return Fragment{Name: "rotate", Args: []float64{t.Angle, c.X, c.Y}}
	}
	if t.CenterX != nil || t.CenterY != nil {
		Logger().Debug("ignoring asymmetric rotate center")
	}
	return Fragment{Name: "rotate", Args: []float64{t.Angle}}
}

// Scale scales geometry by (SX, SY), optionally about a center point.
//
// By default the center is not composed into the rendered fragment: the
// fragment is always scale(sx sy), and interpreting a scale center is
// left to the rendering layer. [WithComposedScaleCenter] upgrades a
// centered scale to a single matrix(…) fragment carrying the full
// translate·scale·translate composition about the center.
//
// As with [Rotate], a lone center coordinate is ignored unless strict
// validation is enabled.
type Scale struct {
	SX, SY           float64
	CenterX, CenterY *float64
}

// ScaleAbout returns a scale of (sx, sy) about (cx, cy).
func ScaleAbout(sx, sy, cx, cy float64) Scale {
	return Scale{SX: sx, SY: sy, CenterX: &cx, CenterY: &cy}
}

func (Scale) Kind() Kind { return KindScale }

// Matrix returns the transform's matrix equivalent. The center, when
// supplied, is always composed here, regardless of how the fragment is
// rendered.
func (t Scale) Matrix() Matrix {
	if c, ok := t.center(); ok {
		return scalingAbout(t.SX, t.SY, c)
	}
	return scaling(t.SX, t.SY)
}

// center returns the scale center, if both coordinates were supplied.
func (t Scale) center() (Point, bool) {
	if t.CenterX == nil || t.CenterY == nil {
		return Point{}, false
	}
	return Pt(*t.CenterX, *t.CenterY), true
}

func (t Scale) fragment(cfg config) Fragment {
	c, ok := t.center()
	if !ok && (t.CenterX != nil || t.CenterY != nil) {
		Logger().Debug("ignoring asymmetric scale center")
	}
	if ok && cfg.composeScaleCenter {
		co := scalingAbout(t.SX, t.SY, c).Coefficients()
		return Fragment{Name: "matrix", Args: co[:]}
	}
	return Fragment{Name: "scale", Args: []float64{t.SX, t.SY}}
}

// Affine applies an arbitrary affine matrix. Its coefficients are in
// fragment argument order, and it renders as matrix(a b c d e f). The
// coefficients are not required to form an invertible matrix.
type Affine Matrix

// NewAffine creates an affine transformation request from coefficients in
// fragment argument order. Alternatively, you can initialize the fields
// of [Affine] manually.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

func (Affine) Kind() Kind { return KindAffine }

// Matrix returns the transform's matrix equivalent.
func (t Affine) Matrix() Matrix {
	return Matrix(t)
}

func (t Affine) fragment(config) Fragment {
	co := Matrix(t).Coefficients()
	return Fragment{Name: "matrix", Args: co[:]}
}
