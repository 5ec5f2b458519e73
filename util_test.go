package transform

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := math.Hypot(got.X-want.X, got.Y-want.Y); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func ptr(v float64) *float64 { return &v }
