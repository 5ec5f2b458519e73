package transform

import (
	"testing"
)

func TestAppendTransform(t *testing.T) {
	tests := []struct {
		existing, fragment, want string
	}{
		{"", "f(1)", "f(1)"},
		{"   ", "f(1)", "f(1)"},
		{"f(1)", "f(2)", "f(1) f(2)"},
		{"  f(1)  ", "f(2)", "f(1) f(2)"},
		{"f(1) g(2)", "h(3)", "f(1) g(2) h(3)"},
	}
	for _, tt := range tests {
		if got := AppendTransform(tt.existing, tt.fragment); got != tt.want {
			t.Errorf("AppendTransform(%q, %q) = %q, want %q",
				tt.existing, tt.fragment, got, tt.want)
		}
	}
}

func TestFragmentString(t *testing.T) {
	tests := []struct {
		f    Fragment
		want string
	}{
		{Fragment{Name: "rotate", Args: []float64{45}}, "rotate(45)"},
		{Fragment{Name: "translate", Args: []float64{10, 20}}, "translate(10 20)"},
		{Fragment{Name: "translate", Args: []float64{-0.5, 1.25}}, "translate(-0.5 1.25)"},
		{Fragment{Name: "matrix", Args: []float64{1, 0, 0, 1, 10, 10}}, "matrix(1 0 0 1 10 10)"},
		{Fragment{Name: "noop"}, "noop()"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		desc string
		want List
	}{
		{"", nil},
		{"   ", nil},
		{
			"translate(10 20)",
			List{{Name: "translate", Args: []float64{10, 20}}},
		},
		{
			"translate(10,20), rotate(45)",
			List{
				{Name: "translate", Args: []float64{10, 20}},
				{Name: "rotate", Args: []float64{45}},
			},
		},
		{
			" translate( 10 , 20 )  scale(2)",
			List{
				{Name: "translate", Args: []float64{10, 20}},
				{Name: "scale", Args: []float64{2}},
			},
		},
		{
			"matrix(1 0 0 1 -5 2.5e2)",
			List{{Name: "matrix", Args: []float64{1, 0, 0, 1, -5, 250}}},
		},
		{
			"skewX(45) skewY(-10)",
			List{
				{Name: "skewX", Args: []float64{45}},
				{Name: "skewY", Args: []float64{-10}},
			},
		},
	}
	for _, tt := range tests {
		got, err := Parse(tt.desc)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.desc, err)
			continue
		}
		diff(t, tt.want, got)
	}
}

func TestParseErrors(t *testing.T) {
	descs := []string{
		"translate",
		"translate(1",
		"translate 1)",
		"(1 2)",
		"rotate(4 5)(",
		"rotate(x)",
		"rotate translate(1 2)",
	}
	for _, desc := range descs {
		if got, err := Parse(desc); err == nil {
			t.Errorf("Parse(%q) = %v, want error", desc, got)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	descs := []string{
		"translate(10 20)",
		"translate(10 20) rotate(45)",
		"rotate(90 5 5) scale(2 3) matrix(1 0 0 1 10 10)",
	}
	for _, desc := range descs {
		list, err := Parse(desc)
		if err != nil {
			t.Fatalf("Parse(%q): %v", desc, err)
		}
		if got := list.String(); got != desc {
			t.Errorf("round trip of %q produced %q", desc, got)
		}
	}
}

func TestListString(t *testing.T) {
	l := List{
		{Name: "translate", Args: []float64{1, 1}},
		{Name: "rotate", Args: []float64{30}},
	}
	if got, want := l.String(), "translate(1 1) rotate(30)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := (List{}).String(); got != "" {
		t.Errorf("empty list rendered %q", got)
	}
}
