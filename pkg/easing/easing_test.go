package easing

import (
	"testing"
)

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
	}{
		{NameLinear, Linear},
		{NameOutQuad, OutQuad},
		{NameOutExpo, OutExpo},
		{NameInOutQuad, InOutQuad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(0); got != 0 {
				t.Errorf("%s(0) = %v, want 0", tt.name, got)
			}
			if got := tt.fn(1); got != 1 {
				t.Errorf("%s(1) = %v, want 1", tt.name, got)
			}
		})
	}
}

func TestMonotonic(t *testing.T) {
	for _, name := range Names() {
		fn, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}

		prev := fn(0)
		for i := 1; i <= 100; i++ {
			x := float32(i) / 100
			y := fn(x)
			if y < prev {
				t.Errorf("%s not monotonic at %v: %v < %v", name, x, y, prev)
			}
			if y < 0 || y > 1 {
				t.Errorf("%s(%v) = %v, outside [0,1]", name, x, y)
			}
			prev = y
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		in   float32
		want float32
	}{
		{"out-quad half", OutQuad, 0.5, 0.75},
		{"in-out-quad quarter", InOutQuad, 0.25, 0.125},
		{"in-out-quad half", InOutQuad, 0.5, 0.5},
		{"in-out-quad three quarters", InOutQuad, 0.75, 0.875},
		{"out-expo tenth", OutExpo, 0.1, 0.5},
	}

	for _, tt := range tests {
		got := tt.fn(tt.in)
		if diff := got - tt.want; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOutCurvesLeadLinear(t *testing.T) {
	// Out-curves are ahead of linear progress for every interior point.
	for _, x := range []float32{0.1, 0.3, 0.5, 0.9} {
		if OutQuad(x) <= x {
			t.Errorf("OutQuad(%v) = %v, want > %v", x, OutQuad(x), x)
		}
		if OutExpo(x) <= x {
			t.Errorf("OutExpo(%v) = %v, want > %v", x, OutExpo(x), x)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("bounce"); err == nil {
		t.Error("expected error for unknown easing")
	}
}
