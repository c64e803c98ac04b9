package scalar

import (
	"math"
	"testing"
)

func TestSincosMatchesMath(t *testing.T) {
	for _, x := range []float64{-3.5, -1.0, 0.0, 0.25, 1.0, 2.75} {
		sin, cos := Sincos(x)
		if math.Abs(sin-math.Sin(x)) > 1e-15 {
			t.Errorf("Sincos(%v) sin = %v, want %v", x, sin, math.Sin(x))
		}
		if math.Abs(cos-math.Cos(x)) > 1e-15 {
			t.Errorf("Sincos(%v) cos = %v, want %v", x, cos, math.Cos(x))
		}
	}
}

func TestPi(t *testing.T) {
	if Pi[float64]() != math.Pi {
		t.Errorf("Pi[float64]() = %v, want %v", Pi[float64](), math.Pi)
	}
	if Pi[float32]() != float32(math.Pi) {
		t.Errorf("Pi[float32]() = %v, want %v", Pi[float32](), float32(math.Pi))
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(float32(2), -3); got != -3 {
		t.Errorf("Min(2, -3) = %v, want -3", got)
	}
	if got := Max(float32(2), -3); got != 2 {
		t.Errorf("Max(2, -3) = %v, want 2", got)
	}
	if got := Min(1.5, 1.5); got != 1.5 {
		t.Errorf("Min(1.5, 1.5) = %v, want 1.5", got)
	}
}

// TestExpOverflow verifies that overflow propagates as +Inf rather than
// raising an error.
func TestExpOverflow(t *testing.T) {
	got := Exp(float32(100))
	if !math.IsInf(float64(got), 1) {
		t.Errorf("Exp(100) = %v, want +Inf", got)
	}

	got64 := Exp(float64(1000))
	if !math.IsInf(got64, 1) {
		t.Errorf("Exp(1000) = %v, want +Inf", got64)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(float64(-2.5)); got != 2.5 {
		t.Errorf("Abs(-2.5) = %v, want 2.5", got)
	}
	if got := Abs(float64(2.5)); got != 2.5 {
		t.Errorf("Abs(2.5) = %v, want 2.5", got)
	}
}
