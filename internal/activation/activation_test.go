package activation

import (
	"math"
	"testing"
)

// sigmoid computes the reference logistic function for testing.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// TestForwardFormulas checks every variant against its defining formula at a
// spread of finite inputs.
func TestForwardFormulas(t *testing.T) {
	points := []float64{-5, -1, -0.5, 0, 0.5, 1, 5}

	tests := []struct {
		name string
		act  Activation[float64]
		want func(x float64) float64
	}{
		{"None", None[float64]{}, func(x float64) float64 { return x }},
		{"ReLU", ReLU[float64]{}, func(x float64) float64 { return math.Max(x, 0) }},
		{"LeakyReLU", NewLeakyReLU(0.01), func(x float64) float64 {
			return math.Max(x, 0) + 0.01*math.Min(x, 0)
		}},
		{"ELU", NewELU(1.0), func(x float64) float64 {
			return math.Exp(-math.Min(x, 0)) - 1 + math.Max(x, 0)
		}},
		{"Swish", Swish[float64]{}, func(x float64) float64 {
			return x / (1 + math.Exp(-x))
		}},
		{"Tanh", Tanh[float64]{}, math.Tanh},
		{"Sigmoid", Sigmoid[float64]{}, sigmoid},
		{"Exp", Exp[float64]{}, math.Exp},
	}

	for _, tt := range tests {
		for _, x := range points {
			got := tt.act.Activate(x)
			want := tt.want(x)
			if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
				t.Errorf("%s(%v) = %v, want %v", tt.name, x, got, want)
			}
		}
	}
}

// TestSigmoidRange checks σ(x) ∈ (0, 1) for finite inputs.
func TestSigmoidRange(t *testing.T) {
	s := Sigmoid[float64]{}
	for _, x := range []float64{-30, -5, 0, 5, 30} {
		got := s.Activate(x)
		if got <= 0 || got >= 1 {
			t.Errorf("Sigmoid(%v) = %v, want value in (0, 1)", x, got)
		}
	}
}

// TestSigmoidBackward checks the explicit rule against g·s·(1−s) and a
// central-difference estimate.
func TestSigmoidBackward(t *testing.T) {
	s := Sigmoid[float64]{}
	const eps = 1e-6

	for _, x := range []float64{-5, -1, 0, 1, 5} {
		for _, grad := range []float64{1, 0.5, -2} {
			d := s.ActivateBwd(x, grad)

			if d.Value != x {
				t.Errorf("ActivateBwd(%v, %v) primal = %v, want %v", x, grad, d.Value, x)
			}

			sv := sigmoid(x)
			want := grad * sv * (1 - sv)
			if math.Abs(d.Grad-want) > 1e-12 {
				t.Errorf("ActivateBwd(%v, %v) grad = %v, want %v", x, grad, d.Grad, want)
			}

			numerical := grad * (sigmoid(x+eps) - sigmoid(x-eps)) / (2 * eps)
			if math.Abs(d.Grad-numerical) > 1e-4*math.Max(1, math.Abs(numerical)) {
				t.Errorf("ActivateBwd(%v, %v) grad = %v, numerical estimate %v", x, grad, d.Grad, numerical)
			}
		}
	}
}

// TestELUScenarios checks the concrete values from the ELU definition:
// a=1: f(-2) = exp(2) - 1 ≈ 6.389, f(3) = 3.
func TestELUScenarios(t *testing.T) {
	e := NewELU(1.0)

	got := e.Activate(-2.0)
	want := math.Exp(2) - 1
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ELU(-2) = %v, want %v", got, want)
	}

	if got := e.Activate(3.0); got != 3.0 {
		t.Errorf("ELU(3) = %v, want 3", got)
	}
}

// TestExpOverflowPropagates checks the numeric edge-case policy: overflow
// yields +Inf, not a fault.
func TestExpOverflowPropagates(t *testing.T) {
	e := Exp[float32]{}
	got := e.Activate(100)
	if !math.IsInf(float64(got), 1) {
		t.Errorf("Exp(100) = %v, want +Inf", got)
	}
}

// TestPolicies checks the recompute hint metadata: Sigmoid prefers
// recomputation, everything else defaults to store.
func TestPolicies(t *testing.T) {
	if got := PolicyOf(Sigmoid[float32]{}); got != PolicyRecompute {
		t.Errorf("PolicyOf(Sigmoid) = %v, want %v", got, PolicyRecompute)
	}

	for _, act := range []any{
		None[float32]{},
		ReLU[float32]{},
		NewLeakyReLU[float32](0.01),
		NewELU[float32](1),
		Swish[float32]{},
		Tanh[float32]{},
		Exp[float32]{},
	} {
		if got := PolicyOf(act); got != PolicyStore {
			t.Errorf("PolicyOf(%T) = %v, want %v", act, got, PolicyStore)
		}
	}
}

// TestOnlySigmoidOverridesBackward pins down which variants carry an
// explicit backward rule.
func TestOnlySigmoidOverridesBackward(t *testing.T) {
	var acts = map[string]Activation[float64]{
		"None":      None[float64]{},
		"ReLU":      ReLU[float64]{},
		"LeakyReLU": NewLeakyReLU(0.01),
		"ELU":       NewELU(1.0),
		"Swish":     Swish[float64]{},
		"Tanh":      Tanh[float64]{},
		"Sigmoid":   Sigmoid[float64]{},
		"Exp":       Exp[float64]{},
	}

	for name, act := range acts {
		_, ok := act.(BackwardActivation[float64])
		if want := name == "Sigmoid"; ok != want {
			t.Errorf("%s implements BackwardActivation = %v, want %v", name, ok, want)
		}
	}
}

func TestPolicyString(t *testing.T) {
	if PolicyStore.String() != "store" || PolicyRecompute.String() != "recompute" {
		t.Errorf("Policy.String() = %q/%q", PolicyStore.String(), PolicyRecompute.String())
	}
}
