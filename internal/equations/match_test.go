package equations

import (
	"testing"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

var matchParams = circuit.Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300}

func TestMatchAnyCanonicalSet(t *testing.T) {
	canon := circuit.CanonicalEquations(matchParams)
	for i, ce := range canon {
		got, ok := MatchAny(ce.Equation, canon)
		if !ok {
			t.Fatalf("canonical %s did not match its own set", ce.Name)
		}
		if got != i {
			t.Errorf("canonical %s matched index %d, want %d", ce.Name, got, i)
		}
	}
}

func TestMatchAnyScaleAndSignInvariant(t *testing.T) {
	canon := circuit.CanonicalEquations(matchParams)
	scales := []float64{2, -1, 0.5, -250, 0.001}

	for i, ce := range canon {
		for _, k := range scales {
			scaled := circuit.Equation{
				I1:    k * ce.I1,
				I2:    k * ce.I2,
				I3:    k * ce.I3,
				Const: k * ce.Const,
			}
			got, ok := MatchAny(scaled, canon)
			if !ok {
				t.Fatalf("%s scaled by %g did not match", ce.Name, k)
			}
			if got != i {
				t.Errorf("%s scaled by %g matched index %d, want %d", ce.Name, k, got, i)
			}
		}
	}
}

func TestMatchAnyToleratesSmallPerturbation(t *testing.T) {
	canon := circuit.CanonicalEquations(matchParams)

	// R1 written as 101 instead of 100 stays within the coefficient band.
	perturbed := circuit.Equation{I1: -101, I3: -300, Const: 10}
	got, ok := MatchAny(perturbed, canon)
	if !ok {
		t.Fatal("slightly perturbed left loop did not match")
	}
	if canon[got].Name != circuit.NameLeftLoop {
		t.Errorf("perturbed left loop matched %s", canon[got].Name)
	}
}

func TestMatchAnyFirstMatchWins(t *testing.T) {
	junction := circuit.Equation{I1: 1, I2: -1, I3: -1}
	canon := []circuit.CanonicalEquation{
		{Name: "first", Equation: junction},
		{Name: "second", Equation: junction},
	}
	got, ok := MatchAny(junction, canon)
	if !ok || got != 0 {
		t.Errorf("MatchAny = (%d, %v), want first entry", got, ok)
	}
}

func TestMatchAnyRejects(t *testing.T) {
	canon := circuit.CanonicalEquations(matchParams)
	tests := []struct {
		name string
		eq   circuit.Equation
	}{
		{"wrong junction signs", circuit.Equation{I1: 1, I2: 1, I3: 1}},
		{"junction with stray constant", circuit.Equation{I1: 1, I2: -1, I3: -1, Const: 5}},
		{"zero equation", circuit.Equation{}},
		{"swapped resistors", circuit.Equation{I1: -300, I3: -100, Const: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := MatchAny(tt.eq, canon); ok {
				t.Errorf("MatchAny() unexpectedly matched %s", canon[got].Name)
			}
		})
	}
}

func TestIndependent(t *testing.T) {
	canon := circuit.CanonicalEquations(matchParams)
	junction := canon[0].Equation
	left := canon[1].Equation
	right := canon[2].Equation
	outer := canon[3].Equation

	if !Independent(junction, left, right) {
		t.Error("junction + left + right should be independent")
	}

	// The three loop equations are mutually redundant whatever the
	// constants say.
	if Independent(left, right, outer) {
		t.Error("left + right + outer should be dependent")
	}

	if Independent(junction, junction, right) {
		t.Error("repeated equation should be dependent")
	}

	if Independent(junction, left, circuit.Equation{Const: 5}) {
		t.Error("zero coefficient row should be dependent")
	}
}

func TestIndependentScaleInvariant(t *testing.T) {
	canon := circuit.CanonicalEquations(matchParams)
	scale := func(eq circuit.Equation, k float64) circuit.Equation {
		return circuit.Equation{I1: k * eq.I1, I2: k * eq.I2, I3: k * eq.I3, Const: k * eq.Const}
	}

	if !Independent(scale(canon[0].Equation, 5), scale(canon[1].Equation, -2), scale(canon[2].Equation, 0.1)) {
		t.Error("scaling must not change independence")
	}
	if Independent(scale(canon[1].Equation, 1000), scale(canon[2].Equation, -0.001), canon[3].Equation) {
		t.Error("scaling must not make dependent rows independent")
	}
}
