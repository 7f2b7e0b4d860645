package circuit

import (
	"errors"
	"math"
	"testing"
)

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Parameters
		wantErr bool
	}{
		{"valid", Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300}, false},
		{"zero voltages allowed", Parameters{R1: 100, R2: 200, R3: 300}, false},
		{"nan voltage", Parameters{V1: math.NaN(), V2: 5, R1: 100, R2: 200, R3: 300}, true},
		{"infinite voltage", Parameters{V1: 10, V2: math.Inf(1), R1: 100, R2: 200, R3: 300}, true},
		{"zero resistance", Parameters{V1: 10, V2: 5, R1: 0, R2: 200, R3: 300}, true},
		{"negative resistance", Parameters{V1: 10, V2: 5, R1: 100, R2: -200, R3: 300}, true},
		{"infinite resistance", Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: math.Inf(1)}, true},
		{"nan resistance", Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanonicalEquations(t *testing.T) {
	p := Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300}
	got := CanonicalEquations(p)

	want := []CanonicalEquation{
		{Name: NameJunction, Equation: Equation{I1: 1, I2: -1, I3: -1, Const: 0}},
		{Name: NameLeftLoop, Equation: Equation{I1: -100, I2: 0, I3: -300, Const: 10}},
		{Name: NameRightLoop, Equation: Equation{I1: 0, I2: 200, I3: -300, Const: -5}},
		{Name: NameOuterLoop, Equation: Equation{I1: -100, I2: -200, I3: 0, Const: 5}},
	}

	if len(got) != len(want) {
		t.Fatalf("CanonicalEquations() returned %d equations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("equation %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSolveCurrents(t *testing.T) {
	p := Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300}

	got, err := SolveCurrents(p)
	if err != nil {
		t.Fatalf("SolveCurrents() error = %v", err)
	}

	// Exact solution: I1 = 13/220 A, I2 = 1/22 A, I3 = 3/220 A.
	want := Currents{I1: 13.0 / 220.0, I2: 1.0 / 22.0, I3: 3.0 / 220.0}
	const tol = 1e-12
	if math.Abs(got.I1-want.I1) > tol || math.Abs(got.I2-want.I2) > tol || math.Abs(got.I3-want.I3) > tol {
		t.Errorf("SolveCurrents() = %+v, want %+v", got, want)
	}

	ma := got.Milliamps()
	if math.Abs(ma.I1-650.0/11.0) > 1e-9 {
		t.Errorf("Milliamps().I1 = %v, want %v", ma.I1, 650.0/11.0)
	}
	if math.Abs(ma.I2-500.0/11.0) > 1e-9 {
		t.Errorf("Milliamps().I2 = %v, want %v", ma.I2, 500.0/11.0)
	}
	if math.Abs(ma.I3-150.0/11.0) > 1e-9 {
		t.Errorf("Milliamps().I3 = %v, want %v", ma.I3, 150.0/11.0)
	}
}

func TestSolveCurrentsDeterministic(t *testing.T) {
	p := Parameters{V1: 12, V2: 9, R1: 150, R2: 330, R3: 220}

	first, err := SolveCurrents(p)
	if err != nil {
		t.Fatalf("SolveCurrents() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := SolveCurrents(p)
		if err != nil {
			t.Fatalf("SolveCurrents() error on repeat = %v", err)
		}
		if again != first {
			t.Fatalf("SolveCurrents() not deterministic: %+v then %+v", first, again)
		}
	}
}

func TestSolveCurrentsSatisfiesJunction(t *testing.T) {
	tests := []Parameters{
		{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300},
		{V1: 24, V2: 3, R1: 470, R2: 120, R3: 390},
		{V1: 5, V2: 5, R1: 220, R2: 220, R3: 220},
	}

	for _, p := range tests {
		c, err := SolveCurrents(p)
		if err != nil {
			t.Fatalf("SolveCurrents(%+v) error = %v", p, err)
		}
		if diff := math.Abs(c.I1 - c.I2 - c.I3); diff > 1e-12 {
			t.Errorf("currents for %+v violate I1 = I2 + I3 by %g", p, diff)
		}
	}
}

func TestSolveCurrentsDegenerate(t *testing.T) {
	// All-zero parameters collapse both loop equations to zero rows.
	_, err := SolveCurrents(Parameters{})
	if err == nil {
		t.Fatal("SolveCurrents() expected error for degenerate parameters")
	}

	var degenerate *ErrDegenerateCircuit
	if !errors.As(err, &degenerate) {
		t.Fatalf("SolveCurrents() error = %T, want *ErrDegenerateCircuit", err)
	}
	if math.Abs(degenerate.Det) > SingularEpsilon {
		t.Errorf("degenerate error carries det %g above epsilon", degenerate.Det)
	}
}
