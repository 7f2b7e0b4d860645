package circuit

import (
	"fmt"
	"math"
)

// Parameters describes one two-loop Kirchhoff problem: a voltage source and
// resistor on each outer branch, and a shared middle-branch resistor.
type Parameters struct {
	// V1 is the left source voltage in volts.
	V1 float64

	// V2 is the right source voltage in volts.
	V2 float64

	// R1 is the left branch resistance in ohms.
	R1 float64

	// R2 is the right branch resistance in ohms.
	R2 float64

	// R3 is the middle branch resistance in ohms.
	R3 float64
}

// Validate checks that the parameters describe a usable circuit:
// finite voltages and strictly positive, finite resistances.
func (p Parameters) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{{"V1", p.V1}, {"V2", p.V2}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"R1", p.R1}, {"R2", p.R2}, {"R3", p.R3}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%s must be a positive finite resistance, got %v", f.name, f.value)
		}
	}
	return nil
}

// Equation is one linear constraint on the branch currents in the form
// a·I1 + b·I2 + c·I3 + d = 0. Each field named after a current holds the
// coefficient on that current (ohms for loop equations, dimensionless for
// the junction equation); Const holds the constant term d in volts.
type Equation struct {
	I1    float64
	I2    float64
	I3    float64
	Const float64
}

// Vector returns the equation as the coefficient vector [a b c d].
func (e Equation) Vector() []float64 {
	return []float64{e.I1, e.I2, e.I3, e.Const}
}

// Coefficients returns only the current coefficients [a b c], excluding the
// constant term. Independence of an equation set is judged on these alone.
func (e Equation) Coefficients() []float64 {
	return []float64{e.I1, e.I2, e.I3}
}

// Canonical equation names, in matching order.
const (
	NameJunction  = "junction"
	NameLeftLoop  = "left-loop"
	NameRightLoop = "right-loop"
	NameOuterLoop = "outer-loop"
)

// CanonicalEquation pairs an accepted equation with the name reported when a
// submission matches it.
type CanonicalEquation struct {
	Name string
	Equation
}

// CanonicalEquations returns the accepted equation set for the circuit, in
// the fixed order junction, left loop, right loop, outer loop. Matching
// follows this order, so the order is part of the checker's behavior.
//
// With I1 flowing into the top node and I2, I3 flowing out:
//
//	junction:   I1 - I2 - I3 = 0
//	left loop:  V1 - R1·I1 - R3·I3 = 0
//	right loop: R2·I2 - R3·I3 - V2 = 0
//	outer loop: V1 - V2 - R1·I1 - R2·I2 = 0
func CanonicalEquations(p Parameters) []CanonicalEquation {
	return []CanonicalEquation{
		{Name: NameJunction, Equation: Equation{I1: 1, I2: -1, I3: -1}},
		{Name: NameLeftLoop, Equation: Equation{I1: -p.R1, I3: -p.R3, Const: p.V1}},
		{Name: NameRightLoop, Equation: Equation{I2: p.R2, I3: -p.R3, Const: -p.V2}},
		{Name: NameOuterLoop, Equation: Equation{I1: -p.R1, I2: -p.R2, Const: p.V1 - p.V2}},
	}
}

// Currents holds the three branch currents. SolveCurrents produces amperes;
// Milliamps converts for grading and display.
type Currents struct {
	I1 float64
	I2 float64
	I3 float64
}

// Milliamps returns the currents scaled from amperes to milliamperes.
func (c Currents) Milliamps() Currents {
	return Currents{I1: c.I1 * 1e3, I2: c.I2 * 1e3, I3: c.I3 * 1e3}
}
