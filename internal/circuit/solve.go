package circuit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SingularEpsilon is the threshold below which the determinant of a
// row-normalized coefficient matrix is treated as zero. The solver's
// degeneracy check and the equation independence test share it.
const SingularEpsilon = 1e-9

// ErrDegenerateCircuit reports parameters whose coefficient matrix is
// singular, so no unique set of branch currents exists. It signals a
// malformed problem-set entry, not a bad submission.
type ErrDegenerateCircuit struct {
	Params Parameters
	Det    float64
}

func (e *ErrDegenerateCircuit) Error() string {
	return fmt.Sprintf("degenerate circuit (normalized det %.3g): V1=%g V2=%g R1=%g R2=%g R3=%g",
		e.Det, e.Params.V1, e.Params.V2, e.Params.R1, e.Params.R2, e.Params.R3)
}

// SolveCurrents solves for the true branch currents of the circuit described
// by p, in amperes. The system is the junction equation plus the two inner
// loop equations; the outer loop is redundant and never used here. A singular
// system fails with *ErrDegenerateCircuit.
func SolveCurrents(p Parameters) (Currents, error) {
	system := CanonicalEquations(p)[:3]

	a := mat.NewDense(3, 3, nil)
	b := mat.NewVecDense(3, nil)
	for i, eq := range system {
		a.SetRow(i, eq.Coefficients())
		// Move the constant to the right-hand side: A·I = -d.
		b.SetVec(i, -eq.Const)
	}

	if det := unitRowDet(a); math.Abs(det) <= SingularEpsilon {
		return Currents{}, &ErrDegenerateCircuit{Params: p, Det: det}
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		// A Condition error still carries a usable solution; anything
		// else means the determinant gate above was too permissive.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Currents{}, &ErrDegenerateCircuit{Params: p, Det: unitRowDet(a)}
		}
	}
	return Currents{I1: x.AtVec(0), I2: x.AtVec(1), I3: x.AtVec(2)}, nil
}

// unitRowDet returns the determinant of a with every row scaled to unit L2
// norm, making the singularity check independent of component magnitudes.
// Zero rows stay zero and force a zero determinant.
func unitRowDet(a *mat.Dense) float64 {
	r, c := a.Dims()
	scaled := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, a)
		if n := floats.Norm(row, 2); n > 0 {
			floats.Scale(1/n, row)
		}
		scaled.SetRow(i, row)
	}
	return mat.Det(scaled)
}
