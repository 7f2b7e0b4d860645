package equations

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

// Per-component tolerances for comparing canonicalized coefficient vectors.
// After unit normalization every component lies in [-1, 1], so the absolute
// term dominates and distinct canonical equations stay well separated.
const (
	CoeffAbsTol = 0.1
	CoeffRelTol = 1e-3
)

// MatchAny reports the first canonical equation equivalent to eq. Equivalence
// is scale- and sign-invariant: both sides are reduced to canonical vectors
// and compared per component within CoeffAbsTol/CoeffRelTol. The first match
// in canonical order wins, so a submission equivalent to more than one entry
// is attributed deterministically.
func MatchAny(eq circuit.Equation, canon []circuit.CanonicalEquation) (int, bool) {
	v := canonicalVector(eq)
	for i, ce := range canon {
		if equalWithin(v, canonicalVector(ce.Equation)) {
			return i, true
		}
	}
	return 0, false
}

// canonicalVector reduces an equation to a representation shared by all its
// scalar multiples: the [a b c d] vector divided by its L2 norm, with the
// sign chosen so the first nonzero component is positive. The zero equation
// maps to the zero vector.
func canonicalVector(eq circuit.Equation) []float64 {
	v := eq.Vector()
	if n := floats.Norm(v, 2); n > 0 {
		floats.Scale(1/n, v)
	}
	for _, x := range v {
		if x == 0 {
			continue
		}
		if x < 0 {
			floats.Scale(-1, v)
		}
		break
	}
	return v
}

func equalWithin(a, b []float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], CoeffAbsTol, CoeffRelTol) {
			return false
		}
	}
	return true
}

// Independent reports whether three equations impose independent constraints
// on the currents. Only the current coefficients enter the test; constant
// terms are excluded. Each row is scaled to unit norm and the 3×3 determinant
// is compared against circuit.SingularEpsilon, the same threshold the solver
// uses for degeneracy.
func Independent(a, b, c circuit.Equation) bool {
	m := mat.NewDense(3, 3, nil)
	for i, eq := range []circuit.Equation{a, b, c} {
		row := eq.Coefficients()
		n := floats.Norm(row, 2)
		if n == 0 {
			// A zero row forces a zero determinant.
			return false
		}
		floats.Scale(1/n, row)
		m.SetRow(i, row)
	}
	return math.Abs(mat.Det(m)) > circuit.SingularEpsilon
}
