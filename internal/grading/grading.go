package grading

import (
	"errors"
	"fmt"
	"math"

	"github.com/zaki1905/kirchhoff/internal/circuit"
	"github.com/zaki1905/kirchhoff/internal/equations"
)

// Verdict classifies one compared value or a whole submission.
type Verdict string

const (
	VerdictCorrect   Verdict = "Correct"
	VerdictAlmost    Verdict = "Almost"
	VerdictIncorrect Verdict = "Incorrect"
)

// Tolerance defines the grading bands for current comparisons, in
// milliamperes.
type Tolerance struct {
	// CorrectMilliamps is the full-credit band: a difference at or under it
	// grades Correct.
	CorrectMilliamps float64

	// AlmostMultiplier widens the band for partial credit: a difference at
	// or under CorrectMilliamps*AlmostMultiplier grades Almost.
	AlmostMultiplier float64
}

// DefaultTolerance matches the deployed checker: ±1 mA for full credit,
// twice that for partial credit.
func DefaultTolerance() Tolerance {
	return Tolerance{CorrectMilliamps: 1.0, AlmostMultiplier: 2.0}
}

// Validate checks that the bands are usable.
func (t Tolerance) Validate() error {
	if !(t.CorrectMilliamps > 0) || math.IsInf(t.CorrectMilliamps, 0) {
		return fmt.Errorf("correct band must be a positive finite width, got %v", t.CorrectMilliamps)
	}
	if !(t.AlmostMultiplier >= 1) || math.IsInf(t.AlmostMultiplier, 0) {
		return fmt.Errorf("almost multiplier must be at least 1, got %v", t.AlmostMultiplier)
	}
	return nil
}

// GradeValue grades one submitted current against its expected value, both
// in milliamperes. Band edges are inclusive: a difference of exactly
// CorrectMilliamps still grades Correct, and exactly the almost bound still
// grades Almost, so the bands abut with no gap.
func (t Tolerance) GradeValue(submitted, expected float64) Verdict {
	diff := math.Abs(submitted - expected)
	switch {
	case diff <= t.CorrectMilliamps:
		return VerdictCorrect
	case diff <= t.CorrectMilliamps*t.AlmostMultiplier:
		return VerdictAlmost
	default:
		return VerdictIncorrect
	}
}

// CurrentGrade is the outcome for one branch current.
type CurrentGrade struct {
	// Label names the current: "I1", "I2" or "I3".
	Label string

	// Submitted and Expected are in milliamperes.
	Submitted float64
	Expected  float64

	Verdict Verdict
}

// CurrentsReport is the outcome of grading a currents submission.
type CurrentsReport struct {
	Grades  [3]CurrentGrade
	Overall Verdict
}

// GradeCurrents grades the submitted branch currents against the solved
// values, both already in milliamperes. The overall verdict is the worst of
// the three: full credit requires every current in band.
func GradeCurrents(t Tolerance, submitted, expected circuit.Currents) CurrentsReport {
	var rep CurrentsReport
	pairs := []struct {
		label     string
		submitted float64
		expected  float64
	}{
		{"I1", submitted.I1, expected.I1},
		{"I2", submitted.I2, expected.I2},
		{"I3", submitted.I3, expected.I3},
	}

	rep.Overall = VerdictCorrect
	for i, p := range pairs {
		v := t.GradeValue(p.submitted, p.expected)
		rep.Grades[i] = CurrentGrade{
			Label:     p.label,
			Submitted: p.submitted,
			Expected:  p.expected,
			Verdict:   v,
		}
		rep.Overall = worse(rep.Overall, v)
	}
	return rep
}

// worse returns the lower of two verdicts, ordering
// Correct > Almost > Incorrect.
func worse(a, b Verdict) Verdict {
	rank := map[Verdict]int{VerdictCorrect: 2, VerdictAlmost: 1, VerdictIncorrect: 0}
	if rank[b] < rank[a] {
		return b
	}
	return a
}

// EquationGrade is the outcome for one submitted equation.
type EquationGrade struct {
	// Index is the 0-based position in the submission.
	Index int

	// Raw is the submitted text, verbatim.
	Raw string

	Verdict Verdict

	// Matched names the canonical equation this submission is equivalent to.
	// Empty when nothing matched.
	Matched string

	// ParseReason is the student-facing reason when the text did not parse.
	ParseReason string
}

// EquationsReport is the outcome of grading an equation-set submission.
type EquationsReport struct {
	Grades [3]EquationGrade

	// Independent reports whether the three equations span the full system.
	// It is false whenever any equation failed to parse.
	Independent bool

	Overall Verdict
}

// GradeEquations parses and grades three submitted equations against the
// canonical set. A parse failure grades that equation Incorrect and the pass
// continues. The overall verdict is Correct only when every equation matches
// a canonical one and the set is mutually independent; equations carry no
// partial-credit band.
func GradeEquations(raw [3]string, canon []circuit.CanonicalEquation) EquationsReport {
	var rep EquationsReport
	var parsed [3]circuit.Equation
	allParsed := true

	for i, text := range raw {
		g := EquationGrade{Index: i, Raw: text, Verdict: VerdictIncorrect}
		eq, err := equations.Parse(text)
		if err != nil {
			allParsed = false
			var pe *equations.ParseError
			if errors.As(err, &pe) {
				g.ParseReason = pe.Msg
			} else {
				g.ParseReason = err.Error()
			}
			rep.Grades[i] = g
			continue
		}
		parsed[i] = eq
		if idx, ok := equations.MatchAny(eq, canon); ok {
			g.Verdict = VerdictCorrect
			g.Matched = canon[idx].Name
		}
		rep.Grades[i] = g
	}

	if allParsed {
		rep.Independent = equations.Independent(parsed[0], parsed[1], parsed[2])
	}

	rep.Overall = VerdictIncorrect
	if rep.Independent && rep.Grades[0].Verdict == VerdictCorrect &&
		rep.Grades[1].Verdict == VerdictCorrect && rep.Grades[2].Verdict == VerdictCorrect {
		rep.Overall = VerdictCorrect
	}
	return rep
}

// Summary returns the submission-level label recorded on the spreadsheet:
// "All match", "Partial/Not independent", or "No match".
func (r EquationsReport) Summary() string {
	matches := 0
	for _, g := range r.Grades {
		if g.Verdict == VerdictCorrect {
			matches++
		}
	}
	switch {
	case matches == len(r.Grades) && r.Independent:
		return "All match"
	case matches > 0:
		return "Partial/Not independent"
	default:
		return "No match"
	}
}
