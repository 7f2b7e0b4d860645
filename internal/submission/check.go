package submission

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/zaki1905/kirchhoff/internal/circuit"
	"github.com/zaki1905/kirchhoff/internal/grading"
	"github.com/zaki1905/kirchhoff/internal/report"
)

// InvalidInputError reports a submitted value the checker cannot grade, such
// as a non-finite current. It is a student-input fault, not a checker fault.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EquationsInput is one equation-check submission.
type EquationsInput struct {
	SetID     int
	Name      string
	Comment   string
	Equations [3]string
}

// EquationFeedback is the per-equation slice of an EquationsResult.
type EquationFeedback struct {
	Index   int             `json:"index"`
	Verdict grading.Verdict `json:"verdict"`

	// Matched names the canonical equation this one is equivalent to. Only
	// populated when the checker is configured to reveal detail.
	Matched string `json:"matched,omitempty"`

	// ParseReason explains why the text did not parse. Always populated on a
	// parse failure: it describes the student's input, not the answer.
	ParseReason string `json:"parseReason,omitempty"`
}

// EquationsResult is the student-facing outcome of an equation check.
type EquationsResult struct {
	SubmissionID string             `json:"submissionId"`
	SetID        int                `json:"set"`
	Verdict      grading.Verdict    `json:"verdict"`
	Summary      string             `json:"summary"`
	Independent  bool               `json:"independent"`
	Equations    []EquationFeedback `json:"equations"`
	Logged       bool               `json:"logged"`
	LogNote      string             `json:"logNote,omitempty"`
}

// CheckEquations grades one equation-set submission and reports it. The
// grade is final before reporting starts; a reporting failure only clears
// the Logged flag.
func (s *Service) CheckEquations(ctx context.Context, in EquationsInput) (*EquationsResult, error) {
	set, err := s.table.Get(in.SetID)
	if err != nil {
		return nil, err
	}

	canon := circuit.CanonicalEquations(set.Params)
	graded := grading.GradeEquations(in.Equations, canon)

	res := &EquationsResult{
		SubmissionID: s.newID(),
		SetID:        in.SetID,
		Verdict:      graded.Overall,
		Summary:      graded.Summary(),
		Independent:  graded.Independent,
	}
	for _, g := range graded.Grades {
		fb := EquationFeedback{Index: g.Index, Verdict: g.Verdict, ParseReason: g.ParseReason}
		if s.reveal {
			fb.Matched = g.Matched
		}
		res.Equations = append(res.Equations, fb)
	}

	rec := report.Record{
		SubmissionID: res.SubmissionID,
		Sheet:        report.SheetEquations,
		Timestamp:    s.now(),
		StudentName:  in.Name,
		Comment:      in.Comment,
		SetID:        in.SetID,
		Equations: &report.EquationsEntry{
			Submitted:   append([]string(nil), in.Equations[:]...),
			Result:      graded.Summary(),
			Detail:      equationDetail(graded),
			Independent: graded.Independent,
		},
	}
	res.Logged, res.LogNote = s.deliver(ctx, rec)
	return res, nil
}

// equationDetail flattens per-equation outcomes into one instructor-facing
// cell, e.g. "eq1=junction eq2=no-match eq3=parse-error(missing '=')".
func equationDetail(graded grading.EquationsReport) string {
	parts := make([]string, 0, len(graded.Grades))
	for _, g := range graded.Grades {
		switch {
		case g.ParseReason != "":
			parts = append(parts, fmt.Sprintf("eq%d=parse-error(%s)", g.Index+1, g.ParseReason))
		case g.Matched != "":
			parts = append(parts, fmt.Sprintf("eq%d=%s", g.Index+1, g.Matched))
		default:
			parts = append(parts, fmt.Sprintf("eq%d=no-match", g.Index+1))
		}
	}
	return strings.Join(parts, " ")
}

// CurrentsInput is one currents-check submission. Values are milliamperes,
// as entered on the form.
type CurrentsInput struct {
	SetID   int
	Name    string
	Comment string
	I1      float64
	I2      float64
	I3      float64
}

// CurrentFeedback is the per-current slice of a CurrentsResult.
type CurrentFeedback struct {
	Label     string          `json:"label"`
	Submitted float64         `json:"submitted"`
	Verdict   grading.Verdict `json:"verdict"`

	// Expected is the solved value in mA, revealed only when the checker is
	// configured to show answers.
	Expected *float64 `json:"expected,omitempty"`
}

// CurrentsResult is the student-facing outcome of a currents check.
type CurrentsResult struct {
	SubmissionID string            `json:"submissionId"`
	SetID        int               `json:"set"`
	Verdict      grading.Verdict   `json:"verdict"`
	Currents     []CurrentFeedback `json:"currents"`
	Logged       bool              `json:"logged"`
	LogNote      string            `json:"logNote,omitempty"`
}

// CheckCurrents solves the selected circuit, grades the submitted branch
// currents against it and reports the submission.
func (s *Service) CheckCurrents(ctx context.Context, in CurrentsInput) (*CurrentsResult, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{{"I1", in.I1}, {"I2", in.I2}, {"I3", in.I3}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return nil, &InvalidInputError{Field: f.name, Reason: "must be a finite number of milliamperes"}
		}
	}

	set, err := s.table.Get(in.SetID)
	if err != nil {
		return nil, err
	}

	solved, err := circuit.SolveCurrents(set.Params)
	if err != nil {
		return nil, fmt.Errorf("problem set %d: %w", in.SetID, err)
	}
	expected := solved.Milliamps()
	submitted := circuit.Currents{I1: in.I1, I2: in.I2, I3: in.I3}

	graded := grading.GradeCurrents(s.tolerance, submitted, expected)

	res := &CurrentsResult{
		SubmissionID: s.newID(),
		SetID:        in.SetID,
		Verdict:      graded.Overall,
	}
	for _, g := range graded.Grades {
		fb := CurrentFeedback{Label: g.Label, Submitted: g.Submitted, Verdict: g.Verdict}
		if s.reveal {
			expectedValue := g.Expected
			fb.Expected = &expectedValue
		}
		res.Currents = append(res.Currents, fb)
	}

	rec := report.Record{
		SubmissionID: res.SubmissionID,
		Sheet:        report.SheetCurrents,
		Timestamp:    s.now(),
		StudentName:  in.Name,
		Comment:      in.Comment,
		SetID:        in.SetID,
		Currents: &report.CurrentsEntry{
			I1:                 in.I1,
			I2:                 in.I2,
			I3:                 in.I3,
			ExpectedI1:         expected.I1,
			ExpectedI2:         expected.I2,
			ExpectedI3:         expected.I3,
			ToleranceMilliamps: s.tolerance.CorrectMilliamps,
			Result:             string(graded.Overall),
		},
	}
	res.Logged, res.LogNote = s.deliver(ctx, rec)
	return res, nil
}
