package report

import (
	"context"
	"time"
)

// Sheet identifies the spreadsheet tab a submission is recorded on.
type Sheet string

const (
	SheetEquations Sheet = "Kirchhoff_Equations"
	SheetCurrents  Sheet = "Kirchhoff_Currents"

	// SheetResistors belongs to the companion resistor checker that shares
	// the logging endpoint.
	SheetResistors Sheet = "2.2-Resistors"
)

// Record is one submission row bound for the spreadsheet. Exactly one of
// Equations or Currents is set, matching which check the student ran.
type Record struct {
	// SubmissionID correlates log lines with manual follow-up when delivery
	// fails. Generated per submission, never student-supplied.
	SubmissionID string

	Sheet Sheet

	// Timestamp is the wall-clock submission time; it lands on the sheet as
	// "2006-01-02 15:04:05".
	Timestamp time.Time

	// StudentName and Comment are logged verbatim. Both may be empty.
	StudentName string
	Comment     string

	// SetID is the problem set the student selected.
	SetID int

	Equations *EquationsEntry
	Currents  *CurrentsEntry
}

// EquationsEntry carries the equation-check columns.
type EquationsEntry struct {
	// Submitted holds the three equation texts exactly as typed.
	Submitted []string

	// Result is the submission-level label: "All match",
	// "Partial/Not independent" or "No match".
	Result string

	// Detail records the per-equation outcome for the instructor, whether or
	// not the student was shown it.
	Detail string

	Independent bool
}

// CurrentsEntry carries the currents-check columns. All values are in
// milliamperes.
type CurrentsEntry struct {
	I1 float64
	I2 float64
	I3 float64

	ExpectedI1 float64
	ExpectedI2 float64
	ExpectedI3 float64

	ToleranceMilliamps float64

	// Result is the submission-level verdict label.
	Result string
}

// Reporter delivers submission records to wherever the instructor collects
// them. A delivery failure is the caller's to log; it must never change a
// computed grade. Implementations must be safe for concurrent use.
type Reporter interface {
	Report(ctx context.Context, rec Record) error
}
