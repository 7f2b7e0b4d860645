package submission

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/zaki1905/kirchhoff/internal/grading"
	"github.com/zaki1905/kirchhoff/internal/problems"
	"github.com/zaki1905/kirchhoff/internal/report"
)

// Service grades submissions against a problem table and reports each one.
// It keeps no state between calls: expected answers are derived per
// submission and records leave through the reporter only, so a Service is
// safe for concurrent use.
type Service struct {
	table     *problems.Table
	reporter  report.Reporter
	tolerance grading.Tolerance
	reveal    bool
	now       func() time.Time
	newID     func() string
}

// Options configures a Service. The zero value grades against the built-in
// table with default bands and no reporting.
type Options struct {
	// Table is the problem table. Nil means the built-in table.
	Table *problems.Table

	// Reporter receives one record per graded submission. Nil disables
	// reporting; results then carry Logged=false with a note.
	Reporter report.Reporter

	// Tolerance overrides the default grading bands when non-zero.
	Tolerance grading.Tolerance

	// RevealDetail widens student-facing feedback to include matched
	// canonical names and expected current values. Per-item verdicts are
	// always shown; this reveals the answers behind them.
	RevealDetail bool

	// Now and NewID override the time and submission ID sources in tests.
	Now   func() time.Time
	NewID func() string
}

// NewService builds a Service from options.
func NewService(opts Options) (*Service, error) {
	s := &Service{
		table:     opts.Table,
		reporter:  opts.Reporter,
		tolerance: opts.Tolerance,
		reveal:    opts.RevealDetail,
		now:       opts.Now,
		newID:     opts.NewID,
	}
	if s.table == nil {
		s.table = problems.Default()
	}
	if s.tolerance == (grading.Tolerance{}) {
		s.tolerance = grading.DefaultTolerance()
	}
	if err := s.tolerance.Validate(); err != nil {
		return nil, fmt.Errorf("tolerance: %w", err)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s, nil
}

// deliver sends the record and folds any failure into the student-facing
// logged indicator. Reporting never changes a grade.
func (s *Service) deliver(ctx context.Context, rec report.Record) (bool, string) {
	if s.reporter == nil {
		return false, "logging disabled"
	}
	if err := s.reporter.Report(ctx, rec); err != nil {
		log.Printf("submission %s not logged: %v", rec.SubmissionID, err)
		return false, "submission could not be logged; the result above still stands"
	}
	return true, ""
}
