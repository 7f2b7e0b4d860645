package report

import (
	"context"
	"sync"
)

// MockReporter is a deterministic Reporter for testing. It records every
// delivered record and returns queued errors in FIFO order; an empty queue
// means success.
type MockReporter struct {
	mu sync.Mutex

	// Calls holds every record passed to Report, in order.
	Calls []Record

	errs []error
}

// NewMockReporter creates a MockReporter that succeeds until errors are
// queued with FailNext.
func NewMockReporter() *MockReporter {
	return &MockReporter{}
}

// Report records the submission and returns the next queued error, if any.
func (m *MockReporter) Report(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, rec)

	if len(m.errs) == 0 {
		return nil
	}
	err := m.errs[0]
	m.errs = m.errs[1:]
	return err
}

// FailNext queues an error to return from the next Report call.
func (m *MockReporter) FailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, err)
}

// CallCount returns the number of Report calls made.
func (m *MockReporter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
