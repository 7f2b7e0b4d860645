package problems

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

// Set is one assigned problem: the number a student selects on the form and
// the circuit parameters behind it.
type Set struct {
	ID     int
	Params circuit.Parameters
}

// Table holds the problem sets students can pick from. IDs run 1..Len()
// without gaps, matching how assignments are numbered on the worksheet.
type Table struct {
	sets map[int]Set
	max  int
}

// ErrSetNotFound reports a problem set number outside the table.
type ErrSetNotFound struct {
	ID  int
	Max int
}

func (e *ErrSetNotFound) Error() string {
	return fmt.Sprintf("problem set %d not found (valid sets are 1..%d)", e.ID, e.Max)
}

// New builds a table from the given sets. IDs must be unique and cover
// 1..len(sets) exactly.
func New(sets []Set) (*Table, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("problem table is empty")
	}

	t := &Table{sets: make(map[int]Set, len(sets))}
	for _, s := range sets {
		if s.ID < 1 {
			return nil, fmt.Errorf("problem set IDs start at 1, got %d", s.ID)
		}
		if _, dup := t.sets[s.ID]; dup {
			return nil, fmt.Errorf("duplicate problem set %d", s.ID)
		}
		t.sets[s.ID] = s
		if s.ID > t.max {
			t.max = s.ID
		}
	}
	if t.max != len(sets) {
		return nil, fmt.Errorf("problem set IDs must run 1..%d without gaps", len(sets))
	}
	return t, nil
}

// Default returns the built-in table shipped with the checker.
func Default() *Table {
	return defaultTable
}

// Get returns the problem set with the given number.
func (t *Table) Get(id int) (Set, error) {
	s, ok := t.sets[id]
	if !ok {
		return Set{}, &ErrSetNotFound{ID: id, Max: t.max}
	}
	return s, nil
}

// Len returns the number of problem sets.
func (t *Table) Len() int {
	return len(t.sets)
}

// Sets returns all problem sets ordered by ID.
func (t *Table) Sets() []Set {
	out := make([]Set, 0, len(t.sets))
	for _, s := range t.sets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Verify checks every entry: parameters must be physically valid and the
// resulting system must have a unique solution. Returns a combined error
// describing all problems found, or nil if the table is usable.
func (t *Table) Verify() error {
	var errs []string

	for _, s := range t.Sets() {
		if err := s.Params.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("set %d: %v", s.ID, err))
			continue
		}
		if _, err := circuit.SolveCurrents(s.Params); err != nil {
			errs = append(errs, fmt.Sprintf("set %d: %v", s.ID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("problem table verification failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
