package problems

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	if table.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", table.Len())
	}
	if err := table.Verify(); err != nil {
		t.Fatalf("Verify() = %v", err)
	}

	first, err := table.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	want := circuit.Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300}
	if first.Params != want {
		t.Errorf("set 1 = %+v, want %+v", first.Params, want)
	}

	sets := table.Sets()
	for i, s := range sets {
		if s.ID != i+1 {
			t.Fatalf("Sets()[%d].ID = %d, want %d", i, s.ID, i+1)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	table := Default()

	for _, id := range []int{0, -3, 41, 1000} {
		_, err := table.Get(id)
		if err == nil {
			t.Fatalf("Get(%d) expected error", id)
		}
		var nf *ErrSetNotFound
		if !errors.As(err, &nf) {
			t.Fatalf("Get(%d) error = %T, want *ErrSetNotFound", id, err)
		}
		if nf.ID != id || nf.Max != 40 {
			t.Errorf("Get(%d) error carries ID=%d Max=%d", id, nf.ID, nf.Max)
		}
	}
}

func TestNewRejects(t *testing.T) {
	valid := circuit.Parameters{V1: 10, V2: 5, R1: 100, R2: 200, R3: 300}

	tests := []struct {
		name string
		sets []Set
	}{
		{"empty", nil},
		{"duplicate id", []Set{{ID: 1, Params: valid}, {ID: 1, Params: valid}}},
		{"gap", []Set{{ID: 1, Params: valid}, {ID: 3, Params: valid}}},
		{"zero id", []Set{{ID: 0, Params: valid}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.sets); err == nil {
				t.Error("New() expected error")
			}
		})
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problems.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `{
		"1": [10, 5, 100, 200, 300],
		"2": [12, 6, 150, 330, 220]
	}`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	second, err := table.Get(2)
	if err != nil {
		t.Fatalf("Get(2) error = %v", err)
	}
	want := circuit.Parameters{V1: 12, V2: 6, R1: 150, R2: 330, R3: 220}
	if second.Params != want {
		t.Errorf("set 2 = %+v, want %+v", second.Params, want)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{"not json", `{"1": [10`, "not valid JSON"},
		{"wrong arity", `{"1": [10, 5, 100]}`, "schema validation failed"},
		{"non-numeric key", `{"one": [10, 5, 100, 200, 300]}`, "schema validation failed"},
		{"string entry", `{"1": ["ten", 5, 100, 200, 300]}`, "schema validation failed"},
		{"array root", `[[10, 5, 100, 200, 300]]`, "schema validation failed"},
		{"gapped ids", `{"1": [10, 5, 100, 200, 300], "3": [12, 6, 150, 330, 220]}`, "without gaps"},
		{"zero resistance", `{"1": [10, 5, 0, 200, 300]}`, "set 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
