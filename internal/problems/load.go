package problems

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

// tableSchema constrains an instructor-supplied problems file to the shape
// the deployed checker used: an object keyed by set number, each value a
// [V1, V2, R1, R2, R3] array.
const tableSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"minProperties": 1,
	"propertyNames": {"pattern": "^[1-9][0-9]*$"},
	"additionalProperties": {
		"type": "array",
		"items": {"type": "number"},
		"minItems": 5,
		"maxItems": 5
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledTableSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(tableSchema), &doc); err != nil {
			schemaErr = fmt.Errorf("parse table schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://problems.json", doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://problems.json")
	})
	return compiledSchema, schemaErr
}

// Load reads a problems file and returns its verified table. Any defect
// (unreadable file, malformed JSON, schema violation, duplicate or gapped
// IDs, unsolvable circuit) is a configuration error reported to the
// operator; nothing here is a student-facing failure.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problems file: %w", err)
	}
	t, err := parseTable(raw)
	if err != nil {
		return nil, fmt.Errorf("problems file %s: %w", path, err)
	}
	return t, nil
}

func parseTable(raw []byte) (*Table, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}

	schema, err := compiledTableSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var entries map[string][]float64
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	sets := make([]Set, 0, len(entries))
	for key, row := range entries {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("set key %q: %w", key, err)
		}
		sets = append(sets, Set{
			ID: id,
			Params: circuit.Parameters{
				V1: row[0],
				V2: row[1],
				R1: row[2],
				R2: row[3],
				R3: row[4],
			},
		})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })

	t, err := New(sets)
	if err != nil {
		return nil, err
	}
	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}
