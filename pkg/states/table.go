package states

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

//go:embed statesData.json
var statesData []byte

// Table is an immutable, code-indexed view over the reference records
type Table struct {
	records []State
	byCode  map[string]int
}

// Load parses the bundled dataset into a Table
func Load() (*Table, error) {
	var records []State
	if err := json.Unmarshal(statesData, &records); err != nil {
		return nil, fmt.Errorf("failed to parse states data: %w", err)
	}

	return NewTable(records)
}

// MustLoad is Load for process start, where a corrupt bundle is unrecoverable
func MustLoad() *Table {
	table, err := Load()
	if err != nil {
		panic(err)
	}
	return table
}

// NewTable builds a table from the given records. Codes must be unique.
func NewTable(records []State) (*Table, error) {
	table := &Table{
		records: make([]State, len(records)),
		byCode:  make(map[string]int, len(records)),
	}

	for i, record := range records {
		code := strings.ToUpper(record.Code)
		if _, exists := table.byCode[code]; exists {
			return nil, fmt.Errorf("duplicate state code '%s'", code)
		}

		record.Code = code
		record.Funfacts = nil
		table.records[i] = record
		table.byCode[code] = i
	}

	return table, nil
}

// IsValid reports whether code names a state in the table (case-insensitive)
func (t *Table) IsValid(code string) bool {
	_, ok := t.byCode[strings.ToUpper(code)]
	return ok
}

// Lookup returns the record for code (case-insensitive)
func (t *Table) Lookup(code string) (State, bool) {
	i, ok := t.byCode[strings.ToUpper(code)]
	if !ok {
		return State{}, false
	}
	return t.records[i], true
}

// All returns every record in dataset order
func (t *Table) All() []State {
	return slices.Clone(t.records)
}

// Filter applies the contiguous filter. A nil contig returns every record, true
// drops the non-contiguous states and false keeps only them.
func (t *Table) Filter(contig *bool) []State {
	if contig == nil {
		return t.All()
	}

	filtered := make([]State, 0, len(t.records))
	for _, record := range t.records {
		if slices.Contains(NonContiguous, record.Code) != *contig {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.records)
}
