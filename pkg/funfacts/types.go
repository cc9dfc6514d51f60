package funfacts

import "github.com/google/uuid"

// Document holds the ordered fun facts recorded for a single state
type Document struct {
	ID        string   `json:"id" yaml:"-"`
	StateCode string   `json:"stateCode" yaml:"stateCode"`
	Funfacts  []string `json:"funfacts" yaml:"funfacts"`
}

// NewDocument creates a document with a fresh id
func NewDocument(stateCode string, facts []string) *Document {
	return &Document{
		ID:        uuid.NewString(),
		StateCode: stateCode,
		Funfacts:  copyFacts(facts),
	}
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	return &Document{
		ID:        d.ID,
		StateCode: d.StateCode,
		Funfacts:  copyFacts(d.Funfacts),
	}
}

// HasFacts reports whether the document carries at least one fact
func (d *Document) HasFacts() bool {
	return d != nil && len(d.Funfacts) > 0
}

// copyFacts copies a fact list, never returning nil so documents encode an
// empty list rather than null
func copyFacts(facts []string) []string {
	return append(make([]string, 0, len(facts)), facts...)
}
