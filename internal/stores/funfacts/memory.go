package funfacts

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethanbaker/states/pkg/funfacts"
)

// InMemoryStore provides an in-memory implementation of StoreInterface for
// development and testing
type InMemoryStore struct {
	documents map[string]*funfacts.Document // keyed by state code
	mutex     sync.RWMutex
}

// NewInMemoryStore creates a new in-memory fun fact store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		documents: make(map[string]*funfacts.Document),
		mutex:     sync.RWMutex{},
	}
}

// FindByCode retrieves the document for a state code, or nil if there is none
func (s *InMemoryStore) FindByCode(ctx context.Context, stateCode string) (*funfacts.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	doc, exists := s.documents[stateCode]
	if !exists {
		return nil, nil
	}

	// Return a copy to avoid external mutations
	return doc.Clone(), nil
}

// Create inserts a new document. A document already stored for the same code
// is overwritten, so racing first writes resolve as last write wins.
func (s *InMemoryStore) Create(ctx context.Context, doc *funfacts.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.ID == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	if doc.StateCode == "" {
		return fmt.Errorf("state code cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.documents[doc.StateCode] = doc.Clone()
	return nil
}

// Save persists the fact list of an existing document. The stored document
// for the code is overwritten even if a concurrent Create replaced it.
func (s *InMemoryStore) Save(ctx context.Context, doc *funfacts.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.documents[doc.StateCode]; !exists {
		return fmt.Errorf("document '%s' not found", doc.ID)
	}

	s.documents[doc.StateCode] = doc.Clone()
	return nil
}

// Replace sets the fact list for a state code, creating the document when needed
func (s *InMemoryStore) Replace(ctx context.Context, stateCode string, facts []string) (*funfacts.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if stateCode == "" {
		return nil, fmt.Errorf("state code cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc := funfacts.NewDocument(stateCode, facts)
	if existing, exists := s.documents[stateCode]; exists {
		doc.ID = existing.ID
	}

	s.documents[stateCode] = doc
	return doc.Clone(), nil
}

// Len returns the number of stored documents
func (s *InMemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.documents)
}
