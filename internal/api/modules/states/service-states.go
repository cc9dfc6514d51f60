package states_module

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/ethanbaker/states/pkg/funfacts"
	"github.com/ethanbaker/states/pkg/states"
	"golang.org/x/sync/errgroup"
)

// StatesService merges the reference table with the fun fact store
type StatesService struct {
	table *states.Table
	store funfacts.StoreInterface
	intn  func(n int) int // random index source, [0, n)
}

/** ---- INIT ---- */

// NewStatesService creates a service backed by the given table and store
func NewStatesService(table *states.Table, store funfacts.StoreInterface) *StatesService {
	return &StatesService{
		table: table,
		store: store,
		intn:  rand.IntN,
	}
}

// WithRandom replaces the random index source
func (s *StatesService) WithRandom(intn func(n int) int) *StatesService {
	s.intn = intn
	return s
}

/** ---- VALIDATION ---- */

// NormalizeCode uppercases code and checks it against the reference table
func (s *StatesService) NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(code)
	if !s.table.IsValid(code) {
		return "", ErrInvalidStateCode
	}
	return code, nil
}

// Lookup returns the unmerged reference record for code
func (s *StatesService) Lookup(code string) (states.State, error) {
	code, err := s.NormalizeCode(code)
	if err != nil {
		return states.State{}, err
	}

	state, _ := s.table.Lookup(code)
	return state, nil
}

/** ---- READS ---- */

// MergeFacts returns state with its fun facts attached. States without a
// document, or with an empty list, come back unchanged.
func (s *StatesService) MergeFacts(ctx context.Context, state states.State) (states.State, error) {
	doc, err := s.store.FindByCode(ctx, state.Code)
	if err != nil {
		return states.State{}, err
	}

	if doc.HasFacts() {
		state.Funfacts = slices.Clone(doc.Funfacts)
	}
	return state, nil
}

// ListStates returns the filtered states with facts merged. Fetches run
// concurrently; the result keeps the table order.
func (s *StatesService) ListStates(ctx context.Context, contig *bool) ([]states.State, error) {
	filtered := s.table.Filter(contig)
	merged := make([]states.State, len(filtered))

	g, gctx := errgroup.WithContext(ctx)
	for i, state := range filtered {
		g.Go(func() error {
			result, err := s.MergeFacts(gctx, state)
			if err != nil {
				return err
			}
			merged[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to merge fun facts: %w", err)
	}

	return merged, nil
}

// GetState returns a single state with facts merged
func (s *StatesService) GetState(ctx context.Context, code string) (states.State, error) {
	state, err := s.Lookup(code)
	if err != nil {
		return states.State{}, err
	}

	return s.MergeFacts(ctx, state)
}

// RandomFact picks one of the state's facts uniformly at random
func (s *StatesService) RandomFact(ctx context.Context, code string) (string, error) {
	doc, err := s.findFacts(ctx, code)
	if err != nil {
		return "", err
	}

	return doc.Funfacts[s.intn(len(doc.Funfacts))], nil
}

/** ---- WRITES ---- */

// AddFacts appends facts to the state's document, creating it when missing
func (s *StatesService) AddFacts(ctx context.Context, code string, facts []string) (*funfacts.Document, error) {
	code, err := s.NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	if len(facts) == 0 {
		return nil, ErrFactsRequired
	}

	doc, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		doc = funfacts.NewDocument(code, facts)
		if err := s.store.Create(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	doc.Funfacts = append(doc.Funfacts, facts...)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// UpdateFact replaces the fact at the 1-based index. An index of 0 counts as
// not supplied.
func (s *StatesService) UpdateFact(ctx context.Context, code string, index int, fact string) (*funfacts.Document, error) {
	code, err := s.NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	if index == 0 {
		return nil, ErrIndexRequired
	}
	if fact == "" {
		return nil, ErrFactRequired
	}

	doc, err := s.findFacts(ctx, code)
	if err != nil {
		return nil, err
	}

	i := index - 1
	if i < 0 || i >= len(doc.Funfacts) {
		return nil, ErrNoFactAtIndex
	}

	doc.Funfacts[i] = fact
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteFact removes the fact at the 1-based index. An index of 0 counts as
// not supplied.
func (s *StatesService) DeleteFact(ctx context.Context, code string, index int) (*funfacts.Document, error) {
	code, err := s.NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	if index == 0 {
		return nil, ErrIndexRequired
	}

	doc, err := s.findFacts(ctx, code)
	if err != nil {
		return nil, err
	}

	i := index - 1
	if i < 0 || i >= len(doc.Funfacts) {
		return nil, ErrNoFactAtIndex
	}

	doc.Funfacts = slices.Delete(doc.Funfacts, i, i+1)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

/** ---- HELPERS ---- */

// findFacts loads the state's document, failing with ErrNoFacts when there is
// nothing to read or modify
func (s *StatesService) findFacts(ctx context.Context, code string) (*funfacts.Document, error) {
	code, err := s.NormalizeCode(code)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !doc.HasFacts() {
		return nil, ErrNoFacts
	}

	return doc, nil
}
