package funfacts

import "context"

// StoreInterface defines the persistence operations for fun fact documents.
// FindByCode returns (nil, nil) when no document exists for the code.
type StoreInterface interface {
	FindByCode(ctx context.Context, stateCode string) (*Document, error)
	Create(ctx context.Context, doc *Document) error
	Save(ctx context.Context, doc *Document) error
	Replace(ctx context.Context, stateCode string, facts []string) (*Document, error)
}
