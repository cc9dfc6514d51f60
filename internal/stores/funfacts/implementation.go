package funfacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanbaker/states/pkg/funfacts"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store handles storage and retrieval of fun fact documents using MySQL
type Store struct {
	db *gorm.DB
}

// NewStore creates a new fun fact store with MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return NewStoreFromDB(db)
}

// NewStoreFromDB wraps an already opened connection and migrates the schema
func NewStoreFromDB(db *gorm.DB) (*Store, error) {
	store := &Store{db: db}

	// Auto-migrate tables
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&DocumentModel{})
}

// FindByCode retrieves the document for a state code, or nil if there is none
func (s *Store) FindByCode(ctx context.Context, stateCode string) (*funfacts.Document, error) {
	var model DocumentModel
	result := s.db.WithContext(ctx).Where("state_code = ?", stateCode).Order("created_at").First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fun facts for '%s': %w", stateCode, result.Error)
	}

	return model.toDocument(), nil
}

// Create inserts a new document
func (s *Store) Create(ctx context.Context, doc *funfacts.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	if doc.StateCode == "" {
		return fmt.Errorf("state code cannot be empty")
	}

	model := &DocumentModel{
		ID:        doc.ID,
		StateCode: doc.StateCode,
		Funfacts:  doc.Clone().Funfacts,
	}

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create fun facts for '%s': %w", doc.StateCode, err)
	}

	return nil
}

// Save persists the fact list of an existing document
func (s *Store) Save(ctx context.Context, doc *funfacts.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document id cannot be empty")
	}

	update := &DocumentModel{
		UpdatedAt: time.Now(),
		Funfacts:  doc.Clone().Funfacts,
	}

	// Select forces the write even when the list shrinks to empty
	result := s.db.WithContext(ctx).Model(&DocumentModel{ID: doc.ID}).Select("funfacts", "updated_at").Updates(update)
	if result.Error != nil {
		return fmt.Errorf("failed to save fun facts for '%s': %w", doc.StateCode, result.Error)
	}

	return nil
}

// Replace sets the fact list for a state code, creating the document when needed
func (s *Store) Replace(ctx context.Context, stateCode string, facts []string) (*funfacts.Document, error) {
	doc, err := s.FindByCode(ctx, stateCode)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		doc = funfacts.NewDocument(stateCode, facts)
		if err := s.Create(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	doc.Funfacts = funfacts.NewDocument(stateCode, facts).Funfacts
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}
