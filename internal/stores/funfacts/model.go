package funfacts

import (
	"time"

	"github.com/ethanbaker/states/pkg/funfacts"
)

// DocumentModel represents the database model for fun fact documents. The fact
// list is stored as a JSON array so ordering and duplicates survive a round trip.
type DocumentModel struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	StateCode string   `json:"state_code" gorm:"column:state_code;index;not null;size:2"`
	Funfacts  []string `json:"funfacts" gorm:"column:funfacts;type:json;serializer:json"`
}

// TableName sets the table name for GORM
func (DocumentModel) TableName() string {
	return "state_funfacts"
}

// toDocument converts the database model into the domain document
func (m *DocumentModel) toDocument() *funfacts.Document {
	doc := &funfacts.Document{
		ID:        m.ID,
		StateCode: m.StateCode,
		Funfacts:  m.Funfacts,
	}
	return doc.Clone()
}
