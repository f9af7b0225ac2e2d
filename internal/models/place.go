package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceManual = "manual"
	SourceGoogle = "google"
)

// Place is a public restroom location. Rows are immutable after creation;
// merging duplicates is handled by external tooling, never by this service.
type Place struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null;size:500" json:"name"`
	Address       *string   `gorm:"size:1000" json:"address"`
	Lat           float64   `gorm:"type:decimal(10,8);not null;index" json:"lat"`
	Lng           float64   `gorm:"type:decimal(11,8);not null;index" json:"lng"`
	GooglePlaceID *string   `gorm:"size:255" json:"google_place_id"`
	Source        string    `gorm:"size:20;not null;default:'manual'" json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}
