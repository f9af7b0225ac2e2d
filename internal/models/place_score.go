package models

import (
	"time"

	"github.com/google/uuid"
)

// PlaceScore is the materialized trust score and summary for one place.
// One row per place, upserted after each job; created lazily, never deleted.
type PlaceScore struct {
	PlaceID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"place_id"`
	TrustScore int       `gorm:"not null;check:trust_score >= 0 AND trust_score <= 100" json:"trust_score"`
	Summary    string    `gorm:"type:text" json:"summary"`
	UpdatedAt  time.Time `json:"updated_at"`
}
