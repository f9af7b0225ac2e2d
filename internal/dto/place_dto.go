package dto

import (
	"time"

	"github.com/google/uuid"
)

// NearbyPlace is one row of the nearby search result. Majority flags are
// pointers: nil means no approved reports exist for the place, which is
// distinct from a false majority.
type NearbyPlace struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       *string   `json:"address"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	GooglePlaceID *string   `json:"google_place_id"`
	Source        string    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`

	TrustScore      int     `json:"trust_score"`
	Summary         *string `json:"summary"`
	DistanceM       float64 `json:"distance_m"`
	HasLockMajority *bool   `json:"has_lock_majority,omitempty"`
	HasTPMajority   *bool   `json:"has_tp_majority,omitempty"`
	ReportCount     int     `json:"report_count"`
}

// ApprovedReport is a public view of a report on the place-detail page.
type ApprovedReport struct {
	ID          uuid.UUID `json:"id"`
	Cleanliness int       `json:"cleanliness"`
	Privacy     int       `json:"privacy"`
	Safety      int       `json:"safety"`
	HasLock     bool      `json:"has_lock"`
	HasTP       bool      `json:"has_tp"`
	Access      string    `json:"access"`
	Notes       *string   `json:"notes"`
	PhotoURLs   []string  `json:"photo_urls"`
	CreatedAt   time.Time `json:"created_at"`
}

type PlaceScoreView struct {
	TrustScore int       `json:"trust_score"`
	Summary    string    `json:"summary"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PlaceDetailResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Address       *string          `json:"address"`
	Lat           float64          `json:"lat"`
	Lng           float64          `json:"lng"`
	GooglePlaceID *string          `json:"google_place_id"`
	Source        string           `json:"source"`
	CreatedAt     time.Time        `json:"created_at"`
	Score         *PlaceScoreView  `json:"score"`
	Reports       []ApprovedReport `json:"reports"`
}

type SeedResponse struct {
	Success  bool `json:"success"`
	Inserted int  `json:"inserted"`
}
