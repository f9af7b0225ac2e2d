package dto

import "github.com/google/uuid"

// SubmitReportRequest accepts either an existing place id or the fields to
// create a new place (name, lat, lng at minimum).
type SubmitReportRequest struct {
	PlaceID       *uuid.UUID `json:"placeId"`
	Name          *string    `json:"name"`
	Address       *string    `json:"address"`
	Lat           *float64   `json:"lat"`
	Lng           *float64   `json:"lng"`
	GooglePlaceID *string    `json:"google_place_id"`

	Cleanliness int      `json:"cleanliness"`
	Privacy     int      `json:"privacy"`
	Safety      int      `json:"safety"`
	HasLock     bool     `json:"has_lock"`
	HasTP       bool     `json:"has_tp"`
	Access      string   `json:"access"`
	Notes       *string  `json:"notes"`
	PhotoURLs   []string `json:"photo_urls"`
}

type SubmitReportResponse struct {
	Success  bool      `json:"success"`
	ReportID uuid.UUID `json:"report_id"`
}

type RunJobsResponse struct {
	Processed int `json:"processed"`
}
