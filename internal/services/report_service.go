package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/asddataking/shittter/internal/config"
	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	maxNotesLen  = 240
	maxPhotoURLs = 5
)

// ValidationError carries field-level detail for malformed submissions.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid report submission"
}

// RateLimitError signals a denied submission with a retry hint in seconds.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return "too many reports"
}

// ReportService validates and persists submissions. The report, its photos
// and its job are written in one transaction so a report is never visible
// without its companion job.
type ReportService struct {
	db          *gorm.DB
	cfg         *config.Config
	places      *PlaceService
	rateLimiter *RateLimitService
}

func NewReportService(db *gorm.DB, cfg *config.Config, places *PlaceService, rateLimiter *RateLimitService) *ReportService {
	return &ReportService{db: db, cfg: cfg, places: places, rateLimiter: rateLimiter}
}

// Submit runs the full intake path: validation, rate limit, place
// resolution, then the transactional report+photos+job insert. Returns the
// new report id.
func (s *ReportService) Submit(req *dto.SubmitReportRequest, deviceHash string) (uuid.UUID, error) {
	if fields := validateSubmission(req); len(fields) > 0 {
		return uuid.Nil, &ValidationError{Fields: fields}
	}

	if decision := s.rateLimiter.Check(deviceHash); !decision.Allowed {
		return uuid.Nil, &RateLimitError{RetryAfter: decision.RetryAfter}
	}

	var input *NewPlaceInput
	if req.PlaceID == nil {
		input = &NewPlaceInput{
			Name:          strings.TrimSpace(*req.Name),
			Address:       req.Address,
			Lat:           *req.Lat,
			Lng:           *req.Lng,
			GooglePlaceID: req.GooglePlaceID,
		}
	}
	placeID, err := s.places.Resolve(req.PlaceID, input)
	if err != nil {
		return uuid.Nil, err
	}

	access := req.Access
	if access == "" {
		access = models.AccessPublic
	}

	report := models.Report{
		ID:          uuid.New(),
		PlaceID:     placeID,
		Cleanliness: req.Cleanliness,
		Privacy:     req.Privacy,
		Safety:      req.Safety,
		HasLock:     req.HasLock,
		HasTP:       req.HasTP,
		Access:      access,
		Notes:       req.Notes,
		DeviceHash:  deviceHash,
		AIStatus:    models.ModerationPending,
		AIFlags:     datatypes.JSON([]byte("{}")),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return fmt.Errorf("failed to insert report: %w", err)
		}
		for _, u := range req.PhotoURLs {
			photo := models.ReportPhoto{
				ID:       uuid.New(),
				ReportID: report.ID,
				URL:      u,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return fmt.Errorf("failed to insert report photo: %w", err)
			}
		}
		job := models.Job{
			ID:       uuid.New(),
			ReportID: report.ID,
			Status:   models.JobPending,
		}
		if err := tx.Create(&job).Error; err != nil {
			return fmt.Errorf("failed to insert job: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return report.ID, nil
}

func validateSubmission(req *dto.SubmitReportRequest) map[string]string {
	fields := make(map[string]string)

	if !validRating(req.Cleanliness) {
		fields["cleanliness"] = "must be an integer between 1 and 5"
	}
	if !validRating(req.Privacy) {
		fields["privacy"] = "must be an integer between 1 and 5"
	}
	if !validRating(req.Safety) {
		fields["safety"] = "must be an integer between 1 and 5"
	}

	if req.PlaceID == nil {
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" || req.Lat == nil || req.Lng == nil {
			fields["placeId"] = "either placeId or (name, lat, lng) required"
		}
	}
	if req.Name != nil && len(*req.Name) > 500 {
		fields["name"] = "must be at most 500 characters"
	}
	if req.Address != nil && len(*req.Address) > 1000 {
		fields["address"] = "must be at most 1000 characters"
	}
	if req.Lat != nil && (*req.Lat < -90 || *req.Lat > 90) {
		fields["lat"] = "must be between -90 and 90"
	}
	if req.Lng != nil && (*req.Lng < -180 || *req.Lng > 180) {
		fields["lng"] = "must be between -180 and 180"
	}
	if req.GooglePlaceID != nil && len(*req.GooglePlaceID) > 255 {
		fields["google_place_id"] = "must be at most 255 characters"
	}

	if req.Access != "" && !validAccess(req.Access) {
		fields["access"] = "must be one of public, customers_only, code_required, unknown"
	}
	if req.Notes != nil && len(*req.Notes) > maxNotesLen {
		fields["notes"] = "must be at most 240 characters"
	}

	if len(req.PhotoURLs) > maxPhotoURLs {
		fields["photo_urls"] = "at most 5 photo URLs allowed"
	} else {
		for _, u := range req.PhotoURLs {
			if !validPhotoURL(u) {
				fields["photo_urls"] = "each entry must be a valid http(s) URL"
				break
			}
		}
	}

	return fields
}

func validRating(v int) bool {
	return v >= 1 && v <= 5
}

func validAccess(v string) bool {
	switch v {
	case models.AccessPublic, models.AccessCustomersOnly, models.AccessCodeRequired, models.AccessUnknown:
		return true
	}
	return false
}

func validPhotoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
