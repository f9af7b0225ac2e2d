package services

import (
	"errors"
	"fmt"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPlaceNotFound     = errors.New("place not found")
	ErrPlaceCreateFailed = errors.New("failed to create place")
)

// NewPlaceInput are the fields for creating a place alongside a report.
type NewPlaceInput struct {
	Name          string
	Address       *string
	Lat           float64
	Lng           float64
	GooglePlaceID *string
}

// PlaceService resolves submissions to place rows. No proximity
// deduplication is performed: every new-place submission creates a row.
type PlaceService struct {
	db *gorm.DB
}

func NewPlaceService(db *gorm.DB) *PlaceService {
	return &PlaceService{db: db}
}

// Resolve returns the id of an existing place or creates a new one.
// Exactly one of placeID / input must be set; the caller validates that.
func (s *PlaceService) Resolve(placeID *uuid.UUID, input *NewPlaceInput) (uuid.UUID, error) {
	if placeID != nil {
		var place models.Place
		if err := s.db.Select("id").First(&place, "id = ?", *placeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, ErrPlaceNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to look up place: %w", err)
		}
		return place.ID, nil
	}

	place := models.Place{
		ID:            uuid.New(),
		Name:          input.Name,
		Address:       input.Address,
		Lat:           input.Lat,
		Lng:           input.Lng,
		GooglePlaceID: input.GooglePlaceID,
		Source:        models.SourceManual,
	}
	if err := s.db.Create(&place).Error; err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrPlaceCreateFailed, err)
	}
	if place.ID == uuid.Nil {
		return uuid.Nil, ErrPlaceCreateFailed
	}
	return place.ID, nil
}

// Get fetches one place for the detail read path.
func (s *PlaceService) Get(id uuid.UUID) (*models.Place, error) {
	var place models.Place
	if err := s.db.First(&place, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to fetch place: %w", err)
	}
	return &place, nil
}

// detailReportLimit caps how many recent approved reports the detail page shows.
const detailReportLimit = 10

// Detail assembles the public place page: the place, its current score if
// one exists, and its newest approved reports with photo URLs.
func (s *PlaceService) Detail(id uuid.UUID) (*dto.PlaceDetailResponse, error) {
	place, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	resp := &dto.PlaceDetailResponse{
		ID:            place.ID,
		Name:          place.Name,
		Address:       place.Address,
		Lat:           place.Lat,
		Lng:           place.Lng,
		GooglePlaceID: place.GooglePlaceID,
		Source:        place.Source,
		CreatedAt:     place.CreatedAt,
		Reports:       []dto.ApprovedReport{},
	}

	var score models.PlaceScore
	err = s.db.First(&score, "place_id = ?", id).Error
	switch {
	case err == nil:
		resp.Score = &dto.PlaceScoreView{
			TrustScore: score.TrustScore,
			Summary:    score.Summary,
			UpdatedAt:  score.UpdatedAt,
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to fetch place score: %w", err)
	}

	var reports []models.Report
	err = s.db.Preload("Photos").
		Where("place_id = ? AND ai_status = ?", id, models.ModerationApproved).
		Order("created_at DESC").
		Limit(detailReportLimit).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved reports: %w", err)
	}

	for _, r := range reports {
		urls := make([]string, 0, len(r.Photos))
		for _, p := range r.Photos {
			urls = append(urls, p.URL)
		}
		resp.Reports = append(resp.Reports, dto.ApprovedReport{
			ID:          r.ID,
			Cleanliness: r.Cleanliness,
			Privacy:     r.Privacy,
			Safety:      r.Safety,
			HasLock:     r.HasLock,
			HasTP:       r.HasTP,
			Access:      r.Access,
			Notes:       r.Notes,
			PhotoURLs:   urls,
			CreatedAt:   r.CreatedAt,
		})
	}
	return resp, nil
}
