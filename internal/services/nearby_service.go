package services

import (
	"fmt"
	"sort"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/geo"
	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Radius bounds in meters for nearby queries.
const (
	MinRadiusM     = 100
	MaxRadiusM     = 50000
	DefaultRadiusM = 1200
)

// UnscoredTrustScore is reported for places that have no place_scores row yet.
const UnscoredTrustScore = 50

// NearbyParams is a validated nearby query. HasLock/HasTP are majority
// filters: when set, places without a strict lock/TP majority are excluded.
type NearbyParams struct {
	Lat      float64
	Lng      float64
	RadiusM  float64
	MinScore *int
	HasLock  bool
	HasTP    bool
}

type amenityTally struct {
	lockYes, lockNo int
	tpYes, tpNo     int
	total           int
}

// NearbyService is the geospatial read path. It is independent of the job
// queue: scores come from the materialized place_scores rows, majority flags
// are tallied directly from approved reports.
type NearbyService struct {
	db *gorm.DB
}

func NewNearbyService(db *gorm.DB) *NearbyService {
	return &NearbyService{db: db}
}

// Search returns places within the radius, annotated with distance, trust
// score, summary, report count and lock/TP majority flags, ordered by
// distance. Candidates come from a bounding-box prefilter; the exact
// great-circle distance check happens here.
func (s *NearbyService) Search(p NearbyParams) ([]dto.NearbyPlace, error) {
	minLat, maxLat, minLng, maxLng := geo.BoundingBox(p.Lat, p.Lng, p.RadiusM)

	var places []models.Place
	err := s.db.
		Where("lat BETWEEN ? AND ? AND lng BETWEEN ? AND ?", minLat, maxLat, minLng, maxLng).
		Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby places: %w", err)
	}

	results := make([]dto.NearbyPlace, 0, len(places))
	ids := make([]uuid.UUID, 0, len(places))
	for _, place := range places {
		distance := geo.HaversineM(p.Lat, p.Lng, place.Lat, place.Lng)
		if distance > p.RadiusM {
			continue
		}
		results = append(results, dto.NearbyPlace{
			ID:            place.ID,
			Name:          place.Name,
			Address:       place.Address,
			Lat:           place.Lat,
			Lng:           place.Lng,
			GooglePlaceID: place.GooglePlaceID,
			Source:        place.Source,
			CreatedAt:     place.CreatedAt,
			TrustScore:    UnscoredTrustScore,
			DistanceM:     distance,
		})
		ids = append(ids, place.ID)
	}
	if len(results) == 0 {
		return results, nil
	}

	if err := s.applyScores(results, ids); err != nil {
		return nil, err
	}

	if p.MinScore != nil {
		filtered := results[:0]
		for _, r := range results {
			if r.TrustScore >= *p.MinScore {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	tallies, err := s.tallyAmenities(ids)
	if err != nil {
		return nil, err
	}

	annotated := results[:0]
	for _, r := range results {
		t := tallies[r.ID]
		r.ReportCount = t.total

		if lockTotal := t.lockYes + t.lockNo; lockTotal > 0 {
			v := t.lockYes*2 > lockTotal
			r.HasLockMajority = &v
		}
		if tpTotal := t.tpYes + t.tpNo; tpTotal > 0 {
			v := t.tpYes*2 > tpTotal
			r.HasTPMajority = &v
		}

		// Majority filters, not existence filters: ties and report-less
		// places are excluded, never treated as false matches.
		if p.HasLock && (r.HasLockMajority == nil || !*r.HasLockMajority) {
			continue
		}
		if p.HasTP && (r.HasTPMajority == nil || !*r.HasTPMajority) {
			continue
		}
		annotated = append(annotated, r)
	}
	results = annotated

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceM < results[j].DistanceM
	})
	return results, nil
}

func (s *NearbyService) applyScores(results []dto.NearbyPlace, ids []uuid.UUID) error {
	var scores []models.PlaceScore
	if err := s.db.Where("place_id IN ?", ids).Find(&scores).Error; err != nil {
		return fmt.Errorf("failed to load place scores: %w", err)
	}
	byPlace := make(map[uuid.UUID]models.PlaceScore, len(scores))
	for _, sc := range scores {
		byPlace[sc.PlaceID] = sc
	}
	for i := range results {
		if sc, ok := byPlace[results[i].ID]; ok {
			results[i].TrustScore = sc.TrustScore
			summary := sc.Summary
			results[i].Summary = &summary
		}
	}
	return nil
}

func (s *NearbyService) tallyAmenities(ids []uuid.UUID) (map[uuid.UUID]amenityTally, error) {
	var reports []models.Report
	err := s.db.Select("place_id", "has_lock", "has_tp").
		Where("place_id IN ? AND ai_status = ?", ids, models.ModerationApproved).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to tally amenity votes: %w", err)
	}

	tallies := make(map[uuid.UUID]amenityTally)
	for _, r := range reports {
		t := tallies[r.PlaceID]
		t.total++
		if r.HasLock {
			t.lockYes++
		} else {
			t.lockNo++
		}
		if r.HasTP {
			t.tpYes++
		} else {
			t.tpNo++
		}
		tallies[r.PlaceID] = t
	}
	return tallies, nil
}
