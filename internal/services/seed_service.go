package services

import (
	"errors"
	"fmt"

	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedPlace struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

// Demo places (San Francisco, the default map center).
var seedPlaces = []seedPlace{
	{Name: "Urban Grind Coffee", Address: "123 Main St", Lat: 37.7749, Lng: -122.4194},
	{Name: "Target", Address: "456 Market St", Lat: 37.7849, Lng: -122.4094},
	{Name: "24Hr Gas & Go", Address: "789 Oak Ave", Lat: 37.7649, Lng: -122.4294},
}

// SeedService inserts the demo places for fresh deployments.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// Seed inserts the demo places, skipping any that already exist by name and
// coordinates. Safe to call repeatedly. Returns the number inserted.
func (s *SeedService) Seed() (int, error) {
	inserted := 0
	for _, sp := range seedPlaces {
		var existing models.Place
		err := s.db.Where("name = ? AND lat = ? AND lng = ?", sp.Name, sp.Lat, sp.Lng).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, fmt.Errorf("failed to check seed place: %w", err)
		}

		address := sp.Address
		place := models.Place{
			ID:      uuid.New(),
			Name:    sp.Name,
			Address: &address,
			Lat:     sp.Lat,
			Lng:     sp.Lng,
			Source:  models.SourceManual,
		}
		if err := s.db.Create(&place).Error; err != nil {
			return inserted, fmt.Errorf("failed to insert seed place: %w", err)
		}
		inserted++
	}
	return inserted, nil
}
