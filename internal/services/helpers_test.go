package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/asddataking/shittter/internal/config"
	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// testDB opens an isolated in-memory sqlite database and migrates the
// pipeline models. Each call gets its own database; cache=shared only spans
// the connections of one pool.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Place{},
		&models.Report{},
		&models.ReportPhoto{},
		&models.Job{},
		&models.PlaceScore{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		DeviceHashSalt: "test-salt",
		RateMaxPerHour: 3,
		RateMaxPerDay:  10,
		JobBatchSize:   20,
		ScoreWindow:    20,
	}
}

func makePlace(t *testing.T, db *gorm.DB, name string, lat, lng float64) models.Place {
	t.Helper()
	place := models.Place{
		ID:     uuid.New(),
		Name:   name,
		Lat:    lat,
		Lng:    lng,
		Source: models.SourceManual,
	}
	if err := db.Create(&place).Error; err != nil {
		t.Fatalf("failed to create place: %v", err)
	}
	return place
}

type reportOpts struct {
	cleanliness int
	privacy     int
	safety      int
	hasLock     bool
	hasTP       bool
	notes       *string
	status      string
	deviceHash  string
	createdAt   time.Time
}

func makeReport(t *testing.T, db *gorm.DB, placeID uuid.UUID, opts reportOpts) models.Report {
	t.Helper()
	if opts.cleanliness == 0 {
		opts.cleanliness = 3
	}
	if opts.privacy == 0 {
		opts.privacy = 3
	}
	if opts.safety == 0 {
		opts.safety = 3
	}
	if opts.status == "" {
		opts.status = models.ModerationPending
	}
	if opts.deviceHash == "" {
		opts.deviceHash = "test-device"
	}
	if opts.createdAt.IsZero() {
		opts.createdAt = time.Now().UTC()
	}
	report := models.Report{
		ID:          uuid.New(),
		PlaceID:     placeID,
		Cleanliness: opts.cleanliness,
		Privacy:     opts.privacy,
		Safety:      opts.safety,
		HasLock:     opts.hasLock,
		HasTP:       opts.hasTP,
		Access:      models.AccessPublic,
		Notes:       opts.notes,
		DeviceHash:  opts.deviceHash,
		AIStatus:    opts.status,
		AIFlags:     []byte("{}"),
		CreatedAt:   opts.createdAt,
	}
	if err := db.Create(&report).Error; err != nil {
		t.Fatalf("failed to create report: %v", err)
	}
	return report
}

func strPtr(s string) *string { return &s }
