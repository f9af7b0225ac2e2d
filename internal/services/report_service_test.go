package services

import (
	"errors"
	"testing"
	"time"

	"github.com/asddataking/shittter/internal/dto"
	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *ReportService {
	cfg := testConfig()
	return NewReportService(db, cfg, NewPlaceService(db), NewRateLimitService(db, cfg))
}

func validSubmission() *dto.SubmitReportRequest {
	lat, lng := 37.7749, -122.4194
	name := "Urban Grind Coffee"
	return &dto.SubmitReportRequest{
		Name:        &name,
		Lat:         &lat,
		Lng:         &lng,
		Cleanliness: 4,
		Privacy:     4,
		Safety:      5,
		HasLock:     true,
		HasTP:       true,
		Access:      models.AccessPublic,
	}
}

func TestSubmitCreatesPlaceReportAndJob(t *testing.T) {
	db := testDB(t)
	svc := newReportService(db)

	req := validSubmission()
	req.Notes = strPtr("pretty decent")
	req.PhotoURLs = []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	reportID, err := svc.Submit(req, "device-hash-1")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if reportID == uuid.Nil {
		t.Fatal("expected a report id")
	}

	var report models.Report
	if err := db.First(&report, "id = ?", reportID).Error; err != nil {
		t.Fatalf("report not persisted: %v", err)
	}
	if report.AIStatus != models.ModerationPending {
		t.Fatalf("new report status = %s, want pending", report.AIStatus)
	}
	if report.DeviceHash != "device-hash-1" {
		t.Fatalf("device hash = %s", report.DeviceHash)
	}

	var place models.Place
	if err := db.First(&place, "id = ?", report.PlaceID).Error; err != nil {
		t.Fatalf("place not persisted: %v", err)
	}
	if place.Source != models.SourceManual {
		t.Fatalf("place source = %s, want manual", place.Source)
	}

	// A report must never exist without its companion job.
	var job models.Job
	if err := db.First(&job, "report_id = ?", reportID).Error; err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if job.Status != models.JobPending {
		t.Fatalf("new job status = %s, want pending", job.Status)
	}

	var photoCount int64
	db.Model(&models.ReportPhoto{}).Where("report_id = ?", reportID).Count(&photoCount)
	if photoCount != 2 {
		t.Fatalf("photo count = %d, want 2", photoCount)
	}
}

func TestSubmitWithExistingPlace(t *testing.T) {
	db := testDB(t)
	svc := newReportService(db)
	place := makePlace(t, db, "Target", 37.78, -122.40)

	req := &dto.SubmitReportRequest{
		PlaceID:     &place.ID,
		Cleanliness: 3,
		Privacy:     3,
		Safety:      3,
	}
	reportID, err := svc.Submit(req, "device-hash-1")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var report models.Report
	if err := db.First(&report, "id = ?", reportID).Error; err != nil {
		t.Fatalf("report not persisted: %v", err)
	}
	if report.PlaceID != place.ID {
		t.Fatalf("report bound to place %s, want %s", report.PlaceID, place.ID)
	}
	if report.Access != models.AccessPublic {
		t.Fatalf("access defaulted to %s, want public", report.Access)
	}
}

func TestSubmitUnknownPlace(t *testing.T) {
	db := testDB(t)
	svc := newReportService(db)

	missing := uuid.New()
	req := &dto.SubmitReportRequest{PlaceID: &missing, Cleanliness: 3, Privacy: 3, Safety: 3}

	_, err := svc.Submit(req, "device-hash-1")
	if !errors.Is(err, ErrPlaceNotFound) {
		t.Fatalf("err = %v, want ErrPlaceNotFound", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	db := testDB(t)
	svc := newReportService(db)

	tests := []struct {
		name   string
		mutate func(*dto.SubmitReportRequest)
		field  string
	}{
		{"rating too low", func(r *dto.SubmitReportRequest) { r.Cleanliness = 0 }, "cleanliness"},
		{"rating too high", func(r *dto.SubmitReportRequest) { r.Privacy = 6 }, "privacy"},
		{"safety out of range", func(r *dto.SubmitReportRequest) { r.Safety = -1 }, "safety"},
		{"latitude out of range", func(r *dto.SubmitReportRequest) { v := 91.0; r.Lat = &v }, "lat"},
		{"longitude out of range", func(r *dto.SubmitReportRequest) { v := -181.0; r.Lng = &v }, "lng"},
		{"missing place fields", func(r *dto.SubmitReportRequest) { r.Name = nil }, "placeId"},
		{"bad access value", func(r *dto.SubmitReportRequest) { r.Access = "vip_only" }, "access"},
		{"notes too long", func(r *dto.SubmitReportRequest) {
			long := make([]byte, 241)
			for i := range long {
				long[i] = 'x'
			}
			s := string(long)
			r.Notes = &s
		}, "notes"},
		{"too many photos", func(r *dto.SubmitReportRequest) {
			r.PhotoURLs = []string{
				"https://e.com/1", "https://e.com/2", "https://e.com/3",
				"https://e.com/4", "https://e.com/5", "https://e.com/6",
			}
		}, "photo_urls"},
		{"invalid photo url", func(r *dto.SubmitReportRequest) { r.PhotoURLs = []string{"not-a-url"} }, "photo_urls"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.mutate(req)

			_, err := svc.Submit(req, "device-hash-1")
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if _, ok := validationErr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q in %v", tc.field, validationErr.Fields)
			}
		})
	}
}

func TestSubmitRateLimited(t *testing.T) {
	db := testDB(t)
	svc := newReportService(db)
	place := makePlace(t, db, "Cafe", 37.77, -122.41)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		makeReport(t, db, place.ID, reportOpts{deviceHash: "device-a", createdAt: now.Add(-time.Duration(i+1) * time.Minute)})
	}

	req := &dto.SubmitReportRequest{PlaceID: &place.ID, Cleanliness: 3, Privacy: 3, Safety: 3}
	_, err := svc.Submit(req, "device-a")

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("err = %v, want RateLimitError", err)
	}
	if rateErr.RetryAfter != RetryAfterHourly {
		t.Fatalf("retry_after = %d, want %d", rateErr.RetryAfter, RetryAfterHourly)
	}

	// The denied submission must not leave any rows behind.
	var count int64
	db.Model(&models.Report{}).Where("device_hash = ?", "device-a").Count(&count)
	if count != 3 {
		t.Fatalf("report count = %d, want 3", count)
	}
}
