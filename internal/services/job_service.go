package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/asddataking/shittter/internal/config"
	"github.com/asddataking/shittter/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobService drains the moderation/scoring queue. It is driven externally
// (cron or manual trigger); there is no resident worker loop. A crash
// mid-job leaves that job in processing until an operator resets it — there
// is no automatic timeout or requeue.
type JobService struct {
	db         *gorm.DB
	cfg        *config.Config
	moderation *ModerationService
}

func NewJobService(db *gorm.DB, cfg *config.Config, moderation *ModerationService) *JobService {
	return &JobService{db: db, cfg: cfg, moderation: moderation}
}

// RunBatch claims up to JobBatchSize oldest pending jobs and processes them
// sequentially. The pending->processing claim is a conditional update, so
// overlapping invocations never process the same job twice: the loser of the
// race simply skips it. Returns the number of jobs brought to done.
func (s *JobService) RunBatch() (int, error) {
	var jobs []models.Job
	err := s.db.Where("status = ?", models.JobPending).
		Order("created_at ASC").
		Limit(s.cfg.JobBatchSize).
		Find(&jobs).Error
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pending jobs: %w", err)
	}

	processed := 0
	for _, job := range jobs {
		claimed, err := s.claim(job.ID)
		if err != nil {
			return processed, err
		}
		if !claimed {
			continue
		}

		var report models.Report
		if err := s.db.First(&report, "id = ?", job.ReportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Terminal: the report vanished, nothing to do. Never retried.
				s.setStatus(job.ID, models.JobFailed)
				slog.Warn("job failed: report missing", "job_id", job.ID.String(), "report_id", job.ReportID.String())
				continue
			}
			return processed, fmt.Errorf("failed to load report for job: %w", err)
		}

		if err := s.process(&job, &report); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

// claim transitions a job pending->processing only if it is still pending.
func (s *JobService) claim(jobID uuid.UUID) (bool, error) {
	result := s.db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobPending).
		Update("status", models.JobProcessing)
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim job: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *JobService) process(job *models.Job, report *models.Report) error {
	status, rule := s.moderation.Classify(report.Notes)
	quality := s.moderation.Quality(report.Notes)

	flags := datatypes.JSON([]byte("{}"))
	if rule != "" {
		if b, err := json.Marshal(map[string]string{"rule": rule}); err == nil {
			flags = datatypes.JSON(b)
		}
	}

	err := s.db.Model(&models.Report{}).
		Where("id = ?", report.ID).
		Updates(map[string]interface{}{
			"ai_status":  status,
			"ai_quality": quality,
			"ai_flags":   flags,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to store moderation result: %w", err)
	}

	if err := s.RecomputePlace(report.PlaceID); err != nil {
		return err
	}

	if err := s.setStatus(job.ID, models.JobDone); err != nil {
		return err
	}

	slog.Info("job processed",
		"job_id", job.ID.String(),
		"report_id", report.ID.String(),
		"place_id", report.PlaceID.String(),
		"moderation", status)
	return nil
}

// RecomputePlace rebuilds the trust score and summary for one place from its
// newest ScoreWindow approved reports and upserts the place_scores row.
func (s *JobService) RecomputePlace(placeID uuid.UUID) error {
	var window []models.Report
	err := s.db.Where("place_id = ? AND ai_status = ?", placeID, models.ModerationApproved).
		Order("created_at DESC").
		Limit(s.cfg.ScoreWindow).
		Find(&window).Error
	if err != nil {
		return fmt.Errorf("failed to load approved reports: %w", err)
	}

	score := models.PlaceScore{
		PlaceID:    placeID,
		TrustScore: ComputeTrustScore(window),
		Summary:    BuildSummary(window),
		UpdatedAt:  time.Now().UTC(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "place_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"trust_score", "summary", "updated_at"}),
	}).Create(&score).Error
	if err != nil {
		return fmt.Errorf("failed to upsert place score: %w", err)
	}
	return nil
}

func (s *JobService) setStatus(jobID uuid.UUID, status string) error {
	err := s.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to set job status: %w", err)
	}
	return nil
}
