package services

import (
	"log/slog"
	"time"

	"github.com/asddataking/shittter/internal/config"
	"github.com/asddataking/shittter/internal/models"
	"gorm.io/gorm"
)

// Fixed retry hints in seconds. The windows are rolling, so these are
// guidance values, not exact reset times.
const (
	RetryAfterHourly = 3600
	RetryAfterDaily  = 86400
)

// RateLimitDecision is the outcome of a rate-limit check. RetryAfter is zero
// when Allowed.
type RateLimitDecision struct {
	Allowed    bool
	RetryAfter int
}

// RateLimitService bounds report volume per device fingerprint by counting
// existing report rows in rolling windows.
type RateLimitService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewRateLimitService(db *gorm.DB, cfg *config.Config) *RateLimitService {
	return &RateLimitService{db: db, cfg: cfg}
}

// Check decides whether a new report from deviceHash may be accepted: at most
// RateMaxPerHour in the last hour and RateMaxPerDay in the last 24 hours.
// Storage errors fail open — availability over strictness — but are logged
// at ERROR so the permissive path stays observable.
func (s *RateLimitService) Check(deviceHash string) RateLimitDecision {
	now := time.Now()

	hourCount, err := s.countSince(deviceHash, now.Add(-time.Hour))
	if err != nil {
		slog.Error("rate limit check failed, allowing request", "action", "rate_limit_hourly", "error", err.Error())
		return RateLimitDecision{Allowed: true}
	}
	if hourCount >= int64(s.cfg.RateMaxPerHour) {
		return RateLimitDecision{Allowed: false, RetryAfter: RetryAfterHourly}
	}

	dayCount, err := s.countSince(deviceHash, now.Add(-24*time.Hour))
	if err != nil {
		slog.Error("rate limit check failed, allowing request", "action", "rate_limit_daily", "error", err.Error())
		return RateLimitDecision{Allowed: true}
	}
	if dayCount >= int64(s.cfg.RateMaxPerDay) {
		return RateLimitDecision{Allowed: false, RetryAfter: RetryAfterDaily}
	}

	return RateLimitDecision{Allowed: true}
}

func (s *RateLimitService) countSince(deviceHash string, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Report{}).
		Where("device_hash = ? AND created_at >= ?", deviceHash, since).
		Count(&count).Error
	return count, err
}
