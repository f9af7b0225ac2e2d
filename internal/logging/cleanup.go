package logging

import (
	"log/slog"
	"time"

	"github.com/asddataking/shittter/internal/models"
	"gorm.io/gorm"
)

const (
	retentionDays   = 30
	cleanupInterval = 24 * time.Hour
)

// StartCleanup launches a goroutine that prunes system_logs past the
// retention window, once at startup and then daily. Closing done stops it.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		prune(db)
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				prune(db)
			case <-done:
				return
			}
		}
	}()
}

func prune(db *gorm.DB) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
