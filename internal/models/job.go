package models

import (
	"time"

	"github.com/google/uuid"
)

// Job states: pending -> processing -> done | failed. Failed jobs are never
// retried automatically, and jobs are never deleted — the table doubles as
// an audit log of pipeline work.
const (
	JobPending    = "pending"
	JobProcessing = "processing"
	JobDone       = "done"
	JobFailed     = "failed"
)

// Job is the work ticket that drives moderation and scoring for one report.
// Created in the same transaction as its report.
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"report_id"`
	Status    string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
