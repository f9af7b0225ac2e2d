package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Moderation statuses. A report starts pending and transitions at most once
// to approved or rejected.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// Access policies a reporter can tag a restroom with.
const (
	AccessPublic        = "public"
	AccessCustomersOnly = "customers_only"
	AccessCodeRequired  = "code_required"
	AccessUnknown       = "unknown"
)

// Report is a single user submission about a place. The device hash is a
// salted one-way fingerprint, never a raw IP.
type Report struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PlaceID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"place_id"`
	Cleanliness int            `gorm:"not null;check:cleanliness >= 1 AND cleanliness <= 5" json:"cleanliness"`
	Privacy     int            `gorm:"not null;check:privacy >= 1 AND privacy <= 5" json:"privacy"`
	Safety      int            `gorm:"not null;check:safety >= 1 AND safety <= 5" json:"safety"`
	HasLock     bool           `gorm:"not null" json:"has_lock"`
	HasTP       bool           `gorm:"column:has_tp;not null" json:"has_tp"`
	Access      string         `gorm:"size:20;not null;default:'public'" json:"access"`
	Notes       *string        `gorm:"size:240" json:"notes"`
	DeviceHash  string         `gorm:"size:64;not null;index" json:"-"`
	AIStatus    string         `gorm:"column:ai_status;size:10;not null;default:'pending';index" json:"ai_status"`
	AIFlags     datatypes.JSON `gorm:"column:ai_flags;type:jsonb;default:'{}'" json:"ai_flags"`
	AIQuality   *int           `gorm:"column:ai_quality" json:"ai_quality"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`

	Photos []ReportPhoto `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"-"`
}

// ReportPhoto holds one attached photo URL. Weakly owned: deleting a report
// cascades to its photos.
type ReportPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
