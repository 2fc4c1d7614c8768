package models

import "time"

// Report lifecycle states. Intake always writes Pending; only moderators move
// a report onward.
const (
	ReportStatusPending   = "Pending"
	ReportStatusReviewed  = "Reviewed"
	ReportStatusDismissed = "Dismissed"
)

// Report is an abuse report filed by a user against a piece of content or
// another user. Reporter identity, timestamp and status are derived
// server-side and never taken from the submitted payload.
type Report struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ReporterUserID uint      `gorm:"index;not null" json:"reporter_user_id"`
	ReportedUserID *uint     `gorm:"index" json:"reported_user_id,omitempty"`
	TargetType     string    `gorm:"size:16;not null" json:"target_type"`
	TargetID       uint      `gorm:"not null" json:"target_id"`
	Reason         string    `gorm:"size:500" json:"reason"`
	Status         string    `gorm:"size:16;not null;default:'Pending'" json:"status"`
	ReportedAt     time.Time `gorm:"index" json:"reported_at"`
	ReporterUser   User      `gorm:"foreignKey:ReporterUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reporter"`
	ReportedUser   *User     `gorm:"foreignKey:ReportedUserID" json:"reported_user,omitempty"`
}
