package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicantStatus is the review status of a single application
type ApplicantStatus string

// Applicant statuses, ApplicantStatusApplied is the initial one
const (
	ApplicantStatusApplied     ApplicantStatus = "applied"
	ApplicantStatusShortlisted ApplicantStatus = "shortlisted"
	ApplicantStatusRejected    ApplicantStatus = "rejected"
	ApplicantStatusHired       ApplicantStatus = "hired"
)

// Valid reports whether s is a known applicant status.
func (s ApplicantStatus) Valid() bool {
	switch s {
	case ApplicantStatusApplied, ApplicantStatusShortlisted, ApplicantStatusRejected, ApplicantStatusHired:
		return true
	}
	return false
}

// Applicant is an application of a student to a job. The composite primary
// key allows a single application per (job, user).
type Applicant struct {
	JobID  uint      `gorm:"primaryKey;autoIncrement:false" json:"job_id"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Resume    *string         `gorm:"type:text" json:"resume,omitempty"`
	Status    ApplicantStatus `gorm:"type:text;default:'applied';index" json:"status"`
	AppliedAt time.Time       `gorm:"type:timestamp;<-:create" json:"applied_at"`
	// AIScore is computed once when the application is made.
	AIScore *int `gorm:"<-:create" json:"ai_score"`

	StatusUpdatedAt *time.Time `gorm:"type:timestamp" json:"status_updated_at"`
	StatusUpdatedBy *uuid.UUID `gorm:"type:uuid" json:"status_updated_by"`
}
