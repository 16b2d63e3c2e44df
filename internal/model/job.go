package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobStatus is the lifecycle status of a job
type JobStatus string

// Job lifecycle statuses
const (
	JobStatusDraft   JobStatus = "draft"
	JobStatusPending JobStatus = "pending"
	JobStatusOpen    JobStatus = "open"
	JobStatusClosed  JobStatus = "closed"
)

// Employment types
const (
	EmploymentFullTime   = "Full-Time"
	EmploymentInternship = "Internship"
	EmploymentPartTime   = "Part-Time"
	EmploymentContract   = "Contract"
	EmploymentFreelance  = "Freelance"
)

// Work modes
const (
	ModeOnsite = "Onsite"
	ModeRemote = "Remote"
	ModeHybrid = "Hybrid"
)

// Experience levels
const (
	ExperienceEntry  = "Entry"
	ExperienceMid    = "Mid"
	ExperienceSenior = "Senior"
	ExperienceLead   = "Lead"
)

// Default values applied when a job is created without them
const (
	DefaultCompanyLogo = "https://via.placeholder.com/100x100?text=Logo"
	DefaultCategory    = "General"
	DefaultCurrency    = "INR"
)

// EmploymentTypes lists every accepted employment type
var EmploymentTypes = []string{EmploymentFullTime, EmploymentInternship, EmploymentPartTime, EmploymentContract, EmploymentFreelance}

// Modes lists every accepted work mode
var Modes = []string{ModeOnsite, ModeRemote, ModeHybrid}

// SalaryRange of a job, Min must not exceed Max
type SalaryRange struct {
	Min      float64 `gorm:"default:0" json:"min"`
	Max      float64 `gorm:"default:0" json:"max"`
	Currency string  `gorm:"type:text;default:'INR'" json:"currency"`
}

// Job is gorm model for store job data in DB
type Job struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string         `gorm:"type:text;not null;index" json:"title"`
	Company         string         `gorm:"type:text;not null;index" json:"company"`
	CompanyLogo     string         `gorm:"type:text" json:"company_logo"`
	Location        string         `gorm:"type:text;not null;index" json:"location"`
	EmploymentType  string         `gorm:"type:text;index:idx_jobs_mode_type,priority:2" json:"employment_type"`
	Mode            string         `gorm:"type:text;index:idx_jobs_mode_type,priority:1" json:"mode"`
	ExperienceLevel string         `gorm:"type:text" json:"experience_level"`
	Category        string         `gorm:"type:text;index" json:"category"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	RequiredSkills  pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	OptionalSkills  pq.StringArray `gorm:"type:text[]" json:"optional_skills"`
	SalaryRange     SalaryRange    `gorm:"embedded;embeddedPrefix:salary_" json:"salary_range"`
	ApplyLink       string         `gorm:"type:text" json:"apply_link"`
	Deadline        *time.Time     `gorm:"type:timestamp;index" json:"deadline,omitempty"`

	PostedByID uuid.UUID `gorm:"type:uuid;not null;index:idx_jobs_owner_status,priority:1;<-:create" json:"posted_by_id"`
	PostedBy   *User     `gorm:"foreignKey:PostedByID;references:ID" json:"-"`
	// PostedByRole is the role of the creator at creation time. It is never
	// re-derived from the live user record.
	PostedByRole Role `gorm:"type:text;not null;index;<-:create" json:"posted_by_role"`

	Status     JobStatus `gorm:"type:text;default:'pending';index:idx_jobs_owner_status,priority:2" json:"status"`
	IsArchived bool      `gorm:"default:false;index" json:"is_archived"`

	ViewsCount      int64       `gorm:"default:0" json:"views_count"`
	ApplicantsCount int64       `gorm:"default:0" json:"applicants_count"`
	Applicants      []Applicant `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Owner returns the owner reference of the job, expanded when the owner
// record was loaded alongside the job.
func (j *Job) Owner() OwnerRef {
	if j.PostedBy != nil && j.PostedBy.ID != uuid.Nil {
		return OwnerRecord(*j.PostedBy)
	}
	return OwnerID(j.PostedByID)
}

// HasApplicant reports whether userID already applied to the job. Applicants
// must be loaded.
func (j *Job) HasApplicant(userID uuid.UUID) bool {
	for _, a := range j.Applicants {
		if a.UserID == userID {
			return true
		}
	}
	return false
}
