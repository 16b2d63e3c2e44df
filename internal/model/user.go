package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Role is the campus role of a user. It decides posting rights, visibility
// scope and whether a new job needs approval.
type Role string

// Roles known to the job board
const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User is gorm model for every account of the job board
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username   string         `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password   string         `gorm:"type:text" json:"-"`
	Role       Role           `gorm:"type:text;not null;index" json:"role"`
	Name       string         `gorm:"type:text" json:"name"`
	Avatar     string         `gorm:"type:text" json:"avatar"`
	Batch      string         `gorm:"type:text" json:"batch,omitempty"`
	Department string         `gorm:"type:text" json:"department,omitempty"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// UserSummary is the display part of a user that other users are allowed to see
type UserSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Role       Role      `json:"role,omitempty"`
	Batch      string    `json:"batch,omitempty"`
	Department string    `json:"department,omitempty"`
}

// Summary strips private fields from the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:         u.ID,
		Name:       u.Name,
		Avatar:     u.Avatar,
		Role:       u.Role,
		Batch:      u.Batch,
		Department: u.Department,
	}
}
