package models

import (
	"time"

	"github.com/lib/pq"
)

// User roles. Role is assigned at registration and never changes afterwards.
const (
	RoleCandidate = "candidate"
	RoleCompany   = "company"
	RoleAdmin     = "admin"
)

// Application statuses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Job types accepted by the posting form.
const (
	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeRemote     = "Remote"
	TypeInternship = "Internship"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"size:16;not null" json:"role"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
}

type Job struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign key to the company-role user that posted the job.
	CompanyID string `gorm:"size:36;index;not null" json:"company_id"`
	Company   User   `gorm:"foreignKey:CompanyID" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	Salary      *int   `json:"salary,omitempty"`
	Type        string `gorm:"size:20" json:"type"`
}

// Application is create-only: status is stored but no handler mutates it.
// The compound unique index makes a concurrent double-submit for the same
// (job, user) pair fail at the store instead of slipping past the pre-check.
type Application struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID  string `gorm:"size:36;uniqueIndex:idx_applications_job_user;not null" json:"job_id"`
	Job    Job    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID string `gorm:"size:36;uniqueIndex:idx_applications_job_user;not null" json:"user_id"`
	User   User   `json:"-"`

	CV     string `gorm:"not null" json:"cv"`
	Status string `gorm:"size:16;default:'pending'" json:"status"`
}
