package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is a signed-up user of the job board.
type Account struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `json:"full_name"`
	Role         string `gorm:"not null" json:"role"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"company_name"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint `json:"company_id"`
	// Association: GORM needs Preload() to fill this
	Company Company `json:"company"`

	Title           string   `gorm:"not null" json:"title"`
	Description     string   `gorm:"type:text" json:"description"`
	Location        string   `json:"location"`
	EmploymentType  string   `json:"employment_type"`
	Remote          bool     `json:"remote"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryRange     string   `json:"salary_range"`
	JobLink         string   `json:"job_link"`
	Status          string   `gorm:"default:'OPEN'" json:"status"`
	PostedBy        string   `gorm:"index" json:"posted_by"`
}

type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}

// CandidateProfile is a job seeker's profile.
type CandidateProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner      string       `gorm:"index" json:"owner"`
	FullName   string       `gorm:"not null" json:"full_name"`
	Email      string       `gorm:"not null" json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	Headline   string       `json:"headline"`
	Summary    string       `gorm:"type:text" json:"summary"`
	ResumeLink string       `json:"resume_link"`
	Skills     []string     `gorm:"serializer:json" json:"skills"`
	Experience []Experience `gorm:"constraint:OnDelete:CASCADE" json:"experience"`
}

// Experience rows keep the order they were entered in through Position.
type Experience struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	CandidateProfileID uint   `gorm:"index" json:"-"`
	Position           int    `json:"position"`
	Company            string `json:"company"`
	Title              string `json:"title"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Description        string `gorm:"type:text" json:"description"`
}
