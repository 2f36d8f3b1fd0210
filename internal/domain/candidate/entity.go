package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID             uuid.UUID
	CandidateID    uuid.UUID
	FullName       *string
	Phone          *string
	Program        *string
	Department     *string
	GPA            *float64
	Certifications []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Skill struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Name        string
	Level       *string
	CreatedAt   time.Time
}

type ExperienceEntry struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Title       *string
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
	Tags        []string
	CreatedAt   time.Time
}

type Preferences struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Locations   []string
	WorkMode    *string
	SalaryMin   *float64
	SalaryMax   *float64
	OrgSize     *string
	UpdatedAt   time.Time
}
