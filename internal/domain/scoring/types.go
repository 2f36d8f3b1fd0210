package scoring

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNilCandidate = errors.New("nil candidate profile")

const (
	LevelNone         = "none"
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

const (
	WorkModeRemote = "remote"
	WorkModeOnsite = "onsite"
	WorkModeHybrid = "hybrid"
)

const (
	OrgSizeStartup    = "startup"
	OrgSizeSmall      = "small"
	OrgSizeMedium     = "medium"
	OrgSizeLarge      = "large"
	OrgSizeEnterprise = "enterprise"
)

const (
	PayPeriodHourly  = "hourly"
	PayPeriodMonthly = "monthly"
	PayPeriodYearly  = "yearly"
)

type SkillClaim struct {
	Name  string
	Level string
}

type ExperienceEntry struct {
	Title       string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	Tags        []string
}

type AcademicInfo struct {
	Program    string
	Department string
	GPA        float64
}

type Preferences struct {
	Locations []string
	WorkMode  string
	SalaryMin float64
	SalaryMax float64
	OrgSize   string
}

type CandidateProfile struct {
	ID             uuid.UUID
	Email          string
	Phone          string
	Skills         []SkillClaim
	Experience     []ExperienceEntry
	Academic       AcademicInfo
	Preferences    Preferences
	Certifications []string
}

type OpportunityLocation struct {
	City     string
	State    string
	Country  string
	IsRemote bool
	WorkMode string
}

type Compensation struct {
	Min      float64
	Max      float64
	Currency string
	Period   string
}

type Opportunity struct {
	ID                      uuid.UUID
	Title                   string
	Description             string
	Company                 string
	Industry                string
	RequiredSkills          []string
	RequiredExperienceYears float64
	RequiredEducation       []string
	Location                OpportunityLocation
	Compensation            Compensation
	OrgSize                 string
}

type FactorScores struct {
	Skill        float64
	Experience   float64
	Location     float64
	Compensation float64
	OrgSize      float64
	WorkMode     float64
	Academic     float64
}

type Recommendation struct {
	OpportunityID   uuid.UUID
	OverallScore    float64
	MatchPercentage int
	Reasons         []string
	Factors         FactorScores
}
