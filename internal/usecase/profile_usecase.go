package usecase

import (
	"context"
	"errors"
	"strings"

	"placematch/internal/domain/candidate"
	"placematch/internal/domain/scoring"

	"github.com/google/uuid"
)

var ErrInvalidProfile = errors.New("invalid profile")

type ProfileSkillInput struct {
	Name  string
	Level string
}

type ProfileExperienceInput struct {
	Title       string
	StartDate   string
	EndDate     string
	Description string
	Tags        []string
}

type ProfileInput struct {
	FullName       string
	Phone          string
	Program        string
	Department     string
	GPA            float64
	Certifications []string

	Skills     []ProfileSkillInput
	Experience []ProfileExperienceInput

	Locations []string
	WorkMode  string
	SalaryMin float64
	SalaryMax float64
	OrgSize   string
}

type CacheInvalidator interface {
	InvalidateCandidate(ctx context.Context, candidateID string) error
}

type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, candidateID uuid.UUID, in ProfileInput) error
}

type Profile struct {
	accounts    candidate.Repository
	invalidator CacheInvalidator
}

func NewProfileUsecase(accounts candidate.Repository, invalidator CacheInvalidator) *Profile {
	return &Profile{accounts: accounts, invalidator: invalidator}
}

func (u *Profile) UpdateProfile(ctx context.Context, candidateID uuid.UUID, in ProfileInput) error {
	if candidateID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := validateProfileInput(in); err != nil {
		return err
	}

	up := candidate.ProfileUpdate{
		CandidateID: candidateID,
		Profile: candidate.Profile{
			CandidateID:    candidateID,
			FullName:       optionalText(in.FullName),
			Phone:          optionalText(in.Phone),
			Program:        optionalText(in.Program),
			Department:     optionalText(in.Department),
			GPA:            optionalFloat(in.GPA),
			Certifications: in.Certifications,
		},
		Preferences: candidate.Preferences{
			CandidateID: candidateID,
			Locations:   in.Locations,
			WorkMode:    optionalText(in.WorkMode),
			SalaryMin:   optionalFloat(in.SalaryMin),
			SalaryMax:   optionalFloat(in.SalaryMax),
			OrgSize:     optionalText(in.OrgSize),
		},
	}

	for _, s := range in.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		up.Skills = append(up.Skills, candidate.Skill{
			CandidateID: candidateID,
			Name:        name,
			Level:       optionalText(s.Level),
		})
	}

	for _, e := range in.Experience {
		entry := candidate.ExperienceEntry{
			CandidateID: candidateID,
			Title:       optionalText(e.Title),
			Description: optionalText(e.Description),
			Tags:        e.Tags,
		}
		entry.StartDate = parseDateOrNil(e.StartDate)
		entry.EndDate = parseDateOrNil(e.EndDate)
		up.Experience = append(up.Experience, entry)
	}

	if err := u.accounts.SaveProfile(ctx, up); err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return ErrCandidateNotFound
		}
		return ErrInternal
	}

	if u.invalidator != nil {
		_ = u.invalidator.InvalidateCandidate(ctx, candidateID.String())
	}

	return nil
}

func validateProfileInput(in ProfileInput) error {
	if in.GPA < 0 || in.GPA > 10 {
		return ErrInvalidProfile
	}
	if in.SalaryMin < 0 || in.SalaryMax < 0 {
		return ErrInvalidProfile
	}
	if in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax {
		return ErrInvalidProfile
	}
	for _, s := range in.Skills {
		level := strings.ToLower(strings.TrimSpace(s.Level))
		switch level {
		case "", scoring.LevelBeginner, scoring.LevelIntermediate, scoring.LevelAdvanced, scoring.LevelExpert:
		default:
			return ErrInvalidProfile
		}
	}
	return nil
}
