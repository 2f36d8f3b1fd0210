package usecase

import (
	"strings"
	"time"

	"placematch/internal/domain/scoring"
	"placematch/internal/repository"
)

func profileFromRow(row repository.CandidateProfileRow) scoring.CandidateProfile {
	p := scoring.CandidateProfile{
		ID:    row.ID,
		Email: row.Email,
		Phone: row.Phone,
		Academic: scoring.AcademicInfo{
			Program:    row.Program,
			Department: row.Department,
			GPA:        row.GPA,
		},
		Preferences: scoring.Preferences{
			Locations: row.Locations,
			WorkMode:  row.WorkMode,
			SalaryMin: row.SalaryMin,
			SalaryMax: row.SalaryMax,
			OrgSize:   row.OrgSize,
		},
		Certifications: row.Certifications,
	}

	p.Skills = make([]scoring.SkillClaim, 0, len(row.Skills))
	for _, s := range row.Skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		p.Skills = append(p.Skills, scoring.SkillClaim{Name: s.Name, Level: s.Level})
	}

	p.Experience = make([]scoring.ExperienceEntry, 0, len(row.Experience))
	for _, e := range row.Experience {
		var start time.Time
		if e.StartDate != nil {
			start = *e.StartDate
		}
		p.Experience = append(p.Experience, scoring.ExperienceEntry{
			Title:       e.Title,
			StartDate:   start,
			EndDate:     e.EndDate,
			Description: e.Description,
			Tags:        e.Tags,
		})
	}

	return p
}

func opportunityFromRow(row repository.OpportunityRow) scoring.Opportunity {
	return scoring.Opportunity{
		ID:                      row.ID,
		Title:                   row.Title,
		Description:             row.Description,
		Company:                 row.Company,
		Industry:                row.Industry,
		RequiredSkills:          row.RequiredSkills,
		RequiredExperienceYears: row.RequiredYears,
		RequiredEducation:       row.RequiredEducation,
		Location: scoring.OpportunityLocation{
			City:     row.City,
			State:    row.State,
			Country:  row.Country,
			IsRemote: row.IsRemote,
			WorkMode: row.WorkMode,
		},
		Compensation: scoring.Compensation{
			Min:      row.PayMin,
			Max:      row.PayMax,
			Currency: row.PayCurrency,
			Period:   row.PayPeriod,
		},
		OrgSize: row.OrgSize,
	}
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func parseDateOrNil(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func displayLocation(row repository.OpportunityRow) string {
	if row.IsRemote {
		return "Remote"
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{row.City, row.State, row.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
