package scoring

import (
	"strings"
	"time"
)

const neutralScore = 0.5

const hoursPerWorkYear = 2080.0

var levelOrdinals = map[string]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

var orgSizeOrdinals = map[string]int{
	OrgSizeStartup:    0,
	OrgSizeSmall:      1,
	OrgSizeMedium:     2,
	OrgSizeLarge:      3,
	OrgSizeEnterprise: 4,
}

// Required skills carry no explicit level, so intermediate is assumed
// as the bar for full credit.
const assumedRequiredLevel = 2

func levelOrdinal(level string) int {
	v, ok := levelOrdinals[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return assumedRequiredLevel
	}
	return v
}

func orgSizeOrdinal(size string) int {
	v, ok := orgSizeOrdinals[strings.ToLower(strings.TrimSpace(size))]
	if !ok {
		return orgSizeOrdinals[OrgSizeMedium]
	}
	return v
}

func normalizeWorkMode(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	switch m {
	case WorkModeRemote, WorkModeOnsite, WorkModeHybrid:
		return m
	}
	return WorkModeHybrid
}

func skillScore(c CandidateProfile, o Opportunity) float64 {
	required := foldedRequiredSkills(o)
	if len(required) == 0 {
		return neutralScore
	}

	levels := candidateSkillLevels(c)

	var credits float64
	for _, name := range required {
		ord, ok := levels[name]
		if !ok {
			continue
		}
		if ord >= assumedRequiredLevel {
			credits += 1.0
		} else {
			credits += 0.5
		}
	}
	return credits / float64(len(required))
}

func experienceYears(entries []ExperienceEntry, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		if e.StartDate.IsZero() {
			continue
		}
		end := now
		if e.EndDate != nil && !e.EndDate.IsZero() {
			end = *e.EndDate
		}
		d := end.Sub(e.StartDate)
		if d <= 0 {
			continue
		}
		total += d.Hours() / (24 * 365.25)
	}
	return total
}

func experienceScore(c CandidateProfile, o Opportunity, now time.Time) float64 {
	required := o.RequiredExperienceYears
	if required <= 0 {
		return 1.0
	}
	years := experienceYears(c.Experience, now)
	if years >= required {
		return 1.0
	}
	return years / required
}

func locationScore(c CandidateProfile, o Opportunity) float64 {
	if o.Location.IsRemote && normalizeWorkMode(c.Preferences.WorkMode) == WorkModeRemote {
		return 1.0
	}

	targets := []string{
		strings.ToLower(strings.TrimSpace(o.Location.City)),
		strings.ToLower(strings.TrimSpace(o.Location.State)),
		strings.ToLower(strings.TrimSpace(o.Location.Country)),
	}

	for _, pref := range c.Preferences.Locations {
		p := strings.ToLower(strings.TrimSpace(pref))
		if p == "" {
			continue
		}
		for _, t := range targets {
			if t == "" {
				continue
			}
			if strings.Contains(t, p) || strings.Contains(p, t) {
				return 1.0
			}
		}
	}
	return 0.3
}

func yearlyPay(comp Compensation) float64 {
	pay := comp.Max
	if comp.Min > 0 && comp.Max > 0 {
		pay = (comp.Min + comp.Max) / 2
	} else if comp.Min > 0 {
		pay = comp.Min
	}
	if pay <= 0 {
		return 0
	}

	switch strings.ToLower(strings.TrimSpace(comp.Period)) {
	case PayPeriodHourly:
		return pay * hoursPerWorkYear
	case PayPeriodMonthly:
		return pay * 12
	default:
		return pay
	}
}

func compensationScore(c CandidateProfile, o Opportunity) float64 {
	pay := yearlyPay(o.Compensation)
	if pay <= 0 {
		return neutralScore
	}

	minPref := c.Preferences.SalaryMin
	maxPref := c.Preferences.SalaryMax
	if minPref <= 0 && maxPref <= 0 {
		return neutralScore
	}

	if pay >= minPref && (maxPref <= 0 || pay <= maxPref) {
		return 1.0
	}
	if pay >= minPref*0.8 {
		return 0.7
	}
	return 0.3
}

func orgSizeScore(c CandidateProfile, o Opportunity) float64 {
	diff := orgSizeOrdinal(c.Preferences.OrgSize) - orgSizeOrdinal(o.OrgSize)
	if diff < 0 {
		diff = -diff
	}
	score := 1.0 - 0.25*float64(diff)
	if score < 0 {
		return 0
	}
	return score
}

func workModeScore(c CandidateProfile, o Opportunity) float64 {
	pref := normalizeWorkMode(c.Preferences.WorkMode)
	mode := normalizeWorkMode(o.Location.WorkMode)
	if pref == mode {
		return 1.0
	}
	if pref == WorkModeHybrid || mode == WorkModeHybrid {
		return 0.7
	}
	return 0.3
}

func academicScore(c CandidateProfile, o Opportunity) float64 {
	program := strings.ToLower(strings.TrimSpace(c.Academic.Program))
	department := strings.ToLower(strings.TrimSpace(c.Academic.Department))

	for _, req := range o.RequiredEducation {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		if (program != "" && strings.Contains(program, r)) ||
			(department != "" && strings.Contains(department, r)) {
			return 1.0
		}
	}
	return neutralScore
}

func foldedRequiredSkills(o Opportunity) []string {
	out := make([]string, 0, len(o.RequiredSkills))
	seen := make(map[string]struct{}, len(o.RequiredSkills))
	for _, s := range o.RequiredSkills {
		name := strings.ToLower(strings.TrimSpace(s))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func candidateSkillLevels(c CandidateProfile) map[string]int {
	levels := make(map[string]int, len(c.Skills))
	for _, s := range c.Skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			continue
		}
		ord := levelOrdinal(s.Level)
		if cur, ok := levels[name]; !ok || ord > cur {
			levels[name] = ord
		}
	}
	return levels
}
