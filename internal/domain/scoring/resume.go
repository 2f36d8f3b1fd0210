package scoring

import (
	"fmt"
	"math"
	"strings"
)

const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategoryFormat     = "format"
	CategoryContent    = "content"
)

const (
	atsIssuePenalty     = 15
	resumeTextMinLength = 200
	resumeTextMaxLength = 2000
	strongGPAThreshold  = 8.0
)

var experienceSignalWords = []string{
	"leadership", "management", "team", "project", "development",
	"design", "analysis", "research", "collaboration", "communication",
	"problem-solving", "innovation", "strategy", "implementation",
}

var actionVerbs = []string{
	"developed", "created", "implemented", "designed", "managed", "led", "improved",
}

type KeywordMatch struct {
	Keyword    string
	Found      bool
	Importance string
	Suggestion string
}

type QualitySuggestion struct {
	Category    string
	Priority    string
	Title       string
	Description string
	Action      string
}

type QualityReport struct {
	OverallScore   int
	Strengths      []string
	Weaknesses     []string
	Suggestions    []QualitySuggestion
	KeywordMatches []KeywordMatch
	ATSScore       int
}

func (e *Engine) AnalyzeResumeQuality(c *CandidateProfile, o Opportunity, resumeText string) (QualityReport, error) {
	if c == nil {
		return QualityReport{}, ErrNilCandidate
	}

	keywords := buildKeywordMatches(*c, o)
	atsScore := atsCompatibilityScore(*c, resumeText)
	strengths := deriveStrengths(*c, keywords)
	weaknesses := deriveWeaknesses(*c, o, keywords)
	suggestions := deriveSuggestions(*c, keywords)

	coverage := neutralScore
	if len(keywords) > 0 {
		found := 0
		for _, k := range keywords {
			if k.Found {
				found++
			}
		}
		coverage = float64(found) / float64(len(keywords))
	}

	strengthsTerm := float64(len(strengths)) / 5
	if strengthsTerm > 1 {
		strengthsTerm = 1
	}
	weaknessTerm := 1 - 0.1*float64(len(weaknesses))
	if weaknessTerm < 0 {
		weaknessTerm = 0
	}

	overall := int(math.Round(100 * (0.4*coverage + 0.3*(float64(atsScore)/100) + 0.2*strengthsTerm + 0.1*weaknessTerm)))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	return QualityReport{
		OverallScore:   overall,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Suggestions:    suggestions,
		KeywordMatches: keywords,
		ATSScore:       atsScore,
	}, nil
}

func buildKeywordMatches(c CandidateProfile, o Opportunity) []KeywordMatch {
	evidence := profileEvidence(c)

	out := make([]KeywordMatch, 0, len(o.RequiredSkills)+len(o.RequiredEducation)+len(experienceSignalWords))
	seen := make(map[string]struct{})

	add := func(keyword, importance, suggestion string) {
		folded := strings.ToLower(strings.TrimSpace(keyword))
		if folded == "" {
			return
		}
		if _, dup := seen[folded]; dup {
			return
		}
		seen[folded] = struct{}{}

		m := KeywordMatch{Keyword: folded, Importance: importance, Found: evidenceContains(evidence, folded)}
		if !m.Found {
			m.Suggestion = suggestion
		}
		out = append(out, m)
	}

	for _, s := range o.RequiredSkills {
		add(s, ImportanceHigh, fmt.Sprintf("Add %s to your skills or highlight related work", strings.ToLower(strings.TrimSpace(s))))
	}
	for _, t := range o.RequiredEducation {
		add(t, ImportanceMedium, fmt.Sprintf("Mention %s in your education details if it applies to you", strings.ToLower(strings.TrimSpace(t))))
	}

	roleText := strings.ToLower(o.Title + " " + o.Description)
	for _, w := range experienceSignalWords {
		if !strings.Contains(roleText, w) {
			continue
		}
		add(w, ImportanceMedium, fmt.Sprintf("Show %s experience with a concrete example", w))
	}

	return out
}

func profileEvidence(c CandidateProfile) []string {
	parts := make([]string, 0, len(c.Skills)+len(c.Experience)*2+2)
	for _, s := range c.Skills {
		parts = append(parts, strings.ToLower(s.Name))
	}
	parts = append(parts, strings.ToLower(c.Academic.Program), strings.ToLower(c.Academic.Department))
	for _, e := range c.Experience {
		parts = append(parts, strings.ToLower(e.Title), strings.ToLower(e.Description))
		for _, tag := range e.Tags {
			parts = append(parts, strings.ToLower(tag))
		}
	}
	return parts
}

func evidenceContains(evidence []string, keyword string) bool {
	for _, part := range evidence {
		if part == "" {
			continue
		}
		if strings.Contains(part, keyword) {
			return true
		}
	}
	return false
}

func atsCompatibilityScore(c CandidateProfile, resumeText string) int {
	issues := 0

	if strings.TrimSpace(c.Phone) == "" || strings.TrimSpace(c.Email) == "" {
		issues++
	}
	if strings.TrimSpace(c.Academic.Program) == "" && strings.TrimSpace(c.Academic.Department) == "" {
		issues++
	}
	if len(c.Experience) == 0 {
		issues++
	}
	if len(c.Skills) == 0 {
		issues++
	}

	if resumeText != "" {
		if len(resumeText) < resumeTextMinLength {
			issues++
		}
		if len(resumeText) > resumeTextMaxLength {
			issues++
		}
		lower := strings.ToLower(resumeText)
		hasVerb := false
		for _, v := range actionVerbs {
			if strings.Contains(lower, v) {
				hasVerb = true
				break
			}
		}
		if !hasVerb {
			issues++
		}
	}

	score := 100 - atsIssuePenalty*issues
	if score < 0 {
		return 0
	}
	return score
}

func deriveStrengths(c CandidateProfile, keywords []KeywordMatch) []string {
	strengths := make([]string, 0, 4)

	matchedSkills := make([]string, 0)
	for _, k := range keywords {
		if k.Found && k.Importance == ImportanceHigh {
			matchedSkills = append(matchedSkills, k.Keyword)
		}
	}
	if len(matchedSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Your profile covers key skills for this role: %s", strings.Join(matchedSkills, ", ")))
	}
	if len(c.Experience) > 0 {
		strengths = append(strengths, "You have relevant experience entries to build on")
	}
	if c.Academic.GPA >= strongGPAThreshold {
		strengths = append(strengths, "Strong academic performance stands out to reviewers")
	}
	if len(c.Certifications) > 0 {
		strengths = append(strengths, "Certifications add credibility to your profile")
	}
	return strengths
}

func deriveWeaknesses(c CandidateProfile, o Opportunity, keywords []KeywordMatch) []string {
	weaknesses := make([]string, 0, 3)

	missingHigh := missingHighImportance(keywords)
	if len(missingHigh) > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("Missing skills the role asks for: %s", strings.Join(missingHigh, ", ")))
	}
	if len(c.Experience) == 0 {
		weaknesses = append(weaknesses, "No experience entries are listed on your profile")
	}
	if len(o.RequiredEducation) > 0 && academicScore(c, o) < 1.0 {
		weaknesses = append(weaknesses, "Your education details do not mention the programs this role requires")
	}
	return weaknesses
}

func deriveSuggestions(c CandidateProfile, keywords []KeywordMatch) []QualitySuggestion {
	suggestions := make([]QualitySuggestion, 0, 4)

	missingHigh := missingHighImportance(keywords)
	if len(missingHigh) > 0 {
		suggestions = append(suggestions, QualitySuggestion{
			Category:    CategorySkills,
			Priority:    PriorityHigh,
			Title:       "Add the missing required skills",
			Description: "The role lists skills that do not appear anywhere on your profile",
			Action:      fmt.Sprintf("Add or evidence these skills: %s", strings.Join(missingHigh, ", ")),
		})
	}
	if len(c.Experience) == 0 {
		suggestions = append(suggestions, QualitySuggestion{
			Category:    CategoryExperience,
			Priority:    PriorityHigh,
			Title:       "Add experience entries",
			Description: "Profiles without experience history are filtered early by most screeners",
			Action:      "Add internships, projects, or part-time roles with dates and outcomes",
		})
	}

	suggestions = append(suggestions,
		QualitySuggestion{
			Category:    CategoryFormat,
			Priority:    PriorityMedium,
			Title:       "Keep the layout ATS-friendly",
			Description: "Automated screeners parse plain sections more reliably than tables or graphics",
			Action:      "Use standard section headers and avoid multi-column layouts",
		},
		QualitySuggestion{
			Category:    CategoryContent,
			Priority:    PriorityLow,
			Title:       "Quantify your achievements",
			Description: "Numbers make impact concrete for reviewers",
			Action:      "Add measurable results to your experience bullet points",
		},
	)

	return suggestions
}

func missingHighImportance(keywords []KeywordMatch) []string {
	out := make([]string, 0)
	for _, k := range keywords {
		if !k.Found && k.Importance == ImportanceHigh {
			out = append(out, k.Keyword)
		}
	}
	return out
}
