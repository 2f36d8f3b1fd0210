package scoring

import (
	"fmt"
	"strings"
)

const (
	reasonThreshold         = 0.7
	academicReasonThreshold = 0.8
)

func GenerateReasons(c CandidateProfile, o Opportunity, f FactorScores) []string {
	reasons := make([]string, 0, 8)

	if f.Skill > reasonThreshold {
		reasons = append(reasons, "Your skills are a strong match for this role")
	}
	if f.Experience > reasonThreshold {
		reasons = append(reasons, "Your experience level fits what this role is looking for")
	}
	if f.Location > reasonThreshold {
		reasons = append(reasons, "This opportunity works with your location preferences")
	}
	if f.Compensation > reasonThreshold {
		reasons = append(reasons, "The offered compensation aligns with your salary expectations")
	}
	if f.OrgSize > reasonThreshold {
		reasons = append(reasons, "The company size matches the kind of organization you prefer")
	}
	if f.WorkMode > reasonThreshold {
		reasons = append(reasons, "The work arrangement matches how you prefer to work")
	}
	if f.Academic > academicReasonThreshold {
		reasons = append(reasons, "Your academic background lines up with the education requirements")
	}

	held := heldRequiredSkills(c, o)
	if len(held) > 0 {
		reasons = append(reasons, fmt.Sprintf("You already have required skills: %s", strings.Join(held, ", ")))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("You match %d of %d required skills", len(held), len(foldedRequiredSkills(o))))
	}

	return reasons
}

func heldRequiredSkills(c CandidateProfile, o Opportunity) []string {
	levels := candidateSkillLevels(c)

	out := make([]string, 0, len(o.RequiredSkills))
	seen := make(map[string]struct{}, len(o.RequiredSkills))
	for _, s := range o.RequiredSkills {
		name := strings.TrimSpace(s)
		folded := strings.ToLower(name)
		if folded == "" {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		if _, ok := levels[folded]; ok {
			out = append(out, name)
		}
	}
	return out
}
