package scoring

import (
	"fmt"
	"sort"
	"strings"
)

type SkillLevelGap struct {
	Skill            string
	CurrentLevel     string
	RecommendedLevel string
}

type GapAnalysis struct {
	MissingSkills   []string
	SkillLevels     []SkillLevelGap
	Recommendations []string
}

func (e *Engine) AnalyzeSkillGaps(c *CandidateProfile, opps []Opportunity) (GapAnalysis, error) {
	if c == nil {
		return GapAnalysis{}, ErrNilCandidate
	}

	required := make(map[string]struct{})
	for _, o := range opps {
		for _, s := range o.RequiredSkills {
			name := strings.ToLower(strings.TrimSpace(s))
			if name == "" {
				continue
			}
			required[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	held := make(map[string]string, len(c.Skills))
	for _, s := range c.Skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			continue
		}
		level := strings.ToLower(strings.TrimSpace(s.Level))
		if _, ok := levelOrdinals[level]; !ok {
			level = LevelIntermediate
		}
		if cur, ok := held[name]; !ok || levelOrdinals[level] > levelOrdinals[cur] {
			held[name] = level
		}
	}

	analysis := GapAnalysis{
		MissingSkills: make([]string, 0),
		SkillLevels:   make([]SkillLevelGap, 0, len(names)),
	}

	beginnerSkills := make([]string, 0)
	for _, name := range names {
		level, ok := held[name]
		if !ok {
			analysis.MissingSkills = append(analysis.MissingSkills, name)
			level = LevelNone
		} else if level == LevelBeginner {
			beginnerSkills = append(beginnerSkills, name)
		}
		analysis.SkillLevels = append(analysis.SkillLevels, SkillLevelGap{
			Skill:            name,
			CurrentLevel:     level,
			RecommendedLevel: LevelIntermediate,
		})
	}

	if len(analysis.MissingSkills) > 0 {
		top := analysis.MissingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Consider learning %s to qualify for more opportunities", strings.Join(top, ", ")))
	}
	if len(beginnerSkills) > 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Work toward advanced proficiency in %s, where you are currently at beginner level", strings.Join(beginnerSkills, ", ")))
	}

	return analysis, nil
}
