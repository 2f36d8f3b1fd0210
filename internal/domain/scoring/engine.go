package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	weightSkill        = 0.25
	weightExperience   = 0.20
	weightLocation     = 0.15
	weightCompensation = 0.15
	weightOrgSize      = 0.10
	weightWorkMode     = 0.10
	weightAcademic     = 0.05
)

const inclusionThreshold = 0.30

type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

func NewEngineWithClock(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

func (e *Engine) CalculateFactors(c CandidateProfile, o Opportunity) FactorScores {
	now := e.now()
	return FactorScores{
		Skill:        skillScore(c, o),
		Experience:   experienceScore(c, o, now),
		Location:     locationScore(c, o),
		Compensation: compensationScore(c, o),
		OrgSize:      orgSizeScore(c, o),
		WorkMode:     workModeScore(c, o),
		Academic:     academicScore(c, o),
	}
}

func WeightedScore(f FactorScores) float64 {
	return f.Skill*weightSkill +
		f.Experience*weightExperience +
		f.Location*weightLocation +
		f.Compensation*weightCompensation +
		f.OrgSize*weightOrgSize +
		f.WorkMode*weightWorkMode +
		f.Academic*weightAcademic
}

func MatchPercentage(overall float64) int {
	pct := int(math.Round(overall * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func (e *Engine) RankOpportunities(c *CandidateProfile, opps []Opportunity, appliedIDs []uuid.UUID) ([]Recommendation, error) {
	if c == nil {
		return nil, ErrNilCandidate
	}

	applied := make(map[uuid.UUID]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		if id == uuid.Nil {
			continue
		}
		applied[id] = struct{}{}
	}

	out := make([]Recommendation, 0, len(opps))
	for _, o := range opps {
		if o.ID == uuid.Nil {
			continue
		}
		if _, ok := applied[o.ID]; ok {
			continue
		}

		factors := e.CalculateFactors(*c, o)
		overall := WeightedScore(factors)
		if overall <= inclusionThreshold {
			continue
		}

		out = append(out, Recommendation{
			OpportunityID:   o.ID,
			OverallScore:    overall,
			MatchPercentage: MatchPercentage(overall),
			Reasons:         GenerateReasons(*c, o, factors),
			Factors:         factors,
		})
	}

	// Tie-break on opportunity ID so identical inputs always order identically.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OverallScore != out[j].OverallScore {
			return out[i].OverallScore > out[j].OverallScore
		}
		return out[i].OpportunityID.String() < out[j].OpportunityID.String()
	})

	return out, nil
}
