package scoring

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedEngine() *Engine {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return NewEngineWithClock(func() time.Time { return now })
}

func strongCandidate() *CandidateProfile {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	return &CandidateProfile{
		ID:    uuid.New(),
		Email: "dev@example.com",
		Phone: "+62-812-0000",
		Skills: []SkillClaim{
			{Name: "Go", Level: LevelAdvanced},
			{Name: "PostgreSQL", Level: LevelIntermediate},
		},
		Experience: []ExperienceEntry{
			{Title: "Backend Engineer", StartDate: start, Description: "built services"},
		},
		Academic: AcademicInfo{Program: "Computer Science", Department: "Engineering", GPA: 8.5},
		Preferences: Preferences{
			Locations: []string{"Jakarta"},
			WorkMode:  WorkModeRemote,
			SalaryMin: 40000,
			SalaryMax: 90000,
			OrgSize:   OrgSizeMedium,
		},
	}
}

func matchingOpportunity(id uuid.UUID) Opportunity {
	return Opportunity{
		ID:                      id,
		Title:                   "Backend Engineer",
		Company:                 "Acme",
		RequiredSkills:          []string{"Go", "PostgreSQL"},
		RequiredExperienceYears: 2,
		RequiredEducation:       []string{"computer science"},
		Location:                OpportunityLocation{City: "Jakarta", Country: "Indonesia", IsRemote: true, WorkMode: WorkModeRemote},
		Compensation:            Compensation{Min: 50000, Max: 70000, Period: PayPeriodYearly},
		OrgSize:                 OrgSizeMedium,
	}
}

func TestWeightsSumToOne(t *testing.T) {
	all := FactorScores{Skill: 1, Experience: 1, Location: 1, Compensation: 1, OrgSize: 1, WorkMode: 1, Academic: 1}
	if got := WeightedScore(all); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("weights sum to %v, want 1.0", got)
	}
}

func TestMatchPercentage_Rounding(t *testing.T) {
	cases := map[float64]int{0: 0, 0.304: 30, 0.305: 31, 0.666666: 67, 1: 100}
	for score, want := range cases {
		if got := MatchPercentage(score); got != want {
			t.Fatalf("MatchPercentage(%v) = %d, want %d", score, got, want)
		}
	}
}

func TestRankOpportunities_NilCandidate(t *testing.T) {
	if _, err := fixedEngine().RankOpportunities(nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil candidate")
	}
}

func TestRankOpportunities_ExcludesApplied(t *testing.T) {
	e := fixedEngine()
	c := strongCandidate()

	appliedID := uuid.New()
	openID := uuid.New()
	opps := []Opportunity{matchingOpportunity(appliedID), matchingOpportunity(openID)}

	recs, err := e.RankOpportunities(c, opps, []uuid.UUID{appliedID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, r := range recs {
		if r.OpportunityID == appliedID {
			t.Fatalf("applied opportunity surfaced in recommendations")
		}
	}
	if len(recs) != 1 || recs[0].OpportunityID != openID {
		t.Fatalf("expected exactly the open opportunity, got %d items", len(recs))
	}
}

func TestRankOpportunities_ThresholdAndRange(t *testing.T) {
	e := fixedEngine()
	c := strongCandidate()

	weak := Opportunity{
		ID:                      uuid.New(),
		RequiredSkills:          []string{"COBOL", "Fortran", "Ada"},
		RequiredExperienceYears: 20,
		RequiredEducation:       []string{"astrophysics"},
		Location:                OpportunityLocation{City: "Reykjavik", Country: "Iceland", WorkMode: WorkModeOnsite},
		Compensation:            Compensation{Min: 5, Max: 5, Period: PayPeriodHourly},
		OrgSize:                 OrgSizeEnterprise,
	}

	recs, err := e.RankOpportunities(c, []Opportunity{weak, matchingOpportunity(uuid.New())}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, r := range recs {
		if r.OverallScore <= inclusionThreshold {
			t.Fatalf("recommendation below inclusion threshold: %v", r.OverallScore)
		}
		if r.OverallScore < 0 || r.OverallScore > 1 {
			t.Fatalf("overall score out of range: %v", r.OverallScore)
		}
		if want := MatchPercentage(r.OverallScore); r.MatchPercentage != want {
			t.Fatalf("match percentage %d does not round overall %v", r.MatchPercentage, r.OverallScore)
		}
		if len(r.Reasons) == 0 {
			t.Fatalf("recommendation has no reasons")
		}
	}
}

func TestRankOpportunities_SortedAndDeterministic(t *testing.T) {
	e := fixedEngine()
	c := strongCandidate()

	opps := []Opportunity{matchingOpportunity(uuid.New())}
	weaker := matchingOpportunity(uuid.New())
	weaker.RequiredSkills = []string{"Go", "Kubernetes", "Rust"}
	weaker.OrgSize = OrgSizeEnterprise
	opps = append(opps, weaker)

	// Two identical opportunities under different IDs exercise the tie-break.
	twinA := matchingOpportunity(uuid.MustParse("00000000-0000-0000-0000-00000000000b"))
	twinB := matchingOpportunity(uuid.MustParse("00000000-0000-0000-0000-00000000000a"))
	opps = append(opps, twinA, twinB)

	first, err := e.RankOpportunities(c, opps, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := e.RankOpportunities(c, opps, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different rankings")
	}
	for i := 1; i < len(first); i++ {
		if first[i].OverallScore > first[i-1].OverallScore {
			t.Fatalf("rankings not sorted by score desc at %d", i)
		}
		if first[i].OverallScore == first[i-1].OverallScore &&
			first[i].OpportunityID.String() < first[i-1].OpportunityID.String() {
			t.Fatalf("tie not broken by opportunity id at %d", i)
		}
	}
}

func TestRankOpportunities_SkillMonotonicity(t *testing.T) {
	e := fixedEngine()
	c := strongCandidate()
	opp := matchingOpportunity(uuid.New())
	opp.RequiredSkills = []string{"Go", "PostgreSQL", "Kafka"}

	before := e.CalculateFactors(*c, opp)
	overallBefore := WeightedScore(before)

	c.Skills = append(c.Skills, SkillClaim{Name: "Kafka", Level: LevelIntermediate})
	after := e.CalculateFactors(*c, opp)
	overallAfter := WeightedScore(after)

	if after.Skill < before.Skill {
		t.Fatalf("skill factor decreased after adding required skill: %v -> %v", before.Skill, after.Skill)
	}
	if overallAfter < overallBefore {
		t.Fatalf("overall score decreased after adding required skill: %v -> %v", overallBefore, overallAfter)
	}
}

func TestInterestLine_Deterministic(t *testing.T) {
	cid := uuid.New()
	oid := uuid.New()

	first := InterestLine(cid, oid, "Acme")
	for i := 0; i < 10; i++ {
		if got := InterestLine(cid, oid, "Acme"); got != first {
			t.Fatalf("interest line changed between calls")
		}
	}
	if first == "" {
		t.Fatalf("empty interest line")
	}
}
