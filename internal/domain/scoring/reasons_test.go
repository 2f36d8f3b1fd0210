package scoring

import (
	"strings"
	"testing"
)

func TestGenerateReasons_HighFactorsDisclosed(t *testing.T) {
	c := CandidateProfile{Skills: []SkillClaim{{Name: "Go", Level: LevelAdvanced}}}
	o := Opportunity{RequiredSkills: []string{"Go"}}
	f := FactorScores{Skill: 0.9, Experience: 0.8, Location: 1.0, Compensation: 0.75, OrgSize: 0.75, WorkMode: 1.0, Academic: 0.85}

	reasons := GenerateReasons(c, o, f)
	if len(reasons) != 8 {
		t.Fatalf("expected 8 reasons (7 factors + held skills), got %d: %v", len(reasons), reasons)
	}
	last := reasons[len(reasons)-1]
	if !strings.Contains(last, "Go") {
		t.Fatalf("held-skills line missing skill name: %q", last)
	}
}

func TestGenerateReasons_ThresholdsAreStrict(t *testing.T) {
	c := CandidateProfile{}
	o := Opportunity{RequiredSkills: []string{"Rust"}}
	f := FactorScores{Skill: 0.7, Experience: 0.7, Location: 0.7, Compensation: 0.7, OrgSize: 0.7, WorkMode: 0.7, Academic: 0.8}

	reasons := GenerateReasons(c, o, f)
	// Nothing exceeds its threshold and no required skill is held, so only
	// the overlap fallback remains.
	if len(reasons) != 1 {
		t.Fatalf("expected only fallback reason, got %v", reasons)
	}
	if !strings.Contains(reasons[0], "0 of 1") {
		t.Fatalf("fallback should state the skill overlap, got %q", reasons[0])
	}
}

func TestGenerateReasons_AcademicUsesHigherBar(t *testing.T) {
	c := CandidateProfile{}
	o := Opportunity{}
	f := FactorScores{Academic: 0.75}

	for _, r := range GenerateReasons(c, o, f) {
		if strings.Contains(r, "academic") {
			t.Fatalf("academic reason disclosed below its 0.8 bar")
		}
	}
}

func TestGenerateReasons_NeverEmpty(t *testing.T) {
	if got := GenerateReasons(CandidateProfile{}, Opportunity{}, FactorScores{}); len(got) == 0 {
		t.Fatalf("reasons must never be empty")
	}
}
