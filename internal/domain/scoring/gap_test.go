package scoring

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeSkillGaps_NilCandidate(t *testing.T) {
	if _, err := fixedEngine().AnalyzeSkillGaps(nil, nil); err == nil {
		t.Fatalf("expected error for nil candidate")
	}
}

func TestAnalyzeSkillGaps_MissingSkillsCaseFolded(t *testing.T) {
	c := &CandidateProfile{Skills: []SkillClaim{{Name: "Python", Level: LevelIntermediate}}}
	opps := []Opportunity{
		{RequiredSkills: []string{"Python", "SQL"}},
	}

	got, err := fixedEngine().AnalyzeSkillGaps(c, opps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"sql"}) {
		t.Fatalf("missing skills = %v, want [sql]", got.MissingSkills)
	}
}

func TestAnalyzeSkillGaps_LevelsReported(t *testing.T) {
	c := &CandidateProfile{Skills: []SkillClaim{
		{Name: "Go", Level: LevelBeginner},
		{Name: "Docker", Level: LevelExpert},
	}}
	opps := []Opportunity{{RequiredSkills: []string{"go", "docker", "kubernetes"}}}

	got, err := fixedEngine().AnalyzeSkillGaps(c, opps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	levels := make(map[string]SkillLevelGap, len(got.SkillLevels))
	for _, lv := range got.SkillLevels {
		levels[lv.Skill] = lv
	}

	if lv := levels["go"]; lv.CurrentLevel != LevelBeginner || lv.RecommendedLevel != LevelIntermediate {
		t.Fatalf("go level report = %+v", lv)
	}
	if lv := levels["docker"]; lv.CurrentLevel != LevelExpert {
		t.Fatalf("docker level report = %+v", lv)
	}
	if lv := levels["kubernetes"]; lv.CurrentLevel != LevelNone {
		t.Fatalf("kubernetes level report = %+v", lv)
	}
}

func TestAnalyzeSkillGaps_Recommendations(t *testing.T) {
	c := &CandidateProfile{Skills: []SkillClaim{{Name: "Go", Level: LevelBeginner}}}
	opps := []Opportunity{{RequiredSkills: []string{"Go", "Rust", "Zig", "Kafka", "Redis"}}}

	got, err := fixedEngine().AnalyzeSkillGaps(c, opps)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", got.Recommendations)
	}

	learn := got.Recommendations[0]
	if n := strings.Count(learn, ","); n > 2 {
		t.Fatalf("learning recommendation should name at most three skills: %q", learn)
	}
	if !strings.Contains(got.Recommendations[1], "go") {
		t.Fatalf("beginner-level recommendation should name go: %q", got.Recommendations[1])
	}
}

func TestAnalyzeSkillGaps_NoOpportunities(t *testing.T) {
	got, err := fixedEngine().AnalyzeSkillGaps(&CandidateProfile{}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.MissingSkills) != 0 || len(got.SkillLevels) != 0 || len(got.Recommendations) != 0 {
		t.Fatalf("expected empty analysis, got %+v", got)
	}
}
