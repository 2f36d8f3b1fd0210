package usecase

import (
	"context"
	"errors"
	"testing"

	"placematch/internal/repository"

	"github.com/google/uuid"
)

func TestGetSkillGaps_NilCandidate(t *testing.T) {
	uc := NewSkillGapUsecase(mockCandidateRepo{}, mockOpportunityRepo{}, nil, nil, nil)
	_, err := uc.GetSkillGaps(context.Background(), uuid.Nil, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetSkillGaps_MissingSkillsAgainstOne(t *testing.T) {
	cid := uuid.New()
	oid := uuid.New()

	row := openOpportunity(oid, "Data Engineer")
	row.RequiredSkills = []string{"Go", "SQL", "Kafka"}

	profile := qualifiedProfile(cid)
	profile.Skills = []repository.CandidateSkillRow{{Name: "Go", Level: "advanced"}}

	uc := NewSkillGapUsecase(
		mockCandidateRepo{profile: profile},
		mockOpportunityRepo{byID: map[uuid.UUID]repository.OpportunityRow{oid: row}},
		nil, nil, nil,
	)

	analysis, err := uc.GetSkillGaps(context.Background(), cid, &oid)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(analysis.MissingSkills) != 2 {
		t.Fatalf("expected 2 missing skills, got %v", analysis.MissingSkills)
	}
	for _, want := range []string{"kafka", "sql"} {
		found := false
		for _, got := range analysis.MissingSkills {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing skills %v lack %q", analysis.MissingSkills, want)
		}
	}
}

func TestGetSkillGaps_OpportunityNotFound(t *testing.T) {
	cid := uuid.New()
	oid := uuid.New()
	uc := NewSkillGapUsecase(
		mockCandidateRepo{profile: qualifiedProfile(cid)},
		mockOpportunityRepo{byID: map[uuid.UUID]repository.OpportunityRow{}},
		nil, nil, nil,
	)
	_, err := uc.GetSkillGaps(context.Background(), cid, &oid)
	if !errors.Is(err, ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestGetSkillGaps_AcrossOpenPool(t *testing.T) {
	cid := uuid.New()
	a := openOpportunity(uuid.New(), "A")
	a.RequiredSkills = []string{"Go"}
	b := openOpportunity(uuid.New(), "B")
	b.RequiredSkills = []string{"Rust"}

	profile := qualifiedProfile(cid)
	profile.Skills = []repository.CandidateSkillRow{{Name: "Go", Level: "advanced"}}

	uc := NewSkillGapUsecase(
		mockCandidateRepo{profile: profile},
		mockOpportunityRepo{rows: []repository.OpportunityRow{a, b}},
		nil, nil, nil,
	)

	analysis, err := uc.GetSkillGaps(context.Background(), cid, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(analysis.MissingSkills) != 1 || analysis.MissingSkills[0] != "rust" {
		t.Fatalf("expected [rust], got %v", analysis.MissingSkills)
	}
}
