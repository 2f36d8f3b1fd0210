package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"placematch/internal/domain/application"
	"placematch/internal/repository"

	"github.com/google/uuid"
)

type mockCandidateRepo struct {
	profile repository.CandidateProfileRow
	err     error
}

func (m mockCandidateRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (m mockCandidateRepo) LoadProfile(context.Context, uuid.UUID) (repository.CandidateProfileRow, error) {
	return m.profile, m.err
}

type mockOpportunityRepo struct {
	rows    []repository.OpportunityRow
	byID    map[uuid.UUID]repository.OpportunityRow
	listErr error
	findErr error
}

func (m mockOpportunityRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (m mockOpportunityRepo) FindByID(_ context.Context, id uuid.UUID) (repository.OpportunityRow, error) {
	if m.findErr != nil {
		return repository.OpportunityRow{}, m.findErr
	}
	row, ok := m.byID[id]
	if !ok {
		return repository.OpportunityRow{}, repository.ErrOpportunityNotFound
	}
	return row, nil
}
func (m mockOpportunityRepo) ListOpen(context.Context, int, int) ([]repository.OpportunityRow, error) {
	return m.rows, m.listErr
}
func (m mockOpportunityRepo) Upsert(context.Context, repository.OpportunityUpsert) error { return nil }

type mockApplicationRepo struct {
	applied []uuid.UUID
	err     error
}

func (m mockApplicationRepo) ListOpportunityIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.applied, m.err
}
func (m mockApplicationRepo) Create(context.Context, application.Application) error { return nil }

type mockMatchRepo struct {
	upserts []repository.MatchUpsert
}

func (m *mockMatchRepo) Upsert(_ context.Context, u repository.MatchUpsert) error {
	m.upserts = append(m.upserts, u)
	return nil
}

func qualifiedProfile(id uuid.UUID) repository.CandidateProfileRow {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return repository.CandidateProfileRow{
		ID:    id,
		Email: "dev@example.com",
		Phone: "+15550001111",
		Skills: []repository.CandidateSkillRow{
			{Name: "Go", Level: "advanced"},
			{Name: "SQL", Level: "intermediate"},
		},
		Experience: []repository.CandidateExperienceRow{
			{Title: "Backend Engineer", StartDate: &start, EndDate: &end, Description: "Built services"},
		},
		Program:    "Computer Science",
		Department: "Engineering",
		GPA:        8.5,
		Locations:  []string{"Austin"},
		WorkMode:   "remote",
		SalaryMin:  60000,
		SalaryMax:  120000,
		OrgSize:    "medium",
	}
}

func openOpportunity(id uuid.UUID, title string) repository.OpportunityRow {
	return repository.OpportunityRow{
		ID:             id,
		Title:          title,
		Description:    "Ship backend features",
		Company:        "Acme",
		RequiredSkills: []string{"Go", "SQL"},
		RequiredYears:  2,
		IsRemote:       true,
		WorkMode:       "remote",
		PayMin:         90000,
		PayMax:         130000,
		PayPeriod:      "yearly",
		OrgSize:        "medium",
	}
}

func TestGetRecommendations_NilCandidate(t *testing.T) {
	uc := NewRecommendationUsecase(mockCandidateRepo{}, mockOpportunityRepo{}, mockApplicationRepo{}, nil, nil, nil, nil)
	_, err := uc.GetRecommendations(context.Background(), uuid.Nil, RecommendationParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetRecommendations_CandidateNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockCandidateRepo{err: repository.ErrCandidateNotFound},
		mockOpportunityRepo{rows: []repository.OpportunityRow{openOpportunity(uuid.New(), "Backend Engineer")}},
		mockApplicationRepo{}, nil, nil, nil, nil,
	)
	_, err := uc.GetRecommendations(context.Background(), uuid.New(), RecommendationParams{})
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestGetRecommendations_NoOpenOpportunities(t *testing.T) {
	cid := uuid.New()
	uc := NewRecommendationUsecase(
		mockCandidateRepo{profile: qualifiedProfile(cid)},
		mockOpportunityRepo{},
		mockApplicationRepo{}, nil, nil, nil, nil,
	)
	_, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{})
	if !errors.Is(err, ErrNoOpportunitiesFound) {
		t.Fatalf("expected ErrNoOpportunitiesFound, got %v", err)
	}
}

func TestGetRecommendations_ExcludesApplied(t *testing.T) {
	cid := uuid.New()
	applied := uuid.New()
	fresh := uuid.New()

	matches := &mockMatchRepo{}
	uc := NewRecommendationUsecase(
		mockCandidateRepo{profile: qualifiedProfile(cid)},
		mockOpportunityRepo{rows: []repository.OpportunityRow{
			openOpportunity(applied, "Backend Engineer"),
			openOpportunity(fresh, "Platform Engineer"),
		}},
		mockApplicationRepo{applied: []uuid.UUID{applied}},
		matches, nil, nil, nil,
	)

	items, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].OpportunityID != fresh {
		t.Fatalf("expected %s, got %s", fresh, items[0].OpportunityID)
	}
	if items[0].Title != "Platform Engineer" {
		t.Fatalf("unexpected title %q", items[0].Title)
	}
	if items[0].MatchPercentage <= 0 || items[0].MatchPercentage > 100 {
		t.Fatalf("match percentage out of range: %d", items[0].MatchPercentage)
	}
	if items[0].InterestLine == "" {
		t.Fatalf("expected interest line")
	}
	if len(matches.upserts) != 1 {
		t.Fatalf("expected 1 match upsert, got %d", len(matches.upserts))
	}
	if matches.upserts[0].OpportunityID != fresh {
		t.Fatalf("match upsert recorded wrong opportunity")
	}
}

func TestGetRecommendations_MinScoreFilters(t *testing.T) {
	cid := uuid.New()
	uc := NewRecommendationUsecase(
		mockCandidateRepo{profile: qualifiedProfile(cid)},
		mockOpportunityRepo{rows: []repository.OpportunityRow{openOpportunity(uuid.New(), "Backend Engineer")}},
		mockApplicationRepo{}, nil, nil, nil, nil,
	)

	items, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{MinScore: 0.99})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page above min_score, got %d", len(items))
	}
}

func TestGetRecommendations_Pagination(t *testing.T) {
	cid := uuid.New()
	rows := []repository.OpportunityRow{
		openOpportunity(uuid.New(), "A"),
		openOpportunity(uuid.New(), "B"),
		openOpportunity(uuid.New(), "C"),
	}
	uc := NewRecommendationUsecase(
		mockCandidateRepo{profile: qualifiedProfile(cid)},
		mockOpportunityRepo{rows: rows},
		mockApplicationRepo{}, nil, nil, nil, nil,
	)

	first, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 items, got %d", len(first))
	}

	second, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 item on second page, got %d", len(second))
	}
	if second[0].OpportunityID == first[0].OpportunityID || second[0].OpportunityID == first[1].OpportunityID {
		t.Fatalf("second page repeated an item from the first")
	}
}

type fakeCache struct {
	store map[string][]byte
	sets  int
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = b
	f.sets++
	return nil
}

func TestGetRecommendations_CacheReadThrough(t *testing.T) {
	cid := uuid.New()
	cache := &fakeCache{}
	uc := NewRecommendationUsecase(
		mockCandidateRepo{profile: qualifiedProfile(cid)},
		mockOpportunityRepo{rows: []repository.OpportunityRow{openOpportunity(uuid.New(), "Backend Engineer")}},
		mockApplicationRepo{}, nil, nil, cache, nil,
	)

	first, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}

	second, err := uc.GetRecommendations(context.Background(), cid, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("second call should hit cache, writes=%d", cache.sets)
	}
	if len(second) != len(first) {
		t.Fatalf("cache returned %d items, want %d", len(second), len(first))
	}
}
