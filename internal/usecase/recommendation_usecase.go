package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"placematch/internal/domain/scoring"
	"placematch/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrNoOpportunitiesFound = errors.New("no open opportunities found")
)

// rankScanLimit bounds how many open opportunities one ranking request pulls
// from the database. Pagination applies after ranking, not before, so a page
// deep in the list still sees the same ordering as page one.
const rankScanLimit = 500

const recommendationCacheTTL = 5 * time.Minute

type RecommendationParams struct {
	Limit    int
	Offset   int
	MinScore float64
}

type RecommendationItem struct {
	OpportunityID   uuid.UUID            `json:"opportunity_id"`
	Title           string               `json:"title"`
	Company         string               `json:"company"`
	Location        string               `json:"location"`
	OverallScore    float64              `json:"overall_score"`
	MatchPercentage int                  `json:"match_percentage"`
	Reasons         []string             `json:"reasons"`
	Factors         scoring.FactorScores `json:"factors"`
	InterestLine    string               `json:"interest_line"`
}

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	candidates    repository.CandidateRepository
	opportunities repository.OpportunityRepository
	applications  repository.ApplicationRepository
	matches       repository.MatchRepository
	engine        *scoring.Engine
	cache         RecommendationCache
	logger        *log.Logger
}

func NewRecommendationUsecase(
	candidates repository.CandidateRepository,
	opportunities repository.OpportunityRepository,
	applications repository.ApplicationRepository,
	matches repository.MatchRepository,
	engine *scoring.Engine,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	return &Recommendation{
		candidates:    candidates,
		opportunities: opportunities,
		applications:  applications,
		matches:       matches,
		engine:        engine,
		cache:         cache,
		logger:        logger,
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, params RecommendationParams) ([]RecommendationItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	params = normalizeParams(params)
	cacheKey := recommendationCacheKey(candidateID, params)

	if u.cache != nil {
		var cached []RecommendationItem
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	row, err := u.candidates.LoadProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}
	profile := profileFromRow(row)

	oppRows, err := u.opportunities.ListOpen(ctx, rankScanLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(oppRows) == 0 {
		return nil, ErrNoOpportunitiesFound
	}

	appliedIDs, err := u.applications.ListOpportunityIDs(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}

	rowByID := make(map[uuid.UUID]repository.OpportunityRow, len(oppRows))
	opps := make([]scoring.Opportunity, 0, len(oppRows))
	for _, r := range oppRows {
		rowByID[r.ID] = r
		opps = append(opps, opportunityFromRow(r))
	}

	recs, err := u.engine.RankOpportunities(&profile, opps, appliedIDs)
	if err != nil {
		return nil, ErrInternal
	}

	filtered := recs[:0]
	for _, rec := range recs {
		if rec.OverallScore >= params.MinScore {
			filtered = append(filtered, rec)
		}
	}
	page := paginate(filtered, params.Limit, params.Offset)

	out := make([]RecommendationItem, 0, len(page))
	for _, rec := range page {
		r := rowByID[rec.OpportunityID]
		out = append(out, RecommendationItem{
			OpportunityID:   rec.OpportunityID,
			Title:           r.Title,
			Company:         r.Company,
			Location:        displayLocation(r),
			OverallScore:    rec.OverallScore,
			MatchPercentage: rec.MatchPercentage,
			Reasons:         rec.Reasons,
			Factors:         rec.Factors,
			InterestLine:    scoring.InterestLine(candidateID, rec.OpportunityID, r.Company),
		})
	}

	u.persistMatches(ctx, candidateID, page)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Recommendation] cache write failed candidate=%s err=%v", candidateID, err)
		}
	}

	return out, nil
}

// persistMatches records the scores for the returned page. Failures are
// logged and swallowed; the snapshot table is advisory, not authoritative.
func (u *Recommendation) persistMatches(ctx context.Context, candidateID uuid.UUID, page []scoring.Recommendation) {
	if u.matches == nil {
		return
	}
	now := time.Now().UTC()
	for _, rec := range page {
		err := u.matches.Upsert(ctx, repository.MatchUpsert{
			CandidateID:     candidateID,
			OpportunityID:   rec.OpportunityID,
			OverallScore:    rec.OverallScore,
			MatchPercentage: rec.MatchPercentage,
			ScoredAt:        now,
		})
		if err != nil && u.logger != nil {
			u.logger.Printf("[Recommendation] match upsert failed candidate=%s opportunity=%s err=%v", candidateID, rec.OpportunityID, err)
		}
	}
}

func normalizeParams(p RecommendationParams) RecommendationParams {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 50 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.MinScore < 0 {
		p.MinScore = 0
	}
	if p.MinScore > 1 {
		p.MinScore = 1
	}
	return p
}

func paginate(recs []scoring.Recommendation, limit, offset int) []scoring.Recommendation {
	if offset >= len(recs) {
		return nil
	}
	end := offset + limit
	if end > len(recs) {
		end = len(recs)
	}
	return recs[offset:end]
}

func recommendationCacheKey(candidateID uuid.UUID, p RecommendationParams) string {
	return fmt.Sprintf("recommendations:%s:%d:%d:%.2f", candidateID, p.Limit, p.Offset, p.MinScore)
}
