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

const skillGapCacheTTL = 10 * time.Minute

type SkillGapUsecase interface {
	GetSkillGaps(ctx context.Context, candidateID uuid.UUID, opportunityID *uuid.UUID) (scoring.GapAnalysis, error)
}

type SkillGap struct {
	candidates    repository.CandidateRepository
	opportunities repository.OpportunityRepository
	engine        *scoring.Engine
	cache         RecommendationCache
	logger        *log.Logger
}

func NewSkillGapUsecase(
	candidates repository.CandidateRepository,
	opportunities repository.OpportunityRepository,
	engine *scoring.Engine,
	cache RecommendationCache,
	logger *log.Logger,
) *SkillGap {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	return &SkillGap{
		candidates:    candidates,
		opportunities: opportunities,
		engine:        engine,
		cache:         cache,
		logger:        logger,
	}
}

// GetSkillGaps analyzes the candidate against a single opportunity when an ID
// is given, otherwise against the current pool of open opportunities.
func (u *SkillGap) GetSkillGaps(ctx context.Context, candidateID uuid.UUID, opportunityID *uuid.UUID) (scoring.GapAnalysis, error) {
	if candidateID == uuid.Nil {
		return scoring.GapAnalysis{}, ErrUnauthorized
	}

	cacheKey := skillGapCacheKey(candidateID, opportunityID)
	if u.cache != nil {
		var cached scoring.GapAnalysis
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	row, err := u.candidates.LoadProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return scoring.GapAnalysis{}, ErrCandidateNotFound
		}
		return scoring.GapAnalysis{}, ErrInternal
	}
	profile := profileFromRow(row)

	oppRows, err := u.targetOpportunities(ctx, opportunityID)
	if err != nil {
		return scoring.GapAnalysis{}, err
	}

	opps := make([]scoring.Opportunity, 0, len(oppRows))
	for _, r := range oppRows {
		opps = append(opps, opportunityFromRow(r))
	}

	analysis, err := u.engine.AnalyzeSkillGaps(&profile, opps)
	if err != nil {
		return scoring.GapAnalysis{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, analysis, skillGapCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[SkillGap] cache write failed candidate=%s err=%v", candidateID, err)
		}
	}

	return analysis, nil
}

func (u *SkillGap) targetOpportunities(ctx context.Context, opportunityID *uuid.UUID) ([]repository.OpportunityRow, error) {
	if opportunityID != nil && *opportunityID != uuid.Nil {
		row, err := u.opportunities.FindByID(ctx, *opportunityID)
		if err != nil {
			if errors.Is(err, repository.ErrOpportunityNotFound) {
				return nil, ErrOpportunityNotFound
			}
			return nil, ErrInternal
		}
		return []repository.OpportunityRow{row}, nil
	}

	rows, err := u.opportunities.ListOpen(ctx, rankScanLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(rows) == 0 {
		return nil, ErrNoOpportunitiesFound
	}
	return rows, nil
}

func skillGapCacheKey(candidateID uuid.UUID, opportunityID *uuid.UUID) string {
	target := "all"
	if opportunityID != nil && *opportunityID != uuid.Nil {
		target = opportunityID.String()
	}
	return fmt.Sprintf("skillgap:%s:%s", candidateID, target)
}
