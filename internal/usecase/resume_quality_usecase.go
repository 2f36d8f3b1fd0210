package usecase

import (
	"context"
	"errors"

	"placematch/internal/domain/scoring"
	"placematch/internal/repository"

	"github.com/google/uuid"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

type ResumeQualityUsecase interface {
	AnalyzeResume(ctx context.Context, candidateID, opportunityID uuid.UUID, resumeText string) (scoring.QualityReport, error)
}

type ResumeQuality struct {
	candidates    repository.CandidateRepository
	opportunities repository.OpportunityRepository
	engine        *scoring.Engine
}

func NewResumeQualityUsecase(
	candidates repository.CandidateRepository,
	opportunities repository.OpportunityRepository,
	engine *scoring.Engine,
) *ResumeQuality {
	if engine == nil {
		engine = scoring.NewEngine()
	}
	return &ResumeQuality{candidates: candidates, opportunities: opportunities, engine: engine}
}

func (u *ResumeQuality) AnalyzeResume(ctx context.Context, candidateID, opportunityID uuid.UUID, resumeText string) (scoring.QualityReport, error) {
	if candidateID == uuid.Nil {
		return scoring.QualityReport{}, ErrUnauthorized
	}
	if opportunityID == uuid.Nil {
		return scoring.QualityReport{}, ErrOpportunityNotFound
	}

	row, err := u.candidates.LoadProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return scoring.QualityReport{}, ErrCandidateNotFound
		}
		return scoring.QualityReport{}, ErrInternal
	}
	profile := profileFromRow(row)

	oppRow, err := u.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return scoring.QualityReport{}, ErrOpportunityNotFound
		}
		return scoring.QualityReport{}, ErrInternal
	}

	report, err := u.engine.AnalyzeResumeQuality(&profile, opportunityFromRow(oppRow), resumeText)
	if err != nil {
		return scoring.QualityReport{}, ErrInternal
	}
	return report, nil
}
