package usecase

import (
	"context"
	"errors"
	"time"

	"placematch/internal/domain/application"
	"placematch/internal/repository"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID, opportunityID uuid.UUID) error
}

type Applications struct {
	opportunities repository.OpportunityRepository
	applications  repository.ApplicationRepository
	invalidator   CacheInvalidator
}

func NewApplicationUsecase(
	opportunities repository.OpportunityRepository,
	applications repository.ApplicationRepository,
	invalidator CacheInvalidator,
) *Applications {
	return &Applications{opportunities: opportunities, applications: applications, invalidator: invalidator}
}

// Apply records an application and drops the candidate's cached rankings so
// the opportunity stops appearing in recommendations immediately.
func (u *Applications) Apply(ctx context.Context, candidateID, opportunityID uuid.UUID) error {
	if candidateID == uuid.Nil {
		return ErrUnauthorized
	}
	if opportunityID == uuid.Nil {
		return ErrOpportunityNotFound
	}

	exists, err := u.opportunities.ExistsByID(ctx, opportunityID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrOpportunityNotFound
	}

	err = u.applications.Create(ctx, application.Application{
		ID:            uuid.New(),
		CandidateID:   candidateID,
		OpportunityID: opportunityID,
		AppliedAt:     time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return ErrOpportunityNotFound
		}
		return ErrInternal
	}

	if u.invalidator != nil {
		_ = u.invalidator.InvalidateCandidate(ctx, candidateID.String())
	}

	return nil
}
