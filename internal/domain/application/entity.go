package application

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID            uuid.UUID
	CandidateID   uuid.UUID
	OpportunityID uuid.UUID
	AppliedAt     time.Time
}
