package repository

import (
	"context"
	"time"

	"placematch/internal/database"
	"placematch/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	ListOpportunityIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, a application.Application) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListOpportunityIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT opportunity_id FROM applications WHERE candidate_id = $1`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	if a.CandidateID == uuid.Nil || a.OpportunityID == uuid.Nil {
		return nil
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, candidate_id, opportunity_id, applied_at)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (candidate_id, opportunity_id) DO NOTHING`,
		a.ID, a.CandidateID, a.OpportunityID, a.AppliedAt,
	)
	return err
}
