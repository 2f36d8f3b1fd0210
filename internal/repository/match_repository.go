package repository

import (
	"context"
	"time"

	"placematch/internal/database"

	"github.com/google/uuid"
)

type MatchUpsert struct {
	CandidateID     uuid.UUID
	OpportunityID   uuid.UUID
	OverallScore    float64
	MatchPercentage int
	ScoredAt        time.Time
}

type MatchRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.CandidateID == uuid.Nil || m.OpportunityID == uuid.Nil {
		return nil
	}
	if m.ScoredAt.IsZero() {
		m.ScoredAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO placement_matches (id, candidate_id, opportunity_id, overall_score, match_percentage, scored_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (candidate_id, opportunity_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			match_percentage = EXCLUDED.match_percentage,
			scored_at = EXCLUDED.scored_at`,
		uuid.New(),
		m.CandidateID,
		m.OpportunityID,
		m.OverallScore,
		m.MatchPercentage,
		m.ScoredAt,
	)
	return err
}
