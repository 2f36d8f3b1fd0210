package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"placematch/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

type OpportunityRow struct {
	ID                uuid.UUID
	Title             string
	Description       string
	Company           string
	Industry          string
	RequiredSkills    []string
	RequiredYears     float64
	RequiredEducation []string
	City              string
	State             string
	Country           string
	IsRemote          bool
	WorkMode          string
	PayMin            float64
	PayMax            float64
	PayCurrency       string
	PayPeriod         string
	OrgSize           string
	PostedAt          *time.Time
}

type OpportunityUpsert struct {
	ExternalID     string
	Title          string
	Description    string
	Company        string
	Location       string
	SourceURL      string
	RequiredSkills []string
	PostedAt       *time.Time
}

type OpportunityRepository interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (OpportunityRow, error)
	ListOpen(ctx context.Context, limit, offset int) ([]OpportunityRow, error)
	Upsert(ctx context.Context, in OpportunityUpsert) error
}

type PostgresOpportunityRepository struct {
	db database.DB
}

func NewPostgresOpportunityRepository(db database.DB) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{db: db}
}

const opportunityColumns = `id,
	COALESCE(title, ''), COALESCE(description, ''), COALESCE(company, ''), COALESCE(industry, ''),
	COALESCE(required_skills, '{}'), COALESCE(required_years, 0), COALESCE(required_education, '{}'),
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(country, ''), is_remote, COALESCE(work_mode, ''),
	COALESCE(pay_min, 0), COALESCE(pay_max, 0), COALESCE(pay_currency, ''), COALESCE(pay_period, ''),
	COALESCE(org_size, ''), posted_at`

func (r *PostgresOpportunityRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM opportunities WHERE id = $1)`, id)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (OpportunityRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`,
		id,
	)
	out, err := scanOpportunity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return OpportunityRow{}, ErrOpportunityNotFound
		}
		return OpportunityRow{}, err
	}
	return out, nil
}

func (r *PostgresOpportunityRepository) ListOpen(ctx context.Context, limit, offset int) ([]OpportunityRow, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+opportunityColumns+`
		 FROM opportunities
		 WHERE is_open = true
		 ORDER BY posted_at DESC NULLS LAST, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OpportunityRow, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresOpportunityRepository) Upsert(ctx context.Context, in OpportunityUpsert) error {
	url := strings.TrimSpace(in.SourceURL)
	if url == "" {
		return errors.New("empty source url")
	}

	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO opportunities (
			id, external_id, title, description, company, city, required_skills,
			source_url, is_open, posted_at, imported_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,true,$9,$10)
		ON CONFLICT (source_url) DO UPDATE SET
			external_id = COALESCE(EXCLUDED.external_id, opportunities.external_id),
			title = COALESCE(EXCLUDED.title, opportunities.title),
			description = COALESCE(EXCLUDED.description, opportunities.description),
			company = COALESCE(EXCLUDED.company, opportunities.company),
			city = COALESCE(EXCLUDED.city, opportunities.city),
			required_skills = EXCLUDED.required_skills,
			is_open = true,
			posted_at = COALESCE(EXCLUDED.posted_at, opportunities.posted_at),
			imported_at = EXCLUDED.imported_at`,
		uuid.New(),
		nullableText(in.ExternalID),
		nullableText(in.Title),
		nullableText(in.Description),
		nullableText(in.Company),
		nullableText(in.Location),
		in.RequiredSkills,
		url,
		in.PostedAt,
		now,
	)
	return err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOpportunity(row scannable) (OpportunityRow, error) {
	var o OpportunityRow
	err := row.Scan(
		&o.ID,
		&o.Title, &o.Description, &o.Company, &o.Industry,
		&o.RequiredSkills, &o.RequiredYears, &o.RequiredEducation,
		&o.City, &o.State, &o.Country, &o.IsRemote, &o.WorkMode,
		&o.PayMin, &o.PayMax, &o.PayCurrency, &o.PayPeriod,
		&o.OrgSize, &o.PostedAt,
	)
	return o, err
}

func nullableText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
