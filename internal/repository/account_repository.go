package repository

import (
	"context"
	"errors"

	"placematch/internal/database"
	"placematch/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) CreateAccount(ctx context.Context, a candidate.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (id, email, password_hash) VALUES ($1,$2,$3)`,
		a.ID, a.Email, a.PasswordHash,
	)
	return err
}

func (r *PostgresAccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (candidate.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM candidates WHERE id = $1`,
		id,
	)
	return scanAccount(row)
}

func (r *PostgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (candidate.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM candidates WHERE email = $1`,
		email,
	)
	return scanAccount(row)
}

func (r *PostgresAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidates WHERE email = $1)`, email)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SaveProfile swaps the candidate's stored profile for the update inside one
// transaction. Skills and experience are replaced, not merged.
func (r *PostgresAccountRepository) SaveProfile(ctx context.Context, up candidate.ProfileUpdate) error {
	if up.CandidateID == uuid.Nil {
		return candidate.ErrNotFound
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO candidate_profiles (id, candidate_id, full_name, phone, program, department, gpa, certifications)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (candidate_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			program = EXCLUDED.program,
			department = EXCLUDED.department,
			gpa = EXCLUDED.gpa,
			certifications = EXCLUDED.certifications,
			updated_at = now()`,
		uuid.New(), up.CandidateID,
		up.Profile.FullName, up.Profile.Phone, up.Profile.Program, up.Profile.Department,
		up.Profile.GPA, textArray(up.Profile.Certifications),
	)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1`, up.CandidateID); err != nil {
		return err
	}
	for _, s := range up.Skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO candidate_skills (id, candidate_id, name, level) VALUES ($1,$2,$3,$4)
			 ON CONFLICT (candidate_id, name) DO UPDATE SET level = EXCLUDED.level`,
			uuid.New(), up.CandidateID, s.Name, s.Level,
		)
		if err != nil {
			return err
		}
	}

	if _, err = tx.Exec(ctx, `DELETE FROM candidate_experience WHERE candidate_id = $1`, up.CandidateID); err != nil {
		return err
	}
	for _, e := range up.Experience {
		_, err = tx.Exec(ctx,
			`INSERT INTO candidate_experience (id, candidate_id, title, start_date, end_date, description, tags)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			uuid.New(), up.CandidateID, e.Title, e.StartDate, e.EndDate, e.Description, textArray(e.Tags),
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO candidate_preferences (id, candidate_id, locations, work_mode, salary_min, salary_max, org_size)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (candidate_id) DO UPDATE SET
			locations = EXCLUDED.locations,
			work_mode = EXCLUDED.work_mode,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			org_size = EXCLUDED.org_size,
			updated_at = now()`,
		uuid.New(), up.CandidateID,
		textArray(up.Preferences.Locations), up.Preferences.WorkMode,
		up.Preferences.SalaryMin, up.Preferences.SalaryMax, up.Preferences.OrgSize,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func textArray(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func scanAccount(row database.Row) (candidate.Account, error) {
	var a candidate.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Account{}, candidate.ErrNotFound
		}
		return candidate.Account{}, err
	}
	return a, nil
}
