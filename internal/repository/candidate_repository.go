package repository

import (
	"context"
	"errors"
	"time"

	"placematch/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateSkillRow struct {
	Name  string
	Level string
}

type CandidateExperienceRow struct {
	Title       string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	Tags        []string
}

type CandidateProfileRow struct {
	ID             uuid.UUID
	Email          string
	FullName       string
	Phone          string
	Program        string
	Department     string
	GPA            float64
	Certifications []string

	Skills     []CandidateSkillRow
	Experience []CandidateExperienceRow

	Locations []string
	WorkMode  string
	SalaryMin float64
	SalaryMax float64
	OrgSize   string
}

type CandidateRepository interface {
	ExistsByID(ctx context.Context, candidateID uuid.UUID) (bool, error)
	LoadProfile(ctx context.Context, candidateID uuid.UUID) (CandidateProfileRow, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) ExistsByID(ctx context.Context, candidateID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM candidates WHERE id = $1)`, candidateID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCandidateRepository) LoadProfile(ctx context.Context, candidateID uuid.UUID) (CandidateProfileRow, error) {
	out := CandidateProfileRow{ID: candidateID}

	row := r.db.QueryRow(ctx,
		`SELECT c.email,
		        COALESCE(p.full_name, ''), COALESCE(p.phone, ''),
		        COALESCE(p.program, ''), COALESCE(p.department, ''),
		        COALESCE(p.gpa, 0), COALESCE(p.certifications, '{}')
		 FROM candidates c
		 LEFT JOIN candidate_profiles p ON p.candidate_id = c.id
		 WHERE c.id = $1`,
		candidateID,
	)
	err := row.Scan(&out.Email, &out.FullName, &out.Phone, &out.Program, &out.Department, &out.GPA, &out.Certifications)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CandidateProfileRow{}, ErrCandidateNotFound
		}
		return CandidateProfileRow{}, err
	}

	if out.Skills, err = r.loadSkills(ctx, candidateID); err != nil {
		return CandidateProfileRow{}, err
	}
	if out.Experience, err = r.loadExperience(ctx, candidateID); err != nil {
		return CandidateProfileRow{}, err
	}
	if err = r.loadPreferences(ctx, candidateID, &out); err != nil {
		return CandidateProfileRow{}, err
	}

	return out, nil
}

func (r *PostgresCandidateRepository) loadSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateSkillRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, COALESCE(level, '')
		 FROM candidate_skills
		 WHERE candidate_id = $1
		 ORDER BY name ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateSkillRow, 0)
	for rows.Next() {
		var s CandidateSkillRow
		if err := rows.Scan(&s.Name, &s.Level); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresCandidateRepository) loadExperience(ctx context.Context, candidateID uuid.UUID) ([]CandidateExperienceRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(title, ''), start_date, end_date, COALESCE(description, ''), COALESCE(tags, '{}')
		 FROM candidate_experience
		 WHERE candidate_id = $1
		 ORDER BY start_date ASC NULLS LAST`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateExperienceRow, 0)
	for rows.Next() {
		var e CandidateExperienceRow
		if err := rows.Scan(&e.Title, &e.StartDate, &e.EndDate, &e.Description, &e.Tags); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresCandidateRepository) loadPreferences(ctx context.Context, candidateID uuid.UUID, out *CandidateProfileRow) error {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(locations, '{}'), COALESCE(work_mode, ''),
		        COALESCE(salary_min, 0), COALESCE(salary_max, 0), COALESCE(org_size, '')
		 FROM candidate_preferences
		 WHERE candidate_id = $1`,
		candidateID,
	)
	err := row.Scan(&out.Locations, &out.WorkMode, &out.SalaryMin, &out.SalaryMax, &out.OrgSize)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	return nil
}
