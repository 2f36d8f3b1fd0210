package candidate

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("candidate not found")

// ProfileUpdate replaces a candidate's profile wholesale: the stored skills,
// experience, and preferences are swapped for what the update carries.
type ProfileUpdate struct {
	CandidateID uuid.UUID
	Profile     Profile
	Skills      []Skill
	Experience  []ExperienceEntry
	Preferences Preferences
}

type Repository interface {
	CreateAccount(ctx context.Context, a Account) error
	GetAccountByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SaveProfile(ctx context.Context, up ProfileUpdate) error
}
