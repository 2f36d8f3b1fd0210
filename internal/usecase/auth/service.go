package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"placematch/internal/domain/candidate"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	accounts candidate.Repository
}

func NewService(accounts candidate.Repository) *Service {
	return &Service{accounts: accounts}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (candidate.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return candidate.Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return candidate.Account{}, ErrInvalidInput
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return candidate.Account{}, ErrInternal
	}
	if exists {
		return candidate.Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return candidate.Account{}, ErrInternal
	}

	a := candidate.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.accounts.CreateAccount(ctx, a); err != nil {
		exists, exErr := s.accounts.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return candidate.Account{}, ErrEmailAlreadyRegistered
		}
		return candidate.Account{}, ErrInternal
	}

	created, err := s.accounts.GetAccountByID(ctx, a.ID)
	if err != nil {
		return candidate.Account{}, ErrInternal
	}
	return sanitizeAccount(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (candidate.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return candidate.Account{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return candidate.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Account{}, ErrInvalidCredentials
		}
		return candidate.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return candidate.Account{}, ErrInvalidCredentials
	}

	return sanitizeAccount(a), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeAccount(a candidate.Account) candidate.Account {
	a.PasswordHash = ""
	return a
}
