package usecase

import (
	"context"
	"errors"

	"placematch/internal/domain/candidate"
	"placematch/internal/pkg/jwt"
	ucauth "placematch/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (candidate.Account, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (candidate.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	accounts candidate.Repository
	jwt      jwt.Service
}

func NewAuthUsecase(accounts candidate.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(accounts), accounts: accounts, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (candidate.Account, string, string, error) {
	acc, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return candidate.Account{}, "", "", err
	}
	return u.issueTokens(acc)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (candidate.Account, string, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return candidate.Account{}, "", "", err
	}
	return u.issueTokens(acc)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	acc, err := u.accounts.GetAccountByID(ctx, claims.CandidateID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, newRefresh, nil
}

func (u *Auth) issueTokens(acc candidate.Account) (candidate.Account, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return candidate.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return candidate.Account{}, "", "", ErrInternal
	}
	return acc, access, refresh, nil
}
