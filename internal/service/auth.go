package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/jwthelper"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/trainercode"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

var (
	ErrAccountEmailExists = repository.ErrAccountEmailExists
	ErrTrainerCodeExists  = repository.ErrTrainerCodeExists
	ErrWrongPassword      = errors.New("wrong password")
	ErrAccountDisabled    = errors.New("account is pending approval or disabled")
	ErrInvalidTrainerCode = trainercode.ErrInvalidFormat
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrAccountNotFound    = repository.ErrAccountNotFound
)

type AuthProfileRepository interface {
	CreateAccountWithProfile(ctx context.Context, account domain.Account, profile domain.Profile) (domain.Profile, error)
	FindAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	FindAccountByID(ctx context.Context, id string) (domain.Account, error)
	UpdateAccountPassword(ctx context.Context, id, passwordHash string) error
	FindByID(ctx context.Context, id string) (domain.Profile, error)
}

type AuthService struct {
	repo       AuthProfileRepository
	signingKey []byte
}

func NewAuthService(repo AuthProfileRepository, signingKey []byte) *AuthService {
	return &AuthService{
		repo:       repo,
		signingKey: signingKey,
	}
}

// Signup registers a new trainer. The profile starts inactive with role user
// and stays locked out until staff approves it.
func (s *AuthService) Signup(ctx context.Context, email, password, trainerName, rawTrainerCode string) (domain.Profile, error) {
	code, err := trainercode.Normalize(rawTrainerCode)
	if err != nil {
		return domain.Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.CreateAccountWithProfile(ctx,
		domain.Account{
			Email:    email,
			Password: string(hash),
		},
		domain.Profile{
			TrainerName: trainerName,
			TrainerCode: code,
			Role:        domain.RoleUser,
			Active:      false,
		})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.CreateAccountWithProfile -> %w", err)
	}

	return created, nil
}

// Login checks the credentials and rejects inactive profiles outright; the
// client never gets a session for a pending account.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Profile, string, error) {
	account, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domain.Profile{}, "", ErrAccountNotFound
		}

		return domain.Profile{}, "", fmt.Errorf("s.repo.FindAccountByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return domain.Profile{}, "", ErrWrongPassword
	}

	profile, err := s.repo.FindByID(ctx, account.ID)
	if err != nil {
		return domain.Profile{}, "", fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !profile.Active {
		return domain.Profile{}, "", ErrAccountDisabled
	}

	return profile, account.ID, nil
}

// RequestPasswordReset mints a reset token for the account. Delivery is
// external; the token is only logged outside production. The return is empty
// when the email is unknown so callers cannot probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}

		return fmt.Errorf("s.repo.FindAccountByEmail -> %w", err)
	}

	token, err := jwthelper.GenerateResetToken(s.signingKey, account.ID)
	if err != nil {
		return fmt.Errorf("jwthelper.GenerateResetToken -> %w", err)
	}

	zap.L().Debug("password reset token issued",
		zap.String("account_id", account.ID),
		zap.String("token", token))

	return nil
}

// ResetPassword spends a reset token to set a new password.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	accountID, err := jwthelper.ParseResetToken(s.signingKey, resetToken)
	if err != nil {
		return ErrInvalidResetToken
	}

	return s.updatePassword(ctx, accountID, newPassword)
}

// UpdatePassword changes the password of an authenticated account.
func (s *AuthService) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	return s.updatePassword(ctx, accountID, newPassword)
}

func (s *AuthService) updatePassword(ctx context.Context, accountID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	if err = s.repo.UpdateAccountPassword(ctx, accountID, string(hash)); err != nil {
		return fmt.Errorf("s.repo.UpdateAccountPassword -> %w", err)
	}

	return nil
}
