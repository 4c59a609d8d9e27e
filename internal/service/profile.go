package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/search"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/trainercode"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

var (
	ErrProfileNotFound   = repository.ErrProfileNotFound
	ErrRoleNotAssignable = errors.New("only the user and mod roles can be assigned")
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	SetActive(ctx context.Context, id string, active bool) error
	DeleteAccount(ctx context.Context, id string) error
}

type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{
		repo: repo,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return profile, nil
}

// UpdateOwnProfile lets a trainer change their display name and code. Role
// and active flag are kept as-is.
func (s *ProfileService) UpdateOwnProfile(ctx context.Context, id, trainerName, rawTrainerCode string) (domain.Profile, error) {
	code, err := trainercode.Normalize(rawTrainerCode)
	if err != nil {
		return domain.Profile{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	current.TrainerName = trainerName
	current.TrainerCode = code

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ListUsers returns every profile, filtered by the free-text query over
// name, code, role, and the activation status label.
func (s *ProfileService) ListUsers(ctx context.Context, query string) ([]domain.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	term := search.Term(query)
	if term == "" {
		return profiles, nil
	}

	filtered := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		status := "pending"
		if p.Active {
			status = "active"
		}

		if search.Matches(term, p.TrainerName, p.TrainerCode, p.Role, status) {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// UpdateUser is the staff edit: name, code, role, active. Staff may only
// hand out the user and mod roles; admin stays admin-granted out of band.
func (s *ProfileService) UpdateUser(ctx context.Context, id, trainerName, rawTrainerCode, role string, active bool) (domain.Profile, error) {
	if role != domain.RoleUser && role != domain.RoleMod {
		return domain.Profile{}, ErrRoleNotAssignable
	}

	code, err := trainercode.Normalize(rawTrainerCode)
	if err != nil {
		return domain.Profile{}, err
	}

	updated, err := s.repo.Update(ctx, domain.Profile{
		ID:          id,
		TrainerName: trainerName,
		TrainerCode: code,
		Role:        role,
		Active:      active,
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ApproveUser unlocks a pending signup.
func (s *ProfileService) ApproveUser(ctx context.Context, id string) error {
	if err := s.repo.SetActive(ctx, id, true); err != nil {
		return fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return nil
}

// DeleteUser removes the account, profile, and awards. Admin only; the
// route guard enforces it.
func (s *ProfileService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteAccount -> %w", err)
	}

	return nil
}
