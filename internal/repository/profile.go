package repository

import (
	"context"
	"fmt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/repository/dao"
)

var (
	ErrAccountEmailExists = dao.ErrAccountEmailExists
	ErrTrainerCodeExists  = dao.ErrTrainerCodeExists
	ErrAccountNotFound    = dao.ErrAccountNotFound
	ErrProfileNotFound    = dao.ErrProfileNotFound
)

type ProfileDAO interface {
	InsertAccountWithProfile(ctx context.Context, account dao.Account, profile dao.Profile) (dao.Account, dao.Profile, error)
	FindAccountByEmail(ctx context.Context, email string) (dao.Account, error)
	FindAccountByID(ctx context.Context, id string) (dao.Account, error)
	UpdateAccountPassword(ctx context.Context, id, passwordHash string) error
	FindProfileByID(ctx context.Context, id string) (dao.Profile, error)
	FindProfileByTrainerCode(ctx context.Context, trainerCode string) (dao.Profile, error)
	FindProfilesByIDs(ctx context.Context, ids []string) ([]dao.Profile, error)
	ListProfiles(ctx context.Context) ([]dao.Profile, error)
	SearchProfileIDsByName(ctx context.Context, term string, limit int) ([]string, error)
	UpdateProfile(ctx context.Context, profile dao.Profile) (dao.Profile, error)
	SetProfileActive(ctx context.Context, id string, active bool) error
	DeleteAccountCascade(ctx context.Context, id string) error
}

type ProfileRepository struct {
	dao ProfileDAO
}

func NewProfileRepository(dao ProfileDAO) *ProfileRepository {
	return &ProfileRepository{
		dao: dao,
	}
}

func (r *ProfileRepository) CreateAccountWithProfile(ctx context.Context, account domain.Account, profile domain.Profile) (domain.Profile, error) {
	_, createdProfile, err := r.dao.InsertAccountWithProfile(ctx,
		dao.Account{
			Email:    account.Email,
			Password: account.Password,
		},
		dao.Profile{
			TrainerName: profile.TrainerName,
			TrainerCode: profile.TrainerCode,
			Role:        profile.Role,
			Active:      profile.Active,
		})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.InsertAccountWithProfile -> %w", err)
	}

	return r.profileDaoToDomain(createdProfile), nil
}

func (r *ProfileRepository) FindAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	found, err := r.dao.FindAccountByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindAccountByEmail -> %w", err)
	}

	return r.accountDaoToDomain(found), nil
}

func (r *ProfileRepository) FindAccountByID(ctx context.Context, id string) (domain.Account, error) {
	found, err := r.dao.FindAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindAccountByID -> %w", err)
	}

	return r.accountDaoToDomain(found), nil
}

func (r *ProfileRepository) UpdateAccountPassword(ctx context.Context, id, passwordHash string) error {
	if err := r.dao.UpdateAccountPassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("r.dao.UpdateAccountPassword -> %w", err)
	}

	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (domain.Profile, error) {
	found, err := r.dao.FindProfileByID(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.FindProfileByID -> %w", err)
	}

	return r.profileDaoToDomain(found), nil
}

func (r *ProfileRepository) FindByTrainerCode(ctx context.Context, trainerCode string) (domain.Profile, error) {
	found, err := r.dao.FindProfileByTrainerCode(ctx, trainerCode)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.FindProfileByTrainerCode -> %w", err)
	}

	return r.profileDaoToDomain(found), nil
}

func (r *ProfileRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Profile, error) {
	found, err := r.dao.FindProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindProfilesByIDs -> %w", err)
	}

	profiles := make([]domain.Profile, 0, len(found))
	for _, p := range found {
		profiles = append(profiles, r.profileDaoToDomain(p))
	}

	return profiles, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	found, err := r.dao.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListProfiles -> %w", err)
	}

	profiles := make([]domain.Profile, 0, len(found))
	for _, p := range found {
		profiles = append(profiles, r.profileDaoToDomain(p))
	}

	return profiles, nil
}

func (r *ProfileRepository) SearchIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	ids, err := r.dao.SearchProfileIDsByName(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchProfileIDsByName -> %w", err)
	}

	return ids, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	updated, err := r.dao.UpdateProfile(ctx, dao.Profile{
		ID:          profile.ID,
		TrainerName: profile.TrainerName,
		TrainerCode: profile.TrainerCode,
		Role:        profile.Role,
		Active:      profile.Active,
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.UpdateProfile -> %w", err)
	}

	return r.profileDaoToDomain(updated), nil
}

func (r *ProfileRepository) SetActive(ctx context.Context, id string, active bool) error {
	if err := r.dao.SetProfileActive(ctx, id, active); err != nil {
		return fmt.Errorf("r.dao.SetProfileActive -> %w", err)
	}

	return nil
}

func (r *ProfileRepository) DeleteAccount(ctx context.Context, id string) error {
	if err := r.dao.DeleteAccountCascade(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteAccountCascade -> %w", err)
	}

	return nil
}

func (r *ProfileRepository) accountDaoToDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:        a.ID,
		Email:     a.Email,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *ProfileRepository) profileDaoToDomain(p dao.Profile) domain.Profile {
	return domain.Profile{
		ID:          p.ID,
		TrainerName: p.TrainerName,
		TrainerCode: p.TrainerCode,
		Role:        p.Role,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
