package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

type fakeProfileRepo struct {
	profiles map[string]domain.Profile
	deleted  []string
}

func newFakeProfileRepo(profiles ...domain.Profile) *fakeProfileRepo {
	f := &fakeProfileRepo{
		profiles: make(map[string]domain.Profile),
	}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}

	return f
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id string) (domain.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return domain.Profile{}, repository.ErrProfileNotFound
	}

	return profile, nil
}

func (f *fakeProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}

	return out, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile domain.Profile) (domain.Profile, error) {
	current, ok := f.profiles[profile.ID]
	if !ok {
		return domain.Profile{}, repository.ErrProfileNotFound
	}
	for _, other := range f.profiles {
		if other.ID != profile.ID && other.TrainerCode == profile.TrainerCode {
			return domain.Profile{}, repository.ErrTrainerCodeExists
		}
	}

	current.TrainerName = profile.TrainerName
	current.TrainerCode = profile.TrainerCode
	if profile.Role != "" {
		current.Role = profile.Role
		current.Active = profile.Active
	}
	f.profiles[profile.ID] = current

	return current, nil
}

func (f *fakeProfileRepo) SetActive(_ context.Context, id string, active bool) error {
	profile, ok := f.profiles[id]
	if !ok {
		return repository.ErrProfileNotFound
	}

	profile.Active = active
	f.profiles[id] = profile

	return nil
}

func (f *fakeProfileRepo) DeleteAccount(_ context.Context, id string) error {
	if _, ok := f.profiles[id]; !ok {
		return repository.ErrProfileNotFound
	}

	delete(f.profiles, id)
	f.deleted = append(f.deleted, id)

	return nil
}

func TestProfileService_UpdateOwnProfile(t *testing.T) {
	repo := newFakeProfileRepo(
		domain.Profile{ID: "u-1", TrainerName: "Vicky", TrainerCode: "004418352125", Role: domain.RoleMod, Active: true},
	)
	svc := NewProfileService(repo)

	updated, err := svc.UpdateOwnProfile(context.Background(), "u-1", "Vicky R.", "99 9988 8877 77")
	require.NoError(t, err)
	assert.Equal(t, "Vicky R.", updated.TrainerName)
	assert.Equal(t, "999988887777", updated.TrainerCode)
	// Role and activation survive a self-edit.
	assert.Equal(t, domain.RoleMod, updated.Role)
	assert.True(t, updated.Active)
}

func TestProfileService_ListUsers_FiltersByStatusLabel(t *testing.T) {
	repo := newFakeProfileRepo(
		domain.Profile{ID: "u-1", TrainerName: "Vicky", TrainerCode: "004418352125", Role: domain.RoleUser, Active: true},
		domain.Profile{ID: "u-2", TrainerName: "Marco", TrainerCode: "111122223333", Role: domain.RoleUser, Active: false},
	)
	svc := NewProfileService(repo)

	pending, err := svc.ListUsers(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "u-2", pending[0].ID)

	byCode, err := svc.ListUsers(context.Background(), "4418")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "u-1", byCode[0].ID)
}

func TestProfileService_UpdateUser_RoleGate(t *testing.T) {
	repo := newFakeProfileRepo(
		domain.Profile{ID: "u-1", TrainerName: "Vicky", TrainerCode: "004418352125", Role: domain.RoleUser, Active: true},
	)
	svc := NewProfileService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateUser(ctx, "u-1", "Vicky", "004418352125", domain.RoleMod, true)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMod, updated.Role)

	_, err = svc.UpdateUser(ctx, "u-1", "Vicky", "004418352125", domain.RoleAdmin, true)
	assert.ErrorIs(t, err, ErrRoleNotAssignable)
}

func TestProfileService_ApproveAndDelete(t *testing.T) {
	repo := newFakeProfileRepo(
		domain.Profile{ID: "u-2", TrainerName: "Marco", TrainerCode: "111122223333", Role: domain.RoleUser, Active: false},
	)
	svc := NewProfileService(repo)
	ctx := context.Background()

	require.NoError(t, svc.ApproveUser(ctx, "u-2"))
	approved, err := svc.GetProfile(ctx, "u-2")
	require.NoError(t, err)
	assert.True(t, approved.Active)

	require.NoError(t, svc.DeleteUser(ctx, "u-2"))
	assert.Equal(t, []string{"u-2"}, repo.deleted)

	_, err = svc.GetProfile(ctx, "u-2")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
