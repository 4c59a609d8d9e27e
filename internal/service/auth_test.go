package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/jwthelper"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

type fakeAuthRepo struct {
	accountsByEmail map[string]domain.Account
	accountsByID    map[string]domain.Account
	profilesByID    map[string]domain.Profile
	nextID          int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		accountsByEmail: make(map[string]domain.Account),
		accountsByID:    make(map[string]domain.Account),
		profilesByID:    make(map[string]domain.Profile),
	}
}

func (f *fakeAuthRepo) CreateAccountWithProfile(_ context.Context, account domain.Account, profile domain.Profile) (domain.Profile, error) {
	if _, exists := f.accountsByEmail[account.Email]; exists {
		return domain.Profile{}, repository.ErrAccountEmailExists
	}
	for _, p := range f.profilesByID {
		if p.TrainerCode == profile.TrainerCode {
			return domain.Profile{}, repository.ErrTrainerCodeExists
		}
	}

	f.nextID++
	account.ID = string(rune('a' + f.nextID))
	profile.ID = account.ID
	f.accountsByEmail[account.Email] = account
	f.accountsByID[account.ID] = account
	f.profilesByID[profile.ID] = profile

	return profile, nil
}

func (f *fakeAuthRepo) FindAccountByEmail(_ context.Context, email string) (domain.Account, error) {
	account, ok := f.accountsByEmail[email]
	if !ok {
		return domain.Account{}, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAuthRepo) FindAccountByID(_ context.Context, id string) (domain.Account, error) {
	account, ok := f.accountsByID[id]
	if !ok {
		return domain.Account{}, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAuthRepo) UpdateAccountPassword(_ context.Context, id, passwordHash string) error {
	account, ok := f.accountsByID[id]
	if !ok {
		return repository.ErrAccountNotFound
	}

	account.Password = passwordHash
	f.accountsByID[id] = account
	f.accountsByEmail[account.Email] = account

	return nil
}

func (f *fakeAuthRepo) FindByID(_ context.Context, id string) (domain.Profile, error) {
	profile, ok := f.profilesByID[id]
	if !ok {
		return domain.Profile{}, repository.ErrProfileNotFound
	}

	return profile, nil
}

func (f *fakeAuthRepo) activate(id string) {
	profile := f.profilesByID[id]
	profile.Active = true
	f.profilesByID[id] = profile
}

var testSigningKey = []byte("test-signing-key")

func TestAuthService_SignupThenLogin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, testSigningKey)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, "vicky@example.com", "pikachu123", "Vicky", "00-4418-3521-25")
	require.NoError(t, err)
	assert.Equal(t, "004418352125", profile.TrainerCode)
	assert.Equal(t, domain.RoleUser, profile.Role)
	assert.False(t, profile.Active)

	// Pending accounts cannot log in.
	_, _, err = svc.Login(ctx, "vicky@example.com", "pikachu123")
	assert.ErrorIs(t, err, ErrAccountDisabled)

	repo.activate(profile.ID)

	loggedIn, accountID, err := svc.Login(ctx, "vicky@example.com", "pikachu123")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, accountID)
	assert.Equal(t, "Vicky", loggedIn.TrainerName)
}

func TestAuthService_Signup_BadTrainerCode(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), testSigningKey)

	_, err := svc.Signup(context.Background(), "v@example.com", "pikachu123", "Vicky", "12-34")
	assert.ErrorIs(t, err, ErrInvalidTrainerCode)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), testSigningKey)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "v@example.com", "pikachu123", "Vicky", "004418352125")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "v@example.com", "pikachu123", "Other", "999988887777")
	assert.ErrorIs(t, err, ErrAccountEmailExists)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, testSigningKey)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, "v@example.com", "pikachu123", "Vicky", "004418352125")
	require.NoError(t, err)
	repo.activate(profile.ID)

	_, _, err = svc.Login(ctx, "v@example.com", "raichu456")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, _, err = svc.Login(ctx, "nobody@example.com", "pikachu123")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAuthService_PasswordReset(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, testSigningKey)
	ctx := context.Background()

	profile, err := svc.Signup(ctx, "v@example.com", "pikachu123", "Vicky", "004418352125")
	require.NoError(t, err)
	repo.activate(profile.ID)

	// Unknown emails are swallowed so callers cannot probe for accounts.
	require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@example.com"))

	token, err := jwthelper.GenerateResetToken(testSigningKey, profile.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, token, "raichu456"))

	_, _, err = svc.Login(ctx, "v@example.com", "pikachu123")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, _, err = svc.Login(ctx, "v@example.com", "raichu456")
	assert.NoError(t, err)
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), testSigningKey)

	err := svc.ResetPassword(context.Background(), "not-a-token", "raichu456")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	// A session token is not a reset token.
	sessionToken, genErr := jwthelper.GenerateToken(testSigningKey, "u-1", "test-agent")
	require.NoError(t, genErr)

	err = svc.ResetPassword(context.Background(), sessionToken, "raichu456")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
