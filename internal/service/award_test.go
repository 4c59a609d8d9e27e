package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

type fakeAwardRepo struct {
	awards map[string]domain.UserStamp // keyed by userID+stampID
	byCode map[string]domain.UserStamp
}

func newFakeAwardRepo() *fakeAwardRepo {
	return &fakeAwardRepo{
		awards: make(map[string]domain.UserStamp),
		byCode: make(map[string]domain.UserStamp),
	}
}

func (f *fakeAwardRepo) Create(_ context.Context, award domain.UserStamp) (domain.UserStamp, error) {
	key := award.UserID + "/" + award.StampID
	if _, exists := f.awards[key]; exists {
		return domain.UserStamp{}, repository.ErrStampAlreadyAwarded
	}

	award.ID = "aw-" + key
	award.ClaimCode = "CLAIM" + award.StampID
	award.AwardedAt = time.Now().UTC()
	f.awards[key] = award
	f.byCode[award.ClaimCode] = award

	return award, nil
}

func (f *fakeAwardRepo) FindByClaimCode(_ context.Context, claimCode string) (domain.UserStamp, error) {
	award, ok := f.byCode[claimCode]
	if !ok {
		return domain.UserStamp{}, repository.ErrAwardNotFound
	}

	return award, nil
}

type fakeAwardProfileRepo struct {
	profiles map[string]domain.Profile // keyed by trainer code
}

func (f *fakeAwardProfileRepo) FindByTrainerCode(_ context.Context, trainerCode string) (domain.Profile, error) {
	profile, ok := f.profiles[trainerCode]
	if !ok {
		return domain.Profile{}, repository.ErrProfileNotFound
	}

	return profile, nil
}

type fakeAwardCatalogRepo struct {
	links map[[3]string]bool
}

func (f *fakeAwardCatalogRepo) HasLink(_ context.Context, eventID, collectionID, stampID string) (bool, error) {
	return f.links[[3]string{eventID, collectionID, stampID}], nil
}

func newAwardFixture() (*AwardService, *fakeAwardRepo) {
	repo := newFakeAwardRepo()
	profiles := &fakeAwardProfileRepo{
		profiles: map[string]domain.Profile{
			"004418352125": {ID: "u-vicky", TrainerName: "Vicky", TrainerCode: "004418352125", Role: domain.RoleUser, Active: true},
			"111122223333": {ID: "u-off", TrainerName: "Gone", TrainerCode: "111122223333", Role: domain.RoleUser, Active: false},
		},
	}
	catalog := &fakeAwardCatalogRepo{
		links: map[[3]string]bool{
			{"ev-spring", "col-starters", "st-bulba"}: true,
		},
	}

	return NewAwardService(repo, profiles, catalog), repo
}

func TestAwardService_ResolveTrainer(t *testing.T) {
	svc, _ := newAwardFixture()
	ctx := context.Background()

	t.Run("scanner noise is stripped", func(t *testing.T) {
		match, err := svc.ResolveTrainer(ctx, "-00441835-2125 ")
		require.NoError(t, err)
		assert.Equal(t, "u-vicky", match.UserID)
		assert.Equal(t, "Vicky", match.TrainerName)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.ResolveTrainer(ctx, "999988887777")
		assert.ErrorIs(t, err, ErrTrainerNotFound)
	})

	t.Run("disabled trainer", func(t *testing.T) {
		_, err := svc.ResolveTrainer(ctx, "111122223333")
		assert.ErrorIs(t, err, ErrTrainerDisabled)
	})

	t.Run("too few digits", func(t *testing.T) {
		_, err := svc.ResolveTrainer(ctx, "12345")
		assert.ErrorIs(t, err, ErrInvalidTrainerCode)
	})
}

func TestAwardService_Award(t *testing.T) {
	svc, _ := newAwardFixture()
	ctx := context.Background()

	award, err := svc.Award(ctx, "staff-1", "u-vicky", "st-bulba", "col-starters", "ev-spring")
	require.NoError(t, err)
	assert.Equal(t, "u-vicky", award.UserID)
	assert.Equal(t, "staff-1", award.AwardedBy)
	assert.NotEmpty(t, award.ClaimCode)
	assert.False(t, award.AwardedAt.IsZero())

	// Same stamp to the same trainer again.
	_, err = svc.Award(ctx, "staff-2", "u-vicky", "st-bulba", "col-starters", "ev-spring")
	assert.ErrorIs(t, err, ErrStampAlreadyAwarded)
}

func TestAwardService_Award_UnlinkedTriple(t *testing.T) {
	svc, _ := newAwardFixture()

	_, err := svc.Award(context.Background(), "staff-1", "u-vicky", "st-mew", "col-starters", "ev-spring")
	assert.ErrorIs(t, err, ErrStampNotInContext)
}

func TestAwardService_ClaimQR(t *testing.T) {
	svc, _ := newAwardFixture()
	ctx := context.Background()

	award, err := svc.Award(ctx, "staff-1", "u-vicky", "st-bulba", "col-starters", "ev-spring")
	require.NoError(t, err)

	pngMagic := []byte{0x89, 0x50, 0x4E, 0x47}

	t.Run("owner", func(t *testing.T) {
		png, err := svc.ClaimQR(ctx, "u-vicky", award.ClaimCode, 0)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, pngMagic))
	})

	t.Run("staff renders any claim", func(t *testing.T) {
		png, err := svc.ClaimQR(ctx, "", award.ClaimCode, 128)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, pngMagic))
	})

	t.Run("other trainer", func(t *testing.T) {
		_, err := svc.ClaimQR(ctx, "u-other", award.ClaimCode, 0)
		assert.ErrorIs(t, err, ErrNotClaimOwner)
	})

	t.Run("unknown claim", func(t *testing.T) {
		_, err := svc.ClaimQR(ctx, "u-vicky", "NOSUCHCLAIM1", 0)
		assert.ErrorIs(t, err, ErrAwardNotFound)
	})
}
