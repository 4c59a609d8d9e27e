package dao

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres spins up a throwaway postgres container. Set
// DOCKERTEST_POSTGRES=1 to run these tests.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DOCKERTEST_POSTGRES") == "" {
		t.Skip("set DOCKERTEST_POSTGRES=1 to run container-backed tests")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=postgres",
		"POSTGRES_PASSWORD=postgres",
		"POSTGRES_DB=pokeolivos_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf("host=localhost port=%s user=postgres password=postgres dbname=pokeolivos_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		return openErr
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func insertTestProfile(t *testing.T, d *ProfileDAO, email, name, code string) Profile {
	t.Helper()

	_, profile, err := d.InsertAccountWithProfile(context.Background(),
		Account{Email: email, Password: "x"},
		Profile{TrainerName: name, TrainerCode: code, Role: "user", Active: true},
	)
	require.NoError(t, err)

	return profile
}

func TestProfileDAO_UniqueViolations(t *testing.T) {
	db := setupPostgres(t)
	d := NewProfileDAO(db)
	ctx := context.Background()

	insertTestProfile(t, d, "vicky@example.com", "Vicky", "004418352125")

	_, _, err := d.InsertAccountWithProfile(ctx,
		Account{Email: "vicky@example.com", Password: "x"},
		Profile{TrainerName: "Other", TrainerCode: "999988887777", Role: "user"},
	)
	assert.ErrorIs(t, err, ErrAccountEmailExists)

	_, _, err = d.InsertAccountWithProfile(ctx,
		Account{Email: "other@example.com", Password: "x"},
		Profile{TrainerName: "Other", TrainerCode: "004418352125", Role: "user"},
	)
	assert.ErrorIs(t, err, ErrTrainerCodeExists)

	// The failed inserts must not leave orphan accounts behind.
	_, err = d.FindAccountByEmail(ctx, "other@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAwardDAO_DuplicateAwardConflict(t *testing.T) {
	db := setupPostgres(t)
	profileDAO := NewProfileDAO(db)
	awardDAO := NewAwardDAO(db)
	ctx := context.Background()

	trainer := insertTestProfile(t, profileDAO, "vicky@example.com", "Vicky", "004418352125")
	staff := insertTestProfile(t, profileDAO, "staff@example.com", "Marco", "111122223333")

	stampID := uuid.NewString()
	collectionID := uuid.NewString()
	eventID := uuid.NewString()

	first, err := awardDAO.Insert(ctx, UserStamp{
		UserID:       trainer.ID,
		StampID:      stampID,
		CollectionID: collectionID,
		EventID:      eventID,
		AwardedBy:    staff.ID,
	})
	require.NoError(t, err)
	assert.Len(t, first.ClaimCode, 12)

	_, err = awardDAO.Insert(ctx, UserStamp{
		UserID:       trainer.ID,
		StampID:      stampID,
		CollectionID: collectionID,
		EventID:      eventID,
		AwardedBy:    staff.ID,
	})
	assert.ErrorIs(t, err, ErrStampAlreadyAwarded)

	found, err := awardDAO.FindByClaimCode(ctx, first.ClaimCode)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestCatalogDAO_UpsertEventReplacesLinks(t *testing.T) {
	db := setupPostgres(t)
	d := NewCatalogDAO(db)
	ctx := context.Background()
	creator := uuid.NewString()

	colA, err := d.UpsertCollection(ctx, Collection{Name: "Starters", CreatedBy: creator}, nil, nil)
	require.NoError(t, err)
	colB, err := d.UpsertCollection(ctx, Collection{Name: "Legends", CreatedBy: creator}, nil, nil)
	require.NoError(t, err)

	event, err := d.UpsertEvent(ctx,
		Event{Name: "Spring Festival", StartsAt: time.Now().UTC(), CreatedBy: creator},
		[]string{colA.ID})
	require.NoError(t, err)

	links, err := d.ListEventCollections(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, colA.ID, links[0].CollectionID)

	// Saving again with a different set replaces the old one entirely.
	event.Name = "Spring Festival 2026"
	_, err = d.UpsertEvent(ctx, event, []string{colB.ID})
	require.NoError(t, err)

	links, err = d.ListEventCollections(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, colB.ID, links[0].CollectionID)

	events, err := d.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Spring Festival 2026", events[0].Name)
}

func TestCatalogDAO_SearchIDsByName(t *testing.T) {
	db := setupPostgres(t)
	d := NewCatalogDAO(db)
	ctx := context.Background()
	creator := uuid.NewString()

	spring, err := d.UpsertEvent(ctx,
		Event{Name: "Spring Festival", StartsAt: time.Now().UTC(), CreatedBy: creator}, nil)
	require.NoError(t, err)
	_, err = d.UpsertEvent(ctx,
		Event{Name: "Summer Cup", StartsAt: time.Now().UTC(), CreatedBy: creator}, nil)
	require.NoError(t, err)

	ids, err := d.SearchEventIDsByName(ctx, "spring", 200)
	require.NoError(t, err)
	assert.Equal(t, []string{spring.ID}, ids)

	ids, err = d.SearchEventIDsByName(ctx, "autumn", 200)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
