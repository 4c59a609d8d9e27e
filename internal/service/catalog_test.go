package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

type fakeCatalogRepo struct {
	events           []domain.Event
	collections      []domain.Collection
	stamps           []domain.Stamp
	eventCollections []domain.EventCollection
	collectionStamps []domain.CollectionStamp
}

func (f *fakeCatalogRepo) ListEvents(_ context.Context) ([]domain.Event, error) {
	return f.events, nil
}

func (f *fakeCatalogRepo) SaveEvent(_ context.Context, event domain.Event, _ []string) (domain.Event, error) {
	return event, nil
}

func (f *fakeCatalogRepo) DeleteEvent(_ context.Context, _ string) error {
	return nil
}

func (f *fakeCatalogRepo) ListCollections(_ context.Context) ([]domain.Collection, error) {
	return f.collections, nil
}

func (f *fakeCatalogRepo) SaveCollection(_ context.Context, collection domain.Collection, _, _ []string) (domain.Collection, error) {
	return collection, nil
}

func (f *fakeCatalogRepo) DeleteCollection(_ context.Context, _ string) error {
	return nil
}

func (f *fakeCatalogRepo) ListStamps(_ context.Context) ([]domain.Stamp, error) {
	return f.stamps, nil
}

func (f *fakeCatalogRepo) SaveStamp(_ context.Context, stamp domain.Stamp) (domain.Stamp, error) {
	return stamp, nil
}

func (f *fakeCatalogRepo) DeleteStamp(_ context.Context, _ string) error {
	return nil
}

func (f *fakeCatalogRepo) ListEventCollections(_ context.Context) ([]domain.EventCollection, error) {
	return f.eventCollections, nil
}

func (f *fakeCatalogRepo) ListCollectionStamps(_ context.Context) ([]domain.CollectionStamp, error) {
	return f.collectionStamps, nil
}

func newCatalogFixture() *CatalogService {
	return NewCatalogService(&fakeCatalogRepo{
		events: []domain.Event{
			{ID: "ev-spring", Name: "Spring Festival", Description: "opening party"},
			{ID: "ev-summer", Name: "Summer Cup"},
		},
		collections: []domain.Collection{
			{ID: "col-starters", Name: "Starters"},
			{ID: "col-legends", Name: "Legends", Description: "rare finds"},
		},
		stamps: []domain.Stamp{
			{ID: "st-bulba", Name: "Bulbasaur"},
			{ID: "st-mew", Name: "Mew", Description: "mythical"},
		},
		eventCollections: []domain.EventCollection{
			{EventID: "ev-spring", CollectionID: "col-starters"},
			{EventID: "ev-summer", CollectionID: "col-legends"},
		},
		collectionStamps: []domain.CollectionStamp{
			{CollectionID: "col-starters", StampID: "st-bulba"},
			{CollectionID: "col-legends", StampID: "st-mew"},
		},
	})
}

func TestCatalogService_ListEvents(t *testing.T) {
	svc := newCatalogFixture()
	ctx := context.Background()

	t.Run("no query returns everything", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, "")
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("matches the description too", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, "opening")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "ev-spring", events[0].ID)
	})

	t.Run("short query is not a filter", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, "su")
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("no field matches means no rows", func(t *testing.T) {
		events, err := svc.ListEvents(ctx, "halloween")
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCatalogService_ListCollections_MatchesLinkedEventName(t *testing.T) {
	svc := newCatalogFixture()

	// "summer" is an event name; its linked collection surfaces.
	collections, err := svc.ListCollections(context.Background(), "summer")
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "col-legends", collections[0].ID)
}

func TestCatalogService_ListStamps_MatchesLinkedCollectionName(t *testing.T) {
	svc := newCatalogFixture()
	ctx := context.Background()

	stamps, err := svc.ListStamps(ctx, "starters")
	require.NoError(t, err)
	require.Len(t, stamps, 1)
	assert.Equal(t, "st-bulba", stamps[0].ID)

	stamps, err = svc.ListStamps(ctx, "mythical")
	require.NoError(t, err)
	require.Len(t, stamps, 1)
	assert.Equal(t, "st-mew", stamps[0].ID)
}
