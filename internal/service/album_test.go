package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

var albumFixtureTime = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func albumFixture() ([]domain.Event, []domain.Collection, []domain.Stamp, []domain.EventCollection, []domain.CollectionStamp) {
	events := []domain.Event{
		{ID: "ev-spring", Name: "Spring Festival", StartsAt: albumFixtureTime},
		{ID: "ev-summer", Name: "Summer Cup", StartsAt: albumFixtureTime.AddDate(0, 3, 0)},
	}
	collections := []domain.Collection{
		{ID: "col-starters", Name: "Starters"},
		{ID: "col-legends", Name: "Legends"},
	}
	stamps := []domain.Stamp{
		{ID: "st-bulba", Name: "Bulbasaur"},
		{ID: "st-char", Name: "Charmander"},
		{ID: "st-mew", Name: "Mew"},
	}
	eventCollections := []domain.EventCollection{
		{EventID: "ev-spring", CollectionID: "col-starters"},
		{EventID: "ev-spring", CollectionID: "col-legends"},
		{EventID: "ev-summer", CollectionID: "col-starters"},
	}
	collectionStamps := []domain.CollectionStamp{
		{CollectionID: "col-starters", StampID: "st-bulba"},
		{CollectionID: "col-starters", StampID: "st-char"},
		{CollectionID: "col-legends", StampID: "st-mew"},
	}

	return events, collections, stamps, eventCollections, collectionStamps
}

func TestBuildPersonalAlbum_NestsOnlyEngagedPairs(t *testing.T) {
	events, collections, stamps, _, collectionStamps := albumFixture()

	// One stamp from Starters at the Spring Festival; nothing else.
	awards := []domain.UserStamp{
		{
			ID:           "aw-1",
			UserID:       "u-1",
			StampID:      "st-bulba",
			CollectionID: "col-starters",
			EventID:      "ev-spring",
			ClaimCode:    "AB12CD34EF56",
			AwardedAt:    albumFixtureTime,
		},
	}

	album := BuildPersonalAlbum(events, collections, stamps, collectionStamps, awards)

	require.Len(t, album, 1)
	assert.Equal(t, "ev-spring", album[0].ID)
	require.Len(t, album[0].Collections, 1)

	starters := album[0].Collections[0]
	assert.Equal(t, "col-starters", starters.ID)
	require.Len(t, starters.Stamps, 2)

	// Every linked stamp shows as a slot, owned or not.
	assert.Equal(t, "st-bulba", starters.Stamps[0].ID)
	assert.True(t, starters.Stamps[0].Owned)
	assert.Equal(t, "AB12CD34EF56", starters.Stamps[0].ClaimCode)
	require.NotNil(t, starters.Stamps[0].AwardedAt)
	assert.Equal(t, albumFixtureTime, *starters.Stamps[0].AwardedAt)

	assert.Equal(t, "st-char", starters.Stamps[1].ID)
	assert.False(t, starters.Stamps[1].Owned)
	assert.Empty(t, starters.Stamps[1].ClaimCode)
	assert.Nil(t, starters.Stamps[1].AwardedAt)
}

func TestBuildPersonalAlbum_SameCollectionAtTwoEvents(t *testing.T) {
	events, collections, stamps, _, collectionStamps := albumFixture()

	// Starters engaged at both events; ownership tracked per event.
	awards := []domain.UserStamp{
		{ID: "aw-1", StampID: "st-bulba", CollectionID: "col-starters", EventID: "ev-spring", ClaimCode: "SPRINGBULBA1", AwardedAt: albumFixtureTime},
		{ID: "aw-2", StampID: "st-char", CollectionID: "col-starters", EventID: "ev-summer", ClaimCode: "SUMMERCHAR22", AwardedAt: albumFixtureTime},
	}

	album := BuildPersonalAlbum(events, collections, stamps, collectionStamps, awards)

	require.Len(t, album, 2)

	spring := album[0].Collections[0]
	assert.True(t, spring.Stamps[0].Owned)  // bulbasaur
	assert.False(t, spring.Stamps[1].Owned) // charmander

	summer := album[1].Collections[0]
	assert.False(t, summer.Stamps[0].Owned)
	assert.True(t, summer.Stamps[1].Owned)
}

func TestBuildPersonalAlbum_NoAwards(t *testing.T) {
	events, collections, stamps, _, collectionStamps := albumFixture()

	album := BuildPersonalAlbum(events, collections, stamps, collectionStamps, nil)

	assert.Empty(t, album)
}

func TestBuildAdminAlbum_KeepsChildlessEntities(t *testing.T) {
	events, collections, stamps, eventCollections, collectionStamps := albumFixture()

	events = append(events, domain.Event{ID: "ev-empty", Name: "Unannounced", StartsAt: albumFixtureTime})
	collections = append(collections, domain.Collection{ID: "col-empty", Name: "Placeholder"})
	eventCollections = append(eventCollections, domain.EventCollection{EventID: "ev-summer", CollectionID: "col-empty"})

	album := BuildAdminAlbum(events, collections, stamps, eventCollections, collectionStamps)

	require.Len(t, album, 3)

	assert.True(t, album[0].HasCollections)
	assert.Len(t, album[0].Collections, 2)

	summer := album[1]
	require.Len(t, summer.Collections, 2)
	assert.True(t, summer.Collections[0].HasStamps)
	assert.False(t, summer.Collections[1].HasStamps)
	assert.Empty(t, summer.Collections[1].Stamps)

	empty := album[2]
	assert.Equal(t, "ev-empty", empty.ID)
	assert.False(t, empty.HasCollections)
	assert.Empty(t, empty.Collections)
}

func TestBuildAdminAlbum_NeverMarksOwnership(t *testing.T) {
	events, collections, stamps, eventCollections, collectionStamps := albumFixture()

	album := BuildAdminAlbum(events, collections, stamps, eventCollections, collectionStamps)

	for _, event := range album {
		for _, collection := range event.Collections {
			for _, stamp := range collection.Stamps {
				assert.False(t, stamp.Owned)
				assert.Empty(t, stamp.ClaimCode)
			}
		}
	}
}
