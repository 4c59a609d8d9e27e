package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

type fakeLogAwardRepo struct {
	awards    []domain.UserStamp
	lastQuery repository.AwardQuery
	calls     int
}

func (f *fakeLogAwardRepo) Search(_ context.Context, query repository.AwardQuery) ([]domain.UserStamp, int64, error) {
	f.lastQuery = query
	f.calls++

	return f.awards, int64(len(f.awards)), nil
}

type fakeLogCatalogRepo struct {
	eventIDsByName      []string
	collectionIDsByName []string
	stampIDsByName      []string
}

func (f *fakeLogCatalogRepo) FindEventsByIDs(_ context.Context, ids []string) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(ids))
	for _, id := range ids {
		events = append(events, domain.Event{ID: id, Name: "event " + id})
	}

	return events, nil
}

func (f *fakeLogCatalogRepo) FindCollectionsByIDs(_ context.Context, ids []string) ([]domain.Collection, error) {
	collections := make([]domain.Collection, 0, len(ids))
	for _, id := range ids {
		collections = append(collections, domain.Collection{ID: id, Name: "collection " + id})
	}

	return collections, nil
}

func (f *fakeLogCatalogRepo) FindStampsByIDs(_ context.Context, ids []string) ([]domain.Stamp, error) {
	stamps := make([]domain.Stamp, 0, len(ids))
	for _, id := range ids {
		stamps = append(stamps, domain.Stamp{ID: id, Name: "stamp " + id})
	}

	return stamps, nil
}

func (f *fakeLogCatalogRepo) SearchEventIDsByName(_ context.Context, _ string, _ int) ([]string, error) {
	return f.eventIDsByName, nil
}

func (f *fakeLogCatalogRepo) SearchCollectionIDsByName(_ context.Context, _ string, _ int) ([]string, error) {
	return f.collectionIDsByName, nil
}

func (f *fakeLogCatalogRepo) SearchStampIDsByName(_ context.Context, _ string, _ int) ([]string, error) {
	return f.stampIDsByName, nil
}

type fakeLogProfileRepo struct {
	idsByName []string
}

func (f *fakeLogProfileRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, domain.Profile{ID: id, TrainerName: "trainer " + id})
	}

	return profiles, nil
}

func (f *fakeLogProfileRepo) SearchIDsByName(_ context.Context, _ string, _ int) ([]string, error) {
	return f.idsByName, nil
}

func TestAuditLogService_ResolvesNames(t *testing.T) {
	awardedAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	awardRepo := &fakeLogAwardRepo{
		awards: []domain.UserStamp{
			{
				ID:           "aw-1",
				UserID:       "u-vicky",
				StampID:      "st-bulba",
				CollectionID: "col-starters",
				EventID:      "ev-spring",
				AwardedBy:    "u-staff",
				AwardedAt:    awardedAt,
				ClaimCode:    "AB12CD34EF56",
			},
		},
	}
	svc := NewAuditLogService(awardRepo, &fakeLogCatalogRepo{}, &fakeLogProfileRepo{})

	page, err := svc.ListAwards(context.Background(), domain.AuditLogFilter{})
	require.NoError(t, err)

	require.Len(t, page.Entries, 1)
	entry := page.Entries[0]
	assert.Equal(t, "event ev-spring", entry.EventName)
	assert.Equal(t, "collection col-starters", entry.CollectionName)
	assert.Equal(t, "stamp st-bulba", entry.StampName)
	assert.Equal(t, "trainer u-vicky", entry.DeliveredTo)
	assert.Equal(t, "trainer u-staff", entry.DeliveredBy)
	assert.Equal(t, awardedAt, entry.AwardedAt)

	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, LogPageSize, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAuditLogService_Pagination(t *testing.T) {
	awardRepo := &fakeLogAwardRepo{}
	svc := NewAuditLogService(awardRepo, &fakeLogCatalogRepo{}, &fakeLogProfileRepo{})

	_, err := svc.ListAwards(context.Background(), domain.AuditLogFilter{Page: 3})
	require.NoError(t, err)

	assert.Equal(t, 2*LogPageSize, awardRepo.lastQuery.Offset)
	assert.Equal(t, LogPageSize, awardRepo.lastQuery.Limit)

	// Page zero falls back to the first page.
	_, err = svc.ListAwards(context.Background(), domain.AuditLogFilter{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, awardRepo.lastQuery.Offset)
}

func TestAuditLogService_NameFilterResolvesToIDs(t *testing.T) {
	awardRepo := &fakeLogAwardRepo{}
	catalogRepo := &fakeLogCatalogRepo{eventIDsByName: []string{"ev-1", "ev-2"}}
	svc := NewAuditLogService(awardRepo, catalogRepo, &fakeLogProfileRepo{})

	_, err := svc.ListAwards(context.Background(), domain.AuditLogFilter{EventName: "spring"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ev-1", "ev-2"}, awardRepo.lastQuery.EventIDs)
}

func TestAuditLogService_EmptyFilterMatchShortCircuits(t *testing.T) {
	awardRepo := &fakeLogAwardRepo{}
	svc := NewAuditLogService(awardRepo, &fakeLogCatalogRepo{}, &fakeLogProfileRepo{})

	// The stamp name matches nothing, so the main query never runs.
	page, err := svc.ListAwards(context.Background(), domain.AuditLogFilter{StampName: "missingno"})
	require.NoError(t, err)

	assert.Empty(t, page.Entries)
	assert.Zero(t, page.Total)
	assert.Zero(t, awardRepo.calls)
}

func TestAuditLogService_ShortTermsAreIgnored(t *testing.T) {
	awardRepo := &fakeLogAwardRepo{}
	svc := NewAuditLogService(awardRepo, &fakeLogCatalogRepo{}, &fakeLogProfileRepo{})

	// Two characters sits below the search threshold; the filter is off.
	_, err := svc.ListAwards(context.Background(), domain.AuditLogFilter{EventName: "sp"})
	require.NoError(t, err)

	assert.Nil(t, awardRepo.lastQuery.EventIDs)
	assert.Equal(t, 1, awardRepo.calls)
}

func TestAuditLogService_DayFilter(t *testing.T) {
	awardRepo := &fakeLogAwardRepo{}
	svc := NewAuditLogService(awardRepo, &fakeLogCatalogRepo{}, &fakeLogProfileRepo{})

	_, err := svc.ListAwards(context.Background(), domain.AuditLogFilter{AwardedOn: "2026-03-14"})
	require.NoError(t, err)

	require.NotNil(t, awardRepo.lastQuery.DayStart)
	require.NotNil(t, awardRepo.lastQuery.DayEnd)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *awardRepo.lastQuery.DayStart)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *awardRepo.lastQuery.DayEnd)
}
