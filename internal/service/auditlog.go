package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/search"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

const (
	// LogPageSize is the fixed number of entries per audit log page.
	LogPageSize = 20

	// nameFilterLimit caps how many rows a name filter may resolve to.
	nameFilterLimit = 200
)

type AuditLogAwardRepository interface {
	Search(ctx context.Context, query repository.AwardQuery) ([]domain.UserStamp, int64, error)
}

type AuditLogCatalogRepository interface {
	FindEventsByIDs(ctx context.Context, ids []string) ([]domain.Event, error)
	FindCollectionsByIDs(ctx context.Context, ids []string) ([]domain.Collection, error)
	FindStampsByIDs(ctx context.Context, ids []string) ([]domain.Stamp, error)
	SearchEventIDsByName(ctx context.Context, term string, limit int) ([]string, error)
	SearchCollectionIDsByName(ctx context.Context, term string, limit int) ([]string, error)
	SearchStampIDsByName(ctx context.Context, term string, limit int) ([]string, error)
}

type AuditLogProfileRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Profile, error)
	SearchIDsByName(ctx context.Context, term string, limit int) ([]string, error)
}

type AuditLogService struct {
	awardRepo   AuditLogAwardRepository
	catalogRepo AuditLogCatalogRepository
	profileRepo AuditLogProfileRepository
}

func NewAuditLogService(awardRepo AuditLogAwardRepository, catalogRepo AuditLogCatalogRepository, profileRepo AuditLogProfileRepository) *AuditLogService {
	return &AuditLogService{
		awardRepo:   awardRepo,
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
	}
}

// ListAwards returns one page of the award log, newest first. Name filters
// resolve to row IDs first; a filter that matches nothing short-circuits to
// an empty page, since the conjunction cannot match either.
func (s *AuditLogService) ListAwards(ctx context.Context, filter domain.AuditLogFilter) (domain.AuditLogPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	empty := domain.AuditLogPage{
		Entries:  []domain.AuditLogEntry{},
		Page:     page,
		PageSize: LogPageSize,
	}

	query := repository.AwardQuery{
		Offset: (page - 1) * LogPageSize,
		Limit:  LogPageSize,
	}

	if term := search.Term(filter.EventName); term != "" {
		ids, err := s.catalogRepo.SearchEventIDsByName(ctx, term, nameFilterLimit)
		if err != nil {
			return domain.AuditLogPage{}, fmt.Errorf("s.catalogRepo.SearchEventIDsByName -> %w", err)
		}
		if len(ids) == 0 {
			return empty, nil
		}
		query.EventIDs = ids
	}

	if term := search.Term(filter.CollectionName); term != "" {
		ids, err := s.catalogRepo.SearchCollectionIDsByName(ctx, term, nameFilterLimit)
		if err != nil {
			return domain.AuditLogPage{}, fmt.Errorf("s.catalogRepo.SearchCollectionIDsByName -> %w", err)
		}
		if len(ids) == 0 {
			return empty, nil
		}
		query.CollectionIDs = ids
	}

	if term := search.Term(filter.StampName); term != "" {
		ids, err := s.catalogRepo.SearchStampIDsByName(ctx, term, nameFilterLimit)
		if err != nil {
			return domain.AuditLogPage{}, fmt.Errorf("s.catalogRepo.SearchStampIDsByName -> %w", err)
		}
		if len(ids) == 0 {
			return empty, nil
		}
		query.StampIDs = ids
	}

	if term := search.Term(filter.DeliveredTo); term != "" {
		ids, err := s.profileRepo.SearchIDsByName(ctx, term, nameFilterLimit)
		if err != nil {
			return domain.AuditLogPage{}, fmt.Errorf("s.profileRepo.SearchIDsByName -> %w", err)
		}
		if len(ids) == 0 {
			return empty, nil
		}
		query.UserIDs = ids
	}

	if term := search.Term(filter.DeliveredBy); term != "" {
		ids, err := s.profileRepo.SearchIDsByName(ctx, term, nameFilterLimit)
		if err != nil {
			return domain.AuditLogPage{}, fmt.Errorf("s.profileRepo.SearchIDsByName -> %w", err)
		}
		if len(ids) == 0 {
			return empty, nil
		}
		query.AwardedByIDs = ids
	}

	if term := search.Term(filter.ClaimCode); term != "" {
		query.ClaimCode = term
	}

	if filter.AwardedOn != "" {
		day, err := time.Parse("2006-01-02", filter.AwardedOn)
		if err == nil {
			start := day.UTC()
			end := start.Add(24 * time.Hour)
			query.DayStart = &start
			query.DayEnd = &end
		}
	}

	awards, total, err := s.awardRepo.Search(ctx, query)
	if err != nil {
		return domain.AuditLogPage{}, fmt.Errorf("s.awardRepo.Search -> %w", err)
	}

	entries, err := s.resolveEntries(ctx, awards)
	if err != nil {
		return domain.AuditLogPage{}, err
	}

	totalPages := int((total + LogPageSize - 1) / LogPageSize)

	return domain.AuditLogPage{
		Entries:    entries,
		Total:      total,
		Page:       page,
		PageSize:   LogPageSize,
		TotalPages: totalPages,
	}, nil
}

// resolveEntries batch-loads the names behind each award's IDs.
func (s *AuditLogService) resolveEntries(ctx context.Context, awards []domain.UserStamp) ([]domain.AuditLogEntry, error) {
	eventIDs := make([]string, 0, len(awards))
	collectionIDs := make([]string, 0, len(awards))
	stampIDs := make([]string, 0, len(awards))
	profileIDs := make([]string, 0, 2*len(awards))
	for _, a := range awards {
		eventIDs = append(eventIDs, a.EventID)
		collectionIDs = append(collectionIDs, a.CollectionID)
		stampIDs = append(stampIDs, a.StampID)
		profileIDs = append(profileIDs, a.UserID, a.AwardedBy)
	}

	events, err := s.catalogRepo.FindEventsByIDs(ctx, dedupe(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindEventsByIDs -> %w", err)
	}

	collections, err := s.catalogRepo.FindCollectionsByIDs(ctx, dedupe(collectionIDs))
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindCollectionsByIDs -> %w", err)
	}

	stamps, err := s.catalogRepo.FindStampsByIDs(ctx, dedupe(stampIDs))
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindStampsByIDs -> %w", err)
	}

	profiles, err := s.profileRepo.FindByIDs(ctx, dedupe(profileIDs))
	if err != nil {
		return nil, fmt.Errorf("s.profileRepo.FindByIDs -> %w", err)
	}

	eventNames := make(map[string]string, len(events))
	for _, e := range events {
		eventNames[e.ID] = e.Name
	}
	collectionNames := make(map[string]string, len(collections))
	for _, c := range collections {
		collectionNames[c.ID] = c.Name
	}
	stampNames := make(map[string]string, len(stamps))
	for _, st := range stamps {
		stampNames[st.ID] = st.Name
	}
	trainerNames := make(map[string]string, len(profiles))
	for _, p := range profiles {
		trainerNames[p.ID] = p.TrainerName
	}

	entries := make([]domain.AuditLogEntry, 0, len(awards))
	for _, a := range awards {
		entries = append(entries, domain.AuditLogEntry{
			ID:             a.ID,
			AwardedAt:      a.AwardedAt,
			ClaimCode:      a.ClaimCode,
			EventName:      eventNames[a.EventID],
			CollectionName: collectionNames[a.CollectionID],
			StampName:      stampNames[a.StampID],
			DeliveredTo:    trainerNames[a.UserID],
			DeliveredBy:    trainerNames[a.AwardedBy],
		})
	}

	return entries, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
