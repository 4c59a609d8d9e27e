package service

import (
	"context"
	"fmt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/search"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

var (
	ErrEventNotFound      = repository.ErrEventNotFound
	ErrCollectionNotFound = repository.ErrCollectionNotFound
	ErrStampNotFound      = repository.ErrStampNotFound
)

type CatalogRepository interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	SaveEvent(ctx context.Context, event domain.Event, collectionIDs []string) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	SaveCollection(ctx context.Context, collection domain.Collection, eventIDs, stampIDs []string) (domain.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
	ListStamps(ctx context.Context) ([]domain.Stamp, error)
	SaveStamp(ctx context.Context, stamp domain.Stamp) (domain.Stamp, error)
	DeleteStamp(ctx context.Context, id string) error
	ListEventCollections(ctx context.Context) ([]domain.EventCollection, error)
	ListCollectionStamps(ctx context.Context) ([]domain.CollectionStamp, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListEvents filters over name and description.
func (s *CatalogService) ListEvents(ctx context.Context, query string) ([]domain.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	term := search.Term(query)
	if term == "" {
		return events, nil
	}

	filtered := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if search.Matches(term, e.Name, e.Description) {
			filtered = append(filtered, e)
		}
	}

	return filtered, nil
}

// ListCollections filters over name, description, and the names of linked
// events, so searching an event surfaces its collections too.
func (s *CatalogService) ListCollections(ctx context.Context, query string) ([]domain.Collection, error) {
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCollections -> %w", err)
	}

	term := search.Term(query)
	if term == "" {
		return collections, nil
	}

	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEvents -> %w", err)
	}

	links, err := s.repo.ListEventCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListEventCollections -> %w", err)
	}

	eventNamesByID := make(map[string]string, len(events))
	for _, e := range events {
		eventNamesByID[e.ID] = e.Name
	}

	linkedEventNames := make(map[string][]string, len(collections))
	for _, link := range links {
		if name, ok := eventNamesByID[link.EventID]; ok {
			linkedEventNames[link.CollectionID] = append(linkedEventNames[link.CollectionID], name)
		}
	}

	filtered := make([]domain.Collection, 0, len(collections))
	for _, c := range collections {
		fields := append([]string{c.Name, c.Description}, linkedEventNames[c.ID]...)
		if search.Matches(term, fields...) {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}

// ListStamps filters over name, description, and linked collection names.
func (s *CatalogService) ListStamps(ctx context.Context, query string) ([]domain.Stamp, error) {
	stamps, err := s.repo.ListStamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListStamps -> %w", err)
	}

	term := search.Term(query)
	if term == "" {
		return stamps, nil
	}

	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCollections -> %w", err)
	}

	links, err := s.repo.ListCollectionStamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCollectionStamps -> %w", err)
	}

	collectionNamesByID := make(map[string]string, len(collections))
	for _, c := range collections {
		collectionNamesByID[c.ID] = c.Name
	}

	linkedCollectionNames := make(map[string][]string, len(stamps))
	for _, link := range links {
		if name, ok := collectionNamesByID[link.CollectionID]; ok {
			linkedCollectionNames[link.StampID] = append(linkedCollectionNames[link.StampID], name)
		}
	}

	filtered := make([]domain.Stamp, 0, len(stamps))
	for _, st := range stamps {
		fields := append([]string{st.Name, st.Description}, linkedCollectionNames[st.ID]...)
		if search.Matches(term, fields...) {
			filtered = append(filtered, st)
		}
	}

	return filtered, nil
}

// SaveEvent creates or updates the event and replaces its collection link
// set atomically.
func (s *CatalogService) SaveEvent(ctx context.Context, event domain.Event, collectionIDs []string) (domain.Event, error) {
	saved, err := s.repo.SaveEvent(ctx, event, collectionIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.SaveEvent -> %w", err)
	}

	return saved, nil
}

func (s *CatalogService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteEvent -> %w", err)
	}

	return nil
}

// SaveCollection replaces both the event link set and the stamp link set.
func (s *CatalogService) SaveCollection(ctx context.Context, collection domain.Collection, eventIDs, stampIDs []string) (domain.Collection, error) {
	saved, err := s.repo.SaveCollection(ctx, collection, eventIDs, stampIDs)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("s.repo.SaveCollection -> %w", err)
	}

	return saved, nil
}

func (s *CatalogService) DeleteCollection(ctx context.Context, id string) error {
	if err := s.repo.DeleteCollection(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCollection -> %w", err)
	}

	return nil
}

func (s *CatalogService) SaveStamp(ctx context.Context, stamp domain.Stamp) (domain.Stamp, error) {
	saved, err := s.repo.SaveStamp(ctx, stamp)
	if err != nil {
		return domain.Stamp{}, fmt.Errorf("s.repo.SaveStamp -> %w", err)
	}

	return saved, nil
}

func (s *CatalogService) DeleteStamp(ctx context.Context, id string) error {
	if err := s.repo.DeleteStamp(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteStamp -> %w", err)
	}

	return nil
}
