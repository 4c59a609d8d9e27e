package repository

import (
	"context"
	"fmt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/repository/dao"
)

var (
	ErrEventNotFound      = dao.ErrEventNotFound
	ErrCollectionNotFound = dao.ErrCollectionNotFound
	ErrStampNotFound      = dao.ErrStampNotFound
)

type CatalogDAO interface {
	ListEvents(ctx context.Context) ([]dao.Event, error)
	FindEventsByIDs(ctx context.Context, ids []string) ([]dao.Event, error)
	UpsertEvent(ctx context.Context, event dao.Event, collectionIDs []string) (dao.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListCollections(ctx context.Context) ([]dao.Collection, error)
	FindCollectionsByIDs(ctx context.Context, ids []string) ([]dao.Collection, error)
	UpsertCollection(ctx context.Context, collection dao.Collection, eventIDs, stampIDs []string) (dao.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
	ListStamps(ctx context.Context) ([]dao.Stamp, error)
	FindStampsByIDs(ctx context.Context, ids []string) ([]dao.Stamp, error)
	FindStampByID(ctx context.Context, id string) (dao.Stamp, error)
	UpsertStamp(ctx context.Context, stamp dao.Stamp) (dao.Stamp, error)
	DeleteStamp(ctx context.Context, id string) error
	ListEventCollections(ctx context.Context) ([]dao.EventCollection, error)
	ListCollectionStamps(ctx context.Context) ([]dao.CollectionStamp, error)
	ListCollectionStampsByCollectionIDs(ctx context.Context, collectionIDs []string) ([]dao.CollectionStamp, error)
	HasLink(ctx context.Context, eventID, collectionID, stampID string) (bool, error)
	SearchEventIDsByName(ctx context.Context, term string, limit int) ([]string, error)
	SearchCollectionIDsByName(ctx context.Context, term string, limit int) ([]string, error)
	SearchStampIDsByName(ctx context.Context, term string, limit int) ([]string, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListEvents -> %w", err)
	}

	return r.eventsDaoToDomain(found), nil
}

func (r *CatalogRepository) FindEventsByIDs(ctx context.Context, ids []string) ([]domain.Event, error) {
	found, err := r.dao.FindEventsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEventsByIDs -> %w", err)
	}

	return r.eventsDaoToDomain(found), nil
}

func (r *CatalogRepository) SaveEvent(ctx context.Context, event domain.Event, collectionIDs []string) (domain.Event, error) {
	saved, err := r.dao.UpsertEvent(ctx, dao.Event{
		ID:          event.ID,
		Name:        event.Name,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Description: event.Description,
		ImageURL:    event.ImageURL,
		CreatedBy:   event.CreatedBy,
	}, collectionIDs)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.UpsertEvent -> %w", err)
	}

	return r.eventDaoToDomain(saved), nil
}

func (r *CatalogRepository) DeleteEvent(ctx context.Context, id string) error {
	if err := r.dao.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteEvent -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	found, err := r.dao.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCollections -> %w", err)
	}

	return r.collectionsDaoToDomain(found), nil
}

func (r *CatalogRepository) FindCollectionsByIDs(ctx context.Context, ids []string) ([]domain.Collection, error) {
	found, err := r.dao.FindCollectionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindCollectionsByIDs -> %w", err)
	}

	return r.collectionsDaoToDomain(found), nil
}

func (r *CatalogRepository) SaveCollection(ctx context.Context, collection domain.Collection, eventIDs, stampIDs []string) (domain.Collection, error) {
	saved, err := r.dao.UpsertCollection(ctx, dao.Collection{
		ID:          collection.ID,
		Name:        collection.Name,
		Description: collection.Description,
		ImageURL:    collection.ImageURL,
		CreatedBy:   collection.CreatedBy,
	}, eventIDs, stampIDs)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("r.dao.UpsertCollection -> %w", err)
	}

	return r.collectionDaoToDomain(saved), nil
}

func (r *CatalogRepository) DeleteCollection(ctx context.Context, id string) error {
	if err := r.dao.DeleteCollection(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCollection -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ListStamps(ctx context.Context) ([]domain.Stamp, error) {
	found, err := r.dao.ListStamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListStamps -> %w", err)
	}

	return r.stampsDaoToDomain(found), nil
}

func (r *CatalogRepository) FindStampsByIDs(ctx context.Context, ids []string) ([]domain.Stamp, error) {
	found, err := r.dao.FindStampsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindStampsByIDs -> %w", err)
	}

	return r.stampsDaoToDomain(found), nil
}

func (r *CatalogRepository) FindStampByID(ctx context.Context, id string) (domain.Stamp, error) {
	found, err := r.dao.FindStampByID(ctx, id)
	if err != nil {
		return domain.Stamp{}, fmt.Errorf("r.dao.FindStampByID -> %w", err)
	}

	return r.stampDaoToDomain(found), nil
}

func (r *CatalogRepository) SaveStamp(ctx context.Context, stamp domain.Stamp) (domain.Stamp, error) {
	saved, err := r.dao.UpsertStamp(ctx, dao.Stamp{
		ID:          stamp.ID,
		Name:        stamp.Name,
		Description: stamp.Description,
		ImageURL:    stamp.ImageURL,
		CreatedBy:   stamp.CreatedBy,
	})
	if err != nil {
		return domain.Stamp{}, fmt.Errorf("r.dao.UpsertStamp -> %w", err)
	}

	return r.stampDaoToDomain(saved), nil
}

func (r *CatalogRepository) DeleteStamp(ctx context.Context, id string) error {
	if err := r.dao.DeleteStamp(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteStamp -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ListEventCollections(ctx context.Context) ([]domain.EventCollection, error) {
	found, err := r.dao.ListEventCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListEventCollections -> %w", err)
	}

	links := make([]domain.EventCollection, 0, len(found))
	for _, link := range found {
		links = append(links, domain.EventCollection{
			EventID:      link.EventID,
			CollectionID: link.CollectionID,
			CreatedBy:    link.CreatedBy,
		})
	}

	return links, nil
}

func (r *CatalogRepository) ListCollectionStamps(ctx context.Context) ([]domain.CollectionStamp, error) {
	found, err := r.dao.ListCollectionStamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCollectionStamps -> %w", err)
	}

	return r.collectionStampsDaoToDomain(found), nil
}

func (r *CatalogRepository) ListCollectionStampsByCollectionIDs(ctx context.Context, collectionIDs []string) ([]domain.CollectionStamp, error) {
	found, err := r.dao.ListCollectionStampsByCollectionIDs(ctx, collectionIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCollectionStampsByCollectionIDs -> %w", err)
	}

	return r.collectionStampsDaoToDomain(found), nil
}

func (r *CatalogRepository) HasLink(ctx context.Context, eventID, collectionID, stampID string) (bool, error) {
	ok, err := r.dao.HasLink(ctx, eventID, collectionID, stampID)
	if err != nil {
		return false, fmt.Errorf("r.dao.HasLink -> %w", err)
	}

	return ok, nil
}

func (r *CatalogRepository) SearchEventIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	ids, err := r.dao.SearchEventIDsByName(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchEventIDsByName -> %w", err)
	}

	return ids, nil
}

func (r *CatalogRepository) SearchCollectionIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	ids, err := r.dao.SearchCollectionIDsByName(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchCollectionIDsByName -> %w", err)
	}

	return ids, nil
}

func (r *CatalogRepository) SearchStampIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	ids, err := r.dao.SearchStampIDsByName(ctx, term, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchStampIDsByName -> %w", err)
	}

	return ids, nil
}

func (r *CatalogRepository) eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *CatalogRepository) eventsDaoToDomain(events []dao.Event) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		out = append(out, r.eventDaoToDomain(e))
	}

	return out
}

func (r *CatalogRepository) collectionDaoToDomain(c dao.Collection) domain.Collection {
	return domain.Collection{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CatalogRepository) collectionsDaoToDomain(collections []dao.Collection) []domain.Collection {
	out := make([]domain.Collection, 0, len(collections))
	for _, c := range collections {
		out = append(out, r.collectionDaoToDomain(c))
	}

	return out
}

func (r *CatalogRepository) stampDaoToDomain(s dao.Stamp) domain.Stamp {
	return domain.Stamp{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *CatalogRepository) stampsDaoToDomain(stamps []dao.Stamp) []domain.Stamp {
	out := make([]domain.Stamp, 0, len(stamps))
	for _, s := range stamps {
		out = append(out, r.stampDaoToDomain(s))
	}

	return out
}

func (r *CatalogRepository) collectionStampsDaoToDomain(links []dao.CollectionStamp) []domain.CollectionStamp {
	out := make([]domain.CollectionStamp, 0, len(links))
	for _, link := range links {
		out = append(out, domain.CollectionStamp{
			CollectionID: link.CollectionID,
			StampID:      link.StampID,
			CreatedBy:    link.CreatedBy,
		})
	}

	return out
}
