package service

import (
	"context"
	"fmt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

type AlbumCatalogRepository interface {
	FindEventsByIDs(ctx context.Context, ids []string) ([]domain.Event, error)
	FindCollectionsByIDs(ctx context.Context, ids []string) ([]domain.Collection, error)
	FindStampsByIDs(ctx context.Context, ids []string) ([]domain.Stamp, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	ListStamps(ctx context.Context) ([]domain.Stamp, error)
	ListEventCollections(ctx context.Context) ([]domain.EventCollection, error)
	ListCollectionStamps(ctx context.Context) ([]domain.CollectionStamp, error)
	ListCollectionStampsByCollectionIDs(ctx context.Context, collectionIDs []string) ([]domain.CollectionStamp, error)
}

type AlbumAwardRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.UserStamp, error)
}

type AlbumService struct {
	catalogRepo AlbumCatalogRepository
	awardRepo   AlbumAwardRepository
}

func NewAlbumService(catalogRepo AlbumCatalogRepository, awardRepo AlbumAwardRepository) *AlbumService {
	return &AlbumService{
		catalogRepo: catalogRepo,
		awardRepo:   awardRepo,
	}
}

// GetPersonalAlbum loads only the slice of the catalog the trainer has
// engaged with and nests it.
func (s *AlbumService) GetPersonalAlbum(ctx context.Context, userID string) ([]domain.AlbumEvent, error) {
	awards, err := s.awardRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.awardRepo.FindByUserID -> %w", err)
	}

	eventIDs := make([]string, 0, len(awards))
	collectionIDs := make([]string, 0, len(awards))
	seenEvents := make(map[string]struct{})
	seenCollections := make(map[string]struct{})
	for _, award := range awards {
		if _, ok := seenEvents[award.EventID]; !ok {
			seenEvents[award.EventID] = struct{}{}
			eventIDs = append(eventIDs, award.EventID)
		}
		if _, ok := seenCollections[award.CollectionID]; !ok {
			seenCollections[award.CollectionID] = struct{}{}
			collectionIDs = append(collectionIDs, award.CollectionID)
		}
	}

	events, err := s.catalogRepo.FindEventsByIDs(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindEventsByIDs -> %w", err)
	}

	collections, err := s.catalogRepo.FindCollectionsByIDs(ctx, collectionIDs)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindCollectionsByIDs -> %w", err)
	}

	collectionStamps, err := s.catalogRepo.ListCollectionStampsByCollectionIDs(ctx, collectionIDs)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.ListCollectionStampsByCollectionIDs -> %w", err)
	}

	stampIDs := make([]string, 0, len(collectionStamps))
	seenStamps := make(map[string]struct{})
	for _, link := range collectionStamps {
		if _, ok := seenStamps[link.StampID]; !ok {
			seenStamps[link.StampID] = struct{}{}
			stampIDs = append(stampIDs, link.StampID)
		}
	}

	stamps, err := s.catalogRepo.FindStampsByIDs(ctx, stampIDs)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindStampsByIDs -> %w", err)
	}

	return BuildPersonalAlbum(events, collections, stamps, collectionStamps, awards), nil
}

// GetAdminAlbum loads the full catalog for the management view.
func (s *AlbumService) GetAdminAlbum(ctx context.Context) ([]domain.AlbumEvent, error) {
	events, err := s.catalogRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.ListEvents -> %w", err)
	}

	collections, err := s.catalogRepo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.ListCollections -> %w", err)
	}

	stamps, err := s.catalogRepo.ListStamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.ListStamps -> %w", err)
	}

	eventCollections, err := s.catalogRepo.ListEventCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.ListEventCollections -> %w", err)
	}

	collectionStamps, err := s.catalogRepo.ListCollectionStamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.ListCollectionStamps -> %w", err)
	}

	return BuildAdminAlbum(events, collections, stamps, eventCollections, collectionStamps), nil
}

// BuildPersonalAlbum nests the viewer's album. A collection appears under an
// event only when the viewer holds at least one stamp for that (event,
// collection) pair; its slots are every linked stamp, owned or not; events
// left without collections are dropped. Pure over its inputs and linear in
// the row counts.
func BuildPersonalAlbum(
	events []domain.Event,
	collections []domain.Collection,
	stamps []domain.Stamp,
	collectionStamps []domain.CollectionStamp,
	awards []domain.UserStamp,
) []domain.AlbumEvent {
	stampsByID := make(map[string]domain.Stamp, len(stamps))
	for _, s := range stamps {
		stampsByID[s.ID] = s
	}

	stampIDsByCollection := make(map[string][]string, len(collections))
	for _, link := range collectionStamps {
		stampIDsByCollection[link.CollectionID] = append(stampIDsByCollection[link.CollectionID], link.StampID)
	}

	type pairKey struct{ eventID, collectionID string }
	awardedPairs := make(map[pairKey]struct{}, len(awards))
	awardByTriple := make(map[[3]string]domain.UserStamp, len(awards))
	for _, award := range awards {
		awardedPairs[pairKey{award.EventID, award.CollectionID}] = struct{}{}
		awardByTriple[[3]string{award.EventID, award.CollectionID, award.StampID}] = award
	}

	album := make([]domain.AlbumEvent, 0, len(events))
	for _, event := range events {
		var albumCollections []domain.AlbumCollection

		for _, collection := range collections {
			if _, engaged := awardedPairs[pairKey{event.ID, collection.ID}]; !engaged {
				continue
			}

			linkedStampIDs := stampIDsByCollection[collection.ID]
			albumStamps := make([]domain.AlbumStamp, 0, len(linkedStampIDs))
			for _, stampID := range linkedStampIDs {
				stamp, ok := stampsByID[stampID]
				if !ok {
					continue
				}

				slot := domain.AlbumStamp{
					ID:       stamp.ID,
					Name:     stamp.Name,
					ImageURL: stamp.ImageURL,
				}

				if award, owned := awardByTriple[[3]string{event.ID, collection.ID, stamp.ID}]; owned {
					awardedAt := award.AwardedAt
					slot.Owned = true
					slot.ClaimCode = award.ClaimCode
					slot.AwardedAt = &awardedAt
				}

				albumStamps = append(albumStamps, slot)
			}

			albumCollections = append(albumCollections, domain.AlbumCollection{
				ID:        collection.ID,
				Name:      collection.Name,
				ImageURL:  collection.ImageURL,
				Stamps:    albumStamps,
				HasStamps: len(albumStamps) > 0,
			})
		}

		if len(albumCollections) == 0 {
			continue
		}

		album = append(album, domain.AlbumEvent{
			ID:             event.ID,
			Name:           event.Name,
			StartsAt:       event.StartsAt,
			EndsAt:         event.EndsAt,
			Description:    event.Description,
			ImageURL:       event.ImageURL,
			Collections:    albumCollections,
			HasCollections: true,
		})
	}

	return album
}

// BuildAdminAlbum nests the whole catalog, keeping childless entities and
// flagging them instead of dropping them.
func BuildAdminAlbum(
	events []domain.Event,
	collections []domain.Collection,
	stamps []domain.Stamp,
	eventCollections []domain.EventCollection,
	collectionStamps []domain.CollectionStamp,
) []domain.AlbumEvent {
	collectionsByID := make(map[string]domain.Collection, len(collections))
	for _, c := range collections {
		collectionsByID[c.ID] = c
	}

	stampsByID := make(map[string]domain.Stamp, len(stamps))
	for _, s := range stamps {
		stampsByID[s.ID] = s
	}

	collectionIDsByEvent := make(map[string][]string, len(events))
	for _, link := range eventCollections {
		collectionIDsByEvent[link.EventID] = append(collectionIDsByEvent[link.EventID], link.CollectionID)
	}

	stampIDsByCollection := make(map[string][]string, len(collections))
	for _, link := range collectionStamps {
		stampIDsByCollection[link.CollectionID] = append(stampIDsByCollection[link.CollectionID], link.StampID)
	}

	album := make([]domain.AlbumEvent, 0, len(events))
	for _, event := range events {
		linkedCollectionIDs := collectionIDsByEvent[event.ID]
		albumCollections := make([]domain.AlbumCollection, 0, len(linkedCollectionIDs))

		for _, collectionID := range linkedCollectionIDs {
			collection, ok := collectionsByID[collectionID]
			if !ok {
				continue
			}

			linkedStampIDs := stampIDsByCollection[collection.ID]
			albumStamps := make([]domain.AlbumStamp, 0, len(linkedStampIDs))
			for _, stampID := range linkedStampIDs {
				stamp, ok := stampsByID[stampID]
				if !ok {
					continue
				}

				albumStamps = append(albumStamps, domain.AlbumStamp{
					ID:       stamp.ID,
					Name:     stamp.Name,
					ImageURL: stamp.ImageURL,
				})
			}

			albumCollections = append(albumCollections, domain.AlbumCollection{
				ID:        collection.ID,
				Name:      collection.Name,
				ImageURL:  collection.ImageURL,
				Stamps:    albumStamps,
				HasStamps: len(albumStamps) > 0,
			})
		}

		album = append(album, domain.AlbumEvent{
			ID:             event.ID,
			Name:           event.Name,
			StartsAt:       event.StartsAt,
			EndsAt:         event.EndsAt,
			Description:    event.Description,
			ImageURL:       event.ImageURL,
			Collections:    albumCollections,
			HasCollections: len(albumCollections) > 0,
		})
	}

	return album
}
