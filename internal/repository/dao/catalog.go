package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrStampNotFound      = errors.New("stamp not found")
)

type Event struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	StartsAt    time.Time `gorm:"not null"`
	EndsAt      *time.Time
	Description string
	ImageURL    string
	CreatedBy   string `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Collection struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	ImageURL    string
	CreatedBy   string `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Stamp struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	ImageURL    string
	CreatedBy   string `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventCollection struct {
	EventID      string `gorm:"type:uuid;primaryKey"`
	CollectionID string `gorm:"type:uuid;primaryKey"`
	CreatedBy    string `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type CollectionStamp struct {
	CollectionID string `gorm:"type:uuid;primaryKey"`
	StampID      string `gorm:"type:uuid;primaryKey"`
	CreatedBy    string `gorm:"type:uuid;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *CatalogDAO) FindEventsByIDs(ctx context.Context, ids []string) ([]Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var events []Event

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// UpsertEvent inserts or updates the event and atomically replaces its
// collection links. The delete and reinsert share one transaction so a crash
// cannot leave the event unlinked.
func (d *CatalogDAO) UpsertEvent(ctx context.Context, event Event, collectionIDs []string) (Event, error) {
	creating := event.ID == ""
	if creating {
		event.ID = uuid.NewString()
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if creating {
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		} else {
			result := tx.Model(&Event{}).Where("id = ?", event.ID).Updates(map[string]interface{}{
				"name":        event.Name,
				"starts_at":   event.StartsAt,
				"ends_at":     event.EndsAt,
				"description": event.Description,
				"image_url":   event.ImageURL,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrEventNotFound
			}
		}

		if err := tx.Where("event_id = ?", event.ID).Delete(&EventCollection{}).Error; err != nil {
			return err
		}

		links := buildEventLinks(event.ID, event.CreatedBy, collectionIDs)
		if len(links) == 0 {
			return nil
		}

		return tx.Create(&links).Error
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *CatalogDAO) DeleteEvent(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&UserStamp{}).Error; err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&EventCollection{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}

func (d *CatalogDAO) ListCollections(ctx context.Context) ([]Collection, error) {
	var collections []Collection

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&collections)
	if result.Error != nil {
		return nil, result.Error
	}

	return collections, nil
}

func (d *CatalogDAO) FindCollectionsByIDs(ctx context.Context, ids []string) ([]Collection, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var collections []Collection

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&collections)
	if result.Error != nil {
		return nil, result.Error
	}

	return collections, nil
}

// UpsertCollection inserts or updates the collection and replaces both its
// event links and its stamp links in the same transaction.
func (d *CatalogDAO) UpsertCollection(ctx context.Context, collection Collection, eventIDs, stampIDs []string) (Collection, error) {
	creating := collection.ID == ""
	if creating {
		collection.ID = uuid.NewString()
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if creating {
			if err := tx.Create(&collection).Error; err != nil {
				return err
			}
		} else {
			result := tx.Model(&Collection{}).Where("id = ?", collection.ID).Updates(map[string]interface{}{
				"name":        collection.Name,
				"description": collection.Description,
				"image_url":   collection.ImageURL,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrCollectionNotFound
			}
		}

		if err := tx.Where("collection_id = ?", collection.ID).Delete(&EventCollection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", collection.ID).Delete(&CollectionStamp{}).Error; err != nil {
			return err
		}

		eventLinks := make([]EventCollection, 0, len(eventIDs))
		for _, eventID := range dedupe(eventIDs) {
			eventLinks = append(eventLinks, EventCollection{
				EventID:      eventID,
				CollectionID: collection.ID,
				CreatedBy:    collection.CreatedBy,
			})
		}
		if len(eventLinks) > 0 {
			if err := tx.Create(&eventLinks).Error; err != nil {
				return err
			}
		}

		stampLinks := make([]CollectionStamp, 0, len(stampIDs))
		for _, stampID := range dedupe(stampIDs) {
			stampLinks = append(stampLinks, CollectionStamp{
				CollectionID: collection.ID,
				StampID:      stampID,
				CreatedBy:    collection.CreatedBy,
			})
		}
		if len(stampLinks) > 0 {
			if err := tx.Create(&stampLinks).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Collection{}, err
	}

	return collection, nil
}

func (d *CatalogDAO) DeleteCollection(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&UserStamp{}).Error; err != nil {
			return err
		}

		if err := tx.Where("collection_id = ?", id).Delete(&EventCollection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&CollectionStamp{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&Collection{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCollectionNotFound
		}

		return nil
	})
}

func (d *CatalogDAO) ListStamps(ctx context.Context) ([]Stamp, error) {
	var stamps []Stamp

	result := d.db.WithContext(ctx).Order("created_at desc").Find(&stamps)
	if result.Error != nil {
		return nil, result.Error
	}

	return stamps, nil
}

func (d *CatalogDAO) FindStampsByIDs(ctx context.Context, ids []string) ([]Stamp, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var stamps []Stamp

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&stamps)
	if result.Error != nil {
		return nil, result.Error
	}

	return stamps, nil
}

func (d *CatalogDAO) FindStampByID(ctx context.Context, id string) (Stamp, error) {
	var stamp Stamp

	result := d.db.WithContext(ctx).First(&stamp, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stamp{}, ErrStampNotFound
		}

		return Stamp{}, result.Error
	}

	return stamp, nil
}

func (d *CatalogDAO) UpsertStamp(ctx context.Context, stamp Stamp) (Stamp, error) {
	if stamp.ID == "" {
		stamp.ID = uuid.NewString()

		if err := d.db.WithContext(ctx).Create(&stamp).Error; err != nil {
			return Stamp{}, err
		}

		return stamp, nil
	}

	result := d.db.WithContext(ctx).Model(&Stamp{}).Where("id = ?", stamp.ID).Updates(map[string]interface{}{
		"name":        stamp.Name,
		"description": stamp.Description,
		"image_url":   stamp.ImageURL,
	})
	if result.Error != nil {
		return Stamp{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Stamp{}, ErrStampNotFound
	}

	return stamp, nil
}

func (d *CatalogDAO) DeleteStamp(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stamp_id = ?", id).Delete(&UserStamp{}).Error; err != nil {
			return err
		}

		if err := tx.Where("stamp_id = ?", id).Delete(&CollectionStamp{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&Stamp{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStampNotFound
		}

		return nil
	})
}

func (d *CatalogDAO) ListEventCollections(ctx context.Context) ([]EventCollection, error) {
	var links []EventCollection

	result := d.db.WithContext(ctx).Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

func (d *CatalogDAO) ListCollectionStamps(ctx context.Context) ([]CollectionStamp, error) {
	var links []CollectionStamp

	result := d.db.WithContext(ctx).Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

func (d *CatalogDAO) ListCollectionStampsByCollectionIDs(ctx context.Context, collectionIDs []string) ([]CollectionStamp, error) {
	if len(collectionIDs) == 0 {
		return nil, nil
	}

	var links []CollectionStamp

	result := d.db.WithContext(ctx).Where("collection_id IN ?", collectionIDs).Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

// HasLink reports whether the (event, collection) and (collection, stamp)
// pairs both exist, which an award requires.
func (d *CatalogDAO) HasLink(ctx context.Context, eventID, collectionID, stampID string) (bool, error) {
	var eventLinks int64
	if err := d.db.WithContext(ctx).
		Model(&EventCollection{}).
		Where("event_id = ? AND collection_id = ?", eventID, collectionID).
		Count(&eventLinks).Error; err != nil {
		return false, err
	}
	if eventLinks == 0 {
		return false, nil
	}

	var stampLinks int64
	if err := d.db.WithContext(ctx).
		Model(&CollectionStamp{}).
		Where("collection_id = ? AND stamp_id = ?", collectionID, stampID).
		Count(&stampLinks).Error; err != nil {
		return false, err
	}

	return stampLinks > 0, nil
}

// SearchEventIDsByName and friends back the audit log name filters.
func (d *CatalogDAO) SearchEventIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	return d.searchIDsByName(ctx, &Event{}, term, limit)
}

func (d *CatalogDAO) SearchCollectionIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	return d.searchIDsByName(ctx, &Collection{}, term, limit)
}

func (d *CatalogDAO) SearchStampIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	return d.searchIDsByName(ctx, &Stamp{}, term, limit)
}

func (d *CatalogDAO) searchIDsByName(ctx context.Context, model interface{}, term string, limit int) ([]string, error) {
	var ids []string

	result := d.db.WithContext(ctx).
		Model(model).
		Where("name ILIKE ?", "%"+term+"%").
		Limit(limit).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func buildEventLinks(eventID, createdBy string, collectionIDs []string) []EventCollection {
	links := make([]EventCollection, 0, len(collectionIDs))
	for _, collectionID := range dedupe(collectionIDs) {
		links = append(links, EventCollection{
			EventID:      eventID,
			CollectionID: collectionID,
			CreatedBy:    createdBy,
		})
	}

	return links
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
