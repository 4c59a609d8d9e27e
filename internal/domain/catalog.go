package domain

import "time"

// Event is a time-boxed occasion offering collections.
type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Collection is a themed set of stamps, scoped to events through links.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stamp is an awardable badge.
type Stamp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventCollection links a collection into an event.
type EventCollection struct {
	EventID      string `json:"event_id"`
	CollectionID string `json:"collection_id"`
	CreatedBy    string `json:"created_by"`
}

// CollectionStamp links a stamp into a collection.
type CollectionStamp struct {
	CollectionID string `json:"collection_id"`
	StampID      string `json:"stamp_id"`
	CreatedBy    string `json:"created_by"`
}
