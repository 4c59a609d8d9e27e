package domain

import "time"

// AlbumStamp is one stamp slot in an album view. Claim code and timestamp
// are only attached when owned.
type AlbumStamp struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ImageURL  string     `json:"image_url"`
	Owned     bool       `json:"owned"`
	ClaimCode string     `json:"claim_code,omitempty"`
	AwardedAt *time.Time `json:"awarded_at,omitempty"`
}

type AlbumCollection struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	ImageURL string       `json:"image_url"`
	Stamps   []AlbumStamp `json:"stamps"`

	// HasStamps flags empty collections in the admin view; the personal
	// album never contains one.
	HasStamps bool `json:"has_stamps"`
}

type AlbumEvent struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	StartsAt    time.Time         `json:"starts_at"`
	EndsAt      *time.Time        `json:"ends_at"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Collections []AlbumCollection `json:"collections"`

	// HasCollections flags childless events in the admin view.
	HasCollections bool `json:"has_collections"`
}

// GalleryImage is one object in the image bucket. Identity is the path.
type GalleryImage struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Folder string `json:"folder"`
	URL    string `json:"url"`
}
