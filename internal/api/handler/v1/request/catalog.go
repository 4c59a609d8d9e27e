package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEndsBeforeStarts = errors.New("the end date must not be before the start date")

type SaveEventRequest struct {
	Name          string     `json:"name"`
	StartsAt      time.Time  `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"image_url"`
	CollectionIDs []string   `json:"collection_ids"`
}

func (req *SaveEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.StartsAt, validation.Required),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	if req.EndsAt != nil && req.EndsAt.Before(req.StartsAt) {
		return errEndsBeforeStarts
	}

	return nil
}

type SaveCollectionRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	EventIDs    []string `json:"event_ids"`
	StampIDs    []string `json:"stamp_ids"`
}

func (req *SaveCollectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type SaveStampRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (req *SaveStampRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
