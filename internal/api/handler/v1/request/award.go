package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// ResolveTrainerRequest carries the raw scanner or keyboard input; the
// service normalizes it.
type ResolveTrainerRequest struct {
	TrainerCode string `json:"trainer_code"`
}

func (req *ResolveTrainerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TrainerCode, validation.Required),
	)
}

type AwardRequest struct {
	UserID       string `json:"user_id"`
	StampID      string `json:"stamp_id"`
	CollectionID string `json:"collection_id"`
	EventID      string `json:"event_id"`
}

func (req *AwardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.StampID, validation.Required),
		validation.Field(&req.CollectionID, validation.Required),
		validation.Field(&req.EventID, validation.Required),
	)
}
