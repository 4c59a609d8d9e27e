package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

type UpdateProfileRequest struct {
	TrainerName string `json:"trainer_name"`
	TrainerCode string `json:"trainer_code"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TrainerName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.TrainerCode, validation.Required),
	)
}

// UpdateUserRequest is the staff edit of another trainer's profile.
type UpdateUserRequest struct {
	TrainerName string `json:"trainer_name"`
	TrainerCode string `json:"trainer_code"`
	Role        string `json:"role"`
	Active      bool   `json:"active"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TrainerName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.TrainerCode, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleUser, domain.RoleMod)),
	)
}
