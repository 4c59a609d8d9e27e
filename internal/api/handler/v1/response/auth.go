package response

import "github.com/pokeolivos/pokeolivos-api/internal/domain"

type LoginResponse struct {
	Token   string         `json:"token"`
	Profile domain.Profile `json:"profile"`
}

type SignupResponse struct {
	Message string         `json:"message"`
	Profile domain.Profile `json:"profile"`
}
