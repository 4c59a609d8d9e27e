package response

import "github.com/pokeolivos/pokeolivos-api/internal/domain"

type AwardResponse struct {
	Message string           `json:"message"`
	Award   domain.UserStamp `json:"award"`
}
