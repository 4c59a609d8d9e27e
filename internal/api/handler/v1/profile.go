package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/request"
	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/api/middleware"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
)

type ProfileService interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	UpdateOwnProfile(ctx context.Context, id, trainerName, rawTrainerCode string) (domain.Profile, error)
}

type ProfileHandler struct {
	svc ProfileService
}

func NewProfileHandler(svc ProfileService) *ProfileHandler {
	return &ProfileHandler{
		svc: svc,
	}
}

// HandleGetProfile godoc
// @Summary      Get the authenticated trainer's profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} domain.Profile
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /me/profile [get]
func (h *ProfileHandler) HandleGetProfile(ctx *gin.Context) {
	profile, ok := middleware.Profile(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrForbidden(errors.New("no profile for this account")))

		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// HandleUpdateProfile godoc
// @Summary      Update the authenticated trainer's name and code
// @Tags         profile
// @Produce      json
// @Param        request   body      request.UpdateProfileRequest true "request body"
// @Success      200 {object} domain.Profile
// @Failure      400 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /me/profile [put]
func (h *ProfileHandler) HandleUpdateProfile(ctx *gin.Context) {
	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateOwnProfile(ctx.Request.Context(), middleware.UserID(ctx), req.TrainerName, req.TrainerCode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTrainerCode) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrTrainerCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateProfile -> h.svc.UpdateOwnProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetNavigation godoc
// @Summary      Get the album links to show in the navbar
// @Tags         profile
// @Produce      json
// @Param        current   query     string false "page the client is on (admin or album)"
// @Success      200 {object} domain.NavigationLinks
// @Failure      401 {object} response.Err
// @Router       /me/navigation [get]
func (h *ProfileHandler) HandleGetNavigation(ctx *gin.Context) {
	links := domain.NavigationLinks{}
	if profile, ok := middleware.Profile(ctx); ok {
		links = service.NavigationLinks(&profile, ctx.Query("current"))
	}

	ctx.JSON(http.StatusOK, links)
}
