package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/request"
	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
)

type UserService interface {
	ListUsers(ctx context.Context, query string) ([]domain.Profile, error)
	UpdateUser(ctx context.Context, id, trainerName, rawTrainerCode, role string, active bool) (domain.Profile, error)
	ApproveUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List trainer profiles, optionally filtered
// @Tags         user
// @Produce      json
// @Param        q   query     string false "search term, 3 characters minimum"
// @Success      200 {array}  domain.Profile
// @Failure      500 {object} response.Err
// @Router       /admin/users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	profiles, err := h.svc.ListUsers(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

// HandleUpdateUser godoc
// @Summary      Update a trainer's profile as staff
// @Tags         user
// @Produce      json
// @Param        userID    path      string true "user ID"
// @Param        request   body      request.UpdateUserRequest true "request body"
// @Success      200      {object}   domain.Profile
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/users/{userID} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	var req request.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateUser(ctx.Request.Context(), ctx.Param("userID"), req.TrainerName, req.TrainerCode, req.Role, req.Active)
	if err != nil {
		if errors.Is(err, service.ErrRoleNotAssignable) || errors.Is(err, service.ErrInvalidTrainerCode) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrProfileNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}
		if errors.Is(err, service.ErrTrainerCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleApproveUser godoc
// @Summary      Approve a pending trainer
// @Tags         user
// @Produce      json
// @Param        userID   path      string true "user ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/users/{userID}/approve [post]
func (h *UserHandler) HandleApproveUser(ctx *gin.Context) {
	if err := h.svc.ApproveUser(ctx.Request.Context(), ctx.Param("userID")); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleApproveUser -> h.svc.ApproveUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "trainer approved",
	})
}

// HandleDeleteUser godoc
// @Summary      Delete a trainer's account, profile, and awards
// @Tags         user
// @Produce      json
// @Param        userID   path      string true "user ID"
// @Success      204
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	if err := h.svc.DeleteUser(ctx.Request.Context(), ctx.Param("userID")); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) || errors.Is(err, service.ErrAccountNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
