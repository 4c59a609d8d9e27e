package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/request"
	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/api/middleware"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
)

type AwardService interface {
	ResolveTrainer(ctx context.Context, rawCode string) (domain.TrainerMatch, error)
	Award(ctx context.Context, staffID, userID, stampID, collectionID, eventID string) (domain.UserStamp, error)
	ClaimQR(ctx context.Context, requesterID, claimCode string, size int) ([]byte, error)
}

type AwardHandler struct {
	svc AwardService
}

func NewAwardHandler(svc AwardService) *AwardHandler {
	return &AwardHandler{
		svc: svc,
	}
}

// HandleResolveTrainer godoc
// @Summary      Resolve a scanned or typed trainer code to a trainer
// @Tags         award
// @Produce      json
// @Param        request   body      request.ResolveTrainerRequest true "request body"
// @Success      200      {object}   domain.TrainerMatch
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/awards/resolve [post]
func (h *AwardHandler) HandleResolveTrainer(ctx *gin.Context) {
	var req request.ResolveTrainerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	match, err := h.svc.ResolveTrainer(ctx.Request.Context(), req.TrainerCode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTrainerCode) || errors.Is(err, service.ErrTrainerDisabled) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrTrainerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleResolveTrainer -> h.svc.ResolveTrainer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, match)
}

// HandleAward godoc
// @Summary      Award a stamp to a trainer
// @Tags         award
// @Produce      json
// @Param        request   body      request.AwardRequest true "request body"
// @Success      201      {object}   response.AwardResponse
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/awards [post]
func (h *AwardHandler) HandleAward(ctx *gin.Context) {
	var req request.AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	award, err := h.svc.Award(ctx.Request.Context(), middleware.UserID(ctx), req.UserID, req.StampID, req.CollectionID, req.EventID)
	if err != nil {
		if errors.Is(err, service.ErrStampNotInContext) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrStampAlreadyAwarded) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleAward -> h.svc.Award -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.AwardResponse{
		Message: "stamp awarded",
		Award:   award,
	})
}

// HandleGetClaimQR godoc
// @Summary      Render the QR code of one of the trainer's claim codes
// @Tags         award
// @Produce      png
// @Param        claimCode   path      string true "claim code"
// @Param        size        query     int false "image edge in pixels"
// @Success      200 {string} binary
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /me/claims/{claimCode}/qr [get]
func (h *AwardHandler) HandleGetClaimQR(ctx *gin.Context) {
	h.renderClaimQR(ctx, middleware.UserID(ctx))
}

// HandleGetClaimQRAsStaff is the staff variant; any claim may be rendered
// for verification at the counter.
//
// HandleGetClaimQRAsStaff godoc
// @Summary      Render the QR code of any claim code
// @Tags         award
// @Produce      png
// @Param        claimCode   path      string true "claim code"
// @Param        size        query     int false "image edge in pixels"
// @Success      200 {string} binary
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/claims/{claimCode}/qr [get]
func (h *AwardHandler) HandleGetClaimQRAsStaff(ctx *gin.Context) {
	h.renderClaimQR(ctx, "")
}

func (h *AwardHandler) renderClaimQR(ctx *gin.Context, requesterID string) {
	size, _ := strconv.Atoi(ctx.Query("size"))

	png, err := h.svc.ClaimQR(ctx.Request.Context(), requesterID, ctx.Param("claimCode"), size)
	if err != nil {
		if errors.Is(err, service.ErrAwardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}
		if errors.Is(err, service.ErrNotClaimOwner) {
			response.RenderErr(ctx, response.ErrForbidden(err))

			return
		}

		err = fmt.Errorf("v1.renderClaimQR -> h.svc.ClaimQR -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
