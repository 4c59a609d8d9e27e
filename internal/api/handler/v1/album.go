package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/api/middleware"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

type AlbumService interface {
	GetPersonalAlbum(ctx context.Context, userID string) ([]domain.AlbumEvent, error)
	GetAdminAlbum(ctx context.Context) ([]domain.AlbumEvent, error)
}

type AlbumHandler struct {
	svc AlbumService
}

func NewAlbumHandler(svc AlbumService) *AlbumHandler {
	return &AlbumHandler{
		svc: svc,
	}
}

// HandleGetPersonalAlbum godoc
// @Summary      Get the authenticated trainer's album
// @Tags         album
// @Produce      json
// @Success      200 {array}  domain.AlbumEvent
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /me/album [get]
func (h *AlbumHandler) HandleGetPersonalAlbum(ctx *gin.Context) {
	album, err := h.svc.GetPersonalAlbum(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetPersonalAlbum -> h.svc.GetPersonalAlbum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, album)
}

// HandleGetAdminAlbum godoc
// @Summary      Get the full catalog album
// @Tags         album
// @Produce      json
// @Success      200 {array}  domain.AlbumEvent
// @Failure      401 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/album [get]
func (h *AlbumHandler) HandleGetAdminAlbum(ctx *gin.Context) {
	album, err := h.svc.GetAdminAlbum(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAdminAlbum -> h.svc.GetAdminAlbum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, album)
}
