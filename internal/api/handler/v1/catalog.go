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

type CatalogService interface {
	ListEvents(ctx context.Context, query string) ([]domain.Event, error)
	SaveEvent(ctx context.Context, event domain.Event, collectionIDs []string) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListCollections(ctx context.Context, query string) ([]domain.Collection, error)
	SaveCollection(ctx context.Context, collection domain.Collection, eventIDs, stampIDs []string) (domain.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
	ListStamps(ctx context.Context, query string) ([]domain.Stamp, error)
	SaveStamp(ctx context.Context, stamp domain.Stamp) (domain.Stamp, error)
	DeleteStamp(ctx context.Context, id string) error
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List events, optionally filtered
// @Tags         catalog
// @Produce      json
// @Param        q   query     string false "search term, 3 characters minimum"
// @Success      200 {array}  domain.Event
// @Failure      500 {object} response.Err
// @Router       /admin/events [get]
func (h *CatalogHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleSaveEvent godoc
// @Summary      Create or update an event and its collection links
// @Tags         catalog
// @Produce      json
// @Param        eventID   path      string false "event ID, empty to create"
// @Param        request   body      request.SaveEventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/events/{eventID} [put]
func (h *CatalogHandler) HandleSaveEvent(ctx *gin.Context) {
	var req request.SaveEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	saved, err := h.svc.SaveEvent(ctx.Request.Context(), domain.Event{
		ID:          ctx.Param("eventID"),
		Name:        req.Name,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedBy:   middleware.UserID(ctx),
	}, req.CollectionIDs)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSaveEvent -> h.svc.SaveEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its links
// @Tags         catalog
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/events/{eventID} [delete]
func (h *CatalogHandler) HandleDeleteEvent(ctx *gin.Context) {
	if err := h.svc.DeleteEvent(ctx.Request.Context(), ctx.Param("eventID")); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListCollections godoc
// @Summary      List collections, optionally filtered
// @Tags         catalog
// @Produce      json
// @Param        q   query     string false "search term, 3 characters minimum"
// @Success      200 {array}  domain.Collection
// @Failure      500 {object} response.Err
// @Router       /admin/collections [get]
func (h *CatalogHandler) HandleListCollections(ctx *gin.Context) {
	collections, err := h.svc.ListCollections(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListCollections -> h.svc.ListCollections -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, collections)
}

// HandleSaveCollection godoc
// @Summary      Create or update a collection and its event and stamp links
// @Tags         catalog
// @Produce      json
// @Param        collectionID   path      string false "collection ID, empty to create"
// @Param        request        body      request.SaveCollectionRequest true "request body"
// @Success      200           {object}   domain.Collection
// @Failure      400           {object}   response.Err
// @Failure      500           {object}   response.Err
// @Router       /admin/collections/{collectionID} [put]
func (h *CatalogHandler) HandleSaveCollection(ctx *gin.Context) {
	var req request.SaveCollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	saved, err := h.svc.SaveCollection(ctx.Request.Context(), domain.Collection{
		ID:          ctx.Param("collectionID"),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedBy:   middleware.UserID(ctx),
	}, req.EventIDs, req.StampIDs)
	if err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSaveCollection -> h.svc.SaveCollection -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleDeleteCollection godoc
// @Summary      Delete a collection and its links
// @Tags         catalog
// @Produce      json
// @Param        collectionID   path      string true "collection ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/collections/{collectionID} [delete]
func (h *CatalogHandler) HandleDeleteCollection(ctx *gin.Context) {
	if err := h.svc.DeleteCollection(ctx.Request.Context(), ctx.Param("collectionID")); err != nil {
		if errors.Is(err, service.ErrCollectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCollection -> h.svc.DeleteCollection -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListStamps godoc
// @Summary      List stamps, optionally filtered
// @Tags         catalog
// @Produce      json
// @Param        q   query     string false "search term, 3 characters minimum"
// @Success      200 {array}  domain.Stamp
// @Failure      500 {object} response.Err
// @Router       /admin/stamps [get]
func (h *CatalogHandler) HandleListStamps(ctx *gin.Context) {
	stamps, err := h.svc.ListStamps(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListStamps -> h.svc.ListStamps -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stamps)
}

// HandleSaveStamp godoc
// @Summary      Create or update a stamp
// @Tags         catalog
// @Produce      json
// @Param        stampID   path      string false "stamp ID, empty to create"
// @Param        request   body      request.SaveStampRequest true "request body"
// @Success      200      {object}   domain.Stamp
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/stamps/{stampID} [put]
func (h *CatalogHandler) HandleSaveStamp(ctx *gin.Context) {
	var req request.SaveStampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	saved, err := h.svc.SaveStamp(ctx.Request.Context(), domain.Stamp{
		ID:          ctx.Param("stampID"),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedBy:   middleware.UserID(ctx),
	})
	if err != nil {
		if errors.Is(err, service.ErrStampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSaveStamp -> h.svc.SaveStamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// HandleDeleteStamp godoc
// @Summary      Delete a stamp, its links, and its awards
// @Tags         catalog
// @Produce      json
// @Param        stampID   path      string true "stamp ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/stamps/{stampID} [delete]
func (h *CatalogHandler) HandleDeleteStamp(ctx *gin.Context) {
	if err := h.svc.DeleteStamp(ctx.Request.Context(), ctx.Param("stampID")); err != nil {
		if errors.Is(err, service.ErrStampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteStamp -> h.svc.DeleteStamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
