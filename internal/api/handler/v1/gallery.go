package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/service"
)

type GalleryService interface {
	ListImages(ctx context.Context) ([]domain.GalleryImage, error)
	UploadImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (domain.GalleryImage, error)
	DeleteImage(ctx context.Context, path string) error
}

type GalleryHandler struct {
	svc GalleryService
}

func NewGalleryHandler(svc GalleryService) *GalleryHandler {
	return &GalleryHandler{
		svc: svc,
	}
}

// HandleListImages godoc
// @Summary      List the image picker's folders
// @Tags         gallery
// @Produce      json
// @Success      200 {array}  domain.GalleryImage
// @Failure      500 {object} response.Err
// @Router       /admin/gallery [get]
func (h *GalleryHandler) HandleListImages(ctx *gin.Context) {
	images, err := h.svc.ListImages(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListImages -> h.svc.ListImages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, images)
}

// HandleUploadImage godoc
// @Summary      Upload an image to the gallery folder
// @Tags         gallery
// @Accept       mpfd
// @Produce      json
// @Param        image   formData  file true "jpeg, png, or webp up to 300 KB"
// @Success      201 {object} domain.GalleryImage
// @Failure      400 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/gallery [post]
func (h *GalleryHandler) HandleUploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("image")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	file, err := header.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	defer file.Close()

	image, err := h.svc.UploadImage(ctx.Request.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		if errors.Is(err, service.ErrImageTooLarge) || errors.Is(err, service.ErrUnsupportedImage) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrImagePathExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		err = fmt.Errorf("v1.HandleUploadImage -> h.svc.UploadImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, image)
}

// HandleDeleteImage godoc
// @Summary      Delete an uploaded gallery image
// @Tags         gallery
// @Produce      json
// @Param        path   query     string true "stored object path"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /admin/gallery [delete]
func (h *GalleryHandler) HandleDeleteImage(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("path is required")))

		return
	}

	if err := h.svc.DeleteImage(ctx.Request.Context(), path); err != nil {
		if errors.Is(err, service.ErrImageOutsideGallery) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteImage -> h.svc.DeleteImage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
