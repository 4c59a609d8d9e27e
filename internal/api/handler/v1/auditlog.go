package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pokeolivos/pokeolivos-api/internal/api/handler/v1/response"
	"github.com/pokeolivos/pokeolivos-api/internal/domain"
)

type AuditLogService interface {
	ListAwards(ctx context.Context, filter domain.AuditLogFilter) (domain.AuditLogPage, error)
}

type AuditLogHandler struct {
	svc AuditLogService
}

func NewAuditLogHandler(svc AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		svc: svc,
	}
}

// HandleListAwardLog godoc
// @Summary      List the award log, newest first
// @Tags         auditlog
// @Produce      json
// @Param        page           query     int    false "page, 1-based"
// @Param        awarded_on     query     string false "day filter, YYYY-MM-DD"
// @Param        stamp          query     string false "stamp name filter"
// @Param        collection     query     string false "collection name filter"
// @Param        event          query     string false "event name filter"
// @Param        delivered_to   query     string false "recipient name filter"
// @Param        delivered_by   query     string false "staff name filter"
// @Param        claim_code     query     string false "claim code filter"
// @Success      200 {object} domain.AuditLogPage
// @Failure      500 {object} response.Err
// @Router       /admin/logs [get]
func (h *AuditLogHandler) HandleListAwardLog(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))

	logPage, err := h.svc.ListAwards(ctx.Request.Context(), domain.AuditLogFilter{
		AwardedOn:      ctx.Query("awarded_on"),
		StampName:      ctx.Query("stamp"),
		CollectionName: ctx.Query("collection"),
		EventName:      ctx.Query("event"),
		DeliveredTo:    ctx.Query("delivered_to"),
		DeliveredBy:    ctx.Query("delivered_by"),
		ClaimCode:      ctx.Query("claim_code"),
		Page:           page,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListAwardLog -> h.svc.ListAwards -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, logPage)
}
