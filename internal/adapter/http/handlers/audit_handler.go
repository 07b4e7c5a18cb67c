package handlers

import (
	"net/http"
	"strconv"

	response "fundtracker/internal/adapter/http/dto/response"
	"fundtracker/internal/usecase"
	"fundtracker/pkg"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the append-only audit trail, newest first.

type AuditHandler struct {
	usecase usecase.IAuditLogUseCase
}

func NewAuditHandler(uc usecase.IAuditLogUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

func (h *AuditHandler) List(c *gin.Context) {
	limit := 0
	if raw, ok := c.GetQuery("limit"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid limit", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = parsed
	}

	entries, err := h.usecase.List(c.Request.Context(), limit)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}
