package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"protheo/internal/core/apperror"
	"protheo/internal/domain/reports"
)

// ReportsHandler handles derived report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Finance handles GET /reports/finance?month=&year= - monthly ledger
// summary. Defaults to the current month.
func (h *ReportsHandler) Finance(c *gin.Context) {
	now := time.Now().UTC()
	month := h.ParseIntQuery(c, "month", int(now.Month()))
	year := h.ParseIntQuery(c, "year", now.Year())

	if month < 1 || month > 12 {
		h.Error(c, apperror.NewValidation("month must be between 1 and 12").
			WithDetail("value", month))
		return
	}

	summary, err := h.service.Monthly(c.Request.Context(), time.Month(month), year)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Dashboard handles GET /reports/dashboard - the landing page rollup.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
