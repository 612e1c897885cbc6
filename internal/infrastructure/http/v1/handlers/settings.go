package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/domain/settings"
	"protheo/internal/infrastructure/http/v1/dto"
)

// SettingsHandler handles the company settings endpoints.
type SettingsHandler struct {
	*BaseHandler
	service *settings.Service
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *BaseHandler, service *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Get handles GET /settings/company
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// Save handles PUT /settings/company
func (h *SettingsHandler) Save(c *gin.Context) {
	var req dto.SaveSettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	saved, err := h.service.Save(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
