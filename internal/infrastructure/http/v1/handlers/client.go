package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/domain/catalogs/client"
	"protheo/internal/infrastructure/http/v1/dto"
)

// ClientHandler handles the client catalog endpoints.
type ClientHandler struct {
	*CrudHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	service *client.Service
}

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHandler {
	return &ClientHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*client.Client,
			dto.CreateClientRequest,
			dto.UpdateClientRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreateClientRequest) *client.Client {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdateClientRequest, existing *client.Client) *client.Client {
				req.ApplyTo(existing)
				return existing
			},
		}),
		service: service,
	}
}

// List handles GET /clients?search=&status=
func (h *ClientHandler) List(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), client.ListFilter{
		Search: c.Query("search"),
		Status: client.Status(c.Query("status")),
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}
