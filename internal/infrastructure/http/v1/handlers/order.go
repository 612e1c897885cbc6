package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/domain/documents/order"
	"protheo/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles the service order endpoints.
type OrderHandler struct {
	*CrudHandler[*order.Order, dto.CreateOrderRequest, dto.UpdateOrderRequest]
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*order.Order,
			dto.CreateOrderRequest,
			dto.UpdateOrderRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreateOrderRequest) *order.Order {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdateOrderRequest, existing *order.Order) *order.Order {
				req.ApplyTo(existing)
				return existing
			},
		}),
		service: service,
	}
}

// List handles GET /orders?search=&status=&dueFrom=&dueTo=
func (h *OrderHandler) List(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), order.ListFilter{
		Search:  c.Query("search"),
		Status:  order.Status(c.Query("status")),
		DueFrom: h.ParseDateQuery(c, "dueFrom"),
		DueTo:   h.ParseDateQuery(c, "dueTo"),
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}

// Quote handles POST /orders/quote - price a draft without persisting.
func (h *OrderHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	draft := req.ToDraft()
	totals, err := h.service.Quote(c.Request.Context(), draft, req.Editing)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(totals, draft.UnitValue))
}
