package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/infrastructure/http/v1/dto"
)

// PaymentMethodHandler handles the payment method catalog endpoints.
type PaymentMethodHandler struct {
	*CrudHandler[*paymentmethod.PaymentMethod, dto.CreatePaymentMethodRequest, dto.UpdatePaymentMethodRequest]
	service *paymentmethod.Service
}

// NewPaymentMethodHandler creates a new payment method handler.
func NewPaymentMethodHandler(base *BaseHandler, service *paymentmethod.Service) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*paymentmethod.PaymentMethod,
			dto.CreatePaymentMethodRequest,
			dto.UpdatePaymentMethodRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreatePaymentMethodRequest) *paymentmethod.PaymentMethod {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdatePaymentMethodRequest, existing *paymentmethod.PaymentMethod) *paymentmethod.PaymentMethod {
				req.ApplyTo(existing)
				return existing
			},
		}),
		service: service,
	}
}

// List handles GET /payment-methods?active=true
func (h *PaymentMethodHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []*paymentmethod.PaymentMethod
		err   error
	)
	if c.Query("active") == "true" {
		items, err = h.service.ListActive(ctx)
	} else {
		items, err = h.service.List(ctx)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}
