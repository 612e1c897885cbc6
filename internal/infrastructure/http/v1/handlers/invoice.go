package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/core/apperror"
	"protheo/internal/core/id"
	"protheo/internal/domain/documents/invoice"
	"protheo/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles the invoice endpoints.
type InvoiceHandler struct {
	*CrudHandler[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*invoice.Invoice,
			dto.CreateInvoiceRequest,
			dto.UpdateInvoiceRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreateInvoiceRequest) *invoice.Invoice {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdateInvoiceRequest, existing *invoice.Invoice) *invoice.Invoice {
				req.ApplyTo(existing)
				return existing
			},
		}),
		service: service,
	}
}

// List handles GET /invoices?search=&status=
func (h *InvoiceHandler) List(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), invoice.ListFilter{
		Search: c.Query("search"),
		Status: invoice.Status(c.Query("status")),
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}

// MarkPaid handles POST /invoices/:id/pay
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	invoiceID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	ctx := c.Request.Context()
	i, err := h.service.GetByID(ctx, invoiceID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.MarkPaid(ctx, i); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, i)
}
