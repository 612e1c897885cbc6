package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protheo/internal/domain/documents/transaction"
	"protheo/internal/infrastructure/http/v1/dto"
)

// TransactionHandler handles the financial ledger endpoints.
type TransactionHandler struct {
	*CrudHandler[*transaction.Transaction, dto.CreateTransactionRequest, dto.UpdateTransactionRequest]
	service *transaction.Service
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(base *BaseHandler, service *transaction.Service) *TransactionHandler {
	return &TransactionHandler{
		CrudHandler: NewCrudHandler(base, CrudHandlerConfig[
			*transaction.Transaction,
			dto.CreateTransactionRequest,
			dto.UpdateTransactionRequest,
		]{
			Service: service.CrudService,
			MapCreate: func(req dto.CreateTransactionRequest) *transaction.Transaction {
				return req.ToEntity()
			},
			MapUpdate: func(req dto.UpdateTransactionRequest, existing *transaction.Transaction) *transaction.Transaction {
				req.ApplyTo(existing)
				return existing
			},
		}),
		service: service,
	}
}

// List handles GET /transactions?search=&type=&status=&dateFrom=&dateTo=
func (h *TransactionHandler) List(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), transaction.ListFilter{
		Search:   c.Query("search"),
		Type:     transaction.Type(c.Query("type")),
		Status:   transaction.Status(c.Query("status")),
		DateFrom: h.ParseDateQuery(c, "dateFrom"),
		DateTo:   h.ParseDateQuery(c, "dateTo"),
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{Items: items, Count: len(items)})
}
