package v1

import (
	"github.com/gin-gonic/gin"

	"protheo/internal/domain/catalogs/client"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
	"protheo/internal/domain/documents/invoice"
	"protheo/internal/domain/documents/order"
	"protheo/internal/domain/documents/task"
	"protheo/internal/domain/documents/transaction"
	"protheo/internal/domain/settings"
	"protheo/internal/infrastructure/storage/postgres/catalog_repo"
	"protheo/internal/infrastructure/storage/postgres/document_repo"
	"protheo/internal/infrastructure/storage/postgres/settings_repo"
)

// crudRoutes is implemented by entity handlers. List may be shadowed to
// add filtering on top of the generic handler.
type crudRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// registerCrudRoutes mounts the standard CRUD routes on a group.
func registerCrudRoutes(rg *gin.RouterGroup, h crudRoutes) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Repository constructors, kept here so the router reads as a wiring
// table.

func catalogProcedureRepo(cfg RouterConfig) procedure.Repository {
	return catalog_repo.NewProcedureRepo(cfg.TxManager)
}

func catalogMethodRepo(cfg RouterConfig) paymentmethod.Repository {
	return catalog_repo.NewPaymentMethodRepo(cfg.TxManager)
}

func catalogClientRepo(cfg RouterConfig) client.Repository {
	return catalog_repo.NewClientRepo(cfg.TxManager)
}

func orderRepo(cfg RouterConfig) order.Repository {
	return document_repo.NewOrderRepo(cfg.TxManager)
}

func transactionRepo(cfg RouterConfig) transaction.Repository {
	return document_repo.NewTransactionRepo(cfg.TxManager)
}

func taskRepo(cfg RouterConfig) task.Repository {
	return document_repo.NewTaskRepo(cfg.TxManager)
}

func invoiceRepo(cfg RouterConfig) invoice.Repository {
	return document_repo.NewInvoiceRepo(cfg.TxManager)
}

func settingsRepo(cfg RouterConfig) settings.Repository {
	return settings_repo.NewSettingsRepo(cfg.TxManager)
}
