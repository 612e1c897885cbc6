// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"protheo/internal/domain/auth"
	"protheo/internal/domain/catalogs/client"
	"protheo/internal/domain/catalogs/paymentmethod"
	"protheo/internal/domain/catalogs/procedure"
	"protheo/internal/domain/documents/invoice"
	"protheo/internal/domain/documents/order"
	"protheo/internal/domain/documents/task"
	"protheo/internal/domain/documents/transaction"
	"protheo/internal/domain/reports"
	"protheo/internal/domain/settings"
	"protheo/internal/infrastructure/http/v1/handlers"
	"protheo/internal/infrastructure/http/v1/middleware"
	"protheo/internal/infrastructure/storage/postgres"
	"protheo/pkg/logger"
	"protheo/pkg/numerator"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	Logger    *logger.Logger

	JWTValidator middleware.JWTValidator
	AuthService  *auth.Service

	Numerator *numerator.Service

	Version     string
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	// Wire repositories and services once; they are stateless beyond the
	// injected transaction manager.
	procedureService := procedure.NewService(catalogProcedureRepo(cfg), cfg.Numerator)
	methodService := paymentmethod.NewService(catalogMethodRepo(cfg))
	clientService := client.NewService(catalogClientRepo(cfg))
	settingsService := settings.NewService(settingsRepo(cfg))

	orderService := order.NewService(orderRepo(cfg), procedureService, methodService, settingsService)
	transactionService := transaction.NewService(transactionRepo(cfg))
	taskService := task.NewService(taskRepo(cfg))
	invoiceService := invoice.NewService(invoiceRepo(cfg), cfg.Numerator)

	reportsService := reports.NewService(orderService, transactionService, taskService)

	v1 := router.Group("/api/v1")
	{
		// Public auth endpoints
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
		v1.POST("/auth/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		authGroup := protected.Group("/auth")
		{
			authGroup.GET("/me", authHandler.Me)
			// Privileged: keep them behind the admin role.
			authGroup.POST("/register", middleware.RequireRole(string(auth.RoleAdmin)), authHandler.Register)
			authGroup.GET("/users", middleware.RequireRole(string(auth.RoleAdmin)), authHandler.ListUsers)
		}

		registerCrudRoutes(protected.Group("/procedures"), handlers.NewProcedureHandler(base, procedureService))
		registerCrudRoutes(protected.Group("/payment-methods"), handlers.NewPaymentMethodHandler(base, methodService))
		registerCrudRoutes(protected.Group("/clients"), handlers.NewClientHandler(base, clientService))

		orderHandler := handlers.NewOrderHandler(base, orderService)
		ordersGroup := protected.Group("/orders")
		ordersGroup.POST("/quote", orderHandler.Quote)
		registerCrudRoutes(ordersGroup, orderHandler)

		registerCrudRoutes(protected.Group("/transactions"), handlers.NewTransactionHandler(base, transactionService))

		taskHandler := handlers.NewTaskHandler(base, taskService)
		tasksGroup := protected.Group("/tasks")
		tasksGroup.POST("/:id/toggle", taskHandler.Toggle)
		registerCrudRoutes(tasksGroup, taskHandler)

		invoiceHandler := handlers.NewInvoiceHandler(base, invoiceService)
		invoicesGroup := protected.Group("/invoices")
		invoicesGroup.POST("/:id/pay", invoiceHandler.MarkPaid)
		registerCrudRoutes(invoicesGroup, invoiceHandler)

		settingsHandler := handlers.NewSettingsHandler(base, settingsService)
		protected.GET("/company", settingsHandler.Get)
		protected.PUT("/company", middleware.RequireRole(string(auth.RoleAdmin)), settingsHandler.Save)

		reportsHandler := handlers.NewReportsHandler(base, reportsService)
		reportsGroup := protected.Group("/reports")
		reportsGroup.GET("/finance", reportsHandler.Finance)
		reportsGroup.GET("/dashboard", reportsHandler.Dashboard)
	}

	return router
}
