package server

import (
	"smb-accounting/internal/config"
	"smb-accounting/internal/handlers"
	"smb-accounting/internal/middleware"
	"smb-accounting/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the HTTP layer is built on
type Dependencies struct {
	Ledger          services.LedgerServiceInterface
	Reconciliations services.ReconciliationServiceInterface
	Reports         services.ReportServiceInterface
	Budgets         services.BudgetServiceInterface
	Alerts          services.AlertServiceInterface
	AlertConfigs    services.AlertConfigurationServiceInterface
	Tokens          services.TokenServiceInterface
	Health          handlers.HealthChecker
	RateLimiter     *middleware.RateLimiter
	MetricsSource   prometheus.Gatherer
}

// NewRouter builds the echo instance with middleware and every route registered
func NewRouter(cfg *config.Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  cfg.Server.CORSAllowOrigins,
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
			ExposeHeaders: []string{middleware.TraceIDHeader},
		}))
	}
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	gatherer := deps.MetricsSource
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	healthHandler := handlers.NewHealthCheckHandler(deps.Health)
	e.GET("/health", healthHandler.HealthCheck)

	api := e.Group("/api/v1", middleware.RequireAuth(deps.Tokens))

	transactionHandler := handlers.NewTransactionHandler(deps.Ledger)
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	reconciliationHandler := handlers.NewReconciliationHandler(deps.Reconciliations)
	reconciliations := api.Group("/reconciliations")
	reconciliations.POST("", reconciliationHandler.CreateReconciliation)
	reconciliations.GET("", reconciliationHandler.ListReconciliations)
	reconciliations.GET("/:id", reconciliationHandler.GetReconciliation)
	reconciliations.PATCH("/:id/complete", reconciliationHandler.CompleteReconciliation)
	reconciliations.POST("/:id/transactions/:transactionId", reconciliationHandler.AttachTransaction)
	reconciliations.DELETE("/transactions/:transactionId", reconciliationHandler.DetachTransaction)

	reportHandler := handlers.NewReportHandler(deps.Reports)
	reports := api.Group("/reports")
	reports.POST("", reportHandler.CreateReport)
	reports.GET("", reportHandler.ListReports)
	// static segment wins over /:id in echo's router
	reports.GET("/generate", reportHandler.GenerateReport)
	reports.GET("/:id", reportHandler.GetReport)
	reports.PATCH("/:id", reportHandler.UpdateReport)
	reports.DELETE("/:id", reportHandler.DeleteReport)

	budgetHandler := handlers.NewBudgetHandler(deps.Budgets)
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.GET("/:id/report", budgetHandler.GetBudgetReport)
	budgets.PATCH("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	alertHandler := handlers.NewAlertHandler(deps.Alerts, deps.AlertConfigs)
	alerts := api.Group("/alerts")
	alerts.GET("", alertHandler.ListAlerts)
	alerts.PATCH("/read-all", alertHandler.MarkAllAlertsRead)
	alerts.PATCH("/:id/read", alertHandler.MarkAlertRead)

	configs := api.Group("/alert-configurations")
	configs.POST("", alertHandler.CreateConfiguration)
	configs.GET("", alertHandler.ListConfigurations)
	configs.GET("/:id", alertHandler.GetConfiguration)
	configs.PATCH("/:id", alertHandler.UpdateConfiguration)
	configs.PATCH("/:id/toggle", alertHandler.ToggleConfiguration)
	configs.DELETE("/:id", alertHandler.DeleteConfiguration)

	return e
}
