package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smb-accounting/internal/amqp"
	"smb-accounting/internal/config"
	"smb-accounting/internal/database"
	"smb-accounting/internal/middleware"
	"smb-accounting/internal/repositories"
	"smb-accounting/internal/server"
	"smb-accounting/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// devUserID is the owner created by db/seeds
const devUserID = "a0000000-0000-0000-0000-000000000001"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Server.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}()

	userRepo := repositories.NewUserRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	alertRepo := repositories.NewAlertRepository(db.DB)
	alertConfigRepo := repositories.NewAlertConfigurationRepository(db.DB)
	reportRepo := repositories.NewReportRepository(db.DB)
	reconciliationRepo := repositories.NewReconciliationRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	store := repositories.NewLedgerStore(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	auditLogger := services.NewAuditLogger(logger)

	sink := services.NewRepositoryAlertSink(alertRepo)
	if cfg.AMQPEnabled() {
		client, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			logger.Warn("AMQP unavailable, alerts will only be stored", "error", err)
		} else {
			defer client.Close()
			sink = services.NewPublishingAlertSink(sink, client, metrics, logger)
		}
	}

	evaluator := services.NewAlertEvaluator(
		accountRepo,
		alertConfigRepo,
		sink,
		metrics,
		auditLogger,
		logger,
		services.AlertEvaluatorOptions{MatchAllConfigs: cfg.Alerts.MatchAllConfigs},
	)

	ledger := services.NewLedgerService(
		store,
		accountRepo,
		userRepo,
		transactionRepo,
		evaluator,
		metrics,
		auditLogger,
		logger,
		services.LedgerOptions{EvaluateAlertsOnAmend: cfg.Alerts.EvaluateOnAmend},
	)

	breaker := services.NewReportCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:  cfg.Reports.BreakerMaxFailures,
		ResetTimeout: cfg.Reports.BreakerTimeout,
	}, metrics, auditLogger)
	reports := services.NewReportService(reportRepo, transactionRepo, accountRepo, breaker, metrics, auditLogger, logger)

	tokens := services.NewTokenService(&cfg.JWT)
	if cfg.IsDevelopment() {
		logDevelopmentToken(tokens, logger)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	go limiter.RunCleanup(ctx, time.Minute)

	e := server.NewRouter(cfg, server.Dependencies{
		Ledger:          ledger,
		Reconciliations: services.NewReconciliationService(store, accountRepo, reconciliationRepo, metrics, logger),
		Reports:         reports,
		Budgets:         services.NewBudgetService(budgetRepo, transactionRepo, metrics, logger),
		Alerts:          services.NewAlertService(alertRepo, logger),
		AlertConfigs:    services.NewAlertConfigurationService(alertConfigRepo, userRepo, logger),
		Tokens:          tokens,
		Health:          db,
		RateLimiter:     limiter,
		MetricsSource:   prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// logDevelopmentToken prints a bearer token for the seeded development user
// when the keys were generated locally
func logDevelopmentToken(tokens services.TokenServiceInterface, logger *slog.Logger) {
	userID := uuid.MustParse(devUserID)
	token, expiresAt, err := tokens.IssueAccessToken(userID, 24*time.Hour)
	if err != nil {
		logger.Info("Development token not issued", "reason", err)
		return
	}
	logger.Info("Development bearer token", "user_id", userID, "expires_at", expiresAt, "token", token)
}
