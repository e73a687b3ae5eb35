// Package server assembles the echo instance: middleware chain, routes and
// the metrics endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/ratelimit"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /api/v1
type Handlers struct {
	Transactions *handlers.TransactionHandler
	Reports      *handlers.ReportHandler
	Alerts       *handlers.AlertHandler
	Budgets      *handlers.BudgetHandler
	Recurring    *handlers.RecurringHandler
	Contacts     *handlers.ContactHandler
	Health       *handlers.HealthCheckHandler
}

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	rateLimiter *middleware.IPRateLimiter
}

// New builds the echo instance. Every /api/v1 route requires a bearer token
// and mutating routes pass through the duplicate-request guard.
func New(cfg *config.Config, tokenService services.TokenServiceInterface, dedup *ratelimit.Deduplicator, metrics services.MetricsRecorderInterface, h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	s := &Server{
		echo:        e,
		config:      cfg,
		rateLimiter: middleware.NewIPRateLimiter(cfg.Server.RateLimitPerSecond),
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(metrics))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit(cfg.Server.MaxUploadBytes)))
	e.Use(s.rateLimiter.Middleware())

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(tokenService), middleware.RejectDuplicates(dedup))
	registerRoutes(api, h)

	return s
}

func registerRoutes(api *echo.Group, h Handlers) {
	api.POST("/transactions", h.Transactions.CreateTransaction)
	api.GET("/transactions", h.Transactions.ListTransactions)
	api.POST("/transactions/import", h.Transactions.ImportTransactions)

	reports := api.Group("/reports")
	reports.GET("", h.Reports.GetReport)
	reports.GET("/summary", h.Reports.GetSummary)
	reports.GET("/categories", h.Reports.GetCategoryBreakdown)
	reports.GET("/top-expenses", h.Reports.GetTopExpenses)
	reports.GET("/insights", h.Reports.GetInsights)
	reports.GET("/monthly", h.Reports.GetMonthly)
	reports.GET("/goals", h.Reports.GetGoals)

	alerts := api.Group("/alerts")
	alerts.POST("/rules", h.Alerts.CreateRule)
	alerts.GET("/rules", h.Alerts.ListRules)
	alerts.PUT("/rules/:id", h.Alerts.UpdateRule)
	alerts.DELETE("/rules/:id", h.Alerts.DeactivateRule)
	alerts.POST("/rules/:id/activate", h.Alerts.ActivateRule)
	alerts.GET("", h.Alerts.ListAlerts)
	alerts.GET("/unread", h.Alerts.ListUnread)
	alerts.GET("/unread/count", h.Alerts.CountUnread)
	alerts.PATCH("/read-all", h.Alerts.MarkAllRead)
	alerts.PATCH("/:id/read", h.Alerts.MarkRead)

	api.PUT("/budgets", h.Budgets.UpsertBudget)
	api.GET("/budgets", h.Budgets.ListBudgets)
	api.DELETE("/budgets/:id", h.Budgets.DeactivateBudget)

	goals := api.Group("/goals")
	goals.POST("", h.Budgets.CreateGoal)
	goals.GET("", h.Budgets.ListGoals)
	goals.GET("/:id", h.Budgets.GetGoal)
	goals.PUT("/:id", h.Budgets.UpdateGoal)
	goals.DELETE("/:id", h.Budgets.DeleteGoal)

	recurring := api.Group("/recurring")
	recurring.POST("", h.Recurring.CreateRecurring)
	recurring.GET("", h.Recurring.ListRecurring)
	recurring.GET("/:id", h.Recurring.GetRecurring)
	recurring.PUT("/:id", h.Recurring.UpdateRecurring)
	recurring.DELETE("/:id", h.Recurring.DeleteRecurring)

	api.PUT("/notifications/contact", h.Contacts.UpdateContact)
	api.GET("/notifications/contact", h.Contacts.GetContact)
}

// Echo exposes the router for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Run serves until ctx ends, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Server.Host + ":" + s.config.Server.Port,
		Handler:      s.echo,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	stop := make(chan struct{})
	defer close(stop)
	go s.rateLimiter.RunCleanup(stop)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr, "environment", s.config.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// bodyLimit renders the upload cap in echo's size notation, leaving room for
// multipart framing
func bodyLimit(maxUploadBytes int64) string {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return strconv.FormatInt((maxUploadBytes+(1<<20))/1024, 10) + "K"
}
