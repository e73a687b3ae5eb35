package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type recoveryConfig struct {
	logger *slog.Logger
}

type RecoveryOption func(*recoveryConfig)

// WithRecoveryLogger replaces slog.Default for recovered panics
func WithRecoveryLogger(logger *slog.Logger) RecoveryOption {
	return func(c *recoveryConfig) {
		c.logger = logger
	}
}

// PanicRecovery turns a handler panic into a SYSTEM_005 response carrying the
// request's trace id. Each panic is logged under the request's correlation id
// and counted as http.panic. http.ErrAbortHandler is re-raised for net/http.
func PanicRecovery(metrics services.MetricsRecorderInterface, opts ...RecoveryOption) echo.MiddlewareFunc {
	cfg := recoveryConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = uuid.New().String()
					c.Set(TraceIDContextKey, traceID)
					c.Response().Header().Set(TraceIDHeader, traceID)
				}

				logger := cfg.logger
				if logger == nil {
					logger = slog.Default()
				}

				req := c.Request()
				ctx := services.WithCorrelationID(req.Context(), traceID)
				attrs := []slog.Attr{
					slog.String("trace_id", traceID),
					slog.String("correlation_id", traceID),
					slog.String("method", req.Method),
					slog.String("route", c.Path()),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("stack_trace", string(debug.Stack())),
				}
				if userID, uerr := handlers.GetUserIDFromContext(c); uerr == nil {
					attrs = append(attrs, slog.String("user_id", userID.String()))
				}
				logger.LogAttrs(ctx, slog.LevelError, "panic recovered", attrs...)

				metrics.IncrementCounter("http.panic", map[string]string{
					"method": req.Method,
					"route":  c.Path(),
				})

				if c.Response().Committed {
					return
				}

				response := errors.NewErrorResponse(errors.SystemUnexpectedError, traceID)
				if writeErr := c.JSON(http.StatusInternalServerError, response); writeErr != nil {
					logger.ErrorContext(ctx, "failed to send panic response",
						slog.String("trace_id", traceID),
						slog.String("error", writeErr.Error()),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
