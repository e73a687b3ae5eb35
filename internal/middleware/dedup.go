package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"fintrack/internal/errors"
	"fintrack/internal/handlers"
	"fintrack/internal/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var duplicateRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_duplicate_requests_total",
		Help: "Total number of mutating requests rejected as replays",
	},
	[]string{"method"},
)

// RejectDuplicates answers 409 when the same user sends the same mutating
// request again inside the deduplicator's TTL. Safe methods pass through, and
// a store failure lets the request through.
func RejectDuplicates(dedup *ratelimit.Deduplicator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !isMutating(req.Method) {
				return next(c)
			}

			bodyHash, err := requestBodyHash(c)
			if err != nil {
				return handlers.SendError(c, errors.ValidationGeneral, errors.WithDetails("Unable to read request body"))
			}

			userID, err := handlers.GetUserIDFromContext(c)
			user := ""
			if err == nil {
				user = userID.String()
			}

			signature := ratelimit.Signature(
				[]byte(user),
				[]byte(req.Method),
				[]byte(req.URL.Path),
				[]byte(req.URL.RawQuery),
				bodyHash,
			)

			fresh, err := dedup.Claim(req.Context(), signature)
			if err != nil {
				slog.Warn("Duplicate check unavailable, allowing request",
					"trace_id", GetTraceID(c),
					"path", req.URL.Path,
					"error", err.Error(),
				)
				return next(c)
			}
			if !fresh {
				duplicateRequestsTotal.WithLabelValues(req.Method).Inc()
				return handlers.SendError(c, errors.SystemDuplicateRequest)
			}

			return next(c)
		}
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// requestBodyHash reads and restores the body
func requestBodyHash(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))

	return []byte(ratelimit.Signature(body)), nil
}
