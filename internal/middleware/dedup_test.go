package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/handlers"
	"fintrack/internal/ratelimit"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, ratelimit.ErrStoreUnavailable
}
func (failingStore) Get(context.Context, string) (int64, error) {
	return 0, ratelimit.ErrStoreUnavailable
}
func (failingStore) Decr(context.Context, string) (int64, error) {
	return 0, ratelimit.ErrStoreUnavailable
}
func (failingStore) Delete(context.Context, string) error { return ratelimit.ErrStoreUnavailable }
func (failingStore) SetNX(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}

func newDedupHandler(t *testing.T, store ratelimit.Store, calls *int) echo.HandlerFunc {
	t.Helper()

	dedup := ratelimit.NewDeduplicator(store, time.Minute)
	return RejectDuplicates(dedup)(func(c echo.Context) error {
		*calls++
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		return c.String(http.StatusCreated, string(body))
	})
}

func newRedisBackedStore(t *testing.T) (ratelimit.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return ratelimit.NewRedisStore(client), mr
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, path, body string, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(handlers.UserIDContextKey, userID)

	require.NoError(t, handler(c))
	return rec
}

func TestRejectDuplicates_ReplayInsideTTL(t *testing.T) {
	store, _ := newRedisBackedStore(t)
	calls := 0
	handler := newDedupHandler(t, store, &calls)
	userID := uuid.New()
	body := `{"amount":"12.50","type":"EXPENSE"}`

	first := doRequest(t, handler, http.MethodPost, "/api/v1/transactions", body, userID)
	assert.Equal(t, http.StatusCreated, first.Code)
	// body is restored for the handler
	assert.Equal(t, body, first.Body.String())

	second := doRequest(t, handler, http.MethodPost, "/api/v1/transactions", body, userID)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "SYSTEM_007")
	assert.Equal(t, 1, calls)
}

func TestRejectDuplicates_AllowedAfterTTL(t *testing.T) {
	store, mr := newRedisBackedStore(t)
	calls := 0
	handler := newDedupHandler(t, store, &calls)
	userID := uuid.New()

	doRequest(t, handler, http.MethodPost, "/api/v1/goals", `{"name":"Trip"}`, userID)
	mr.FastForward(2 * time.Minute)
	rec := doRequest(t, handler, http.MethodPost, "/api/v1/goals", `{"name":"Trip"}`, userID)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, calls)
}

func TestRejectDuplicates_DistinctSignatures(t *testing.T) {
	store, _ := newRedisBackedStore(t)
	calls := 0
	handler := newDedupHandler(t, store, &calls)
	userID := uuid.New()

	doRequest(t, handler, http.MethodPost, "/api/v1/goals", `{"name":"Trip"}`, userID)
	doRequest(t, handler, http.MethodPost, "/api/v1/goals", `{"name":"Car"}`, userID)
	doRequest(t, handler, http.MethodPut, "/api/v1/goals", `{"name":"Trip"}`, userID)
	doRequest(t, handler, http.MethodPost, "/api/v1/goals", `{"name":"Trip"}`, uuid.New())

	assert.Equal(t, 4, calls)
}

func TestRejectDuplicates_SafeMethodsPassThrough(t *testing.T) {
	store, _ := newRedisBackedStore(t)
	calls := 0
	handler := newDedupHandler(t, store, &calls)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		rec := doRequest(t, handler, http.MethodGet, "/api/v1/alerts", "", userID)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestRejectDuplicates_StoreFailureAllowsRequest(t *testing.T) {
	calls := 0
	handler := newDedupHandler(t, failingStore{}, &calls)
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/transactions", `{}`, userID)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
	assert.Equal(t, 2, calls)
}
