package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"fintrack/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func TestHealthCheck_Healthy(t *testing.T) {
	db := database.SetupTestDB(t)
	handler := NewHealthCheckHandler(db.DB, map[string]Pinger{"redis": fakePinger{}})
	handler.clock = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

	e := newTestEcho()
	c, rec := newAuthedContext(e, http.MethodGet, "/health", nil, uuid.Nil)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string            `json:"status"`
		Time   string            `json:"time"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "2024-03-15T12:00:00Z", body.Time)
	assert.Equal(t, map[string]string{"database": "up", "redis": "up"}, body.Checks)
}

func TestHealthCheck_DependencyDown(t *testing.T) {
	db := database.SetupTestDB(t)
	handler := NewHealthCheckHandler(db.DB, map[string]Pinger{"redis": fakePinger{err: errors.New("dial tcp: refused")}})

	e := newTestEcho()
	c, rec := newAuthedContext(e, http.MethodGet, "/health", nil, uuid.Nil)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp := decodeError(rec)
	assert.Equal(t, "SYSTEM_003", resp.Error.Code)
	assert.Equal(t, []string{"redis connection failed"}, resp.Error.Details)
	assert.NotContains(t, rec.Body.String(), "refused")
}

func TestHealthCheck_DatabaseClosed(t *testing.T) {
	db := database.SetupTestDB(t)
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	handler := NewHealthCheckHandler(db.DB, nil)
	e := newTestEcho()
	c, rec := newAuthedContext(e, http.MethodGet, "/health", nil, uuid.Nil)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, []string{"Database connection failed"}, decodeError(rec).Error.Details)
}
