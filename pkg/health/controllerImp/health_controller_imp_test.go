package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/database"
	"agrisense/pkg/logger"
)

type fakeRedis struct{ err error }

func (f fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

type healthBody struct {
	Status struct {
		OK bool `json:"ok"`
	} `json:"status"`
	Checks map[string]sub `json:"checks"`
}

func check(t *testing.T, h *HealthCtrl) (int, healthBody) {
	t.Helper()
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var b healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return rec.Code, b
}

func TestHealth(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Run("database only", func(t *testing.T) {
		code, b := check(t, NewHealthCtrl(db, nil, logger.Discard()))
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, b.Status.OK)
		assert.True(t, b.Checks["redis"].Skipped)
	})

	t.Run("redis up", func(t *testing.T) {
		code, b := check(t, NewHealthCtrl(db, fakeRedis{}, logger.Discard()))
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, b.Checks["redis"].OK)
		assert.False(t, b.Checks["redis"].Skipped)
	})

	t.Run("redis down", func(t *testing.T) {
		code, b := check(t, NewHealthCtrl(db, fakeRedis{err: errors.New("connection refused")}, logger.Discard()))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.False(t, b.Status.OK)
		assert.Contains(t, b.Checks["redis"].Err, "connection refused")
	})

	t.Run("no database", func(t *testing.T) {
		code, b := check(t, NewHealthCtrl(nil, nil, logger.Discard()))
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.False(t, b.Checks["database"].OK)
	})
}
