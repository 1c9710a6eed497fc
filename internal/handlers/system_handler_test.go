package handlers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom_backend/internal/logger"
	"newsroom_backend/internal/middleware"
	"newsroom_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Коннекторы-заглушки: база либо всегда доступна, либо всегда
// отказывает, без реального соединения.
type nopConn struct{}

func (nopConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not implemented") }
func (nopConn) Close() error                        { return nil }
func (nopConn) Begin() (driver.Tx, error)           { return nil, errors.New("not implemented") }

type stubConnector struct {
	connectErr error
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) {
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	return nopConn{}, nil
}

func (stubConnector) Driver() driver.Driver { return nil }

func newStubGormDB(t *testing.T, connectErr error) *gorm.DB {
	t.Helper()

	sqlDB := sql.OpenDB(stubConnector{connectErr: connectErr})
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return gormDB
}

func newSystemRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("test")

	engine := gin.New()
	engine.Use(middleware.DBMiddleware(db))

	base := NewBaseHandler(validator.New(), nil)
	handler := NewSystemHandler(base, engine.Routes)
	handler.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func getHealth(t *testing.T, engine *gin.Engine) (int, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil)
	engine.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthReportsOkWhenDatabaseReachable(t *testing.T) {
	engine := newSystemRouter(t, newStubGormDB(t, nil))

	code, body := getHealth(t, engine)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])
}

func TestHealthReportsDegradedWhenDatabaseDown(t *testing.T) {
	engine := newSystemRouter(t, newStubGormDB(t, errors.New("connection refused")))

	code, body := getHealth(t, engine)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body["status"])
	assert.Contains(t, body["database"], "connection refused")
}

func TestRoutesListsRegisteredEndpoints(t *testing.T) {
	engine := newSystemRouter(t, newStubGormDB(t, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/routes", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Routes []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	paths := make(map[string]bool, len(body.Routes))
	for _, r := range body.Routes {
		paths[r.Method+" "+r.Path] = true
	}
	assert.True(t, paths["GET /api/v1/system/health"])
	assert.True(t, paths["GET /api/v1/system/routes"])
}
