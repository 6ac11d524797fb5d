package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/acm/internal/config"
	"github.com/deppfellow/acm/internal/errs"
	"github.com/deppfellow/acm/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler
	e.GET("/x", func(c echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGlobalErrorHandlerEmployeeNotFound(t *testing.T) {
	rec, body := serveError(t, errs.NewEmployeeNotFoundError(999))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", body.Code)
	assert.Equal(t, "Employee not found with ID: 999", body.Message)
	assert.True(t, body.Override)
}

func TestGlobalErrorHandlerWrappedModuleNotFound(t *testing.T) {
	rec, body := serveError(t, fmt.Errorf("resolving: %w", errs.NewModuleNotFoundError(3)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MODULE_NOT_FOUND", body.Code)
	assert.Equal(t, "Module not found with ID: 3", body.Message)
}

func TestGlobalErrorHandlerHTTPError(t *testing.T) {
	rec, body := serveError(t, errs.NewBadRequestError("Validation failed", true, nil,
		[]errs.FieldError{{Field: "name", Error: "is required"}}, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, body.Errors)
}

func TestGlobalErrorHandlerPgError(t *testing.T) {
	rec, _ := serveError(t, &pgconn.PgError{Code: "23503", TableName: "employee_modules", ConstraintName: "employee_modules_module_id_fkey"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGlobalErrorHandlerUnknownError(t *testing.T) {
	rec, body := serveError(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestRequestIDIsGeneratedAndEchoed(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, GetRequestID(c)) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Body.String())
}

func TestEnhanceContextStoresLoggerOnRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := newTestServer()
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/x", func(c echo.Context) error {
		ctxLogger := zerolog.Ctx(c.Request().Context())
		require.NotEqual(t, zerolog.Disabled, ctxLogger.GetLevel())
		ctxLogger.Info().Msg("from service")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "from service", line["message"])
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	e := echo.New()
	e.Use(NewRateLimitMiddleware(newTestServer()).Limit())
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimitDeniesBurst(t *testing.T) {
	s := newTestServer()
	s.Config.Server.RateLimit = 1

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	var codes []int
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusNoContent, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}
