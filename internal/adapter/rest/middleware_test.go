package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/bankdash-backend/internal/logger"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestID_KeepsIncomingTraceID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetTraceID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-123")
	rec := serve(e, req)

	assert.Equal(t, "trace-123", rec.Header().Get(TraceIDHeader))
	assert.Equal(t, "trace-123", rec.Body.String())
}

func TestRequireToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Raw token", header: "secret", wantStatus: http.StatusOK},
		{name: "Bearer token", header: "Bearer secret", wantStatus: http.StatusOK},
		{name: "Missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Wrong", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireToken("secret"))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestEditMode(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		if dashboard.EditModeFromContext(c.Request().Context()) {
			return c.String(http.StatusOK, "on")
		}
		return c.String(http.StatusOK, "off")
	}, EditMode())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "off", serve(e, req).Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(EditModeHeader, "on")
	assert.Equal(t, "on", serve(e, req).Body.String())
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimiter(0.001, 2, time.Minute))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		codes = append(codes, serve(e, req).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	e := echo.New()
	e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimiter(0.001, 1, 10*time.Millisecond))

	from := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		return serve(e, req).Code
	}

	require.Equal(t, http.StatusOK, from("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, from("10.0.0.1"))

	time.Sleep(30 * time.Millisecond)
	// another client's request sweeps the idle bucket away
	require.Equal(t, http.StatusOK, from("10.0.0.2"))

	assert.Equal(t, http.StatusOK, from("10.0.0.1"))
}

func TestRecovery(t *testing.T) {
	e := echo.New()
	e.Use(Recovery(logger.Nop()))
	e.GET("/", func(c echo.Context) error { panic("boom") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}
