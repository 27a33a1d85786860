package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/simaogato/bankdash-backend/internal/logger"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// EditModeHeader carries the presentation layer's edit-mode toggle
	EditModeHeader = "X-Edit-Mode"
)

// RequestID generates a unique trace ID for each request
// and sets it in both the response header and the echo context
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID extracts the trace ID from the echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// Logger attaches a per-request logger to the request context and logs each request
func Logger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			log := base.With().Str("trace_id", GetTraceID(c)).Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), log)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Str("remote_addr", c.RealIP()).
				Msg("HTTP request")

			return nil
		}
	}
}

// RequireToken rejects requests whose Authorization header is not the operator token
// A "Bearer " prefix is accepted.
func RequireToken(validToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return SendError(c, http.StatusUnauthorized, "missing authorization header")
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token != validToken {
				return SendError(c, http.StatusUnauthorized, "invalid token")
			}

			return next(c)
		}
	}
}

// EditMode copies the X-Edit-Mode header into the request context
func EditMode() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			on := dashboard.ParseEditMode(req.Header.Get(EditModeHeader))
			c.SetRequest(req.WithContext(dashboard.WithEditMode(req.Context(), on)))
			return next(c)
		}
	}
}

// Recovery turns a handler panic into a 500 response
func Recovery(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Str("trace_id", GetTraceID(c)).
						Str("method", c.Request().Method).
						Str("path", c.Request().URL.Path).
						Msg("Panic recovered")

					err = SendError(c, http.StatusInternalServerError, "internal server error")
				}
			}()

			return next(c)
		}
	}
}

// RateLimiter limits requests per client IP with a token bucket
// Clients idle for longer than ttl are evicted from the limiter store.
func RateLimiter(rps float64, burst int, ttl time.Duration) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: ttl,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return SendError(c, http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return SendError(c, http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}
