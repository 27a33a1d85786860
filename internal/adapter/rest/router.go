package rest

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	defaultMutationRPS   = 5
	defaultMutationBurst = 10
	limiterTTL           = 3 * time.Minute
)

// RouterConfig holds what NewRouter needs besides the handler
type RouterConfig struct {
	APIToken string
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
	// MutationRPS and MutationBurst rate-limit mutating routes per client IP
	MutationRPS   float64
	MutationBurst int
}

// NewRouter builds the echo instance serving the dashboard API
// Reads are open; mutations require the operator token.
func NewRouter(h *Handler, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(RequestID())
	e.Use(Logger(cfg.Logger))
	e.Use(Recovery(cfg.Logger))

	e.GET("/health", h.HealthCheck)
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := e.Group("/api")
	api.GET("/overview", h.GetOverview)
	api.GET("/accounts", h.GetAccounts)
	api.GET("/accounts/:id", h.GetAccountView)
	api.GET("/transactions", h.GetTransactions)
	api.GET("/profile", h.GetProfile)
	api.GET("/profile/:field", h.GetProfileField)

	rps, burst := cfg.MutationRPS, cfg.MutationBurst
	if rps <= 0 {
		rps = defaultMutationRPS
	}
	if burst <= 0 {
		burst = defaultMutationBurst
	}

	guard := []echo.MiddlewareFunc{RateLimiter(rps, burst, limiterTTL), RequireToken(cfg.APIToken), EditMode()}
	api.PUT("/accounts/:id/balance", h.UpdateBalance, guard...)
	api.PATCH("/accounts/:id/balance", h.EditBalance, guard...)
	api.POST("/transactions", h.AddTransaction, guard...)
	api.POST("/transactions/inject", h.InjectTransactions, guard...)
	api.PUT("/transactions/:id", h.UpsertTransaction, guard...)
	api.PATCH("/transactions/:id", h.EditTransactionField, guard...)
	api.PUT("/profile/:field", h.UpdateProfileField, guard...)
	api.PATCH("/profile/:field", h.EditProfileField, guard...)

	return e
}
