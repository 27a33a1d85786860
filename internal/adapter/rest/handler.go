package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
	"github.com/simaogato/bankdash-backend/internal/usecase/factory"
)

// Handler serves the dashboard JSON API
type Handler struct {
	dashboardService *dashboard.DashboardService
}

// NewHandler creates a new dashboard handler
func NewHandler(dashboardService *dashboard.DashboardService) *Handler {
	return &Handler{dashboardService: dashboardService}
}

// HealthCheck reports that the process is serving
// GET /health
func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GetAccounts returns all accounts in insertion order
// GET /api/accounts
func (h *Handler) GetAccounts(c echo.Context) error {
	accounts := h.dashboardService.GetAccounts(c.Request().Context())
	return SendData(c, http.StatusOK, toAccountResponses(accounts))
}

// GetAccountView returns an account with its classified transactions
// GET /api/accounts/:id
func (h *Handler) GetAccountView(c echo.Context) error {
	view, ok := h.dashboardService.GetAccountView(c.Request().Context(), c.Param("id"))
	if !ok {
		return SendError(c, http.StatusNotFound, "account not found")
	}
	return SendData(c, http.StatusOK, toAccountViewResponse(view))
}

// GetTransactions returns the feed, most recent first
// GET /api/transactions
func (h *Handler) GetTransactions(c echo.Context) error {
	txs := h.dashboardService.GetTransactions(c.Request().Context())
	return SendData(c, http.StatusOK, toTransactionResponses(txs))
}

// GetProfile returns the user profile
// GET /api/profile
func (h *Handler) GetProfile(c echo.Context) error {
	profile := h.dashboardService.GetProfile(c.Request().Context())
	return SendData(c, http.StatusOK, toProfileResponse(profile))
}

// GetProfileField returns the current value of one profile field
// GET /api/profile/:field
func (h *Handler) GetProfileField(c echo.Context) error {
	field := c.Param("field")
	value, ok := h.dashboardService.GetProfileField(c.Request().Context(), domain.ProfileField(field))
	if !ok {
		return SendError(c, http.StatusNotFound, "unknown profile field", field)
	}
	return SendData(c, http.StatusOK, ProfileFieldResponse{Field: field, Value: value})
}

// GetOverview returns the home page model
// GET /api/overview
func (h *Handler) GetOverview(c echo.Context) error {
	overview := h.dashboardService.GetOverview(c.Request().Context())
	return SendData(c, http.StatusOK, toOverviewResponse(overview))
}

// UpdateBalance replaces an account balance. Unknown accounts are a no-op.
// PUT /api/accounts/:id/balance
func (h *Handler) UpdateBalance(c echo.Context) error {
	var req UpdateBalanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, http.StatusBadRequest, "validation failed", err.Error())
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		return SendError(c, http.StatusBadRequest, "invalid balance format")
	}

	h.dashboardService.UpdateBalance(c.Request().Context(), c.Param("id"), balance)
	return c.NoContent(http.StatusNoContent)
}

// EditBalance commits inline-edited balance text
// PATCH /api/accounts/:id/balance
func (h *Handler) EditBalance(c echo.Context) error {
	var req EditTextRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}

	h.dashboardService.EditBalance(c.Request().Context(), c.Param("id"), req.Text)
	return c.NoContent(http.StatusNoContent)
}

// UpsertTransaction replaces a whole transaction record. Unknown IDs are a no-op.
// PUT /api/transactions/:id
func (h *Handler) UpsertTransaction(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, http.StatusBadRequest, "validation failed", err.Error())
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, http.StatusBadRequest, "invalid amount format")
	}

	h.dashboardService.UpsertTransaction(c.Request().Context(), domain.Transaction{
		ID:          c.Param("id"),
		Recipient:   req.Recipient,
		Description: req.Description,
		Amount:      amount,
		Currency:    req.Currency,
		Date:        req.Date,
		Status:      domain.TransactionStatus(req.Status),
		Direction:   domain.Direction(req.Direction),
		IconType:    domain.IconType(req.IconType),
	})
	return c.NoContent(http.StatusNoContent)
}

// EditTransactionField commits inline-edited text for one transaction field
// PATCH /api/transactions/:id
func (h *Handler) EditTransactionField(c echo.Context) error {
	var req EditTransactionFieldRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, http.StatusBadRequest, "validation failed", err.Error())
	}

	h.dashboardService.EditTransactionField(c.Request().Context(), c.Param("id"), req.Field, req.Text)
	return c.NoContent(http.StatusNoContent)
}

// AddTransaction builds a transaction from the operator form and prepends it
// Input that is not valid to submit is ignored and reported with added=false.
// POST /api/transactions
func (h *Handler) AddTransaction(c echo.Context) error {
	var req AddTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, http.StatusBadRequest, "validation failed", err.Error())
	}

	amount := decimal.Zero
	if req.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			return SendError(c, http.StatusBadRequest, "invalid amount format")
		}
	}

	input := factory.NewTransactionInput{
		Recipient: req.Recipient,
		Amount:    amount,
		Currency:  req.Currency,
		Date:      req.Date,
		Status:    domain.TransactionStatus(req.Status),
		Direction: domain.Direction(req.Direction),
	}

	tx, added := h.dashboardService.SubmitTransaction(c.Request().Context(), input, req.ActiveAccountID)
	if !added {
		return SendData(c, http.StatusOK, AddTransactionResponse{Added: false})
	}

	resp := toTransactionResponse(tx)
	return SendData(c, http.StatusCreated, AddTransactionResponse{Added: true, Transaction: &resp})
}

// InjectTransactions adds synthetic transactions to the feed
// POST /api/transactions/inject
func (h *Handler) InjectTransactions(c echo.Context) error {
	req := InjectTransactionsRequest{Count: 1}
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, http.StatusBadRequest, "validation failed", err.Error())
	}

	txs := h.dashboardService.InjectTransactions(c.Request().Context(), req.Count, req.ActiveAccountID)
	return SendData(c, http.StatusCreated, toTransactionResponses(txs))
}

// UpdateProfileField replaces one profile field. Unknown fields are a no-op.
// PUT /api/profile/:field
func (h *Handler) UpdateProfileField(c echo.Context) error {
	var req ProfileFieldRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}

	h.dashboardService.UpdateProfileField(c.Request().Context(), domain.ProfileField(c.Param("field")), req.Value)
	return c.NoContent(http.StatusNoContent)
}

// EditProfileField commits inline-edited profile text
// PATCH /api/profile/:field
func (h *Handler) EditProfileField(c echo.Context) error {
	var req EditTextRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, http.StatusBadRequest, "invalid request body")
	}

	h.dashboardService.EditProfileField(c.Request().Context(), domain.ProfileField(c.Param("field")), req.Text)
	return c.NoContent(http.StatusNoContent)
}
