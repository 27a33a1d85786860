package rest

import (
	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps every successful payload
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the body of every 4xx/5xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

// SendData writes a successful response carrying data
func SendData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Data: data})
}

// SendError writes a standardized error response with the request's trace ID
func SendError(c echo.Context, status int, message string, details ...string) error {
	resp := ErrorResponse{
		Error:   message,
		TraceID: GetTraceID(c),
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	return c.JSON(status, resp)
}
