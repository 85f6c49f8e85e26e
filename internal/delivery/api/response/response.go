// Package response writes the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Error codes for failures raised before a request reaches a usecase
const (
	CodeInvalidBody = "INVALID_INPUT"
	CodeHTTPError   = "HTTP_ERROR"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VARIANT_REQUIRED"
	Message string `json:"message"`           // Shopper-facing message in Portuguese
	Details any    `json:"details,omitempty"` // Field errors or context, never for 5xx
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	info := &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
	if id, ok := deliverycontext.GetSessionIDFromContext(c.Request().Context()); ok {
		info.SessionID = id.String()
	}

	return info
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// NoContent returns an empty response with the given status
func NoContent(c echo.Context, statusCode int) error {
	return c.NoContent(statusCode)
}

// Error returns an error response. Details are dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// InvalidBody answers a request body that could not be decoded
func InvalidBody(c echo.Context) error {
	return Error(c, http.StatusBadRequest, CodeInvalidBody, "Corpo da requisição inválido", nil)
}

// ValidationFailed answers a decoded body that failed validation, keyed by JSON field
func ValidationFailed(c echo.Context, fields map[string]string) error {
	appErr := domainerrors.ErrValidationFailed

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), fields)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
