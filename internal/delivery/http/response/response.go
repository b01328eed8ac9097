// Package response writes the unified JSON envelope and shapes domain
// entities into client-facing DTOs.
package response

import (
	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes a successful reply in the shared envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes an error reply in the shared envelope. Handlers normally
// return errors and let the error handler shape them; this exists for the
// few places that answer an error inline, such as bind failures.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
