// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness. It carries no dependencies so it
// stays up even when downstream infrastructure is degraded.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}
