package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the number of open sessions
type HealthHandler struct {
	sessionRepo repository.SessionRepository
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(sessionRepo repository.SessionRepository) *HealthHandler {
	return &HealthHandler{sessionRepo: sessionRepo}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessionRepo.Count(c.Request().Context()),
	})
}
