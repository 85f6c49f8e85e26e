package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for shopper session handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// StartSession opens a session and loads its catalog. The session ID is also
// returned in the X-Session-Id header.
func (h *SessionHandler) StartSession(c echo.Context) error {
	info, err := h.sessionUC.Start(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(deliverycontext.HeaderXSessionID, info.ID.String())

	return response.Success(c, http.StatusCreated, info)
}

// EndSession discards the current session
func (h *SessionHandler) EndSession(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.End(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c, http.StatusNoContent)
}
