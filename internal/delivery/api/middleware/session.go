package middleware

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware requires a valid X-Session-Id header on shopper routes
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		logger: logger,
	}
}

// RequireSession parses the session header and stores the ID for handlers.
// The request logger already carries session_id from the request ID middleware.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(deliverycontext.HeaderXSessionID)
		if raw == "" {
			return response.HandleAppError(c, domainerrors.ErrSessionRequired)
		}

		sessionID, err := uuid.Parse(raw)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected malformed session header", slog.String("header", raw))

			return response.HandleAppError(c, domainerrors.ErrSessionRequired)
		}

		deliverycontext.SetSessionID(c, sessionID)

		return next(c)
	}
}
