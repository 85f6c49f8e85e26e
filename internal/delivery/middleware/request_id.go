// Package middleware holds the echo middleware shared by every delivery.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request IDs echoed into logs and headers.
const maxRequestIDLength = 64

// RequestIDMiddleware tags each request with an ID and a request-scoped logger.
// When the shopper sends X-Session-Id the logger also carries session_id, so
// every line logged for a cart or checkout call can be joined by session.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id or generates one, then stores the
// ID, the session ID when present and the scoped logger on the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := acceptRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		attrs := []any{slog.String("request_id", requestID)}

		// The session middleware rejects malformed IDs on shopper routes; here
		// they are only left off the logger.
		if sessionID, err := uuid.Parse(req.Header.Get(deliverycontext.HeaderXSessionID)); err == nil {
			ctx = deliverycontext.WithSessionID(ctx, sessionID)
			attrs = append(attrs, slog.String("session_id", sessionID.String()))
		}

		ctx = deliverycontext.WithLogger(ctx, m.logger.With(attrs...))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// acceptRequestID returns the trimmed client ID, or "" when it is too long or
// holds anything other than letters, digits, '-', '_' and '.'.
func acceptRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxRequestIDLength {
		return ""
	}

	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return ""
		}
	}

	return raw
}
