package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushEvent is the part of a pushed payload the handler routes on
type pushEvent struct {
	EventType string `json:"event_type"`
	RequestID string `json:"request_id"`
}

// tokenValidator checks a Google-signed ID token for the given audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives Pub/Sub push messages. A catalog.updated event drops
// the cached catalog so the next session sees fresh stock.
type PushHandler struct {
	verifyToken bool
	audience    string
	validate    tokenValidator
	catalogUC   usecase.CatalogUsecase
	logger      *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate:  idtoken.Validate,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}

	if pubsub := params.Config.PubSub; pubsub != nil && pubsub.Push != nil {
		h.verifyToken = pubsub.Push.VerifyToken
		h.audience = pubsub.Push.Audience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Malformed messages are
// answered with 400 and unknown event types are acknowledged and ignored.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event pushEvent
	if len(data) > 0 {
		if err := json.Unmarshal(data, &event); err != nil {
			h.logger.Error("Failed to parse push event", slog.Any("error", err))

			return c.NoContent(http.StatusBadRequest)
		}
	}

	eventType := pushMsg.Message.Attributes[constants.EventTypeAttribute]
	if eventType == "" {
		eventType = event.EventType
	}

	reqLogger := h.logger.With(
		slog.String("request_id", h.extractRequestID(ctx, &pushMsg, &event)),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", eventType),
	)

	switch eventType {
	case constants.EventTypeCatalogUpdated:
		h.catalogUC.Invalidate()
		reqLogger.Info("Catalog cache invalidated")
	default:
		reqLogger.Debug("Ignoring push event")
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *pushEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
