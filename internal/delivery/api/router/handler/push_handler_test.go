package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, push *config.PushConfig) (*PushHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    &config.Config{PubSub: &config.PubSubConfig{Push: push}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		CatalogUC: catalogUC,
	})

	return h, catalogUC
}

func pushRequest(t *testing.T, attributes map[string]string, data []byte) *http.Request {
	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/internal/pubsub/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_CatalogUpdatedInvalidates(t *testing.T) {
	h, catalogUC := newPushHandler(t, nil)
	catalogUC.EXPECT().Invalidate().Return().Once()

	rec := servePush(h, pushRequest(t, map[string]string{constants.EventTypeAttribute: constants.EventTypeCatalogUpdated}, []byte(`{}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_EventTypeFromPayload(t *testing.T) {
	h, catalogUC := newPushHandler(t, nil)
	catalogUC.EXPECT().Invalidate().Return().Once()

	rec := servePush(h, pushRequest(t, nil, []byte(`{"event_type":"catalog.updated"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_OtherEventsAcknowledged(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	rec := servePush(h, pushRequest(t, map[string]string{constants.EventTypeAttribute: constants.EventTypeOrderSubmitted}, []byte(`{"order_id":"o-1"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedPayload(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	rec := servePush(h, pushRequest(t, nil, []byte(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_TokenVerification(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		err        error
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			err:        errors.New("bad signature"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "evil.example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "google issuer",
			header:     "Bearer ok",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushHandler(t, &config.PushConfig{Enabled: true, VerifyToken: true, Audience: "https://shop.example.com/push"})

			var gotAudience string
			h.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.err
			}

			req := pushRequest(t, nil, []byte(`{}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := servePush(h, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.header != "" {
				assert.Equal(t, "https://shop.example.com/push", gotAudience)
			}
		})
	}
}
