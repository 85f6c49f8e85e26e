package tracing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.TracingConfig) Params {
	t.Helper()

	c := &config.Config{Tracing: cfg}
	c.Env.ServiceName = "storefront-test"

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: c,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_Disabled(t *testing.T) {
	for _, cfg := range []*config.TracingConfig{nil, {Enabled: false}} {
		provider, err := New(newParams(t, cfg))
		require.NoError(t, err)
		assert.IsType(t, noop.TracerProvider{}, provider)
	}
}

func TestNew_Enabled(t *testing.T) {
	params := newParams(t, &config.TracingConfig{Enabled: true, Endpoint: "localhost:4318", Insecure: true, SampleRatio: 0.5})

	provider, err := New(params)
	require.NoError(t, err)
	assert.IsType(t, &sdktrace.TracerProvider{}, provider)

	sdkProvider, ok := provider.(*sdktrace.TracerProvider)
	require.True(t, ok)
	assert.NoError(t, sdkProvider.Shutdown(context.Background()))
}
