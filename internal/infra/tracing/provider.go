// Package tracing configures the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

// Params holds dependencies for the tracer provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns an OTLP/HTTP exporting provider when tracing is enabled and a
// no-op provider otherwise. The SDK provider is flushed on shutdown.
func New(params Params) (trace.TracerProvider, error) {
	cfg := params.Config.Tracing
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Tracing disabled, using no-op tracer provider")

		return noop.NewTracerProvider(), nil
	}

	opts := []otlptracehttp.Option{}
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create otlp trace exporter")
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
		sdktrace.WithResource(sdkresource.NewSchemaless(
			attribute.String("service.name", params.Config.Env.ServiceName),
			attribute.String("deployment.environment", params.Config.Env.Env),
		)),
	)
	otel.SetTracerProvider(provider)

	params.Logger.Info("Tracing enabled",
		slog.String("endpoint", cfg.Endpoint),
		slog.Float64("sample_ratio", ratio),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(provider.Shutdown(shutdownCtx))
		},
	})

	return provider, nil
}
