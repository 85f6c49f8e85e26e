// Package catalog fetches the product list from the storefront backend.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const maxCatalogBodySize = 10 << 20

// envelopeKeys are the object keys that may wrap the product array.
var envelopeKeys = []string{"produtos", "data", "products"}

type httpProvider struct {
	endpoint   string
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger
	tracer     trace.Tracer
}

// ProviderParams holds dependencies for the HTTP catalog provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config         *config.Config
	Tokens         service.TokenSource
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// NewHTTPProvider creates a provider reading GET {baseURL}{path}.
func NewHTTPProvider(params ProviderParams) (service.CatalogProvider, error) {
	cfg := params.Config.Catalog

	endpoint, err := url.JoinPath(cfg.BaseURL, cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "build catalog endpoint from %q", cfg.BaseURL)
	}

	return &httpProvider{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     params.Tokens,
		logger:     params.Logger,
		tracer:     params.TracerProvider.Tracer("storefront/catalog"),
	}, nil
}

// FetchProducts performs one GET and normalizes every record. Invalid records
// are skipped with a warning. Any transport or decoding failure wraps
// service.ErrFetchFailure.
func (p *httpProvider) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	ctx, span := p.tracer.Start(ctx, "catalog.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", p.endpoint)),
	)
	defer span.End()

	products, err := p.fetch(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog fetch failed")

		return nil, errors.Wrap(errors.Join(service.ErrFetchFailure, err), "fetch catalog")
	}

	span.SetAttributes(attribute.Int("catalog.products", len(products)))

	return products, nil
}

func (p *httpProvider) fetch(ctx context.Context, span trace.Span) ([]entity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	token, err := p.tokens.Token(ctx)
	if err != nil {
		p.logger.Warn("Catalog token unavailable, fetching without credentials", slog.Any("error", err))
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("catalog returned non-success status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "read catalog body")
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(records))
	for i, record := range records {
		product, warnings, err := record.toProduct()
		if err != nil {
			p.logger.Warn("Skipping invalid catalog record",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}
		for _, warning := range warnings {
			p.logger.Warn("Catalog record normalized with defaults",
				slog.String("product_id", product.ID),
				slog.String("warning", warning),
			)
		}
		products = append(products, product)
	}

	p.logger.Debug("Catalog fetched",
		slog.Int("records", len(records)),
		slog.Int("products", len(products)),
		slog.Duration("latency", time.Since(start)),
	)

	return products, nil
}

// decodeRecords accepts a bare array or an object wrapping it under a known key.
func decodeRecords(body []byte) ([]rawProduct, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty catalog body")
	}

	var records []rawProduct
	if body[0] == '[' {
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, errors.Wrap(err, "decode catalog array")
		}

		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode catalog envelope")
	}

	for key, value := range envelope {
		for _, want := range envelopeKeys {
			if !strings.EqualFold(key, want) {
				continue
			}
			if err := json.Unmarshal(value, &records); err != nil {
				return nil, errors.Wrapf(err, "decode catalog field %q", key)
			}

			return records, nil
		}
	}

	return nil, errors.New("catalog body has no product list")
}
