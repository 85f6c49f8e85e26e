package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCatalogPath     = "/produtos"
	defaultCatalogTimeout  = 10 * time.Second
	defaultCatalogCacheTTL = 5 * time.Minute

	defaultOrderHeader      = "*NOVO PEDIDO - Peluma Pijamas*"
	defaultOrderCurrency    = "R$"
	defaultMessagingBaseURL = "https://wa.me"

	defaultSessionTTL         = 2 * time.Hour
	defaultSessionMaxSessions = 10000

	defaultQRCodeSize = 256

	defaultPushPath = "/internal/pubsub/push"

	defaultRateLimitBurst     = 1
	defaultRateLimitExpiresIn = 3 * time.Minute
)

// DefaultTypedCategories are the category tags whose products expose size variants.
var DefaultTypedCategories = []string{"typed"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// CheckoutRateLimit throttles order submission per client IP
		CheckoutRateLimit *RateLimitConfig `json:"checkoutRateLimit" yaml:"checkoutRateLimit"`
	} `json:"http" yaml:"http"`

	// Catalog configuration for the backend product listing
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Variants configuration for size resolution
	Variants *VariantsConfig `json:"variants" yaml:"variants"`

	// Order configuration for transcript and hand-off link
	Order *OrderConfig `json:"order" yaml:"order"`

	// Session configuration for shopper sessions
	Session *SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for hand-off QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Tracing configuration for OpenTelemetry export
	Tracing *TracingConfig `json:"tracing" yaml:"tracing"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines a token bucket per client
type RateLimitConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Rate      float64       `json:"rate" yaml:"rate"`
	Burst     int           `json:"burst" yaml:"burst"`
	ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// CatalogConfig defines how the product list is fetched
type CatalogConfig struct {
	BaseURL  string        `json:"baseURL" yaml:"baseURL"`
	Path     string        `json:"path" yaml:"path"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`

	// Token is sent as a bearer credential when present
	Token string `json:"token" yaml:"token"`

	// TokenFile is read on every fetch when Token is empty
	TokenFile string `json:"tokenFile" yaml:"tokenFile"`
}

// VariantsConfig defines which categories carry size variants
type VariantsConfig struct {
	TypedCategories []string `json:"typedCategories" yaml:"typedCategories"`
}

// OrderConfig defines the order transcript and the messaging hand-off
type OrderConfig struct {
	Header           string `json:"header" yaml:"header"`
	Currency         string `json:"currency" yaml:"currency"`
	MessagingBaseURL string `json:"messagingBaseURL" yaml:"messagingBaseURL"`
	Destination      string `json:"destination" yaml:"destination"`

	// IncludeQRCode attaches a PNG QR code of the hand-off link to the receipt
	IncludeQRCode bool `json:"includeQRCode" yaml:"includeQRCode"`
}

// SessionConfig defines shopper session retention
type SessionConfig struct {
	TTL         time.Duration `json:"ttl" yaml:"ttl"`
	MaxSessions int           `json:"maxSessions" yaml:"maxSessions"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Push configures the endpoint receiving catalog change notifications
	Push *PushConfig `json:"push" yaml:"push"`
}

// PushConfig defines the Pub/Sub push endpoint
type PushConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`

	// VerifyToken validates the Google-signed OIDC token on every push
	VerifyToken bool `json:"verifyToken" yaml:"verifyToken"`

	// Audience overrides the expected token audience, which defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`
}

// TracingConfig defines OTLP trace export
type TracingConfig struct {
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Insecure    bool    `json:"insecure" yaml:"insecure"`
	SampleRatio float64 `json:"sampleRatio" yaml:"sampleRatio"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML, e.g. CATALOG_BASEURL -> catalog.baseURL
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects settings the service cannot run with.
func (c *Config) applyDefaults() error {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if limit := c.HTTP.CheckoutRateLimit; limit != nil {
		// a zero burst makes the bucket deny every request
		if limit.Burst < 1 {
			limit.Burst = defaultRateLimitBurst
		}
		if limit.ExpiresIn <= 0 {
			limit.ExpiresIn = defaultRateLimitExpiresIn
		}
	}

	if c.Catalog == nil {
		c.Catalog = &CatalogConfig{}
	}
	if strings.TrimSpace(c.Catalog.BaseURL) == "" {
		return errors.New("catalog.baseURL is required")
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = defaultCatalogPath
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = defaultCatalogTimeout
	}
	if c.Catalog.CacheTTL < 0 {
		c.Catalog.CacheTTL = 0
	} else if c.Catalog.CacheTTL == 0 {
		c.Catalog.CacheTTL = defaultCatalogCacheTTL
	}

	if c.Variants == nil || len(c.Variants.TypedCategories) == 0 {
		c.Variants = &VariantsConfig{TypedCategories: DefaultTypedCategories}
	}

	if c.Order == nil {
		c.Order = &OrderConfig{}
	}
	if c.Order.Header == "" {
		c.Order.Header = defaultOrderHeader
	}
	if c.Order.Currency == "" {
		c.Order.Currency = defaultOrderCurrency
	}
	if c.Order.MessagingBaseURL == "" {
		c.Order.MessagingBaseURL = defaultMessagingBaseURL
	}
	if strings.TrimSpace(c.Order.Destination) == "" {
		return errors.New("order.destination is required")
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = defaultSessionTTL
	}
	if c.Session.MaxSessions <= 0 {
		c.Session.MaxSessions = defaultSessionMaxSessions
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}

	if c.PubSub != nil && c.PubSub.Push != nil && c.PubSub.Push.Path == "" {
		c.PubSub.Push.Path = defaultPushPath
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
