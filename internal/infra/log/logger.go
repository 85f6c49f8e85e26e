// Package logs builds the process logger from the env section of the config.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config

	// Output defaults to stdout.
	Output io.Writer `optional:"true"`
}

// New creates the service logger. Every record carries the service name and
// environment; debug mode adds the source location.
func New(params Params) (*slog.Logger, error) {
	envCfg := params.Config.Env

	level, err := parseLogLevel(envCfg.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: envCfg.Debug}

	var handler slog.Handler
	if envCfg.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler).With(serviceAttrs(params.Config)...), nil
}

func serviceAttrs(cfg *config.Config) []any {
	attrs := make([]any, 0, 2)
	if name := strings.TrimSpace(cfg.Env.ServiceName); name != "" {
		attrs = append(attrs, slog.String("service", name))
	}
	if env := strings.TrimSpace(cfg.Env.Env); env != "" {
		attrs = append(attrs, slog.String("env", env))
	}

	return attrs
}

// parseLogLevel maps env.log.level; an empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %q", level)
	}
}
