// Package auth supplies the credentials used when calling the catalog backend.
package auth

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenSource reads the ambient bearer token. The token is never written back.
type tokenSource struct {
	static string
	file   string
	logger *slog.Logger
	now    func() time.Time
	parser *jwt.Parser
}

// NewTokenSource uses catalog.token when set, otherwise catalog.tokenFile.
func NewTokenSource(cfg *config.Config, logger *slog.Logger) service.TokenSource {
	return newTokenSource(cfg.Catalog.Token, cfg.Catalog.TokenFile, logger, time.Now)
}

func newTokenSource(static, file string, logger *slog.Logger, now func() time.Time) *tokenSource {
	return &tokenSource{
		static: strings.TrimSpace(static),
		file:   strings.TrimSpace(file),
		logger: logger,
		now:    now,
		parser: jwt.NewParser(),
	}
}

// Token returns the configured token. A missing token file means no token.
// A JWT whose exp claim has passed is withheld so the backend sees an
// anonymous request instead of a stale credential.
func (s *tokenSource) Token(_ context.Context) (string, error) {
	token := s.static
	if token == "" && s.file != "" {
		data, err := os.ReadFile(s.file)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil
			}

			return "", errors.Wrapf(err, "read token file %s", s.file)
		}
		token = strings.TrimSpace(string(data))
	}

	if token == "" {
		return "", nil
	}

	if s.isExpired(token) {
		s.logger.Warn("Catalog token expired, sending request without credentials")

		return "", nil
	}

	return token, nil
}

// isExpired inspects the exp claim without verifying the signature, which
// only the backend can do. Opaque tokens are never considered expired.
func (s *tokenSource) isExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.After(s.now())
}
