package auth

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "shop",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return signed
}

func TestTokenSource_Static(t *testing.T) {
	src := newTokenSource(" opaque-token ", "", discardLogger(), time.Now)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)
}

func TestTokenSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("file-token\n"), 0o600))

	src := newTokenSource("", path, discardLogger(), time.Now)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "file-token", token)
}

func TestTokenSource_MissingFileMeansNoToken(t *testing.T) {
	src := newTokenSource("", filepath.Join(t.TempDir(), "absent"), discardLogger(), time.Now)

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenSource_UnreadableFile(t *testing.T) {
	src := newTokenSource("", t.TempDir(), discardLogger(), time.Now)

	_, err := src.Token(context.Background())
	assert.Error(t, err)
}

func TestTokenSource_JWTExpiry(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	valid := signedToken(t, now.Add(time.Hour))
	token, err := newTokenSource(valid, "", discardLogger(), clock).Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, valid, token)

	expired := signedToken(t, now.Add(-time.Minute))
	token, err = newTokenSource(expired, "", discardLogger(), clock).Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}
