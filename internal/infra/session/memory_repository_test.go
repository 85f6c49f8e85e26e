package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	domainsession "storefront/internal/domain/session"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(maxSessions int, ttl time.Duration) repository.SessionRepository {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: ttl, MaxSessions: maxSessions}}

	return NewMemoryRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newSession() *domainsession.Session {
	return domainsession.New(uuid.New(), entity.EmptyCatalog(time.Now()), time.Now())
}

func TestMemoryRepository_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(10, time.Hour)
	sess := newSession()

	require.NoError(t, repo.Save(ctx, sess))
	assert.Equal(t, 1, repo.Count(ctx))

	found, err := repo.FindByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, found)

	require.NoError(t, repo.Delete(ctx, sess.ID))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err = repo.FindByID(ctx, sess.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestMemoryRepository_SaveNil(t *testing.T) {
	assert.Error(t, newTestRepository(1, time.Hour).Save(context.Background(), nil))
}

func TestMemoryRepository_EvictsOldestBeyondCapacity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(2, time.Hour)

	first, second, third := newSession(), newSession(), newSession()
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, third))

	_, err := repo.FindByID(ctx, first.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
	assert.Equal(t, 2, repo.Count(ctx))
}

func TestMemoryRepository_Expires(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(10, 20*time.Millisecond)
	sess := newSession()
	require.NoError(t, repo.Save(ctx, sess))

	time.Sleep(60 * time.Millisecond)

	_, err := repo.FindByID(ctx, sess.ID)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}
