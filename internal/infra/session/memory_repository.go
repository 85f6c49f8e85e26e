// Package session keeps shopper sessions in process memory.
package session

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	domainsession "storefront/internal/domain/session"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

// memoryRepository bounds sessions by count and idle time. Reading a session
// re-inserts it, so the TTL counts from the last access.
type memoryRepository struct {
	cache  *expirable.LRU[uuid.UUID, *domainsession.Session]
	logger *slog.Logger
}

// NewMemoryRepository creates a session store sized from configuration.
func NewMemoryRepository(cfg *config.Config, logger *slog.Logger) repository.SessionRepository {
	onEvict := func(id uuid.UUID, _ *domainsession.Session) {
		logger.Debug("Session evicted", slog.String("session_id", id.String()))
	}

	return &memoryRepository{
		cache:  expirable.NewLRU(cfg.Session.MaxSessions, onEvict, cfg.Session.TTL),
		logger: logger,
	}
}

func (r *memoryRepository) Save(_ context.Context, sess *domainsession.Session) error {
	if sess == nil {
		return errors.New("nil session")
	}

	r.cache.Add(sess.ID, sess)

	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*domainsession.Session, error) {
	sess, ok := r.cache.Get(id)
	if !ok {
		return nil, errors.WithStack(repository.ErrSessionNotFound)
	}

	r.cache.Add(id, sess)

	return sess, nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Remove(id)

	return nil
}

func (r *memoryRepository) Count(_ context.Context) int {
	return r.cache.Len()
}
