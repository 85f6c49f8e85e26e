package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/session"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type sessionService struct {
	catalog     usecase.CatalogUsecase
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewSessionService creates a new session service instance
func NewSessionService(
	catalog usecase.CatalogUsecase,
	sessionRepo repository.SessionRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		catalog:     catalog,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start loads the catalog once for the new session. An unavailable backend
// still opens a session, with an empty catalog.
func (srv *sessionService) Start(ctx context.Context) (*usecase.SessionInfo, error) {
	catalog := srv.catalog.Load(ctx)
	sess := session.New(uuid.New(), catalog, srv.now())

	if err := srv.sessionRepo.Save(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	srv.log(ctx).Info("Session started",
		slog.String("session_id", sess.ID.String()),
		slog.String("catalog_state", string(catalog.State)),
	)

	return &usecase.SessionInfo{
		ID:           sess.ID,
		CatalogState: catalog.State,
		ProductCount: len(catalog.Products),
		CreatedAt:    sess.CreatedAt,
	}, nil
}

// Get returns a live session
func (srv *sessionService) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	sess, err := srv.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "session lookup")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return sess, nil
}

// End discards the session and its cart
func (srv *sessionService) End(ctx context.Context, id uuid.UUID) error {
	if err := srv.sessionRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Session ended", slog.String("session_id", id.String()))

	return nil
}
