package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/session"
	"storefront/internal/domain/variant"
	mockRepo "storefront/internal/mocks/repository"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	sessionRepo *mockRepo.MockSessionRepository
	session     *session.Session
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessions := NewSessionService(mockUsecase.NewMockCatalogUsecase(t), sessionRepo, slog.Default())
	sess := session.New(uuid.New(), entity.NewCatalog(sampleProducts(), time.Now()), time.Now())

	sessionRepo.EXPECT().FindByID(context.Background(), sess.ID).Return(sess, nil).Maybe()

	return cartServiceFixtures{
		service:     NewCartService(sessions, variant.NewResolver("typed"), slog.Default()),
		sessionRepo: sessionRepo,
		session:     sess,
	}
}

func TestCartService_ListProducts(t *testing.T) {
	fx := createTestCartService(t)

	views, err := fx.service.ListProducts(context.Background(), fx.session.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	pijama := views[0]
	assert.Equal(t, "p1", pijama.ID)
	assert.True(t, pijama.VariantEligible)
	assert.Equal(t, []usecase.VariantView{{Label: "M", Stock: 2}}, pijama.Variants)
	assert.Equal(t, 2, pijama.TotalStock)
	assert.False(t, pijama.SoldOut)

	meia := views[1]
	assert.False(t, meia.VariantEligible)
	assert.Equal(t, []usecase.VariantView{{Label: entity.SentinelLabel, Stock: 4}}, meia.Variants)
}

func TestCartService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.GetProduct(context.Background(), fx.session.ID, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_Walkthrough(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	result, err := fx.service.AddItem(ctx, fx.session.ID, &usecase.AddItemInput{ProductID: "p1", Variant: "G", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, string(cart.OutcomeRejected), result.Outcome)
	assert.Empty(t, result.Cart.Items)

	result, err = fx.service.AddItem(ctx, fx.session.ID, &usecase.AddItemInput{ProductID: "p1", Variant: "M", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, string(cart.OutcomeCreated), result.Outcome)
	assert.Equal(t, 1, result.Quantity)

	result, err = fx.service.AddItem(ctx, fx.session.ID, &usecase.AddItemInput{ProductID: "p1", Variant: "m", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, string(cart.OutcomeIncremented), result.Outcome)
	assert.True(t, result.Clamped)
	assert.Equal(t, 2, result.ClampedTo)
	assert.Equal(t, "M", result.Variant)

	view, err := fx.service.GetCart(ctx, fx.session.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.True(t, decimal.RequireFromString("100").Equal(view.Total))
	assert.Equal(t, 2, view.ItemCount)
}

func TestCartService_AddItem_VariantErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.AddItemInput
		wantErr error
	}{
		{
			name:    "sized product without size",
			input:   usecase.AddItemInput{ProductID: "p1", Quantity: 1},
			wantErr: domainerrors.ErrVariantRequired,
		},
		{
			name:    "undeclared size",
			input:   usecase.AddItemInput{ProductID: "p1", Variant: "GG", Quantity: 1},
			wantErr: domainerrors.ErrVariantUnavailable,
		},
		{
			name:    "size on unsized product",
			input:   usecase.AddItemInput{ProductID: "p2", Variant: "M", Quantity: 1},
			wantErr: domainerrors.ErrVariantUnavailable,
		},
		{
			name:    "unknown product",
			input:   usecase.AddItemInput{ProductID: "p9", Quantity: 1},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:    "zero quantity",
			input:   usecase.AddItemInput{ProductID: "p2", Quantity: 0},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			_, err := fx.service.AddItem(context.Background(), fx.session.ID, &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, fx.session.Cart.Len())
		})
	}
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, fx.session.ID, &usecase.AddItemInput{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)

	result, err := fx.service.SetQuantity(ctx, fx.session.ID, "p2", entity.SentinelLabel, 10)
	require.NoError(t, err)
	assert.Equal(t, string(cart.OutcomeUpdated), result.Outcome)
	assert.Equal(t, 4, result.Quantity)
	assert.True(t, result.Clamped)

	result, err = fx.service.SetQuantity(ctx, fx.session.ID, "p2", "", 0)
	require.NoError(t, err)
	assert.Equal(t, string(cart.OutcomeRemoved), result.Outcome)

	_, err = fx.service.SetQuantity(ctx, fx.session.ID, "p2", entity.SentinelLabel, 1)
	assert.ErrorIs(t, err, domainerrors.ErrLineNotFound)

	result, err = fx.service.RemoveItem(ctx, fx.session.ID, "p2", entity.SentinelLabel)
	require.NoError(t, err)
	assert.Equal(t, string(cart.OutcomeNoop), result.Outcome)
}

func TestCartService_UnknownSession(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.sessionRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.GetCart(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
