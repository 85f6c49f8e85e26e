package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler turns the session cart into a messaging hand-off
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(checkoutUC usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC}
}

// CheckoutRequest is the delivery address typed on the order form
type CheckoutRequest struct {
	Nome   string `json:"nome" validate:"required,max=120"`
	Rua    string `json:"rua" validate:"required,max=200"`
	Numero string `json:"numero" validate:"required,max=20"`
	Bairro string `json:"bairro" validate:"required,max=120"`
	Cidade string `json:"cidade" validate:"required,max=120"`
}

// Checkout handles POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CheckoutRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	receipt, err := h.checkoutUC.Checkout(c.Request().Context(), sessionID, entity.Address{
		Nome:   req.Nome,
		Rua:    req.Rua,
		Numero: req.Numero,
		Bairro: req.Bairro,
		Cidade: req.Cidade,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipt)
}
