package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultAddQuantity = 1

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Variant   string `json:"variant"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1,max=999"`
}

// UpdateItemRequest represents the request body for setting a line quantity
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=999"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.GetCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem handles POST /api/v1/cart/items. A quantity above the stock is
// clamped and reported in the result.
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	quantity := defaultAddQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	result, err := h.cartUC.AddItem(c.Request().Context(), sessionID, &usecase.AddItemInput{
		ProductID: req.ProductID,
		Variant:   req.Variant,
		Quantity:  quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// UpdateItem handles PUT /api/v1/cart/items/:productId/:variant
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.cartUC.SetQuantity(c.Request().Context(), sessionID, c.Param("productId"), c.Param("variant"), *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RemoveItem handles DELETE /api/v1/cart/items/:productId/:variant
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.cartUC.RemoveItem(c.Request().Context(), sessionID, c.Param("productId"), c.Param("variant"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
