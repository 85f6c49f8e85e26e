package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the session's product catalog
type CatalogHandler struct {
	cartUC usecase.CartUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(cartUC usecase.CartUsecase) *CatalogHandler {
	return &CatalogHandler{cartUC: cartUC}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.cartUC.ListProducts(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	sessionID, err := requireSessionID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.cartUC.GetProduct(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
