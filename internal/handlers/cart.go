// internal/handlers/cart.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/catalog-service/internal/i18n"
	"github.com/javajoker/catalog-service/internal/models"
	"github.com/javajoker/catalog-service/internal/services"
	"github.com/javajoker/catalog-service/internal/utils"
)

type Cart interface {
	AddToCart(ctx context.Context, userID uuid.UUID, req *services.AddToCartRequest) (*models.CartEntry, error)
	GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItemView, error)
	RemoveFromCart(ctx context.Context, userID, entryID uuid.UUID) (*models.CartEntry, error)
}

type CartHandler struct {
	cartService Cart
}

func NewCartHandler(cartService Cart) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.cartService.AddToCart(c.Request.Context(), userID, &req)
	if err != nil {
		// A duplicate entry is a client error with its own message.
		if errors.Is(err, services.ErrConflict) {
			utils.ErrorResponse(c, http.StatusBadRequest, i18n.T(lang, i18n.KeyCartItemExists), err.Error())
			return
		}
		respondError(c, err, "product")
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyCartItemAdded), entry)
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyCartFetched), items)
}

// DELETE /cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, ok := parseUUIDParam(c, "id", "cart")
	if !ok {
		return
	}

	removed, err := h.cartService.RemoveFromCart(c.Request.Context(), userID, entryID)
	if err != nil {
		respondError(c, err, "cart")
		return
	}

	utils.SuccessResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyCartItemRemoved), removed)
}
