package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gikibites/models"
	"gikibites/nav"
	"gikibites/state"
)

// GetCart returns the cart snapshot and running total.
func (h *Handler) GetCart(c *gin.Context) {
	items := h.cart.List()
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
		"total": h.cart.Total(),
	})
}

type AddToCartRequest struct {
	ID    int64   `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Image string  `json:"image"`
}

// AddToCart puts a dish in the cart and navigates there, mirroring the
// storefront flow. The payload is validated at this boundary; the cart
// itself owns the merge-by-id rule.
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := h.cart.Add(models.CartItem{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	})
	h.setCurrentDestination(nav.Cart)

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"count":       len(items),
		"destination": nav.Cart,
	})
}

// RemoveCartItem drops a line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	items := h.cart.Remove(id)
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Quantity deliberately carries no binding tag: zero and negative values
// must reach the cart so its hard contract can refuse them.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartQuantity sets a line's quantity. Quantities below 1 are refused
// and the cart stays as it was.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cart.UpdateQuantity(id, req.Quantity); err != nil {
		switch {
		case errors.Is(err, state.ErrInvalidQuantity):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quantity must be at least 1"})
		case errors.Is(err, state.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.cart.List()})
}
