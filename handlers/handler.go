// Package handlers implements the HTTP surface for the storefront: one
// endpoint per UI intent, plus the view snapshot the rendering surface
// draws from.
package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gikibites/middleware"
	"gikibites/nav"
	"gikibites/session"
	"gikibites/state"
)

// Handler is the top-level controller: it owns the current destination and
// coordinates the session store, the navigation guard, the pending-intent
// tracker and the domain collections.
type Handler struct {
	logger   *zap.Logger
	auth     *middleware.Auth
	sessions *session.Store
	guard    *nav.Guard
	intents  *nav.Tracker
	cart     *state.Cart
	products *state.Catalog
	orders   *state.Orders
	vendors  *state.Vendors

	mu      sync.Mutex
	current nav.Destination
}

func New(
	logger *zap.Logger,
	auth *middleware.Auth,
	sessions *session.Store,
	guard *nav.Guard,
	intents *nav.Tracker,
	cart *state.Cart,
	products *state.Catalog,
	orders *state.Orders,
	vendors *state.Vendors,
) *Handler {
	return &Handler{
		logger:   logger,
		auth:     auth,
		sessions: sessions,
		guard:    guard,
		intents:  intents,
		cart:     cart,
		products: products,
		orders:   orders,
		vendors:  vendors,
		current:  nav.Home,
	}
}

func (h *Handler) currentDestination() nav.Destination {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

func (h *Handler) setCurrentDestination(d nav.Destination) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = d
}

// View returns everything the rendering surface needs to draw the current
// destination.
func (h *Handler) View(c *gin.Context) {
	items := h.cart.List()
	c.JSON(http.StatusOK, gin.H{
		"destination":     h.currentDestination(),
		"session":         h.sessions.Get(),
		"cart":            items,
		"cart_count":      len(items),
		"cart_total":      h.cart.Total(),
		"vendor_products": h.products.List(),
		"vendor_orders":   h.orders.List(),
	})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
