package routes

import (
	"github.com/gin-gonic/gin"

	"gikibites/handlers"
	"gikibites/middleware"
	"gikibites/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, auth *middleware.Auth) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Navigation and view state
		public.POST("/navigate", h.Navigate)
		public.GET("/view", h.View)

		// Auth prompt + submission (an identity claim, no credentials)
		public.POST("/auth/prompt", h.OpenAuthPrompt)
		public.POST("/auth/session", h.SignIn)

		// Menu (no auth needed)
		public.GET("/menu", h.GetMenu)

		// Cart — the cart destination is ungated
		public.GET("/cart", h.GetCart)
		public.POST("/cart/items", h.AddToCart)
		public.DELETE("/cart/items/:id", h.RemoveCartItem)
		public.PUT("/cart/items/:id", h.UpdateCartQuantity)

		// Status docs (great for Postman)
		public.GET("/order-statuses", h.GetOrderStatuses)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth.SessionRequired())
	{
		authed.DELETE("/auth/session", h.SignOut)
	}

	// ── Vendor dashboard routes ────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(auth.SessionRequired(), auth.RoleRequired(models.RoleVendor))
	{
		// Catalog management
		vendor.GET("/products", h.ListProducts)
		vendor.POST("/products", h.AddProduct)
		vendor.DELETE("/products/:id", h.DeleteProduct)

		// Order management
		vendor.GET("/orders", h.GetVendorOrders)
		vendor.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Admin approval panel routes ────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(auth.SessionRequired(), auth.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/vendors", h.ListVendors)
		admin.POST("/vendors", h.AddVendor)
		admin.PUT("/vendors/:id/approve", h.ApproveVendor)
		admin.DELETE("/vendors/:id", h.RejectVendor)
	}
}
