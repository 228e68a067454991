package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/state"
	"gikibites/statemachine"
)

// ListProducts returns the vendor catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.products.List()
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

type AddProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// AddProduct appends a product to the catalog; the id is assigned here.
func (h *Handler) AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := h.products.Add(models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	h.logger.Info("product added", zap.Int64("id", product.ID), zap.String("name", product.Name))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully!",
		"product": product,
	})
}

// DeleteProduct removes a product from the catalog by id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.products.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "products": h.products.List()})
}

// GetVendorOrders lists incoming orders with a per-status summary. An
// optional ?status= filter narrows the list.
func (h *Handler) GetVendorOrders(c *gin.Context) {
	orders := h.orders.List()

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	if status := c.Query("status"); status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus sets an order's status. Any known status may be chosen;
// the conventional progression is advisory only.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.SetStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          err.Error(),
			"known_statuses": statemachine.Progression(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order #" + c.Param("id") + " marked as " + string(order.Status) + ".",
		"order":   order,
	})
}
