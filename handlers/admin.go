package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gikibites/models"
)

// ListVendors serves the admin approval panel: ?tab=active|pending picks the
// list, ?q= searches name and cuisines, ?type=Veg|Non-veg filters.
func (h *Handler) ListVendors(c *gin.Context) {
	tab := c.DefaultQuery("tab", "active")

	var vendors []models.Vendor
	switch tab {
	case "active":
		vendors = h.vendors.Active()
	case "pending":
		vendors = h.vendors.Pending()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tab. Must be: active or pending"})
		return
	}

	q := strings.ToLower(c.Query("q"))
	vendorType := c.Query("type")

	filtered := vendors[:0]
	for _, v := range vendors {
		if q != "" &&
			!strings.Contains(strings.ToLower(v.Name), q) &&
			!strings.Contains(strings.ToLower(v.Cuisines), q) {
			continue
		}
		if vendorType != "" && v.Type != vendorType {
			continue
		}
		filtered = append(filtered, v)
	}

	c.JSON(http.StatusOK, gin.H{
		"tab":     tab,
		"count":   len(filtered),
		"vendors": filtered,
	})
}

type AddVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	Cuisines      string `json:"cuisines" binding:"required"`
	EstimatedTime string `json:"estimatedTime" binding:"required"`
	MinOrder      int    `json:"minOrder" binding:"required,gt=0"`
	Type          string `json:"type" binding:"required,oneof=Veg Non-veg"`
}

// AddVendor registers a vendor directly onto the active list.
func (h *Handler) AddVendor(c *gin.Context) {
	var req AddVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all fields"})
		return
	}

	vendor, err := h.vendors.Add(models.Vendor{
		Name:          req.Name,
		Cuisines:      req.Cuisines,
		EstimatedTime: req.EstimatedTime,
		MinOrder:      req.MinOrder,
		Type:          req.Type,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all fields"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vendor added successfully!",
		"vendor":  vendor,
	})
}

// ApproveVendor moves a pending application to the active list.
func (h *Handler) ApproveVendor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	vendor, err := h.vendors.Approve(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending vendor not found"})
		return
	}
	h.logger.Info("vendor approved", zap.Int64("id", vendor.ID), zap.String("name", vendor.Name))

	c.JSON(http.StatusOK, gin.H{
		"message": vendor.Name + " has been approved!",
		"vendor":  vendor,
	})
}

// RejectVendor drops a pending application.
func (h *Handler) RejectVendor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	vendor, err := h.vendors.Reject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending vendor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": vendor.Name + " application has been rejected.",
	})
}
