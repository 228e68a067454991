package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gikibites/models"
	"gikibites/statemachine"
)

const placeholderImage = "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=1080&q=80"

// GetMenu merges the static house dishes with the vendor catalog. Supports
// ?category=, ?q= search and ?vendor_only=true.
func (h *Handler) GetMenu(c *gin.Context) {
	dishes := models.BaseDishes()
	if c.Query("vendor_only") == "true" {
		dishes = nil
	}

	for _, p := range h.products.List() {
		description := p.Description
		if description == "" {
			description = "Freshly curated by your favorite campus vendors."
		}
		image := p.Image
		if image == "" {
			image = placeholderImage
		}
		category := p.Category
		if category == "" {
			category = "Chef Specials"
		}
		dishes = append(dishes, models.MenuDish{
			ID:          p.ID,
			Name:        p.Name,
			SubName:     p.Category,
			Description: description,
			Price:       p.Price,
			Rating:      5,
			Image:       image,
			Category:    category,
			VendorItem:  true,
		})
	}

	category := c.Query("category")
	q := strings.ToLower(c.Query("q"))

	filtered := dishes[:0]
	for _, d := range dishes {
		if d.Image == "" {
			d.Image = placeholderImage
		}
		if category != "" && category != "All" && d.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.SubName), q) {
			continue
		}
		filtered = append(filtered, d)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(filtered),
		"dishes": filtered,
	})
}

// GetOrderStatuses documents the order status set and its conventional
// progression.
func (h *Handler) GetOrderStatuses(c *gin.Context) {
	progression := statemachine.Progression()

	next := gin.H{}
	for _, s := range progression {
		if n, ok := statemachine.Next(s); ok {
			next[string(s)] = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses":    progression,
		"progression": next,
		"note":        "The progression is a convention; vendors may set any known status.",
	})
}
