package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gikibites/nav"
)

type NavigateRequest struct {
	Destination string `json:"destination" binding:"required"`
}

// Navigate handles a navigation intent. Ungated destinations and matching
// roles proceed; everything else is denied, the request is deferred, and the
// response carries the sign-in prompt configuration.
func (h *Handler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dest := nav.Destination(req.Destination)
	if !nav.Known(dest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown destination: " + req.Destination})
		return
	}

	decision := h.guard.RequestNavigate(dest)
	if !decision.Allowed {
		h.intents.Defer(dest, decision.RequiredRole, decision.RequiredRole)
		h.logger.Info("navigation denied",
			zap.String("destination", string(dest)),
			zap.String("required_role", string(decision.RequiredRole)))

		c.JSON(http.StatusForbidden, gin.H{
			"error":         "Please sign in as a " + string(decision.RequiredRole) + " to access this area.",
			"required_role": decision.RequiredRole,
			"auth_prompt": gin.H{
				"role_hint":     decision.RequiredRole,
				"allowed_roles": []any{decision.RequiredRole},
			},
		})
		return
	}

	h.setCurrentDestination(dest)
	c.JSON(http.StatusOK, gin.H{"destination": dest})
}
