package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/nav"
	"gikibites/session"
)

type PromptRequest struct {
	RoleHint models.Role `json:"role_hint"`
}

// OpenAuthPrompt handles a direct sign-in intent (no gated destination
// behind it). The deferred intent carries only the prompt presentation.
func (h *Handler) OpenAuthPrompt(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.RoleHint
	if role == "" {
		role = models.RoleCustomer
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer, vendor, or admin"})
		return
	}

	h.intents.Defer("", role)
	c.JSON(http.StatusOK, gin.H{
		"auth_prompt": gin.H{
			"role_hint":     role,
			"allowed_roles": nil, // unrestricted
		},
	})
}

type SignInRequest struct {
	Name string      `json:"name" binding:"required"`
	Role models.Role `json:"role" binding:"required,oneof=customer vendor admin"`
}

// SignIn handles the auth prompt submission. The claimed identity replaces
// any current session; a pending navigation is then resolved. A role
// mismatch still signs the user in, it only refuses the resumed navigation.
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessions.SignIn(req.Name, req.Role)
	if err != nil {
		if errors.Is(err, session.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must not be empty"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.GenerateToken(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	resp := gin.H{
		"message": "Signed in as " + string(sess.Role) + ".",
		"token":   token,
		"session": sess,
	}

	resolution, dest, required := h.intents.ResolveOnSignIn(sess)
	switch resolution {
	case nav.ResumeDestination:
		h.setCurrentDestination(dest)
		resp["destination"] = dest
		h.logger.Info("resumed deferred navigation",
			zap.String("destination", string(dest)), zap.String("role", string(sess.Role)))
	case nav.RoleMismatch:
		resp["warning"] = "That area requires a " + string(required) + "."
		resp["required_role"] = required
		h.logger.Info("deferred navigation refused",
			zap.String("required_role", string(required)), zap.String("role", string(sess.Role)))
	}

	c.JSON(http.StatusOK, resp)
}

// SignOut clears the session and any pending intent. If the user was looking
// at a gated destination they are sent back home.
func (h *Handler) SignOut(c *gin.Context) {
	h.sessions.SignOut()
	h.intents.ClearOnSignOut()

	h.mu.Lock()
	if _, gated := nav.RequiredRole(h.current); gated {
		h.current = nav.Home
	}
	current := h.current
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":     "Signed out successfully.",
		"destination": current,
	})
}
