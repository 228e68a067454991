package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gikibites/models"
	"gikibites/session"
)

const sessionKey = "session"

type Claims struct {
	Name string      `json:"name"`
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Auth issues and checks the session tokens handed to the rendering surface.
// A token is only a handle: the session store stays authoritative, so a
// sign-out or a replacing sign-in invalidates every outstanding token.
type Auth struct {
	secret   []byte
	sessions *session.Store
}

func NewAuth(secret []byte, sessions *session.Store) *Auth {
	return &Auth{secret: secret, sessions: sessions}
}

// GenerateToken creates a signed token referencing the given session.
func (a *Auth) GenerateToken(sess *models.Session) (string, error) {
	claims := Claims{
		Name: sess.Name,
		Role: sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// SessionRequired validates the bearer token and checks it still matches the
// current session, then injects the session into the request context.
func (a *Auth) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		sess := a.sessions.Get()
		if sess == nil || sess.Name != claims.Name || sess.Role != claims.Role {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active. Please sign in again."})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RoleRequired enforces that the signed-in role matches. This is the same
// advisory gate the navigation guard applies, mirrored onto the role-scoped
// endpoints.
func (a *Auth) RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Session not found in context"})
			c.Abort()
			return
		}
		if sess.Role != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error":         "Access denied. Required role: " + string(role),
				"required_role": role,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession extracts the caller session from context.
func GetSession(c *gin.Context) *models.Session {
	val, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*models.Session)
	return sess
}
