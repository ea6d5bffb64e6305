package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/constants"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/repository"
)

// RequireAuth resolves the opaque X-Session-ID header to a user. A missing
// header is "No autenticado"; an unknown or expired token is "Sesión
// inválida" — the caller cannot tell those two apart. The expiry predicate
// lives in SessionRepository.FindValid, nowhere else.
func RequireAuth(sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(constants.SessionHeader)
		if token == "" {
			apierrors.Unauthorized(c, "No autenticado")
			c.Abort()
			return
		}

		session, err := sessions.FindValid(token, time.Now())
		if err != nil {
			apierrors.Unauthorized(c, "Sesión inválida")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, session.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
