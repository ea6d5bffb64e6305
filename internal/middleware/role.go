package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/repository"
)

// RequireUserManagement gates the admin surface. The role is fetched
// server-side on every request; nothing client-supplied is trusted.
// RoleRepository.FindByUser treats users without a role row as plain users.
func RequireUserManagement(roles repository.RoleRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "No autenticado")
			c.Abort()
			return
		}

		role, err := roles.FindByUser(userID)
		if err != nil {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}

		if !role.CanManageUsers() {
			apierrors.Forbidden(c, "Se requieren permisos de administrador")
			c.Abort()
			return
		}

		c.Next()
	}
}
