package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/dto"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/middleware"
	"github.com/smartunibot/unibot-api/internal/repository"
	"github.com/smartunibot/unibot-api/internal/utils"
	"gorm.io/gorm"
)

// AdminHandler serves the role-gated user-management surface. Routes
// using it must sit behind middleware.RequireUserManagement.
type AdminHandler struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewAdminHandler(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo, roleRepo: roleRepo}
}

// ListUsers returns a page of all registered users with their roles.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userRepo.List(params)
	if err != nil {
		apierrors.InternalError(c, "Error al cargar usuarios")
		return
	}

	items := make([]dto.AdminUserDTO, len(users))
	for i, u := range users {
		role, err := h.roleRepo.FindByUser(u.ID)
		if err != nil {
			apierrors.InternalError(c, "Error al cargar usuarios")
			return
		}
		items[i] = dto.AdminUserDTO{
			UserID:    u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      role,
			LastLogin: u.LastLogin,
			CreatedAt: u.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{
		"users": items,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}))
}

// DeleteUser hard-deletes a user and cascades their sessions, tasks,
// classes and role. Admins cannot delete themselves.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	callerID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "UserID requerido")
		return
	}
	if id == callerID {
		apierrors.BadRequest(c, "No puedes eliminar tu propia cuenta")
		return
	}

	if err := h.userRepo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Usuario no encontrado")
			return
		}
		apierrors.InternalError(c, "Error al eliminar usuario")
		return
	}

	c.JSON(http.StatusOK, dto.Message("Usuario eliminado"))
}
