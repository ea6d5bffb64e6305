package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/constants"
	"github.com/smartunibot/unibot-api/internal/dto"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/middleware"
	"github.com/smartunibot/unibot-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email y contraseña son requeridos")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage(dto.ToUserDTO(*user), "Usuario registrado exitosamente"))
}

// Login authenticates a user and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email y contraseña son requeridos")
		return
	}

	user, session, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage(dto.LoginResponse{
		SessionID: session.Token,
		User:      dto.ToUserDTO(*user),
	}, "Login exitoso"))
}

// Logout destroys the caller's session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(constants.SessionHeader)
	if token == "" {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	if err := h.authService.Logout(token); err != nil {
		apierrors.InternalError(c, "Error al cerrar sesión")
		return
	}

	c.JSON(http.StatusOK, dto.Message("Sesión cerrada"))
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserDTO(*user)))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("La contraseña debe tener al menos %d caracteres", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
