package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the failure half of the API envelope. Every error leaves
// the service as {"success": false, "message": "..."} with a matching status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Success: false, Message: message})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "No autenticado"
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Acceso denegado"
	}
	RespondWithError(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Recurso no encontrado"
	}
	RespondWithError(c, http.StatusNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Solicitud inválida"
	}
	RespondWithError(c, http.StatusBadRequest, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Conflicto de recursos"
	}
	RespondWithError(c, http.StatusConflict, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Error interno del servidor"
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *gin.Context, message string) {
	if message == "" {
		message = "Servicio no disponible temporalmente"
	}
	RespondWithError(c, http.StatusServiceUnavailable, message)
}
