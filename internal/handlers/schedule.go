package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/dto"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/middleware"
	"github.com/smartunibot/unibot-api/internal/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListClasses returns the caller's schedule ordered by (day, start time).
func (h *ScheduleHandler) ListClasses(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	classes, err := h.scheduleService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Error al obtener horario")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToClassDTOs(classes)))
}

// CreateClass adds a class to the caller's schedule.
func (h *ScheduleHandler) CreateClass(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Datos incompletos")
		return
	}

	class, err := h.scheduleService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, "Datos incompletos")
			return
		}
		apierrors.InternalError(c, "Error al crear clase")
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage(dto.ToClassDTO(*class), "Clase creada"))
}

// UpdateClass partially updates an owned class.
func (h *ScheduleHandler) UpdateClass(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "ClassID requerido")
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Solicitud inválida")
		return
	}

	class, err := h.scheduleService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			apierrors.NotFound(c, "Clase no encontrada")
		case errors.Is(err, services.ErrInvalidInput):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Error al actualizar clase")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage(dto.ToClassDTO(*class), "Clase actualizada"))
}

// DeleteClass removes an owned class.
func (h *ScheduleHandler) DeleteClass(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "ClassID requerido")
		return
	}

	if err := h.scheduleService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			apierrors.NotFound(c, "Clase no encontrada")
			return
		}
		apierrors.InternalError(c, "Error al eliminar clase")
		return
	}

	c.JSON(http.StatusOK, dto.Message("Clase eliminada"))
}

// ClearSemester deletes every class the caller owns. Zero deletions is
// still a success.
func (h *ScheduleHandler) ClearSemester(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	deleted, err := h.scheduleService.ClearSemester(userID)
	if err != nil {
		apierrors.InternalError(c, "Error al limpiar semestre")
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage(gin.H{"deleted": deleted}, "Semestre limpiado"))
}
