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
	"github.com/smartunibot/unibot-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns the caller's tasks, optionally filtered by
// ?filter=all|pending|completed, ordered by due date.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	filter := repository.TaskFilter(c.DefaultQuery("filter", "all"))
	tasks, err := h.taskService.List(userID, filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			apierrors.BadRequest(c, "Filtro inválido")
			return
		}
		apierrors.InternalError(c, "Error al obtener tareas")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTaskDTOs(tasks)))
}

// CreateTask creates a new task owned by the caller.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Título y fecha requeridos")
		return
	}

	task, err := h.taskService.Create(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, "Título y fecha requeridos")
			return
		}
		apierrors.InternalError(c, "Error al crear tarea")
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage(dto.ToTaskDTO(*task), "Tarea creada"))
}

// UpdateTask partially updates an owned task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "TaskID requerido")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Solicitud inválida")
		return
	}

	task, err := h.taskService.Update(userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			apierrors.NotFound(c, "Tarea no encontrada")
		case errors.Is(err, services.ErrInvalidInput):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Error al actualizar tarea")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage(dto.ToTaskDTO(*task), "Tarea actualizada"))
}

// DeleteTask removes an owned task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "TaskID requerido")
		return
	}

	if err := h.taskService.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			apierrors.NotFound(c, "Tarea no encontrada")
			return
		}
		apierrors.InternalError(c, "Error al eliminar tarea")
		return
	}

	c.JSON(http.StatusOK, dto.Message("Tarea eliminada"))
}
