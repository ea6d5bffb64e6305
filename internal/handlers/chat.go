package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartunibot/unibot-api/internal/dto"
	apierrors "github.com/smartunibot/unibot-api/internal/errors"
	"github.com/smartunibot/unibot-api/internal/middleware"
	"github.com/smartunibot/unibot-api/internal/repository"
	"github.com/smartunibot/unibot-api/internal/services"
)

// ChatHandler serves both chat paths: the rule-based intent responder and
// the LLM-backed one.
type ChatHandler struct {
	scheduleService *services.ScheduleService
	taskService     *services.TaskService
	aiService       *services.AIService
}

func NewChatHandler(scheduleService *services.ScheduleService, taskService *services.TaskService, aiService *services.AIService) *ChatHandler {
	return &ChatHandler{
		scheduleService: scheduleService,
		taskService:     taskService,
		aiService:       aiService,
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Query answers a free-text question from the caller's current schedule
// and task rows using rule-based intent matching.
func (h *ChatHandler) Query(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Mensaje requerido")
		return
	}

	classes, err := h.scheduleService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Error en el chatbot")
		return
	}
	tasks, err := h.taskService.List(userID, repository.TaskFilterAll)
	if err != nil {
		apierrors.InternalError(c, "Error en el chatbot")
		return
	}

	response := services.RespondIntent(req.Message, time.Now(), classes, tasks)
	c.JSON(http.StatusOK, dto.OK(gin.H{"response": response}))
}

// Chat forwards the message to the configured LLM provider with the
// caller's data embedded in the system prompt. Provider failures degrade
// to a fixed apology; only a missing provider is surfaced as an error.
func (h *ChatHandler) Chat(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No autenticado")
		return
	}

	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "El asistente inteligente no está configurado")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Mensaje requerido")
		return
	}

	classes, err := h.scheduleService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Error procesando tu mensaje")
		return
	}
	tasks, err := h.taskService.List(userID, repository.TaskFilterAll)
	if err != nil {
		apierrors.InternalError(c, "Error procesando tu mensaje")
		return
	}

	reply, summary := h.aiService.Chat(c.Request.Context(), req.Message, classes, tasks)
	c.JSON(http.StatusOK, dto.OK(gin.H{
		"reply":   reply,
		"context": summary,
	}))
}
