package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/smartunibot/unibot-api/internal/config"
	"github.com/smartunibot/unibot-api/internal/models"
)

// FallbackReply is returned whenever the upstream provider fails or
// produces nothing usable. The chat endpoint degrades, it never breaks.
const FallbackReply = "Lo siento, no pude procesar tu pregunta."

type AIService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// ChatContext summarizes the rows the reply was grounded on.
type ChatContext struct {
	TotalClasses int `json:"totalClasses"`
	TotalTasks   int `json:"totalTasks"`
	PendingTasks int `json:"pendingTasks"`
}

// NewAIService builds the chat client for whichever provider has
// credentials: Azure OpenAI when an endpoint is configured, plain OpenAI
// otherwise. Returns nil when neither is set.
func NewAIService(cfg *config.Config) *AIService {
	switch {
	case cfg.AzureOpenAIAPIKey != "":
		clientCfg := openai.DefaultAzureConfig(cfg.AzureOpenAIAPIKey, cfg.AzureOpenAIEndpoint)
		return &AIService{
			client:  openai.NewClientWithConfig(clientCfg),
			model:   cfg.AzureOpenAIDeploy,
			timeout: cfg.ChatTimeout,
		}
	case cfg.OpenAIAPIKey != "":
		model := cfg.OpenAIModel
		if model == "" {
			model = openai.GPT4o
		}
		return &AIService{
			client:  openai.NewClient(cfg.OpenAIAPIKey),
			model:   model,
			timeout: cfg.ChatTimeout,
		}
	}
	return nil
}

// Chat embeds the user's schedule and tasks into the system prompt and
// forwards the message verbatim. Any upstream failure yields the static
// fallback reply, never an error to the HTTP caller.
func (s *AIService) Chat(ctx context.Context, message string, classes []models.Class, tasks []models.Task) (string, ChatContext) {
	summary := ChatContext{
		TotalClasses: len(classes),
		TotalTasks:   len(tasks),
	}
	for _, t := range tasks {
		if !t.IsCompleted {
			summary.PendingTasks++
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt(classes, tasks),
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			Temperature: 0.7,
			MaxTokens:   800,
			TopP:        0.95,
		},
	)
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return FallbackReply, summary
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return FallbackReply, summary
	}
	return resp.Choices[0].Message.Content, summary
}

// systemPrompt renders the persona preamble plus the student's current
// data, one natural-language line per row.
func systemPrompt(classes []models.Class, tasks []models.Task) string {
	var scheduleLines []string
	for _, c := range classes {
		scheduleLines = append(scheduleLines, fmt.Sprintf("%s - Día %d de %s a %s en %s con %s",
			c.SubjectName, c.DayOfWeek, c.StartTime, c.EndTime,
			textOr(c.Location, "ubicación desconocida"),
			textOr(c.Professor, "profesor desconocido")))
	}

	var taskLines []string
	pending := 0
	for _, t := range tasks {
		state := "Pendiente"
		if t.IsCompleted {
			state = "Completada"
		} else {
			pending++
		}
		taskLines = append(taskLines, fmt.Sprintf("%s (%s) - Vence: %s - Prioridad: %s - %s",
			t.Title, textOr(t.Subject, "sin asignatura"),
			t.DueDate.Format("2006-01-02"), t.Priority, state))
	}

	scheduleText := strings.Join(scheduleLines, "\n")
	if scheduleText == "" {
		scheduleText = "No tiene clases registradas"
	}
	tasksText := strings.Join(taskLines, "\n")
	if tasksText == "" {
		tasksText = "No tiene tareas"
	}

	return fmt.Sprintf(`Eres Smart UNI-BOT, un asistente personal universitario inteligente.

Tu objetivo es ayudar al estudiante con su organización académica. Puedes:
- Consultar su horario de clases
- Revisar sus tareas pendientes y completadas
- Dar consejos de organización y productividad
- Responder preguntas sobre sus asignaturas
- Sugerir prioridades basándote en fechas de entrega

IMPORTANTE:
- Sé amigable, cercano y motivador
- Usa emojis cuando sea apropiado
- Responde en español
- Si no tienes información, dilo claramente
- Las respuestas deben ser concisas (máximo 3-4 líneas)

CONTEXTO DEL ESTUDIANTE:
HORARIO DEL ESTUDIANTE:
%s

TAREAS (%d pendientes):
%s

ESTADÍSTICAS:
- Total clases: %d
- Total tareas: %d
- Tareas pendientes: %d
- Tareas completadas: %d`,
		scheduleText, pending, tasksText,
		len(classes), len(tasks), pending, len(tasks)-pending)
}

func textOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
