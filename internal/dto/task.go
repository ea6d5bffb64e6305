package dto

import (
	"fmt"
	"time"

	"github.com/smartunibot/unibot-api/internal/models"
)

// CreateTaskRequest carries the fields accepted when creating a task.
// Title and due date are the only required ones.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
	DueDate     string  `json:"dueDate" binding:"required"`
	Priority    string  `json:"priority"`
}

// UpdateTaskRequest is a sparse update: absent keys leave the stored field
// untouched, explicit nulls clear the optional text fields.
type UpdateTaskRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Subject     Optional[string] `json:"subject"`
	DueDate     Optional[string] `json:"dueDate"`
	Priority    Optional[string] `json:"priority"`
	IsCompleted Optional[bool]   `json:"isCompleted"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	TaskID      uint64          `json:"taskId"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Subject     *string         `json:"subject"`
	DueDate     string          `json:"dueDate"`
	Priority    models.Priority `json:"priority"`
	IsCompleted bool            `json:"isCompleted"`
	CompletedAt *time.Time      `json:"completedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		TaskID:      task.ID,
		Title:       task.Title,
		Description: task.Description,
		Subject:     task.Subject,
		DueDate:     task.DueDate.Format(DateLayout),
		Priority:    task.Priority,
		IsCompleted: task.IsCompleted,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// ParseDate accepts the plain date layout the frontend sends as well as
// full RFC3339 timestamps coming from spreadsheet exports.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
