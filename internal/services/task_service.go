package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/smartunibot/unibot-api/internal/dto"
	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidFilter = errors.New("filtro inválido")
	ErrInvalidInput  = errors.New("datos incompletos o inválidos")
)

// TaskService handles task business logic scoped to the owning user.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// List returns the user's tasks under the given filter, due date ascending.
// An empty result is a valid outcome, not an error.
func (s *TaskService) List(userID uint64, filter repository.TaskFilter) ([]models.Task, error) {
	if filter == "" {
		filter = repository.TaskFilterAll
	}
	if !filter.Valid() {
		return nil, ErrInvalidFilter
	}
	return s.taskRepo.ListByUser(userID, filter)
}

// Create persists a new task for the user. Title and due date are
// required; priority defaults to Media.
func (s *TaskService) Create(userID uint64, req dto.CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" || req.DueDate == "" {
		return nil, ErrInvalidInput
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: prioridad desconocida %q", ErrInvalidInput, req.Priority)
		}
	}

	task := &models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     dueDate,
		Priority:    priority,
		IsCompleted: false,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update applies a sparse update to an owned task. Absent fields stay
// untouched. Required fields only change when a non-empty value arrives;
// optional text fields are cleared by an explicit null or empty string.
// Flipping IsCompleted keeps CompletedAt in lockstep: non-null iff true.
func (s *TaskService) Update(userID, id uint64, req dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if req.Title.Set && req.Title.Valid && req.Title.Value != "" {
		task.Title = req.Title.Value
	}
	if req.Description.Set {
		task.Description = optionalText(req.Description)
	}
	if req.Subject.Set {
		task.Subject = optionalText(req.Subject)
	}
	if req.DueDate.Set && req.DueDate.Valid && req.DueDate.Value != "" {
		dueDate, err := dto.ParseDate(req.DueDate.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		task.DueDate = dueDate
	}
	if req.Priority.Set && req.Priority.Valid && req.Priority.Value != "" {
		priority := models.Priority(req.Priority.Value)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: prioridad desconocida %q", ErrInvalidInput, req.Priority.Value)
		}
		task.Priority = priority
	}
	if req.IsCompleted.Set && req.IsCompleted.Valid {
		task.IsCompleted = req.IsCompleted.Value
		if req.IsCompleted.Value {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes an owned task. Zero rows affected means the task does
// not exist for this caller, whoever actually owns it.
func (s *TaskService) Delete(userID, id uint64) error {
	affected, err := s.taskRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// optionalText maps a present tri-state string to the stored nullable
// column: null and empty both clear the field.
func optionalText(o dto.Optional[string]) *string {
	if !o.Valid || o.Value == "" {
		return nil
	}
	v := o.Value
	return &v
}
