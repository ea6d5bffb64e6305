package repository

import (
	"time"

	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// StampLastLogin records a successful login time
	StampLastLogin(id uint64, at time.Time) error

	// List returns a page of users with the total count
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// DeleteCascade removes a user together with their sessions,
	// classes, tasks and role within a single transaction
	DeleteCascade(id uint64) error
}

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create persists a new session
	Create(session *models.Session) error

	// FindValid resolves a token to its session iff it has not expired
	// at the given instant. Expired and unknown tokens are both
	// gorm.ErrRecordNotFound to the caller.
	FindValid(token string, now time.Time) (*models.Session, error)

	// Delete removes a session by token
	Delete(token string) error
}

// ClassRepository defines the interface for class data access
type ClassRepository interface {
	// Create creates a new class
	Create(class *models.Class) error

	// ListByUser returns the user's classes ordered by (day, start time)
	ListByUser(userID uint64) ([]models.Class, error)

	// FindOwned resolves id to a class iff it belongs to userID
	FindOwned(id, userID uint64) (*models.Class, error)

	// Save persists changes to an existing class
	Save(class *models.Class) error

	// Delete removes a class iff owned; reports rows affected
	Delete(id, userID uint64) (int64, error)

	// DeleteAllByUser clears the user's whole schedule; reports rows affected
	DeleteAllByUser(userID uint64) (int64, error)

	// ExistsBySheetID reports whether an imported row id is already present
	ExistsBySheetID(sheetID string) (bool, error)
}

// TaskFilter restricts task listings by completion state.
type TaskFilter string

const (
	TaskFilterAll       TaskFilter = "all"
	TaskFilterPending   TaskFilter = "pending"
	TaskFilterCompleted TaskFilter = "completed"
)

// Valid reports whether f is a known filter value.
func (f TaskFilter) Valid() bool {
	switch f {
	case TaskFilterAll, TaskFilterPending, TaskFilterCompleted:
		return true
	}
	return false
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByUser returns the user's tasks under the filter, due date ascending
	ListByUser(userID uint64, filter TaskFilter) ([]models.Task, error)

	// FindOwned resolves id to a task iff it belongs to userID
	FindOwned(id, userID uint64) (*models.Task, error)

	// Save persists changes to an existing task
	Save(task *models.Task) error

	// Delete removes a task iff owned; reports rows affected
	Delete(id, userID uint64) (int64, error)

	// ExistsBySheetID reports whether an imported row id is already present
	ExistsBySheetID(sheetID string) (bool, error)
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	// FindByUser returns the user's role, or RoleUser when no row exists
	FindByUser(userID uint64) (models.RoleName, error)

	// Assign sets or replaces a user's role
	Assign(userID uint64, name models.RoleName) error
}
