package repository

import (
	"github.com/smartunibot/unibot-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByUser returns the user's tasks under the filter, due date ascending
func (r *GormTaskRepository) ListByUser(userID uint64, filter TaskFilter) ([]models.Task, error) {
	query := r.db.Where("user_id = ?", userID)

	switch filter {
	case TaskFilterPending:
		query = query.Where("is_completed = ?", false)
	case TaskFilterCompleted:
		query = query.Where("is_completed = ?", true)
	}

	var tasks []models.Task
	err := query.Order("due_date").Find(&tasks).Error
	return tasks, err
}

// FindOwned resolves id to a task iff it belongs to userID. Ownership and
// existence are one combined lookup so callers cannot tell the cases apart.
func (r *GormTaskRepository) FindOwned(id, userID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Save persists changes to an existing task
func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task iff owned; reports rows affected
func (r *GormTaskRepository) Delete(id, userID uint64) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	return res.RowsAffected, res.Error
}

// ExistsBySheetID reports whether an imported row id is already present
func (r *GormTaskRepository) ExistsBySheetID(sheetID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("sheet_id = ?", sheetID).
		Count(&count).Error
	return count > 0, err
}
