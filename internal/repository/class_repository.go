package repository

import (
	"github.com/smartunibot/unibot-api/internal/models"
	"gorm.io/gorm"
)

// GormClassRepository is a GORM implementation of ClassRepository
type GormClassRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &GormClassRepository{db: db}
}

// Create creates a new class
func (r *GormClassRepository) Create(class *models.Class) error {
	return r.db.Create(class).Error
}

// ListByUser returns the user's classes ordered by (day, start time)
func (r *GormClassRepository) ListByUser(userID uint64) ([]models.Class, error) {
	var classes []models.Class
	err := r.db.Where("user_id = ?", userID).
		Order("day_of_week, start_time").
		Find(&classes).Error
	return classes, err
}

// FindOwned resolves id to a class iff it belongs to userID. A class that
// exists but belongs to someone else is indistinguishable from one that
// does not exist.
func (r *GormClassRepository) FindOwned(id, userID uint64) (*models.Class, error) {
	var class models.Class
	err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// Save persists changes to an existing class
func (r *GormClassRepository) Save(class *models.Class) error {
	return r.db.Save(class).Error
}

// Delete removes a class iff owned; reports rows affected
func (r *GormClassRepository) Delete(id, userID uint64) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Class{})
	return res.RowsAffected, res.Error
}

// DeleteAllByUser clears the user's whole schedule; reports rows affected
func (r *GormClassRepository) DeleteAllByUser(userID uint64) (int64, error) {
	res := r.db.Where("user_id = ?", userID).Delete(&models.Class{})
	return res.RowsAffected, res.Error
}

// ExistsBySheetID reports whether an imported row id is already present
func (r *GormClassRepository) ExistsBySheetID(sheetID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Class{}).
		Where("sheet_id = ?", sheetID).
		Count(&count).Error
	return count > 0, err
}
