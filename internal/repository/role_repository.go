package repository

import (
	"errors"

	"github.com/smartunibot/unibot-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

// FindByUser returns the user's role. Users without a role row are plain
// users, not an error.
func (r *GormRoleRepository) FindByUser(userID uint64) (models.RoleName, error) {
	var role models.Role
	err := r.db.Where("user_id = ?", userID).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleUser, nil
		}
		return "", err
	}
	return role.Name, nil
}

// Assign sets or replaces a user's role
func (r *GormRoleRepository) Assign(userID uint64, name models.RoleName) error {
	role := models.Role{UserID: userID, Name: name}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&role).Error
}
