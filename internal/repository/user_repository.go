package repository

import (
	"fmt"
	"time"

	"github.com/smartunibot/unibot-api/internal/database"
	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// StampLastLogin records a successful login time
func (r *GormUserRepository) StampLastLogin(id uint64, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", at).Error
}

// List returns a page of users with the total count
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := r.db.Order("id").Scopes(database.Paginate(params)).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// DeleteCascade removes a user together with their sessions, classes,
// tasks and role within a single transaction.
func (r *GormUserRepository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Class{}).Error; err != nil {
			return fmt.Errorf("failed to delete classes: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Role{}).Error; err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}
		return nil
	})
}
