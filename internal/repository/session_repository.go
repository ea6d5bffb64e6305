package repository

import (
	"time"

	"github.com/smartunibot/unibot-api/internal/models"
	"gorm.io/gorm"
)

// GormSessionRepository is a GORM implementation of SessionRepository
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &GormSessionRepository{db: db}
}

// Create persists a new session
func (r *GormSessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// FindValid resolves a token to its session iff it has not expired.
// The comparison is strict: a session whose expires_at equals now is
// already invalid.
func (r *GormSessionRepository) FindValid(token string, now time.Time) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token = ? AND expires_at > ?", token, now).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session by token
func (r *GormSessionRepository) Delete(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
