package dto

import (
	"time"

	"github.com/smartunibot/unibot-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	UserID    uint64 `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AdminUserDTO is the richer shape the admin panel sees.
type AdminUserDTO struct {
	UserID    uint64          `json:"userId"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName,omitempty"`
	LastName  string          `json:"lastName,omitempty"`
	Role      models.RoleName `json:"role"`
	LastLogin *time.Time      `json:"lastLogin"`
	CreatedAt time.Time       `json:"createdAt"`
}

// LoginResponse pairs the fresh session token with the user it belongs to.
type LoginResponse struct {
	SessionID string  `json:"sessionId"`
	User      UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
