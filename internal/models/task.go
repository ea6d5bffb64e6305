package models

import (
	"time"

	"gorm.io/gorm"
)

type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Subject     *string        `gorm:"type:varchar(255)" json:"subject"`
	DueDate     time.Time      `gorm:"not null;index" json:"due_date"`
	Priority    Priority       `gorm:"type:varchar(10);not null;default:'Media'" json:"priority"`
	IsCompleted bool           `gorm:"not null;default:false;index" json:"is_completed"`
	CompletedAt *time.Time     `json:"completed_at"`
	SheetID     *string        `gorm:"type:varchar(100);uniqueIndex" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
