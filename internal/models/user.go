package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string         `gorm:"type:varchar(100)" json:"firstName"`
	LastName     string         `gorm:"type:varchar(100)" json:"lastName"`
	LastLogin    *time.Time     `json:"lastLogin"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
	Classes  []Class   `gorm:"foreignKey:UserID" json:"-"`
	Tasks    []Task    `gorm:"foreignKey:UserID" json:"-"`
}
