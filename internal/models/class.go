package models

import (
	"time"

	"gorm.io/gorm"
)

type Class struct {
	ID             uint64         `gorm:"primarykey" json:"id"`
	UserID         uint64         `gorm:"not null;index" json:"user_id"`
	SubjectName    string         `gorm:"type:varchar(255);not null" json:"subject_name"`
	DayOfWeek      DayOfWeek      `gorm:"type:smallint;not null" json:"day_of_week"`
	StartTime      string         `gorm:"type:time;not null" json:"start_time"`
	EndTime        string         `gorm:"type:time;not null" json:"end_time"`
	Location       *string        `gorm:"type:varchar(255)" json:"location"`
	Professor      *string        `gorm:"type:varchar(255)" json:"professor"`
	SemesterYear   int            `gorm:"not null" json:"semester_year"`
	SemesterPeriod string         `gorm:"type:varchar(50);not null" json:"semester_period"`
	SheetID        *string        `gorm:"type:varchar(100);uniqueIndex" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
