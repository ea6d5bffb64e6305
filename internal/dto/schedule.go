package dto

import (
	"github.com/smartunibot/unibot-api/internal/models"
)

// CreateClassRequest carries the fields accepted when creating a class.
// Day values use the canonical 0=Sunday..6=Saturday encoding.
type CreateClassRequest struct {
	SubjectName    string  `json:"subjectName" binding:"required"`
	DayOfWeek      *int    `json:"dayOfWeek" binding:"required"`
	StartTime      string  `json:"startTime" binding:"required"`
	EndTime        string  `json:"endTime" binding:"required"`
	Location       *string `json:"location"`
	Professor      *string `json:"professor"`
	SemesterYear   int     `json:"semesterYear"`
	SemesterPeriod string  `json:"semesterPeriod"`
}

// UpdateClassRequest is a sparse update over the same fields.
type UpdateClassRequest struct {
	SubjectName    Optional[string] `json:"subjectName"`
	DayOfWeek      Optional[int]    `json:"dayOfWeek"`
	StartTime      Optional[string] `json:"startTime"`
	EndTime        Optional[string] `json:"endTime"`
	Location       Optional[string] `json:"location"`
	Professor      Optional[string] `json:"professor"`
	SemesterYear   Optional[int]    `json:"semesterYear"`
	SemesterPeriod Optional[string] `json:"semesterPeriod"`
}

// ClassDTO represents a class in API responses
type ClassDTO struct {
	ClassID        uint64           `json:"classId"`
	SubjectName    string           `json:"subjectName"`
	DayOfWeek      models.DayOfWeek `json:"dayOfWeek"`
	StartTime      string           `json:"startTime"`
	EndTime        string           `json:"endTime"`
	Location       *string          `json:"location"`
	Professor      *string          `json:"professor"`
	SemesterYear   int              `json:"semesterYear"`
	SemesterPeriod string           `json:"semesterPeriod"`
}

// ToClassDTO converts a Class model to ClassDTO
func ToClassDTO(class models.Class) ClassDTO {
	return ClassDTO{
		ClassID:        class.ID,
		SubjectName:    class.SubjectName,
		DayOfWeek:      class.DayOfWeek,
		StartTime:      class.StartTime,
		EndTime:        class.EndTime,
		Location:       class.Location,
		Professor:      class.Professor,
		SemesterYear:   class.SemesterYear,
		SemesterPeriod: class.SemesterPeriod,
	}
}

// ToClassDTOs converts a slice of classes
func ToClassDTOs(classes []models.Class) []ClassDTO {
	dtos := make([]ClassDTO, len(classes))
	for i, class := range classes {
		dtos[i] = ToClassDTO(class)
	}
	return dtos
}
