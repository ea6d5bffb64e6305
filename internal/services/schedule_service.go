package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/smartunibot/unibot-api/internal/dto"
	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/repository"
	"gorm.io/gorm"
)

// DefaultSemesterPeriod is used when a class is created without one.
const DefaultSemesterPeriod = "Otoño"

// ScheduleService handles class-schedule business logic.
type ScheduleService struct {
	classRepo repository.ClassRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(classRepo repository.ClassRepository) *ScheduleService {
	return &ScheduleService{classRepo: classRepo}
}

// List returns the user's classes ordered by (day, start time).
func (s *ScheduleService) List(userID uint64) ([]models.Class, error) {
	return s.classRepo.ListByUser(userID)
}

// Create persists a new class. Subject, day and both times are required;
// semester year and period fall back to the current year and Otoño.
func (s *ScheduleService) Create(userID uint64, req dto.CreateClassRequest) (*models.Class, error) {
	if req.SubjectName == "" || req.DayOfWeek == nil || req.StartTime == "" || req.EndTime == "" {
		return nil, ErrInvalidInput
	}

	day, err := models.ParseDay(*req.DayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	semesterYear := req.SemesterYear
	if semesterYear == 0 {
		semesterYear = time.Now().Year()
	}
	semesterPeriod := req.SemesterPeriod
	if semesterPeriod == "" {
		semesterPeriod = DefaultSemesterPeriod
	}

	class := &models.Class{
		UserID:         userID,
		SubjectName:    req.SubjectName,
		DayOfWeek:      day,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Location:       req.Location,
		Professor:      req.Professor,
		SemesterYear:   semesterYear,
		SemesterPeriod: semesterPeriod,
	}
	if err := s.classRepo.Create(class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return class, nil
}

// Update applies a sparse update to an owned class.
func (s *ScheduleService) Update(userID, id uint64, req dto.UpdateClassRequest) (*models.Class, error) {
	class, err := s.classRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find class: %w", err)
	}

	if req.SubjectName.Set && req.SubjectName.Valid && req.SubjectName.Value != "" {
		class.SubjectName = req.SubjectName.Value
	}
	if req.DayOfWeek.Set && req.DayOfWeek.Valid {
		day, err := models.ParseDay(req.DayOfWeek.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		class.DayOfWeek = day
	}
	if req.StartTime.Set && req.StartTime.Valid && req.StartTime.Value != "" {
		class.StartTime = req.StartTime.Value
	}
	if req.EndTime.Set && req.EndTime.Valid && req.EndTime.Value != "" {
		class.EndTime = req.EndTime.Value
	}
	if req.Location.Set {
		class.Location = optionalText(req.Location)
	}
	if req.Professor.Set {
		class.Professor = optionalText(req.Professor)
	}
	if req.SemesterYear.Set && req.SemesterYear.Valid && req.SemesterYear.Value != 0 {
		class.SemesterYear = req.SemesterYear.Value
	}
	if req.SemesterPeriod.Set && req.SemesterPeriod.Valid && req.SemesterPeriod.Value != "" {
		class.SemesterPeriod = req.SemesterPeriod.Value
	}

	if err := s.classRepo.Save(class); err != nil {
		return nil, fmt.Errorf("failed to update class: %w", err)
	}
	return class, nil
}

// Delete removes an owned class.
func (s *ScheduleService) Delete(userID, id uint64) error {
	affected, err := s.classRepo.Delete(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearSemester deletes every class the user owns and reports how many
// went away. Zero matches is a success.
func (s *ScheduleService) ClearSemester(userID uint64) (int64, error) {
	return s.classRepo.DeleteAllByUser(userID)
}
