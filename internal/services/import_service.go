package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/smartunibot/unibot-api/internal/dto"
	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/repository"
)

// RowSource yields spreadsheet rows as rows of cells. Implemented by the
// Google Sheets client and the uploaded-xlsx reader.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// ImportResult counts what an import run did. Re-running the same source
// yields Inserted == 0: rows already present are never overwritten.
type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// ImportService performs the one-way spreadsheet sync. Bad rows are
// skipped and logged; only a failure to read the source aborts the batch.
type ImportService struct {
	taskRepo  repository.TaskRepository
	classRepo repository.ClassRepository
}

// NewImportService creates a new ImportService.
func NewImportService(taskRepo repository.TaskRepository, classRepo repository.ClassRepository) *ImportService {
	return &ImportService{taskRepo: taskRepo, classRepo: classRepo}
}

// Task rows: id | user_id | title | subject | due_date | is_completed | created_at
func (s *ImportService) ImportTasks(ctx context.Context, userID uint64, src RowSource) (ImportResult, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read rows: %w", err)
	}

	var result ImportResult
	for i, row := range rows {
		sheetID := cell(row, 0)
		rowUser := cell(row, 1)
		title := cell(row, 2)
		dueDate := cell(row, 4)

		if sheetID == "" || rowUser == "" || title == "" || dueDate == "" {
			log.Printf("import tasks: row %d missing required cells, skipping", i)
			result.Skipped++
			continue
		}
		if !ownedBy(rowUser, userID) {
			result.Skipped++
			continue
		}

		exists, err := s.taskRepo.ExistsBySheetID(sheetID)
		if err != nil {
			return result, fmt.Errorf("failed to check row %s: %w", sheetID, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		due, err := dto.ParseDate(dueDate)
		if err != nil {
			log.Printf("import tasks: row %d has bad due date %q, skipping", i, dueDate)
			result.Skipped++
			continue
		}

		id := sheetID
		task := &models.Task{
			UserID:      userID,
			Title:       title,
			Subject:     nullable(cell(row, 3)),
			DueDate:     due,
			Priority:    models.PriorityMedium,
			IsCompleted: parseSheetBool(cell(row, 5)),
			SheetID:     &id,
		}
		if task.IsCompleted {
			completed := due
			task.CompletedAt = &completed
		}
		if err := s.taskRepo.Create(task); err != nil {
			log.Printf("import tasks: row %d insert failed: %v", i, err)
			result.Skipped++
			continue
		}
		result.Inserted++
	}
	return result, nil
}

// Class rows: id | user_id | subject_name | day_of_week | start_time | end_time | location | professor
func (s *ImportService) ImportClasses(ctx context.Context, userID uint64, src RowSource) (ImportResult, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read rows: %w", err)
	}

	var result ImportResult
	for i, row := range rows {
		sheetID := cell(row, 0)
		rowUser := cell(row, 1)
		subject := cell(row, 2)
		dayRaw := cell(row, 3)
		start := cell(row, 4)
		end := cell(row, 5)

		if sheetID == "" || rowUser == "" || subject == "" || dayRaw == "" || start == "" || end == "" {
			log.Printf("import classes: row %d missing required cells, skipping", i)
			result.Skipped++
			continue
		}
		if !ownedBy(rowUser, userID) {
			result.Skipped++
			continue
		}

		exists, err := s.classRepo.ExistsBySheetID(sheetID)
		if err != nil {
			return result, fmt.Errorf("failed to check row %s: %w", sheetID, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		dayNum, err := strconv.Atoi(dayRaw)
		if err != nil {
			log.Printf("import classes: row %d has non-numeric day %q, skipping", i, dayRaw)
			result.Skipped++
			continue
		}
		// Sheets exported from older deployments use 1-7 Monday-first
		// days. The encodings agree on 1..6, so only 0 and 7 disambiguate.
		day, err := models.ParseDay(dayNum)
		if err != nil {
			day, err = models.FromMondayFirst(dayNum)
		}
		if err != nil {
			log.Printf("import classes: row %d has bad day %q, skipping", i, dayRaw)
			result.Skipped++
			continue
		}

		id := sheetID
		class := &models.Class{
			UserID:         userID,
			SubjectName:    subject,
			DayOfWeek:      day,
			StartTime:      start,
			EndTime:        end,
			Location:       nullable(cell(row, 6)),
			Professor:      nullable(cell(row, 7)),
			SemesterYear:   time.Now().Year(),
			SemesterPeriod: DefaultSemesterPeriod,
			SheetID:        &id,
		}
		if err := s.classRepo.Create(class); err != nil {
			log.Printf("import classes: row %d insert failed: %v", i, err)
			result.Skipped++
			continue
		}
		result.Inserted++
	}
	return result, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func ownedBy(rowUser string, userID uint64) bool {
	n, err := strconv.ParseUint(rowUser, 10, 64)
	return err == nil && n == userID
}

// parseSheetBool coerces the string literals spreadsheets produce.
func parseSheetBool(s string) bool {
	return s == "TRUE" || s == "true"
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
