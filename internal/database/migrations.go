package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Session lookup by token + expiry happens on every protected request
		{"sessions", "idx_sessions_user_id", "user_id"},
		{"sessions", "idx_sessions_expires_at", "expires_at"},

		// Task indexes for per-user filtering and due-date ordering
		{"tasks", "idx_tasks_user_id", "user_id"},
		{"tasks", "idx_tasks_due_date", "due_date"},
		{"tasks", "idx_tasks_is_completed", "is_completed"},

		// Class indexes for the schedule listing order
		{"classes", "idx_classes_user_id", "user_id"},
		{"classes", "idx_classes_day_start", "day_of_week, start_time"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			fmt.Printf("Index %s already exists, skipping\n", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
