package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/contracts-service/internal/repository"
)

// Statements run after AutoMigrate. They must stay valid on postgres and sqlite.
var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_contracts_end_date ON contracts (end_date);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status_end_date ON contracts (status, end_date);`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications (is_read, notified_at);`,
}

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
