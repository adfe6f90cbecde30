package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/models"
)

// AddIndexes makes sure the indexes declared on the models exist. AutoMigrate
// skips indexes on tables created before the index was declared.
func AddIndexes(db *gorm.DB, log *zap.Logger) error {
	indexes := []struct {
		model interface{}
		name  string
	}{
		// One schedule per user and week
		{&models.Schedule{}, "idx_schedules_user_week"},
		// Week listing and bulk confirm
		{&models.Schedule{}, "idx_schedules_week"},
		{&models.User{}, "idx_users_telegram_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug("index already exists, skipping", zap.String("index", idx.name))
			continue
		}

		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info("created index", zap.String("index", idx.name))
	}

	return nil
}
