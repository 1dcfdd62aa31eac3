package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// allModels lists every domain model in dependency order: workspaces before
// boards, boards before their content, so foreign keys resolve on creation
func allModels() []modelInfo {
	return []modelInfo{
		{&domain.User{}, "users"},
		{&domain.Workspace{}, "workspaces"},
		{&domain.WorkspaceMember{}, "workspace_members"},
		{&domain.Board{}, "boards"},
		{&domain.BoardMember{}, "board_members"},
		{&domain.KanbanList{}, "kanban_lists"},
		{&domain.KanbanCard{}, "kanban_cards"},
		{&domain.CardComment{}, "card_comments"},
		{&domain.Label{}, "labels"},
		{&domain.WorkspaceInvite{}, "workspace_invites"},
		{&domain.BoardInvite{}, "board_invites"},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := allModels()
	targets := make([]interface{}, len(models))
	for i, m := range models {
		targets[i] = m.model
	}
	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate runs auto-migration model by model, logging whether each
// table already existed. GORM only adds missing columns and indexes on
// existing tables, so this is safe against a live schema.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	models := allModels()

	logger.Info("Starting safe auto-migration", zap.Int("total_models", len(models)))

	for _, m := range models {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed", zap.Int("tables_migrated", len(models)))
	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate with linear backoff between
// attempts, covering the window where the database is still starting up
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
