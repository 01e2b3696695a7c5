package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed scripts/*.sql
var migrationScripts embed.FS

// Up applies all pending migrations.
func Up(database *gorm.DB) error {
	return run(database, func(db *sql.DB) error {
		return goose.Up(db, "scripts")
	})
}

// Down rolls back the most recent migration.
func Down(database *gorm.DB) error {
	return run(database, func(db *sql.DB) error {
		return goose.Down(db, "scripts")
	})
}

// Status prints the migration state to the goose logger.
func Status(database *gorm.DB) error {
	return run(database, func(db *sql.DB) error {
		return goose.Status(db, "scripts")
	})
}

func run(database *gorm.DB, fn func(db *sql.DB) error) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationScripts)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := fn(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
