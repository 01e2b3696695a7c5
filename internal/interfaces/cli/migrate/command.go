package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/database"
	"campusdesk/internal/infrastructure/migration"
	"campusdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back, or inspect the embedded database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(gormDB *gorm.DB, log logger.Interface) error {
				log.Infow("running up migrations", "environment", env)
				if err := migration.Up(gormDB); err != nil {
					return err
				}
				log.Infow("migrations completed")
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(gormDB *gorm.DB, log logger.Interface) error {
				log.Infow("rolling back one migration", "environment", env)
				if err := migration.Down(gormDB); err != nil {
					return err
				}
				log.Infow("rollback completed")
				return nil
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(gormDB *gorm.DB, log logger.Interface) error {
				return migration.Status(gormDB)
			})
		},
	}
}

func withDatabase(fn func(gormDB *gorm.DB, log logger.Interface) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	gormDB, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(gormDB)

	return fn(gormDB, log)
}
