// Package migrate implements the database migration command.
package migrate

import (
	"errors"
	"fmt"
	"strconv"

	gomigrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/AyushiSoni2003/Scrape-saas-news/cmd/common"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
)

const defaultSource = "file://migrations"

// Command returns the migrate command with its up, down and version subcommands.
func Command() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.PersistentFlags().StringVar(&source, "source", defaultSource, "migration source URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(source, func(m *gomigrate.Migrate, log logger.Logger) error {
				if err := m.Up(); err != nil {
					if errors.Is(err, gomigrate.ErrNoChange) {
						log.Info("No new migrations to apply")
						return nil
					}
					return fmt.Errorf("migrate up: %w", err)
				}
				log.Info("Migrations applied")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			return withMigrator(source, func(m *gomigrate.Migrate, log logger.Logger) error {
				if err := m.Steps(-steps); err != nil {
					if errors.Is(err, gomigrate.ErrNoChange) {
						log.Info("Nothing to roll back")
						return nil
					}
					return fmt.Errorf("migrate down: %w", err)
				}
				log.Info("Migrations rolled back", logger.Int("steps", steps))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(c *cobra.Command, _ []string) error {
			return withMigrator(source, func(m *gomigrate.Migrate, _ logger.Logger) error {
				version, dirty, err := m.Version()
				if errors.Is(err, gomigrate.ErrNilVersion) {
					c.Println("no migrations applied")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				c.Printf("version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(source string, fn func(*gomigrate.Migrate, logger.Logger) error) error {
	cfg, log, err := common.LoadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	m, err := gomigrate.New(source, cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn("Failed to close migrator",
				logger.Any("source_error", srcErr),
				logger.Any("database_error", dbErr))
		}
	}()

	return fn(m, log)
}
