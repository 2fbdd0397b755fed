package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := migrate.New(source, a.cfg.Database.URL())
			if err != nil {
				return fmt.Errorf("create migrate instance: %w", err)
			}
			defer func() { _, _ = m.Close() }()

			switch args[0] {
			case "up":
				err = m.Up()
			case "down":
				err = m.Down()
			}
			if errors.Is(err, migrate.ErrNoChange) {
				a.logger.Info("no migrations to apply")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}

			version, dirty, _ := m.Version()
			a.logger.Info("migration completed",
				zap.String("direction", args[0]),
				zap.Uint("version", version),
				zap.Bool("dirty", dirty),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "file://migrations", "migrations source URL")
	return cmd
}
