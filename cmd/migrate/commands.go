package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aqario/backend/internal/infrastructure/logger"
	"github.com/aqario/backend/internal/infrastructure/migration"
	"github.com/aqario/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// withMigrator runs fn against an open migrator and closes it afterwards
func withMigrator(app *cli, fn func(m *migration.Migrator) error) error {
	m, err := app.migrator()
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func upCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(app, func(m *migration.Migrator) error { return m.Up() })
		},
	}
}

func downCmd(app *cli) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("down drops every table; rerun with --confirm")
			}
			return withMigrator(app, func(m *migration.Migrator) error { return m.Down() })
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm rolling back every migration")
	return cmd
}

func stepsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "steps <n>",
		Short: "Apply n migrations (negative n rolls back)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return withMigrator(app, func(m *migration.Migrator) error { return m.Steps(n) })
		},
	}
}

func gotoCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <version>",
		Short: "Migrate up or down to a specific version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return withMigrator(app, func(m *migration.Migrator) error { return m.GoTo(uint(version)) })
		},
	}
}

func versionCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(app, func(m *migration.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if version == 0 {
					app.log.Info("No migrations applied")
					return nil
				}
				app.log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
				return nil
			})
		},
	}
}

func forceCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Set the version without running migrations and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			app.log.Warn("Forcing migration version", zap.Int("version", version))
			return withMigrator(app, func(m *migration.Migrator) error { return m.Force(version) })
		},
	}
}

func createCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> [description...]",
		Short: "Create a new up/down migration pair",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mf, err := migration.CreateMigration(app.migrationsDir(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			app.log.Info("Migration created",
				zap.Uint("version", mf.Version),
				zap.String("up_file", mf.UpPath),
				zap.String("down_file", mf.DownPath))
			return nil
		},
	}
}

func listCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List migration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := migration.ListMigrations(app.migrationsDir())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				app.log.Info("No migrations found", zap.String("path", app.migrationsDir()))
				return nil
			}
			out := cmd.OutOrStdout()
			for _, f := range files {
				status := ""
				if f.UpPath == "" || f.DownPath == "" {
					status = " (incomplete pair)"
				}
				fmt.Fprintf(out, "  %s%s\n", f.BaseName(), status)
			}
			return nil
		},
	}
}

func seedCmd(app *cli) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the superadmin and the alpha/beta demo tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gormLog := logger.NewGormLogger(app.log, gormlogger.Warn,
				logger.WithSlowThreshold(app.cfg.Database.SlowThreshold),
				logger.WithRedactedParams(true))
			database, err := persistence.NewDatabase(&app.cfg.Database, gormLog)
			if err != nil {
				return err
			}
			defer database.Close()

			if database.Driver == "sqlite" {
				if err := database.AutoMigrate(); err != nil {
					return err
				}
			}
			if err := persistence.InstallTenantGuard(database.DB); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			_, err = migration.Seed(ctx, database.DB, migration.SeedOptions{Password: password}, app.log)
			return err
		},
	}
	cmd.Flags().StringVar(&password, "password", migration.DefaultSeedPassword, "password for every seeded account")
	return cmd
}
