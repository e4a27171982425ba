package main

import (
	"fmt"
	"os"

	"agapept/internal/config"
	"agapept/internal/database"
	"agapept/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the submission store schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config.yaml")

	open := func() (*sqlx.DB, error) {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := logger.Initialize(cfg.Logger); err != nil {
			return nil, fmt.Errorf("initialize logger: %w", err)
		}
		logger.Get().Debug("Opening database", zap.String("path", cfg.DB.Path))
		return database.NewSQLXSQLiteDB(cfg)
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.RunMigrations(db.DB); err != nil {
				return err
			}
			return printVersion(cmd, db)
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.RollbackMigrations(db.DB, steps); err != nil {
				return err
			}
			return printVersion(cmd, db)
		},
	}
	downCmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			defer db.Close()
			return printVersion(cmd, db)
		},
	}

	root.AddCommand(upCmd, downCmd, versionCmd)
	return root
}

func printVersion(cmd *cobra.Command, db *sqlx.DB) error {
	version, dirty, err := database.MigrationVersion(db.DB)
	if err != nil {
		return err
	}
	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty)\n", version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return nil
}
