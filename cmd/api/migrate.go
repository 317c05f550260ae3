package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pg "petshop-orders/internal/adapters/storage/postgres"
	"petshop-orders/internal/platform/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply Postgres migrations for the order cache",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if cfg.DBDSN == "" {
			return errors.New("migrate: DB_DSN is required")
		}
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("migrate: open: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
