package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-count-api/internal/infrastructure/migration"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o revierte el esquema embebido",
	}
	run := func(down bool) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			m, err := migration.New(e.pool, e.log.Component("migrate"))
			if err != nil {
				return err
			}
			defer m.Close()
			if down {
				return m.Down()
			}
			return m.Up()
		}
	}
	cmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Aplica las migraciones pendientes", Args: cobra.NoArgs, RunE: run(false)},
		&cobra.Command{Use: "down", Short: "Revierte todas las migraciones (borra los datos)", Args: cobra.NoArgs, RunE: run(true)},
	)
	return cmd
}
