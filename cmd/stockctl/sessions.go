package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-count-api/internal/application/auth"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/postgres"
)

func newSessionsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Operaciones sobre las sesiones de las tiendas",
	}
	var shop string
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Borra las sesiones de una tienda que desinstaló la app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := auth.NewUseCase(auth.Config{
				APIKey:     e.cfg.Platform.APIKey,
				APISecret:  e.cfg.Platform.APISecret,
				ShopSuffix: e.cfg.Platform.ShopDomainSuffix,
			}, postgres.NewSessionRepository(e.pool), nil, e.log.Component("auth"))
			if err := uc.Uninstall(cmd.Context(), shop); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesiones de %s eliminadas\n", shop)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&shop, "shop", "", "dominio de la tienda")
	_ = deleteCmd.MarkFlagRequired("shop")
	cmd.AddCommand(deleteCmd)
	return cmd
}
