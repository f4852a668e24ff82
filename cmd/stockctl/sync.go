package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-count-api/internal/application/catalog"
	"github.com/jhoicas/stock-count-api/internal/application/counts"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/platform"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/postgres"
)

func newSyncCmd(e *env) *cobra.Command {
	var shop string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sincroniza el catálogo de una tienda con su sesión offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := e.optionsCache(cmd.Context())
			if err != nil {
				return err
			}
			client := platform.NewClient(platform.Config{
				APIKey:     e.cfg.Platform.APIKey,
				APISecret:  e.cfg.Platform.APISecret,
				APIVersion: e.cfg.Platform.APIVersion,
				RateLimit:  e.cfg.Platform.RateLimit,
				Timeout:    time.Duration(e.cfg.Platform.RequestTimeoutSecs) * time.Second,
			}, e.log.Component("platform"))
			uc := catalog.NewSyncUseCase(
				postgres.NewTxRunner(e.pool),
				postgres.NewSessionRepository(e.pool),
				client, cache, e.publisher(), nil,
				e.log.Component("sync"),
			)
			out, err := uc.Sync(cmd.Context(), shop)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d variantes, %d productos eliminados)\n", out.Message, out.Variants, out.Removed)
			return nil
		},
	}
	cmd.Flags().StringVar(&shop, "shop", "", "dominio de la tienda (ej. demo.myshopify.com)")
	_ = cmd.MarkFlagRequired("shop")
	return cmd
}

func newCountsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Operaciones sobre los conteos físicos",
	}
	var shop string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Borra todos los conteos de la tienda (el inventario no se toca)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := counts.NewUseCase(
				postgres.NewCountRepository(e.pool),
				postgres.NewCatalogRepository(e.pool),
				e.publisher(), nil,
				e.log.Component("counts"),
			)
			out, err := uc.ClearAll(cmd.Context(), shop)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
	clearCmd.Flags().StringVar(&shop, "shop", "", "dominio de la tienda")
	_ = clearCmd.MarkFlagRequired("shop")
	cmd.AddCommand(clearCmd)
	return cmd
}
