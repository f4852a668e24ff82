// stockctl tareas operativas fuera del servidor HTTP: migraciones, sincronización manual,
// borrado de conteos y datos de prueba.
//
// Uso: go run ./cmd/stockctl <comando> [flags]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-count-api/internal/application/ports"
	infracache "github.com/jhoicas/stock-count-api/internal/infrastructure/cache"
	infraevents "github.com/jhoicas/stock-count-api/internal/infrastructure/events"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-count-api/pkg/config"
	"github.com/jhoicas/stock-count-api/pkg/logger"
)

// env dependencias compartidas por los subcomandos; se construyen en PersistentPreRunE
// y se liberan en execute.
type env struct {
	cfg      *config.Config
	log      *logger.Logger
	pool     *pgxpool.Pool
	cleanups []func()
}

func (e *env) close() {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i]()
	}
}

// optionsCache solo tiene sentido con Redis: la caché en memoria vive en el proceso del servidor.
func (e *env) optionsCache(ctx context.Context) (ports.OptionsCache, error) {
	if !e.cfg.Redis.Enabled() {
		return nil, nil
	}
	client, err := infracache.NewRedisClient(ctx, e.cfg.Redis.Addr, e.cfg.Redis.Password, e.cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	e.cleanups = append(e.cleanups, func() { _ = client.Close() })
	return infracache.NewRedisOptionsCache(client, e.cfg.Redis.OptionsTTL, e.log.Component("cache")), nil
}

func (e *env) publisher() ports.EventPublisher {
	if !e.cfg.Kafka.Enabled() {
		return infraevents.NewLogPublisher(e.log.Component("events"))
	}
	kp := infraevents.NewKafkaPublisher(infraevents.NewKafkaWriter(e.cfg.Kafka.Brokers, e.cfg.Kafka.Topic), e.log.Component("events"))
	e.cleanups = append(e.cleanups, func() { _ = kp.Close() })
	return kp
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}
	root := &cobra.Command{
		Use:           "stockctl",
		Short:         "Tareas operativas de la app de conteo de inventario",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			e.pool = pool
			e.cleanups = append(e.cleanups, pool.Close)
			return nil
		},
	}
	root.AddCommand(newMigrateCmd(e), newSyncCmd(e), newCountsCmd(e), newSessionsCmd(e), newSeedCmd(e))
	return root, e
}

// execute corre el comando y libera el pool y los clientes aunque RunE falle
// (cobra no llama PersistentPostRun en ese caso).
func execute(ctx context.Context, root *cobra.Command, e *env) error {
	defer e.close()
	return root.ExecuteContext(ctx)
}

func main() {
	root, e := newRootCmd()
	if err := execute(context.Background(), root, e); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
