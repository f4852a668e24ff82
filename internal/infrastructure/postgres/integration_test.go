//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/migration"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-count-api/pkg/config"
)

const shop = "demo.myshopify.com"

// newTestPool levanta PostgreSQL en un contenedor y aplica las migraciones embebidas.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("stock_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	m, err := migration.New(pool, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	return pool
}

func seedProduct(t *testing.T, tx *postgres.TxRunner, id string, updated time.Time, levels ...int) {
	t.Helper()
	p := entity.Product{ID: id, Shop: shop, Title: "Producto " + id, ProductType: "Ropa", UpdatedAt: updated}
	v := entity.Variant{ID: id + "-v", ProductID: id, Shop: shop, Title: "Talla M", Price: decimal.RequireFromString("12.50"), UpdatedAt: updated}
	for i, n := range levels {
		v.Levels = append(v.Levels, entity.InventoryLevel{
			VariantID: v.ID, LocationID: "loc-" + string(rune('a'+i)), LocationName: "Bodega", Available: n, UpdatedAt: updated,
		})
	}
	p.Variants = []entity.Variant{v}
	err := tx.RunCatalog(context.Background(), func(c repository.CatalogRepository) error {
		return c.UpsertProduct(context.Background(), &p)
	})
	require.NoError(t, err)
}

func TestCatalogYConteos_Integracion(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	tx := postgres.NewTxRunner(pool)
	catalog := postgres.NewCatalogRepository(pool)
	counts := postgres.NewCountRepository(pool)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedProduct(t, tx, "p1", base, 3, 4)
	seedProduct(t, tx, "p2", base.Add(time.Hour), 1)

	total, err := catalog.CountVariants(ctx, repository.VariantFilter{Shop: shop})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	require.NoError(t, counts.Add(ctx, &entity.PhysicalCount{ID: "c1", VariantID: "p1-v", Shop: shop, Counted: 2, CreatedAt: base}))
	require.NoError(t, counts.Add(ctx, &entity.PhysicalCount{ID: "c2", VariantID: "p1-v", Shop: shop, Counted: 7, CreatedAt: base.Add(time.Minute)}))

	err = counts.Add(ctx, &entity.PhysicalCount{ID: "c3", VariantID: "no-existe", Shop: shop, Counted: 1, CreatedAt: base})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page, err := catalog.ListVariantPage(ctx, repository.VariantFilter{Shop: shop}, repository.VariantPage{Limit: 10, WithLevels: true})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "p2-v", page[0].VariantID, "orden por actualización descendente")
	assert.Empty(t, page[0].Counts)
	require.Len(t, page[1].Counts, 1)
	assert.Equal(t, 7, page[1].Counts[0].Counted, "solo el último conteo")
	assert.Len(t, page[1].Levels, 2)
	assert.True(t, decimal.RequireFromString("12.5").Equal(page[1].Price))

	filtered, err := catalog.ListVariantPage(ctx, repository.VariantFilter{Shop: shop, Title: "Producto p1"}, repository.VariantPage{Limit: 10})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Empty(t, filtered[0].Levels)

	locs, err := catalog.ListLocations(ctx, shop, 10)
	require.NoError(t, err)
	assert.Len(t, locs, 2)

	removed, err := catalog.DeleteProductsNotIn(ctx, shop, []string{"p2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	history, err := counts.ListByVariant(ctx, shop, "p1-v", 10)
	require.NoError(t, err)
	assert.Empty(t, history, "los conteos se eliminan en cascada con la variante")
}

func upsert(t *testing.T, tx *postgres.TxRunner, p *entity.Product) {
	t.Helper()
	require.NoError(t, tx.RunCatalog(context.Background(), func(c repository.CatalogRepository) error {
		return c.UpsertProduct(context.Background(), p)
	}))
}

func TestUpsertProduct_ListaParcialConservaVariantesYConteos(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	tx := postgres.NewTxRunner(pool)
	catalog := postgres.NewCatalogRepository(pool)
	counts := postgres.NewCountRepository(pool)

	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	level := func(variantID, loc string, n int) entity.InventoryLevel {
		return entity.InventoryLevel{VariantID: variantID, LocationID: loc, LocationName: "Bodega", Available: n, UpdatedAt: at}
	}
	full := &entity.Product{ID: "p1", Shop: shop, Title: "Camiseta", UpdatedAt: at, Variants: []entity.Variant{
		{ID: "v1", ProductID: "p1", Shop: shop, Title: "S", UpdatedAt: at, Levels: []entity.InventoryLevel{level("v1", "loc-a", 3), level("v1", "loc-b", 1)}},
		{ID: "v2", ProductID: "p1", Shop: shop, Title: "M", UpdatedAt: at, Levels: []entity.InventoryLevel{level("v2", "loc-a", 5)}},
	}}
	upsert(t, tx, full)
	require.NoError(t, counts.Add(ctx, &entity.PhysicalCount{ID: "c1", VariantID: "v2", Shop: shop, Counted: 5, CreatedAt: at}))

	// La plataforma solo entregó la primera página de variantes y de niveles.
	partial := &entity.Product{ID: "p1", Shop: shop, Title: "Camiseta", UpdatedAt: at, VariantsPartial: true, Variants: []entity.Variant{
		{ID: "v1", ProductID: "p1", Shop: shop, Title: "S", UpdatedAt: at, LevelsPartial: true, Levels: []entity.InventoryLevel{level("v1", "loc-a", 9)}},
	}}
	upsert(t, tx, partial)

	total, err := catalog.CountVariants(ctx, repository.VariantFilter{Shop: shop})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "v2 no se borra si la lista de variantes vino incompleta")

	history, err := counts.ListByVariant(ctx, shop, "v2", 10)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	page, err := catalog.ListVariantPage(ctx, repository.VariantFilter{Shop: shop}, repository.VariantPage{Limit: 10, WithLevels: true})
	require.NoError(t, err)
	for _, rec := range page {
		if rec.VariantID == "v1" {
			assert.Len(t, rec.Levels, 2, "loc-b se conserva con niveles parciales")
		}
	}

	// Con la lista completa sí se podan variantes y niveles ausentes.
	complete := &entity.Product{ID: "p1", Shop: shop, Title: "Camiseta", UpdatedAt: at, Variants: []entity.Variant{
		{ID: "v1", ProductID: "p1", Shop: shop, Title: "S", UpdatedAt: at, Levels: []entity.InventoryLevel{level("v1", "loc-a", 9)}},
	}}
	upsert(t, tx, complete)

	total, err = catalog.CountVariants(ctx, repository.VariantFilter{Shop: shop})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	page, err = catalog.ListVariantPage(ctx, repository.VariantFilter{Shop: shop}, repository.VariantPage{Limit: 10, WithLevels: true})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Len(t, page[0].Levels, 1)
	assert.Equal(t, 9, page[0].Levels[0].Available)
}

func TestSesiones_Integracion(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := postgres.NewSessionRepository(pool)

	s, err := repo.FindOffline(ctx, shop)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.Store(ctx, &entity.Session{ID: entity.OfflineSessionID(shop), Shop: shop, AccessToken: "t1"}))
	require.NoError(t, repo.Store(ctx, &entity.Session{ID: entity.OfflineSessionID(shop), Shop: shop, AccessToken: "t2"}))

	s, err = repo.FindOffline(ctx, shop)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "t2", s.AccessToken)

	require.NoError(t, repo.DeleteByShop(ctx, shop))
	s, err = repo.FindOffline(ctx, shop)
	require.NoError(t, err)
	assert.Nil(t, s)
}
