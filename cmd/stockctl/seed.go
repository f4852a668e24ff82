package main

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/postgres"
)

var seedSizes = []string{"XS", "S", "M", "L", "XL"}

// seedOptions parámetros del catálogo de prueba.
type seedOptions struct {
	Shop      string
	Products  int
	Locations int
	Seed      uint64
	CountRate float64 // fracción de variantes que reciben un conteo
}

// fakeCatalog genera un catálogo determinista para la semilla dada. Los GIDs dependen solo del índice,
// así que re-sembrar la misma tienda actualiza en lugar de duplicar.
func fakeCatalog(f *gofakeit.Faker, opts seedOptions, now time.Time) []*entity.Product {
	locations := make([]entity.Location, opts.Locations)
	for i := range locations {
		locations[i] = entity.Location{
			ID:   fmt.Sprintf("gid://shopify/Location/%d", i+1),
			Name: "Bodega " + f.City(),
		}
	}

	products := make([]*entity.Product, 0, opts.Products)
	for i := 0; i < opts.Products; i++ {
		productID := fmt.Sprintf("gid://shopify/Product/%d", 1000+i)
		p := &entity.Product{
			ID:          productID,
			Shop:        opts.Shop,
			Title:       f.ProductName(),
			ProductType: f.ProductCategory(),
			UpdatedAt:   now.Add(-time.Duration(i) * time.Minute),
		}
		nVariants := f.Number(1, len(seedSizes))
		for j := 0; j < nVariants; j++ {
			variantID := fmt.Sprintf("gid://shopify/ProductVariant/%d", (1000+i)*10+j)
			v := entity.Variant{
				ID:        variantID,
				ProductID: productID,
				Shop:      opts.Shop,
				Title:     seedSizes[j] + " / " + f.Color(),
				SKU:       fmt.Sprintf("SKU-%05d-%s", i, seedSizes[j]),
				Price:     decimal.NewFromFloat(f.Price(5, 250)).Round(2),
				UpdatedAt: p.UpdatedAt,
			}
			for _, loc := range locations {
				if len(locations) > 1 && !f.Bool() {
					continue
				}
				v.Levels = append(v.Levels, entity.InventoryLevel{
					VariantID:    variantID,
					LocationID:   loc.ID,
					LocationName: loc.Name,
					Available:    f.Number(0, 120),
					UpdatedAt:    now,
				})
			}
			p.Variants = append(p.Variants, v)
		}
		products = append(products, p)
	}
	return products
}

// fakeCounts genera conteos para una fracción de las variantes: la mitad coincide con el inventario
// y el resto se desvía unas unidades, para que el listado admin muestre los tres estados.
func fakeCounts(f *gofakeit.Faker, products []*entity.Product, rate float64, now time.Time) []*entity.PhysicalCount {
	var out []*entity.PhysicalCount
	for _, p := range products {
		for _, v := range p.Variants {
			if f.Float64Range(0, 1) >= rate {
				continue
			}
			total := 0
			for _, l := range v.Levels {
				total += l.Available
			}
			counted := total
			if f.Bool() {
				counted = max(0, total+f.Number(-5, 5))
			}
			out = append(out, &entity.PhysicalCount{
				ID:        uuid.New().String(),
				VariantID: v.ID,
				Shop:      p.Shop,
				Counted:   counted,
				UserID:    "seed",
				CreatedAt: now,
			})
		}
	}
	return out
}

func newSeedCmd(e *env) *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga un catálogo de prueba (y conteos opcionales) para una tienda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Products <= 0 || opts.Locations <= 0 {
				return fmt.Errorf("--products y --locations deben ser mayores que 0")
			}
			ctx := cmd.Context()
			now := time.Now().UTC()
			f := gofakeit.New(opts.Seed)
			products := fakeCatalog(f, opts, now)

			err := postgres.NewTxRunner(e.pool).RunCatalog(ctx, func(catalog repository.CatalogRepository) error {
				for _, p := range products {
					if err := catalog.UpsertProduct(ctx, p); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			countRepo := postgres.NewCountRepository(e.pool)
			seeded := fakeCounts(f, products, opts.CountRate, now)
			for _, c := range seeded {
				if err := countRepo.Add(ctx, c); err != nil {
					return err
				}
			}
			e.log.Info().
				Str("shop", opts.Shop).
				Int("products", len(products)).
				Int("counts", len(seeded)).
				Msg("catálogo de prueba cargado")
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Shop, "shop", "", "dominio de la tienda")
	cmd.Flags().IntVar(&opts.Products, "products", 50, "cantidad de productos")
	cmd.Flags().IntVar(&opts.Locations, "locations", 2, "cantidad de ubicaciones")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 42, "semilla del generador")
	cmd.Flags().Float64Var(&opts.CountRate, "count-rate", 0.6, "fracción de variantes con conteo (0..1)")
	_ = cmd.MarkFlagRequired("shop")
	return cmd
}
