package repository

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
)

// VariantFilter filtros que sí se empujan a la consulta (el de estado se aplica después).
type VariantFilter struct {
	Shop        string
	Title       string // coincidencia exacta
	ProductType string // coincidencia exacta
}

// VariantPage parámetros de la página a traer.
type VariantPage struct {
	Limit      int
	Offset     int
	WithLevels bool // la vista de staff no necesita niveles de inventario
}

// CatalogRepository define el puerto de persistencia del catálogo sincronizado (productos, variantes, niveles).
// Todas las lecturas van acotadas por tienda.
type CatalogRepository interface {
	CountVariants(ctx context.Context, f VariantFilter) (int, error)
	// ListVariantPage ordena por updated_at de la variante desc e incluye solo el último conteo físico.
	ListVariantPage(ctx context.Context, f VariantFilter, p VariantPage) ([]reconciliation.VariantRecord, error)
	VariantExists(ctx context.Context, shop, variantID string) (bool, error)

	ListTitles(ctx context.Context, shop string, limit int) ([]string, error)
	ListProductTypes(ctx context.Context, shop string, limit int) ([]string, error)
	ListLocations(ctx context.Context, shop string, limit int) ([]entity.Location, error)

	// UpsertProduct inserta o actualiza el producto, sus variantes y sus niveles. Borra las variantes
	// y niveles ausentes salvo que la lista venga marcada como parcial.
	UpsertProduct(ctx context.Context, product *entity.Product) error
	// DeleteProductsNotIn elimina productos de la tienda que ya no existen en la plataforma.
	DeleteProductsNotIn(ctx context.Context, shop string, keepIDs []string) (int64, error)
}
