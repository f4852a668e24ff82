package catalog

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el repositorio de catálogo atado a esa tx.
// La sincronización reemplaza productos, variantes y niveles de forma atómica.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(catalog repository.CatalogRepository) error) error
}
