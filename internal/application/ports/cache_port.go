package ports

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/application/dto"
)

// OptionsCache caché por tienda de las opciones de filtros (títulos, tipos, ubicaciones).
// Un miss devuelve (nil, false, nil). Se invalida al sincronizar el catálogo.
type OptionsCache interface {
	Get(ctx context.Context, shop string) (*dto.FilterOptions, bool, error)
	Set(ctx context.Context, shop string, opts *dto.FilterOptions) error
	Invalidate(ctx context.Context, shop string) error
}
