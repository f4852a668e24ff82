package repository

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
)

// CountRepository puerto para el log de conteos físicos (solo inserción y borrado masivo).
type CountRepository interface {
	Add(ctx context.Context, count *entity.PhysicalCount) error
	ClearByShop(ctx context.Context, shop string) (int64, error)
	ListByVariant(ctx context.Context, shop, variantID string, limit int) ([]entity.PhysicalCount, error)
}
