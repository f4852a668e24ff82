package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

var _ repository.CountRepository = (*CountRepo)(nil)

// CountRepo log de conteos físicos sobre PostgreSQL. Los conteos no se editan: solo se agregan o se borran en bloque.
type CountRepo struct {
	q Querier
}

// NewCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCountRepository(q Querier) *CountRepo {
	return &CountRepo{q: q}
}

// Add inserta un conteo. Si la variante no existe devuelve domain.ErrNotFound.
func (r *CountRepo) Add(ctx context.Context, c *entity.PhysicalCount) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO physical_counts (id, variant_id, shop, counted, user_id, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`,
		c.ID, c.VariantID, c.Shop, c.Counted, c.UserID, c.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert physical count: %w", err)
	}
	return nil
}

// ClearByShop borra todos los conteos de la tienda y devuelve cuántos se eliminaron.
func (r *CountRepo) ClearByShop(ctx context.Context, shop string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM physical_counts WHERE shop = $1`, shop)
	if err != nil {
		return 0, fmt.Errorf("clear physical counts: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ListByVariant historial de conteos de una variante, más reciente primero.
func (r *CountRepo) ListByVariant(ctx context.Context, shop, variantID string, limit int) ([]entity.PhysicalCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, variant_id, shop, counted, COALESCE(user_id, ''), created_at
		FROM physical_counts
		WHERE shop = $1 AND variant_id = $2
		ORDER BY created_at DESC, id
		LIMIT $3`, shop, variantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list physical counts: %w", err)
	}
	defer rows.Close()

	var out []entity.PhysicalCount
	for rows.Next() {
		var c entity.PhysicalCount
		if err := rows.Scan(&c.ID, &c.VariantID, &c.Shop, &c.Counted, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan physical count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
