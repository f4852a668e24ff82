package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
	"github.com/jhoicas/stock-count-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Filtros de servidor: título y tipo por igualdad exacta; vacío = sin filtro.
const variantWhere = `
	WHERE v.shop = $1
	  AND ($2 = '' OR p.title = $2)
	  AND ($3 = '' OR p.product_type = $3)`

// CountVariants cuenta las variantes candidatas (sin filtro de estado).
func (r *CatalogRepo) CountVariants(ctx context.Context, f repository.VariantFilter) (int, error) {
	query := `
		SELECT count(*)
		FROM product_variants v
		JOIN products p ON p.id = v.product_id` + variantWhere
	var total int
	if err := r.q.QueryRow(ctx, query, f.Shop, f.Title, f.ProductType).Scan(&total); err != nil {
		return 0, fmt.Errorf("count variants: %w", err)
	}
	return total, nil
}

// ListVariantPage trae una página de variantes ordenadas por actualización (desc) con su último conteo.
// Con WithLevels también carga los niveles de inventario de la página en una segunda consulta.
func (r *CatalogRepo) ListVariantPage(ctx context.Context, f repository.VariantFilter, p repository.VariantPage) ([]reconciliation.VariantRecord, error) {
	query := `
		SELECT v.id, p.title, COALESCE(p.product_type, ''), COALESCE(v.title, ''), v.price,
		       lc.id, lc.counted, lc.user_id, lc.created_at
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		LEFT JOIN LATERAL (
			SELECT c.id, c.counted, c.user_id, c.created_at
			FROM physical_counts c
			WHERE c.variant_id = v.id
			ORDER BY c.created_at DESC, c.id
			LIMIT 1
		) lc ON true` + variantWhere + `
		ORDER BY v.updated_at DESC, v.id
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, f.Shop, f.Title, f.ProductType, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var (
		out   []reconciliation.VariantRecord
		index = map[string]int{}
	)
	for rows.Next() {
		var (
			rec     reconciliation.VariantRecord
			countID *string
			counted *int
			userID  *string
			at      *time.Time
		)
		if err := rows.Scan(&rec.VariantID, &rec.ProductTitle, &rec.ProductType, &rec.VariantTitle, &rec.Price,
			&countID, &counted, &userID, &at); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		if countID != nil && counted != nil {
			c := entity.PhysicalCount{ID: *countID, VariantID: rec.VariantID, Shop: f.Shop, Counted: *counted}
			if userID != nil {
				c.UserID = *userID
			}
			if at != nil {
				c.CreatedAt = *at
			}
			rec.Counts = []entity.PhysicalCount{c}
		}
		index[rec.VariantID] = len(out)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variants: %w", err)
	}
	if !p.WithLevels || len(out) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(out))
	for _, rec := range out {
		ids = append(ids, rec.VariantID)
	}
	lvlRows, err := r.q.Query(ctx, `
		SELECT variant_id, location_gid, COALESCE(location_name, ''), available, updated_at
		FROM variant_inventory_levels
		WHERE variant_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer lvlRows.Close()
	for lvlRows.Next() {
		var lvl entity.InventoryLevel
		if err := lvlRows.Scan(&lvl.VariantID, &lvl.LocationID, &lvl.LocationName, &lvl.Available, &lvl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		if i, ok := index[lvl.VariantID]; ok {
			out[i].Levels = append(out[i].Levels, lvl)
		}
	}
	if err := lvlRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory levels: %w", err)
	}
	return out, nil
}

// VariantExists indica si la variante pertenece a la tienda.
func (r *CatalogRepo) VariantExists(ctx context.Context, shop, variantID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM product_variants WHERE id = $1 AND shop = $2)`,
		variantID, shop,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("variant exists: %w", err)
	}
	return ok, nil
}

// ListTitles devuelve títulos de producto por actualización reciente (puede traer repetidos).
func (r *CatalogRepo) ListTitles(ctx context.Context, shop string, limit int) ([]string, error) {
	return r.listStrings(ctx, `
		SELECT title FROM products
		WHERE shop = $1
		ORDER BY updated_at DESC
		LIMIT $2`, shop, limit)
}

// ListProductTypes devuelve los tipos de producto distintos y no vacíos.
func (r *CatalogRepo) ListProductTypes(ctx context.Context, shop string, limit int) ([]string, error) {
	return r.listStrings(ctx, `
		SELECT DISTINCT product_type FROM products
		WHERE shop = $1 AND product_type IS NOT NULL AND product_type <> ''
		ORDER BY product_type
		LIMIT $2`, shop, limit)
}

func (r *CatalogRepo) listStrings(ctx context.Context, query, shop string, limit int) ([]string, error) {
	rows, err := r.q.Query(ctx, query, shop, limit)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect options: %w", err)
	}
	return out, nil
}

// ListLocations deriva las ubicaciones de los niveles de inventario de la tienda.
func (r *CatalogRepo) ListLocations(ctx context.Context, shop string, limit int) ([]entity.Location, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT ON (l.location_gid) l.location_gid, COALESCE(l.location_name, '')
		FROM variant_inventory_levels l
		JOIN product_variants v ON v.id = l.variant_id
		WHERE v.shop = $1
		ORDER BY l.location_gid
		LIMIT $2`, shop, limit)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var out []entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

// UpsertProduct inserta o actualiza el producto, sus variantes y sus niveles de inventario.
// Si la lista llegó completa, las variantes (con sus conteos, por cascada) y los niveles que ya no
// vienen se eliminan; con VariantsPartial o LevelsPartial solo se insertan o actualizan.
func (r *CatalogRepo) UpsertProduct(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, shop, title, product_type, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT (id) DO UPDATE
		SET shop = EXCLUDED.shop, title = EXCLUDED.title,
		    product_type = EXCLUDED.product_type, updated_at = EXCLUDED.updated_at`,
		product.ID, product.Shop, product.Title, product.ProductType, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}

	variantIDs := make([]string, 0, len(product.Variants))
	batch := &pgx.Batch{}
	for _, v := range product.Variants {
		variantIDs = append(variantIDs, v.ID)
		batch.Queue(`
			INSERT INTO product_variants (id, product_id, shop, title, sku, price, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE
			SET product_id = EXCLUDED.product_id, shop = EXCLUDED.shop, title = EXCLUDED.title,
			    sku = EXCLUDED.sku, price = EXCLUDED.price, updated_at = EXCLUDED.updated_at`,
			v.ID, product.ID, product.Shop, v.Title, v.SKU, v.Price, v.UpdatedAt,
		)
		locationIDs := make([]string, 0, len(v.Levels))
		for _, lvl := range v.Levels {
			locationIDs = append(locationIDs, lvl.LocationID)
			batch.Queue(`
				INSERT INTO variant_inventory_levels (variant_id, location_gid, location_name, available, updated_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (variant_id, location_gid) DO UPDATE
				SET location_name = EXCLUDED.location_name, available = EXCLUDED.available,
				    updated_at = EXCLUDED.updated_at`,
				v.ID, lvl.LocationID, lvl.LocationName, lvl.Available, lvl.UpdatedAt,
			)
		}
		if !v.LevelsPartial {
			batch.Queue(`DELETE FROM variant_inventory_levels WHERE variant_id = $1 AND NOT (location_gid = ANY($2))`, v.ID, locationIDs)
		}
	}
	if !product.VariantsPartial {
		batch.Queue(`DELETE FROM product_variants WHERE product_id = $1 AND NOT (id = ANY($2))`, product.ID, variantIDs)
	}

	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert variants of %s: %w", product.ID, err)
	}
	return nil
}

// DeleteProductsNotIn elimina los productos de la tienda que ya no existen en la plataforma.
func (r *CatalogRepo) DeleteProductsNotIn(ctx context.Context, shop string, keepIDs []string) (int64, error) {
	if keepIDs == nil {
		keepIDs = []string{}
	}
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE shop = $1 AND NOT (id = ANY($2))`,
		shop, keepIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("delete stale products: %w", err)
	}
	return cmd.RowsAffected(), nil
}
