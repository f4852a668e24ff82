package ports

import (
	"context"

	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
)

// CountSheetGenerator genera la hoja de conteo imprimible (PDF) de la página actual.
type CountSheetGenerator interface {
	CountSheetPDF(ctx context.Context, shop string, rows []reconciliation.Row) ([]byte, error)
}
