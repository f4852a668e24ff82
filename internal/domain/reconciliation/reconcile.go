// Package reconciliation compara conteos físicos contra el inventario sincronizado.
//
// El estado de conciliación nunca se persiste: se deriva por página, en memoria,
// a partir de los niveles de inventario y del último conteo de cada variante.
package reconciliation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
)

// Status resultado de comparar el último conteo con el inventario.
type Status string

const (
	StatusNoCount  Status = "no-count"
	StatusMatch    Status = "match"
	StatusMismatch Status = "mismatch"
)

// ParseStatus valida el filtro de estado recibido por query. Vacío = sin filtro.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "", StatusNoCount, StatusMatch, StatusMismatch:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, s)
}

// VariantRecord es una variante de la página con sus niveles y conteos, tal como la entrega el repositorio.
type VariantRecord struct {
	VariantID    string
	ProductTitle string
	ProductType  string
	VariantTitle string
	Price        decimal.Decimal
	Levels       []entity.InventoryLevel
	Counts       []entity.PhysicalCount
}

// Row fila conciliada lista para presentar o exportar.
type Row struct {
	VariantID     string           `json:"variantId"`
	ProductTitle  string           `json:"productTitle"`
	ProductType   string           `json:"productType"`
	VariantTitle  string           `json:"variantTitle"`
	Inventory     int              `json:"inventory"`
	LatestCount   *int             `json:"latestCount"`
	Status        Status           `json:"status"`
	Variance      *int             `json:"variance,omitempty"`
	VarianceValue *decimal.Decimal `json:"varianceValue,omitempty"`
}

// Summary contadores por estado de un conjunto de filas.
type Summary struct {
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	NoCount  int `json:"noCount"`
}

// SumAvailable suma el disponible de todos los niveles, o solo los de locationID si no está vacío.
func SumAvailable(levels []entity.InventoryLevel, locationID string) int {
	total := 0
	for _, lvl := range levels {
		if locationID != "" && lvl.LocationID != locationID {
			continue
		}
		total += lvl.Available
	}
	return total
}

// LatestCount devuelve el conteo con CreatedAt más reciente; nil si no hay conteos.
// En empate se conserva el primero recibido (el repositorio ya los entrega ordenados desc).
func LatestCount(counts []entity.PhysicalCount) *entity.PhysicalCount {
	var latest *entity.PhysicalCount
	for i := range counts {
		if latest == nil || counts[i].CreatedAt.After(latest.CreatedAt) {
			latest = &counts[i]
		}
	}
	return latest
}

// StatusFor compara por igualdad exacta. Sin conteo siempre es no-count.
func StatusFor(latest *int, inventory int) Status {
	switch {
	case latest == nil:
		return StatusNoCount
	case *latest == inventory:
		return StatusMatch
	default:
		return StatusMismatch
	}
}

// Reconcile calcula inventario, último conteo y estado para cada variante de la página.
// Conserva el orden de entrada.
func Reconcile(records []VariantRecord, locationID string) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		inv := SumAvailable(rec.Levels, locationID)
		row := Row{
			VariantID:    rec.VariantID,
			ProductTitle: rec.ProductTitle,
			ProductType:  rec.ProductType,
			VariantTitle: rec.VariantTitle,
			Inventory:    inv,
		}
		if latest := LatestCount(rec.Counts); latest != nil {
			counted := latest.Counted
			variance := counted - inv
			value := rec.Price.Mul(decimal.NewFromInt(int64(variance)))
			row.LatestCount = &counted
			row.Variance = &variance
			row.VarianceValue = &value
		}
		row.Status = StatusFor(row.LatestCount, inv)
		rows = append(rows, row)
	}
	return rows
}

// FilterByStatus se aplica después de traer la página: puede devolver menos filas que el tamaño de página.
func FilterByStatus(rows []Row, status Status) []Row {
	if status == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Summarize cuenta filas por estado (solo sobre las filas recibidas, no sobre el total).
func Summarize(rows []Row) Summary {
	var s Summary
	for _, r := range rows {
		switch r.Status {
		case StatusMatch:
			s.Match++
		case StatusMismatch:
			s.Mismatch++
		default:
			s.NoCount++
		}
	}
	return s
}
