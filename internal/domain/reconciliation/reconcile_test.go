package reconciliation_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-count-api/internal/domain"
	"github.com/jhoicas/stock-count-api/internal/domain/entity"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
)

const (
	locA = "gid://shopify/Location/1"
	locB = "gid://shopify/Location/2"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func levels(a, b int) []entity.InventoryLevel {
	return []entity.InventoryLevel{
		{LocationID: locA, LocationName: "Bodega", Available: a},
		{LocationID: locB, LocationName: "Tienda", Available: b},
	}
}

func count(n int, at time.Time) entity.PhysicalCount {
	return entity.PhysicalCount{Counted: n, CreatedAt: at, UserID: "7"}
}

func TestReconcile_SinConteoSiempreNoCount(t *testing.T) {
	cases := []struct {
		name   string
		levels []entity.InventoryLevel
	}{
		{"sin niveles", nil},
		{"inventario cero", levels(0, 0)},
		{"inventario negativo", levels(-3, 1)},
		{"inventario positivo", levels(10, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := reconciliation.Reconcile([]reconciliation.VariantRecord{{VariantID: "v1", Levels: tc.levels}}, "")
			require.Len(t, rows, 1)
			assert.Equal(t, reconciliation.StatusNoCount, rows[0].Status)
			assert.Nil(t, rows[0].LatestCount)
			assert.Nil(t, rows[0].Variance)
		})
	}
}

func TestReconcile_MatchConSumaDeTodasLasUbicaciones(t *testing.T) {
	rec := reconciliation.VariantRecord{
		VariantID: "v1",
		Levels:    levels(4, 6),
		Counts:    []entity.PhysicalCount{count(10, t0)},
	}
	rows := reconciliation.Reconcile([]reconciliation.VariantRecord{rec}, "")

	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Inventory)
	require.NotNil(t, rows[0].LatestCount)
	assert.Equal(t, 10, *rows[0].LatestCount)
	assert.Equal(t, reconciliation.StatusMatch, rows[0].Status)
	assert.Equal(t, 0, *rows[0].Variance)
}

func TestReconcile_MismatchCuandoDifiere(t *testing.T) {
	rec := reconciliation.VariantRecord{
		VariantID: "v1",
		Price:     decimal.RequireFromString("2.50"),
		Levels:    levels(4, 6),
		Counts:    []entity.PhysicalCount{count(7, t0)},
	}
	rows := reconciliation.Reconcile([]reconciliation.VariantRecord{rec}, "")

	assert.Equal(t, reconciliation.StatusMismatch, rows[0].Status)
	assert.Equal(t, -3, *rows[0].Variance)
	assert.True(t, decimal.RequireFromString("-7.5").Equal(*rows[0].VarianceValue))
}

func TestReconcile_FiltroPorUbicacionRecalculaEstado(t *testing.T) {
	rec := reconciliation.VariantRecord{
		VariantID: "v1",
		Levels:    levels(4, 6),
		Counts:    []entity.PhysicalCount{count(10, t0)},
	}

	all := reconciliation.Reconcile([]reconciliation.VariantRecord{rec}, "")
	assert.Equal(t, reconciliation.StatusMatch, all[0].Status)

	onlyA := reconciliation.Reconcile([]reconciliation.VariantRecord{rec}, locA)
	assert.Equal(t, 4, onlyA[0].Inventory)
	assert.Equal(t, reconciliation.StatusMismatch, onlyA[0].Status)

	unknown := reconciliation.Reconcile([]reconciliation.VariantRecord{rec}, "gid://shopify/Location/99")
	assert.Equal(t, 0, unknown[0].Inventory)
	assert.Equal(t, reconciliation.StatusMismatch, unknown[0].Status)
}

func TestLatestCount_EligeElMasReciente(t *testing.T) {
	counts := []entity.PhysicalCount{
		count(3, t0),
		count(9, t0.Add(2*time.Hour)),
		count(5, t0.Add(time.Hour)),
	}
	latest := reconciliation.LatestCount(counts)
	require.NotNil(t, latest)
	assert.Equal(t, 9, latest.Counted)

	assert.Nil(t, reconciliation.LatestCount(nil))

	rows := reconciliation.Reconcile([]reconciliation.VariantRecord{{VariantID: "v", Levels: levels(9, 0), Counts: counts}}, "")
	assert.Equal(t, reconciliation.StatusMatch, rows[0].Status, "el estado usa el último conteo, no el primero")
}

func TestLatestCount_EmpateConservaElPrimero(t *testing.T) {
	counts := []entity.PhysicalCount{count(1, t0), count(2, t0)}
	assert.Equal(t, 1, reconciliation.LatestCount(counts).Counted)
}

func TestFilterByStatus_PostFetchYResumenDePagina(t *testing.T) {
	records := make([]reconciliation.VariantRecord, 0, 25)
	for i := 0; i < 25; i++ {
		rec := reconciliation.VariantRecord{VariantID: fmt.Sprintf("v%d", i), Levels: levels(5, 0)}
		switch {
		case i < 3:
			rec.Counts = []entity.PhysicalCount{count(5, t0)} // match
		case i < 10:
			rec.Counts = []entity.PhysicalCount{count(1, t0)} // mismatch
		}
		records = append(records, rec)
	}

	rows := reconciliation.Reconcile(records, "")
	require.Len(t, rows, 25)

	matched := reconciliation.FilterByStatus(rows, reconciliation.StatusMatch)
	require.Len(t, matched, 3)
	for _, r := range matched {
		assert.Equal(t, reconciliation.StatusMatch, r.Status)
	}
	assert.Equal(t, reconciliation.Summary{Match: 3}, reconciliation.Summarize(matched))

	assert.Equal(t, reconciliation.Summary{Match: 3, Mismatch: 7, NoCount: 15}, reconciliation.Summarize(rows))
	assert.Len(t, reconciliation.FilterByStatus(rows, ""), 25, "sin filtro se devuelven todas")
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"", "match", "mismatch", "no-count"} {
		st, err := reconciliation.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, reconciliation.Status(s), st)
	}

	_, err := reconciliation.ParseStatus("MATCH")
	assert.True(t, errors.Is(err, domain.ErrInvalidStatus))
}
