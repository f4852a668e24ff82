// Package pdf genera la hoja de conteo imprimible de la vista admin.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda               │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: match / mismatch / sin conteo / valor de varianza  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Tipo | Variante | Inv. | Conteo | Estado  │
//	│         | Reconteo (en blanco, para escribir a mano)         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-count-api/internal/application/ports"
	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
)

var _ ports.CountSheetGenerator = (*CountSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorMismatch = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorMatch    = &props.Color{Red: 20, Green: 110, Blue: 50}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// CountSheetGenerator implementa ports.CountSheetGenerator usando Maroto v2.
type CountSheetGenerator struct {
	now func() time.Time
}

// NewCountSheetGenerator construye el generador.
func NewCountSheetGenerator() *CountSheetGenerator {
	return &CountSheetGenerator{now: time.Now}
}

// CountSheetPDF genera el PDF de las filas recibidas (la página filtrada actual) y devuelve sus bytes.
func (g *CountSheetGenerator) CountSheetPDF(_ context.Context, shop string, rows []reconciliation.Row) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de conteo", true).
		WithAuthor(shop, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shop, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rows))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rows)...)
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin variantes para los filtros seleccionados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(shop string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("HOJA DE CONTEO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(shop, props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(rows []reconciliation.Row) core.Row {
	s := reconciliation.Summarize(rows)
	value := decimal.Zero
	for _, r := range rows {
		if r.VarianceValue != nil {
			value = value.Add(*r.VarianceValue)
		}
	}
	return row.New(10).Add(
		col.New(12).Add(text.New(fmt.Sprintf(
			"Coinciden: %d   |   Diferencias: %d   |   Sin conteo: %d   |   Valor de la varianza: %s",
			s.Match, s.Mismatch, s.NoCount, value.StringFixed(2),
		), props.Text{Size: 8, Top: 3})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Producto", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Variante", 2, align.Left),
		h("Inv.", 1, align.Right),
		h("Conteo", 1, align.Right),
		h("Estado", 1, align.Center),
		h("Reconteo", 2, align.Center),
	)
}

func tableRows(rows []reconciliation.Row) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		latest := ""
		if r.LatestCount != nil {
			latest = strconv.Itoa(*r.LatestCount)
		}
		out = append(out, row.New(7).Add(
			cell(r.ProductTitle, 3, align.Left),
			cell(r.ProductType, 2, align.Left),
			cell(r.VariantTitle, 2, align.Left),
			cell(strconv.Itoa(r.Inventory), 1, align.Right),
			cell(latest, 1, align.Right),
			col.New(1).Add(text.New(statusLabel(r.Status), props.Text{
				Size: 7, Align: align.Center, Top: 1, Style: fontstyle.Bold, Color: statusColor(r.Status),
			})),
			col.New(2).Add(text.New("______", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray})),
		))
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s reconciliation.Status) string {
	switch s {
	case reconciliation.StatusMatch:
		return "OK"
	case reconciliation.StatusMismatch:
		return "DIF"
	}
	return "—"
}

func statusColor(s reconciliation.Status) *props.Color {
	switch s {
	case reconciliation.StatusMatch:
		return colorMatch
	case reconciliation.StatusMismatch:
		return colorMismatch
	}
	return colorGray
}
