// Package export serializa las filas conciliadas de la vista admin para descarga.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
)

// Header columnas del CSV exportado.
var Header = []string{"Product", "Product Type", "Variant", "Inventory", "Latest Count", "Status"}

// WriteCSV escribe el encabezado y una línea por fila. encoding/csv aplica el
// escapado RFC 4180 (comillas dobles alrededor de campos con coma, comillas o saltos).
func WriteCSV(w io.Writer, rows []reconciliation.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, r := range rows {
		latest := ""
		if r.LatestCount != nil {
			latest = strconv.Itoa(*r.LatestCount)
		}
		rec := []string{
			r.ProductTitle,
			r.ProductType,
			r.VariantTitle,
			strconv.Itoa(r.Inventory),
			latest,
			string(r.Status),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv: fila %s: %w", r.VariantID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeCSV devuelve el CSV en UTF-8 con BOM para que las hojas de cálculo detecten la codificación.
func EncodeCSV(rows []reconciliation.Row) ([]byte, error) {
	var buf bytes.Buffer
	// Close vacía el BOM y la cola que el transformer aún retiene.
	enc := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder())
	if err := WriteCSV(enc, rows); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("csv: codificar: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename nombre del archivo de descarga: inventory-admin-<RFC3339>.<ext>.
func Filename(at time.Time, ext string) string {
	return fmt.Sprintf("inventory-admin-%s.%s", at.UTC().Format(time.RFC3339), ext)
}
