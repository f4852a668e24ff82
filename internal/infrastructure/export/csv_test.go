package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-count-api/internal/domain/reconciliation"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/export"
)

func intPtr(n int) *int { return &n }

func TestWriteCSV_EscapadoRFC4180(t *testing.T) {
	rows := []reconciliation.Row{
		{ProductTitle: `Camiseta, "edición" especial`, ProductType: "Ropa", VariantTitle: "M", Inventory: 4, LatestCount: intPtr(4), Status: reconciliation.StatusMatch},
		{ProductTitle: "Gorra", VariantTitle: "—", Inventory: -1, Status: reconciliation.StatusNoCount},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Product,Product Type,Variant,Inventory,Latest Count,Status", lines[0])
	assert.Equal(t, `"Camiseta, ""edición"" especial",Ropa,M,4,4,match`, lines[1])
	assert.Equal(t, "Gorra,,—,-1,,no-count", lines[2], "sin conteo la columna queda vacía")
}

func TestEncodeCSV_ConBOM(t *testing.T) {
	out, err := export.EncodeCSV(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "Product,Product Type,Variant,Inventory,Latest Count,Status\n", string(out[3:]))
}

func TestEncodeCSV_IncluyeTodasLasFilas(t *testing.T) {
	rows := []reconciliation.Row{
		{ProductTitle: "Camiseta", ProductType: "Ropa", VariantTitle: "M", Inventory: 4, LatestCount: intPtr(3), Status: reconciliation.StatusMismatch},
		{ProductTitle: "Gorra \"azul\"", VariantTitle: "Única", Inventory: 0, Status: reconciliation.StatusNoCount},
	}

	out, err := export.EncodeCSV(rows)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	var plain bytes.Buffer
	require.NoError(t, export.WriteCSV(&plain, rows))
	assert.Equal(t, plain.String(), string(out[3:]), "el BOM se antepone sin perder la última fila")
	assert.True(t, strings.HasSuffix(string(out), "\"Gorra \"\"azul\"\"\",,Única,0,,no-count\n"))
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 7, 4, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "inventory-admin-2025-07-04T15:04:05Z.csv", export.Filename(at, "csv"))
}
