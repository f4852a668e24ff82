package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant pertenece a exactamente un Product.
// Tiene niveles de inventario por ubicación y un log de conteos físicos.
type Variant struct {
	ID        string // GID de la plataforma
	ProductID string
	Shop      string
	Title     string
	SKU       string
	Price     decimal.Decimal
	UpdatedAt time.Time
	Levels    []InventoryLevel

	// LevelsPartial igual que Product.VariantsPartial, para los niveles por ubicación.
	LevelsPartial bool
}
