package entity

import "time"

// Product representa una entrada del catálogo de la tienda (tenant = Shop).
// Se crea y actualiza únicamente por la sincronización con la plataforma.
type Product struct {
	ID          string // GID de la plataforma (ej. gid://shopify/Product/1)
	Shop        string
	Title       string
	ProductType string
	UpdatedAt   time.Time
	Variants    []Variant

	// VariantsPartial indica que la plataforma no entregó todas las variantes; la sincronización
	// no debe borrar las variantes guardadas que falten en Variants.
	VariantsPartial bool
}
