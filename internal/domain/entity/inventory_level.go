package entity

import "time"

// InventoryLevel es el snapshot de stock disponible de una variante en una ubicación.
// Una variante puede tener varios niveles (uno por ubicación).
type InventoryLevel struct {
	VariantID    string
	LocationID   string // GID de la ubicación
	LocationName string
	Available    int
	UpdatedAt    time.Time
}

// Location opción de ubicación para filtros (derivada de los niveles sincronizados).
type Location struct {
	ID   string
	Name string
}
