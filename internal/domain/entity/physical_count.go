package entity

import "time"

// PhysicalCount es un conteo físico registrado por el staff para una variante.
// Log de solo inserción: nunca se modifica; el "último" es el de CreatedAt más reciente.
type PhysicalCount struct {
	ID        string
	VariantID string
	Shop      string
	Counted   int
	UserID    string
	CreatedAt time.Time
}
