package ports

import (
	"context"
	"time"
)

// Tipos de evento publicados por la app.
const (
	EventCountRecorded = "inventory.count.recorded"
	EventCountsCleared = "inventory.counts.cleared"
	EventCatalogSynced = "catalog.synced"
)

// Event evento de dominio serializable; Shop se usa como clave de partición.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Shop       string         `json:"shop"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// EventPublisher publica eventos para consumidores externos (auditoría, BI).
// Un fallo al publicar no debe revertir la operación que lo originó.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
