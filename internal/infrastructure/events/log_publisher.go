package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-count-api/internal/application/ports"
)

var _ ports.EventPublisher = (*LogPublisher)(nil)

// LogPublisher registra los eventos en el log cuando no hay brokers configurados.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, ev ports.Event) error {
	p.log.Info().
		Str("event_id", ev.ID).
		Str("type", ev.Type).
		Str("shop", ev.Shop).
		Interface("payload", ev.Payload).
		Msg("evento")
	return nil
}
