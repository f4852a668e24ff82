// Package events publica eventos de dominio (Kafka o log).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/stock-count-api/internal/application/ports"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// MessageWriter subconjunto de *kafka.Writer usado por el publicador.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher serializa el evento en JSON y lo escribe con la tienda como clave.
type KafkaPublisher struct {
	writer MessageWriter
	log    zerolog.Logger
}

// NewKafkaWriter construye un writer balanceado por hash de clave (mismo shop, misma partición).
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaPublisher(writer MessageWriter, log zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, log: log}
}

// Publish escribe un mensaje con headers event-type y event-id.
func (p *KafkaPublisher) Publish(ctx context.Context, ev ports.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.Shop),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(ev.Type)},
			{Key: "event-id", Value: []byte(ev.ID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write %s: %w", ev.Type, err)
	}
	p.log.Debug().Str("type", ev.Type).Str("shop", ev.Shop).Msg("evento publicado")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
