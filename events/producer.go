// Package events publishes shipment lifecycle events to Kafka. The producer
// is optional: a nil *Producer is a safe no-op, so the dashboard runs without
// a broker.
package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"freightdash/logging"
)

type Producer struct {
	writer *kafka.Writer
}

// NewProducer builds a writer for the given broker and topic.
func NewProducer(brokerURL, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends a JSON-encoded event keyed by shipment id, so events for one
// shipment stay ordered within a partition.
func (p *Producer) Publish(ctx context.Context, key string, value interface{}) error {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		logging.LogKV("error", "kafka marshal failed", map[string]interface{}{"error": err.Error()})
		return err
	}
	msg := kafka.Message{Key: []byte(key), Value: b}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logging.LogKV("error", "kafka write failed", map[string]interface{}{"error": err.Error(), "key": key})
		return err
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

// BulkActionEvent is emitted when a bulk action passes the eligibility gate.
type BulkActionEvent struct {
	Action      string   `json:"action"`
	ShipmentIDs []string `json:"shipment_ids"`
	Status      string   `json:"status"`
}

// ShipmentCreatedEvent is emitted when a shipment is created.
type ShipmentCreatedEvent struct {
	ShipmentID string `json:"shipment_id"`
	LoadNumber int    `json:"load_number"`
	Customer   string `json:"customer"`
}
