package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads booking events from one topic as part of a consumer
// group. Messages are decoded here so callers only ever see BookingEvent
// values, never raw kafka messages.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10 << 20,
			CommitInterval: time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks, handing each decoded event to handler until the context
// is canceled, the reader fails or the handler returns an error. A message
// that does not decode is logged and skipped; a poisoned payload must not
// stall the notifications stream.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeBookingEvent(msg.Value)
		if err != nil {
			log.Printf("skipping undecodable booking event: %v", err)
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeBookingEvent(data []byte) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	return event, nil
}
