package email

import (
	"context"
	"log"

	"tripbooking/internal/kafka"
)

// Sender is a stand-in notification channel driven by the worker.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("notify customer %d: %s for booking %d (trip %d)", event.CustomerID, event.Type, event.BookingID, event.TripID)
	return nil
}
