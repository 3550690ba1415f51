package bookings

import (
	"context"
	"log"

	"tripbooking/internal/kafka"
	"tripbooking/internal/resource"
	"tripbooking/internal/storage"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Service is the booking use case: generic CRUD plus lifecycle events on
// the booking and notifications topics.
type Service struct {
	*resource.Service
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type Option func(*Service)

func WithNotificationsTopic(topic string) Option {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func NewService(store resource.Store, producer Producer, bookingTopic string, opts ...Option) *Service {
	service := &Service{
		Service:      resource.NewService(store, resource.BookingSchema()),
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *Service) Create(ctx context.Context, fields map[string]any) (int64, error) {
	id, err := s.Service.Create(ctx, fields)
	if err != nil {
		return 0, err
	}
	fields[s.Schema().IDColumn] = id
	s.publish(ctx, "booking_created", fields)
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	affected, err := s.Service.Update(ctx, id, fields)
	if err != nil {
		return 0, err
	}
	updated, getErr := s.Service.Get(ctx, id)
	if getErr != nil {
		updated = storage.Row(fields)
		updated[s.Schema().IDColumn] = id
	}
	s.publish(ctx, "booking_updated", updated)
	return affected, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	// Fetch before the delete so the event still carries the customer and
	// trip references.
	row, err := s.Service.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	affected, err := s.Service.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, "booking_deleted", row)
	return affected, nil
}

func (s *Service) publish(ctx context.Context, eventType string, row map[string]any) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  resource.AsInt64(row["idx"]),
		CustomerID: resource.AsInt64(row["customerid"]),
		TripID:     resource.AsInt64(row["tripid"]),
		MeetingID:  resource.AsInt64(row["meetingid"]),
	}
	if v, ok := row["bookdatetime"].(string); ok {
		event.BookDateTime = v
	}

	key := eventType
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %d: %v", eventType, event.BookingID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %d: %v", eventType, event.BookingID, err)
		}
	}
}

var _ resource.UseCase = (*Service)(nil)
