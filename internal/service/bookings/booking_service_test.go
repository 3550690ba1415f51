package bookings

import (
	"context"
	"errors"
	"testing"

	"tripbooking/internal/kafka"
	"tripbooking/internal/resource"
	"tripbooking/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	oneRow       storage.Row
	execAffected int64
}

func (f *fakeStore) Query(ctx context.Context, sql string, args ...any) ([]storage.Row, error) {
	return nil, nil
}

func (f *fakeStore) QueryOne(ctx context.Context, sql string, args ...any) (storage.Row, error) {
	return f.oneRow, nil
}

func (f *fakeStore) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return f.execAffected, nil
}

type published struct {
	topic string
	event kafka.BookingEvent
}

type fakeProducer struct {
	events []published
	err    error
}

func (f *fakeProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, published{topic: topic, event: value.(kafka.BookingEvent)})
	return nil
}

func TestService_Create_publishesEvent(t *testing.T) {
	store := &fakeStore{oneRow: storage.Row{"idx": int32(11)}}
	producer := &fakeProducer{}
	svc := NewService(store, producer, "booking-events", WithNotificationsTopic("booking-notifications"))

	id, err := svc.Create(context.Background(), map[string]any{
		"customerid":   float64(3),
		"tripid":       float64(7),
		"bookdatetime": "2025-04-01 10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.Len(t, producer.events, 2)
	assert.Equal(t, "booking-events", producer.events[0].topic)
	assert.Equal(t, "booking-notifications", producer.events[1].topic)

	event := producer.events[0].event
	assert.Equal(t, "booking_created", event.Type)
	assert.Equal(t, int64(11), event.BookingID)
	assert.Equal(t, int64(3), event.CustomerID)
	assert.Equal(t, int64(7), event.TripID)
	assert.Equal(t, "2025-04-01 10:00", event.BookDateTime)
}

func TestService_Create_publishFailureDoesNotFailRequest(t *testing.T) {
	store := &fakeStore{oneRow: storage.Row{"idx": int32(11)}}
	producer := &fakeProducer{err: errors.New("broker down")}
	svc := NewService(store, producer, "booking-events")

	id, err := svc.Create(context.Background(), map[string]any{"customerid": float64(3)})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestService_Delete_publishesPriorRow(t *testing.T) {
	store := &fakeStore{
		oneRow:       storage.Row{"idx": int64(11), "customerid": int64(3), "tripid": int64(7), "meetingid": int64(2)},
		execAffected: 1,
	}
	producer := &fakeProducer{}
	svc := NewService(store, producer, "booking-events")

	affected, err := svc.Delete(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.Len(t, producer.events, 1)
	assert.Equal(t, "booking_deleted", producer.events[0].event.Type)
	assert.Equal(t, int64(3), producer.events[0].event.CustomerID)
}

func TestService_Delete_nonexistent(t *testing.T) {
	producer := &fakeProducer{}
	svc := NewService(&fakeStore{}, producer, "booking-events")

	_, err := svc.Delete(context.Background(), 11)

	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.Empty(t, producer.events)
}

func TestService_noProducerConfigured(t *testing.T) {
	store := &fakeStore{oneRow: storage.Row{"idx": int32(11)}}
	svc := NewService(store, nil, "")

	_, err := svc.Create(context.Background(), map[string]any{"customerid": float64(3)})

	assert.NoError(t, err)
}
