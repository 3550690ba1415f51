package trips

import (
	"context"
	"fmt"

	"tripbooking/internal/resource"
	"tripbooking/internal/storage"
)

// Cache holds the trip list between mutations.
type Cache interface {
	GetTrips(ctx context.Context) ([]storage.Row, error)
	SetTrips(ctx context.Context, trips []storage.Row) error
	InvalidateTrips(ctx context.Context) error
}

// Service is the trip use case: generic CRUD plus the destination-zone
// projection on reads and a cached list.
type Service struct {
	*resource.Service
	store resource.Store
	cache Cache
}

func NewService(store resource.Store, cache Cache) *Service {
	return &Service{
		Service: resource.NewService(store, resource.TripSchema()),
		store:   store,
		cache:   cache,
	}
}

func (s *Service) List(ctx context.Context) ([]storage.Row, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTrips(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trips, err := s.Service.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTrips(ctx, trips)
	}
	return trips, nil
}

// Get joins the destination zone onto the trip row. The zone lives only in
// the destination table; clients see it as destination_zone.
func (s *Service) Get(ctx context.Context, id int64) (storage.Row, error) {
	row, err := s.store.QueryOne(ctx, `SELECT t.*, d.zone AS destination_zone
		FROM trip t
		LEFT JOIN destination d ON t.destinationid = d.idx
		WHERE t.idx = $1`, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("trip %d: %w", id, resource.ErrNotFound)
	}
	return row, nil
}

func (s *Service) Create(ctx context.Context, fields map[string]any) (int64, error) {
	id, err := s.Service.Create(ctx, fields)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	affected, err := s.Service.Update(ctx, id, fields)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return affected, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.Service.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return affected, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateTrips(ctx)
	}
}

var _ resource.UseCase = (*Service)(nil)
