package customers

import (
	"context"
	"strings"

	"tripbooking/internal/resource"
	"tripbooking/internal/storage"
)

// UseCase adds the login lookup to the generic customer CRUD.
type UseCase interface {
	resource.UseCase
	Login(ctx context.Context, phone, password string) (storage.Row, error)
}

type Service struct {
	*resource.Service
	store resource.Store
}

func NewService(store resource.Store) *Service {
	return &Service{
		Service: resource.NewService(store, resource.CustomerSchema()),
		store:   store,
	}
}

// Login matches phone and password by equality, as the stored data demands:
// passwords are kept in the clear. Not suitable beyond the current clients.
func (s *Service) Login(ctx context.Context, phone, password string) (storage.Row, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, resource.NewValidationError("phone is required")
	}
	if password == "" {
		return nil, resource.NewValidationError("password is required")
	}

	row, err := s.store.QueryOne(ctx, "SELECT * FROM customer WHERE phone = $1 AND password = $2", phone, password)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, resource.ErrInvalidCredentials
	}

	delete(row, "password")
	return row, nil
}

var _ UseCase = (*Service)(nil)
