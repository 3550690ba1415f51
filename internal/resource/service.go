package resource

import (
	"context"
	"fmt"
	"strings"

	"tripbooking/internal/storage"
)

// Store is the slice of the storage gateway the service needs.
type Store interface {
	Query(ctx context.Context, sql string, args ...any) ([]storage.Row, error)
	QueryOne(ctx context.Context, sql string, args ...any) (storage.Row, error)
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// UseCase is the CRUD surface exposed to the HTTP layer. Every entity
// handler works against this interface; entity-specific services extend it.
type UseCase interface {
	List(ctx context.Context) ([]storage.Row, error)
	Get(ctx context.Context, id int64) (storage.Row, error)
	Search(ctx context.Context, name string, id int64) ([]storage.Row, error)
	Create(ctx context.Context, fields map[string]any) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service implements the generic CRUD use case for one schema.
type Service struct {
	store  Store
	schema Schema
}

func NewService(store Store, schema Schema) *Service {
	return &Service{store: store, schema: schema}
}

func (s *Service) Schema() Schema {
	return s.schema
}

func (s *Service) List(ctx context.Context) ([]storage.Row, error) {
	return s.store.Query(ctx, fmt.Sprintf("SELECT * FROM %s", s.schema.Table))
}

func (s *Service) Get(ctx context.Context, id int64) (storage.Row, error) {
	row, err := s.store.QueryOne(ctx, fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", s.schema.Table, s.schema.IDColumn), id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%s %d: %w", s.schema.Name, id, ErrNotFound)
	}
	return row, nil
}

// Search filters by case-insensitive substring on the search column and/or
// exact id. No usable filter returns an empty collection, never the full
// table.
func (s *Service) Search(ctx context.Context, name string, id int64) ([]storage.Row, error) {
	name = strings.TrimSpace(name)

	var conds []string
	var args []any
	if id > 0 {
		args = append(args, id)
		conds = append(conds, fmt.Sprintf("%s = $%d", s.schema.IDColumn, len(args)))
	}
	if name != "" && s.schema.SearchColumn != "" {
		args = append(args, "%"+name+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", s.schema.SearchColumn, len(args)))
	}
	if len(conds) == 0 {
		return []storage.Row{}, nil
	}

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s", s.schema.Table, strings.Join(conds, " OR "))
	return s.store.Query(ctx, query, args...)
}

func (s *Service) Create(ctx context.Context, fields map[string]any) (int64, error) {
	for _, col := range s.schema.Required {
		if isBlank(fields[col]) {
			return 0, NewValidationError("%s is required", col)
		}
	}

	var cols []string
	var args []any
	var placeholders []string
	for _, col := range s.schema.Columns {
		v, ok := fields[col]
		if !ok {
			continue
		}
		cols = append(cols, col)
		args = append(args, v)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	// Entities without required fields may arrive as an empty object.
	query := fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", s.schema.Table, s.schema.IDColumn)
	if len(cols) > 0 {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			s.schema.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), s.schema.IDColumn)
	}
	row, err := s.store.QueryOne(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, fmt.Errorf("insert into %s returned no id", s.schema.Table)
	}
	return AsInt64(row[s.schema.IDColumn]), nil
}

// Update loads the current row, overlays the supplied fields and writes
// every column back. The read and the write are separate statements; a row
// deleted in between shows up as zero affected rows.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]any) (int64, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	var sets []string
	var args []any
	for _, col := range s.schema.Columns {
		value, ok := fields[col]
		if !ok {
			value = current[col]
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		s.schema.Table, strings.Join(sets, ", "), s.schema.IDColumn, len(args))
	affected, err := s.store.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, fmt.Errorf("%s %d: %w", s.schema.Name, id, ErrNotFound)
	}
	return affected, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.store.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", s.schema.Table, s.schema.IDColumn), id)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, fmt.Errorf("%s %d: %w", s.schema.Name, id, ErrNotFound)
	}
	return affected, nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// AsInt64 normalizes the integer types the driver and JSON decoding hand
// back for id columns.
func AsInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

var _ UseCase = (*Service)(nil)
