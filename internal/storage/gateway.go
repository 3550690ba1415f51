package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
)

// Row is one result tuple keyed by column name.
type Row map[string]any

// Gateway wraps the single process-wide database connection. The service
// runs on one connection opened at startup, so a mutex serializes callers
// instead of a pool.
type Gateway struct {
	mu   sync.Mutex
	conn *pgx.Conn
}

func Connect(ctx context.Context, dsn string) (*Gateway, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &Gateway{conn: conn}, nil
}

func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn.Close(ctx)
}

// Query runs a statement with positional placeholders and returns all rows.
func (g *Gateway) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows, err := g.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

// QueryOne returns the first matching row, or nil when there is none.
// Absence is not an error here; callers decide what missing rows mean.
func (g *Gateway) QueryOne(ctx context.Context, sql string, args ...any) (Row, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows, err := g.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	result, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result[0], nil
}

// Exec runs a statement and returns the affected-row count.
func (g *Gateway) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tag, err := g.conn.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collectRows(rows pgx.Rows) ([]Row, error) {
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(Row, len(values))
		for i, fd := range rows.FieldDescriptions() {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
