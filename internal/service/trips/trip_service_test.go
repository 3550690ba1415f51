package trips

import (
	"context"
	"errors"
	"testing"

	"tripbooking/internal/resource"
	"tripbooking/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	queries      []string
	args         [][]any
	queryRows    []storage.Row
	oneRow       storage.Row
	execAffected int64
}

func (f *fakeStore) Query(ctx context.Context, sql string, args ...any) ([]storage.Row, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return f.queryRows, nil
}

func (f *fakeStore) QueryOne(ctx context.Context, sql string, args ...any) (storage.Row, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return f.oneRow, nil
}

func (f *fakeStore) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return f.execAffected, nil
}

type fakeCache struct {
	trips       []storage.Row
	getErr      error
	setCalls    int
	invalidated int
}

func (f *fakeCache) GetTrips(ctx context.Context) ([]storage.Row, error) {
	return f.trips, f.getErr
}

func (f *fakeCache) SetTrips(ctx context.Context, trips []storage.Row) error {
	f.setCalls++
	f.trips = trips
	return nil
}

func (f *fakeCache) InvalidateTrips(ctx context.Context) error {
	f.invalidated++
	f.trips = nil
	return nil
}

func TestService_List_cacheHit(t *testing.T) {
	store := &fakeStore{}
	cache := &fakeCache{trips: []storage.Row{{"idx": int64(1), "name": "Kyoto Tour"}}}
	svc := NewService(store, cache)

	trips, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.Empty(t, store.queries, "cache hit must not touch the store")
}

func TestService_List_cacheMissFillsCache(t *testing.T) {
	store := &fakeStore{queryRows: []storage.Row{{"idx": int64(1)}}}
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := NewService(store, cache)

	trips, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, trips, 1)
	assert.Len(t, store.queries, 1)
	assert.Equal(t, 1, cache.setCalls)
}

func TestService_List_noCache(t *testing.T) {
	store := &fakeStore{queryRows: []storage.Row{}}
	svc := NewService(store, nil)

	trips, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestService_Get_joinsDestinationZone(t *testing.T) {
	store := &fakeStore{oneRow: storage.Row{"idx": int64(2), "name": "Kyoto Tour", "destination_zone": "Asia"}}
	svc := NewService(store, nil)

	trip, err := svc.Get(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Asia", trip["destination_zone"])
	require.Len(t, store.queries, 1)
	assert.Contains(t, store.queries[0], "LEFT JOIN destination")
	assert.Contains(t, store.queries[0], "destination_zone")
	assert.Equal(t, []any{int64(2)}, store.args[0])
}

func TestService_Get_notFound(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestService_mutationsInvalidateCache(t *testing.T) {
	store := &fakeStore{oneRow: storage.Row{"idx": int32(4), "name": "Kyoto Tour", "country": "Japan"}, execAffected: 1}
	cache := &fakeCache{}
	svc := NewService(store, cache)

	_, err := svc.Create(context.Background(), map[string]any{"name": "Kyoto Tour", "country": "Japan"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 4, map[string]any{"price": float64(750)})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, 3, cache.invalidated)
}
