package query

import (
	"context"
	"time"
)

// Snapshot is an immutable copy of a cache entry.
// Data is kept when a later fetch fails, so HasData can be true together with StatusError.
type Snapshot struct {
	Key        Key
	Status     Status
	Data       any
	HasData    bool
	Err        error
	Fresh      bool
	Generation uint64
	UpdatedAt  time.Time
}

func (s Snapshot) IsLoading() bool {
	return s.Status == StatusLoading
}

// Definition binds a key to a typed fetch function.
type Definition[T any] struct {
	Key   Key
	Fetch func(ctx context.Context) (T, error)
}

// Register binds the definition to the cache.
func (d Definition[T]) Register(c *Cache) {
	c.Register(d.Key, func(ctx context.Context) (any, error) {
		data, err := d.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return data, nil
	})
}

// Data returns the typed data of the snapshot, false if there are no data yet.
func (d Definition[T]) Data(s Snapshot) (T, bool) {
	if !s.HasData {
		var empty T
		return empty, false
	}
	data, ok := s.Data.(T)
	return data, ok
}
