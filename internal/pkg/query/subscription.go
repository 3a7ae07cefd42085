package query

import (
	"context"
	"sync"
)

// Subscription keeps the key watched, so the key is fetched again immediately after an invalidation.
type Subscription struct {
	cache     *Cache
	key       Key
	changed   chan struct{}
	closeOnce sync.Once
}

func (s *Subscription) Key() Key {
	return s.key
}

// Snapshot returns the current state of the key.
func (s *Subscription) Snapshot() Snapshot {
	return s.cache.Snapshot(s.key)
}

// Changed receives a value when the entry changes.
// Multiple changes between two reads are coalesced into one value, so the receiver never blocks the cache.
func (s *Subscription) Changed() <-chan struct{} {
	return s.changed
}

// Settled waits until the key is not loading and returns its snapshot.
func (s *Subscription) Settled(ctx context.Context) (Snapshot, error) {
	for {
		snapshot := s.Snapshot()
		if !snapshot.IsLoading() {
			return snapshot, nil
		}
		select {
		case <-ctx.Done():
			return snapshot, ctx.Err()
		case <-s.changed:
		}
	}
}

// Close unsubscribes. The cached data are kept.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.cache.unsubscribe(s)
	})
}

func (s *Subscription) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}
