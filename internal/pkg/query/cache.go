// Package query implements a read-through cache of server queries with invalidation by mutations.
//
// Each key has a generation counter. Starting a fetch or invalidating the key increments it,
// and a fetch result is stored only if its generation is still the current one.
// So when fetches of one key overlap, the latest started wins and older results are discarded.
//
// Fetches run in goroutines, all state is guarded by one mutex.
// Subscribers are notified through a coalescing channel, see Subscription.
package query

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sasha-s/go-deadlock"

	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

// Fetcher loads data of one key from the server.
type Fetcher func(ctx context.Context) (any, error)

type Cache struct {
	logger    log.Logger
	clock     clockwork.Clock
	metrics   *metrics
	staleTime time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	lock    *deadlock.Mutex
	entries map[Key]*entry
	closed  bool
}

type entry struct {
	key     Key
	fetcher Fetcher

	status     Status
	data       any
	hasData    bool
	err        error
	fresh      bool
	generation uint64
	updatedAt  time.Time

	// activeGen is the generation of the running fetch, 0 if none.
	activeGen   uint64
	subscribers map[*Subscription]struct{}
}

type config struct {
	clock     clockwork.Clock
	staleTime time.Duration
	registry  prometheus.Registerer
}

type Option func(c *config)

func WithClock(v clockwork.Clock) Option {
	return func(c *config) {
		c.clock = v
	}
}

// WithStaleTime marks fetched data stale after the duration, so the next subscription fetches them again.
// Zero, the default, disables the time-based staleness, data are then stale only after an invalidation.
func WithStaleTime(v time.Duration) Option {
	return func(c *config) {
		c.staleTime = v
	}
}

// WithMetricsRegisterer registers the cache metrics.
func WithMetricsRegisterer(v prometheus.Registerer) Option {
	return func(c *config) {
		c.registry = v
	}
}

func New(logger log.Logger, opts ...Option) *Cache {
	cfg := config{clock: clockwork.NewRealClock()}
	for _, o := range opts {
		o(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Cache{
		logger:    logger.WithComponent("query"),
		clock:     cfg.clock,
		metrics:   newMetrics(cfg.registry),
		staleTime: cfg.staleTime,
		ctx:       ctx,
		cancel:    cancel,
		lock:      &deadlock.Mutex{},
		entries:   make(map[Key]*entry),
	}
}

// Register binds the fetcher to the key. It panics if the key is already registered.
func (c *Cache) Register(key Key, fetcher Fetcher) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, found := c.entries[key]; found {
		panic(errors.Errorf(`query "%s" is already registered`, key))
	}
	c.entries[key] = &entry{key: key, fetcher: fetcher, subscribers: make(map[*Subscription]struct{})}
}

// Subscribe starts watching the key.
// If the key has no fresh data and no fetch of the current generation is running, a fetch is started.
func (c *Cache) Subscribe(key Key) *Subscription {
	c.lock.Lock()
	defer c.lock.Unlock()

	e := c.entryLocked(key)
	s := &Subscription{cache: c, key: key, changed: make(chan struct{}, 1)}
	e.subscribers[s] = struct{}{}
	c.ensureFetchLocked(e)
	return s
}

// Snapshot returns the current state of the key without subscribing to it.
func (c *Cache) Snapshot(key Key) Snapshot {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.snapshotLocked(c.entryLocked(key))
}

// Get subscribes to the key, waits until it is not loading and unsubscribes.
func (c *Cache) Get(ctx context.Context, key Key) (Snapshot, error) {
	s := c.Subscribe(key)
	defer s.Close()
	return s.Settled(ctx)
}

// Invalidate marks the keys stale and increments their generation, so running fetches are discarded.
// Keys with a subscriber are fetched again at once, other keys on the next subscription.
func (c *Cache) Invalidate(keys ...Key) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, key := range keys {
		e := c.entryLocked(key)
		e.generation++
		e.fresh = false
		if e.activeGen != 0 {
			// The running fetch is superseded.
			e.status = e.settledStatus()
		}
		c.logger.Debugf(`Query "%s" invalidated, generation %d.`, key, e.generation)
		if len(e.subscribers) > 0 {
			c.ensureFetchLocked(e)
		} else {
			c.notifyLocked(e)
		}
	}
}

// Clear drops all data and increments all generations. It is used when the user identity changes.
// Nothing is fetched, see Invalidate to reload the subscribed keys.
func (c *Cache) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, e := range c.entries {
		e.generation++
		e.status = StatusIdle
		e.data = nil
		e.hasData = false
		e.err = nil
		e.fresh = false
		e.updatedAt = time.Time{}
		c.notifyLocked(e)
	}
	c.logger.Debug("Query cache cleared.")
}

// Close cancels running fetches and waits for their goroutines.
func (c *Cache) Close() {
	c.lock.Lock()
	c.closed = true
	c.lock.Unlock()
	c.cancel()
	c.wg.Wait()
}

func (c *Cache) entryLocked(key Key) *entry {
	e, found := c.entries[key]
	if !found {
		panic(errors.Errorf(`query "%s" is not registered`, key))
	}
	return e
}

func (c *Cache) isFreshLocked(e *entry) bool {
	if !e.fresh {
		return false
	}
	return c.staleTime <= 0 || c.clock.Since(e.updatedAt) < c.staleTime
}

// ensureFetchLocked starts a fetch, unless the data are fresh or a fetch of the current generation is running.
func (c *Cache) ensureFetchLocked(e *entry) {
	if c.closed || c.isFreshLocked(e) {
		return
	}
	if e.activeGen != 0 && e.activeGen == e.generation {
		return
	}

	e.generation++
	generation := e.generation
	e.activeGen = generation
	e.status = StatusLoading
	c.metrics.fetch(e.key, fetchStarted)
	c.logger.Debugf(`Query "%s" fetch started, generation %d.`, e.key, generation)
	c.notifyLocked(e)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		start := c.clock.Now()
		data, err := e.fetcher(c.ctx)
		c.metrics.observeFetch(e.key, c.clock.Since(start))
		c.complete(e, generation, data, err)
	}()
}

func (c *Cache) complete(e *entry, generation uint64, data any, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if e.activeGen == generation {
		e.activeGen = 0
	}

	if generation != e.generation {
		c.metrics.fetch(e.key, fetchDiscarded)
		c.logger.Debugf(`Query "%s" result of generation %d discarded, current generation is %d.`, e.key, generation, e.generation)
		return
	}

	if err != nil {
		// Previous data are kept.
		e.status = StatusError
		e.err = err
		e.fresh = false
		c.metrics.fetch(e.key, fetchFailed)
		c.logger.Debugf(`Query "%s" fetch failed: %s`, e.key, err)
	} else {
		e.status = StatusSuccess
		e.data = data
		e.hasData = true
		e.err = nil
		e.fresh = true
		e.updatedAt = c.clock.Now()
		c.metrics.fetch(e.key, fetchSucceeded)
		c.logger.Debugf(`Query "%s" fetch succeeded, generation %d.`, e.key, generation)
	}
	c.notifyLocked(e)
}

func (c *Cache) snapshotLocked(e *entry) Snapshot {
	return Snapshot{
		Key:        e.key,
		Status:     e.status,
		Data:       e.data,
		HasData:    e.hasData,
		Err:        e.err,
		Fresh:      c.isFreshLocked(e),
		Generation: e.generation,
		UpdatedAt:  e.updatedAt,
	}
}

func (c *Cache) notifyLocked(e *entry) {
	for s := range e.subscribers {
		s.notify()
	}
}

func (c *Cache) unsubscribe(s *Subscription) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.entryLocked(s.key).subscribers, s)
}

// settledStatus is the status of the entry when no fetch is running.
func (e *entry) settledStatus() Status {
	switch {
	case e.err != nil:
		return StatusError
	case e.hasData:
		return StatusSuccess
	default:
		return StatusIdle
	}
}
