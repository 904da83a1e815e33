package realtime

import (
	"context"
	"fmt"
	"sync"

	"fieldops/internal/shared/goroutine"
	"fieldops/internal/shared/logger"
)

// Loader fetches the full current contents of a table.
type Loader[T any] func(ctx context.Context) ([]T, error)

// TableCache keeps an in-memory snapshot of one table, refreshed in full
// whenever any change event for that table arrives. Events carry no payload,
// so a refresh is always safe to replay and the cache can never diverge from
// the store for longer than one refresh.
//
// Refresh bursts coalesce: at most one refresh runs at a time, with a dirty
// flag recording events that arrived mid-refresh. N notifications therefore
// cost at most the refreshes needed to reach the final state.
type TableCache[T any] struct {
	table  string
	load   Loader[T]
	logger logger.Interface

	mu    sync.RWMutex
	items []T

	refreshMu  sync.Mutex
	refreshing bool
	dirty      bool

	sub  *Subscription
	once sync.Once
}

// NewTableCache performs one initial full refresh, then subscribes to the
// feed and keeps the snapshot current until Close is called.
func NewTableCache[T any](ctx context.Context, table string, feed *Feed, load Loader[T], log logger.Interface) (*TableCache[T], error) {
	c := &TableCache[T]{
		table:  table,
		load:   load,
		logger: log.With("cache", table),
	}

	items, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("initial refresh of %s failed: %w", table, err)
	}
	c.store(items)

	c.sub = feed.Subscribe(table)
	goroutine.SafeGo(c.logger, "tablecache:"+table, c.consume)

	return c, nil
}

// Snapshot returns a copy of the cached rows.
func (c *TableCache[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Close releases the feed subscription.
func (c *TableCache[T]) Close() {
	c.once.Do(func() {
		c.sub.Close()
	})
}

func (c *TableCache[T]) consume() {
	for range c.sub.C {
		c.scheduleRefresh()
	}
}

func (c *TableCache[T]) scheduleRefresh() {
	c.refreshMu.Lock()
	if c.refreshing {
		c.dirty = true
		c.refreshMu.Unlock()
		return
	}
	c.refreshing = true
	c.refreshMu.Unlock()

	goroutine.SafeGo(c.logger, "tablecache-refresh:"+c.table, c.refreshLoop)
}

func (c *TableCache[T]) refreshLoop() {
	for {
		items, err := c.load(context.Background())
		if err != nil {
			// Keep the previous snapshot. The next event retries.
			c.logger.Warn("table refresh failed", "error", err)
		} else {
			c.store(items)
		}

		c.refreshMu.Lock()
		if c.dirty {
			c.dirty = false
			c.refreshMu.Unlock()
			continue
		}
		c.refreshing = false
		c.refreshMu.Unlock()
		return
	}
}

func (c *TableCache[T]) store(items []T) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}
