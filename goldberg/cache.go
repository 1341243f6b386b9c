// SPDX-License-Identifier: MIT

package goldberg

import (
	"github.com/puzpuzpuz/xsync/v4"
)

// Cache shares built tables between goroutines, one per order.
//
// Tables handed out by Get belong to the cache: callers must not Close them.
// Purge closes every cached table; tables obtained before Purge become
// unusable (ErrTableClosed).
type Cache struct {
	tables  *xsync.Map[int, *Table]
	opts    []Option
	metrics MetricsCollector
}

// NewCache returns an empty cache whose tables are built with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		tables:  xsync.NewMap[int, *Table](),
		opts:    opts,
		metrics: gatherOptions(opts...).metrics,
	}
}

// Get returns the table for order, building it on first use. Concurrent
// first calls may build twice; one result wins and the other is closed.
func (c *Cache) Get(order int) (*Table, error) {
	if t, ok := c.tables.Load(order); ok {
		c.metrics.RecordCacheHit(order)
		return t, nil
	}
	c.metrics.RecordCacheMiss(order)

	t, err := Build(order, c.opts...)
	if err != nil {
		return nil, err
	}
	actual, loaded := c.tables.LoadOrStore(order, t)
	if loaded {
		_ = t.Close()
	}
	return actual, nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int { return c.tables.Size() }

// Purge closes and drops every cached table.
func (c *Cache) Purge() {
	c.tables.Range(func(order int, _ *Table) bool {
		if t, ok := c.tables.LoadAndDelete(order); ok {
			_ = t.Close()
		}
		return true
	})
}
