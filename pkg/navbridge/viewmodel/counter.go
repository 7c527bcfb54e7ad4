// Package viewmodel holds the freestanding view-state objects shown on leaf
// screens. They are mutated directly by the view, with no dispatch loop in
// between, and report values outward through a single callback.
package viewmodel

import (
	"sync"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Counter is the state of one leaf screen: an integer the user edits and a
// slot for the callback that reports it.
type Counter struct {
	id    uuid.UUID
	count atomic.Int64

	mu     sync.Mutex
	report func(count int)
}

// New creates a Counter at zero for the screen id.
func New(id uuid.UUID) *Counter {
	return &Counter{id: id}
}

// ID returns the screen the counter belongs to.
func (c *Counter) ID() uuid.UUID {
	return c.id
}

// Count returns the current count.
func (c *Counter) Count() int {
	return int(c.count.Load())
}

// Increment adds one to the count.
func (c *Counter) Increment() {
	c.count.Inc()
}

// Decrement subtracts one from the count.
func (c *Counter) Decrement() {
	c.count.Dec()
}

// Set replaces the count.
func (c *Counter) Set(count int) {
	c.count.Store(int64(count))
}

// OnReport replaces the report callback.
func (c *Counter) OnReport(fn func(count int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report = fn
}

// Detach clears the report callback. Later reports are dropped.
func (c *Counter) Detach() {
	c.OnReport(nil)
}

// Wired reports whether a callback is set.
func (c *Counter) Wired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report != nil
}

// ReportCurrentCount hands the current count to the callback. Without a
// callback the report is dropped.
func (c *Counter) ReportCurrentCount() {
	c.mu.Lock()
	report := c.report
	c.mu.Unlock()

	count := c.Count()
	if report == nil {
		internal.GetInternalLogger().Debug("report dropped, no callback wired", "screen", c.id, "count", count)
		return
	}
	report(count)
}
