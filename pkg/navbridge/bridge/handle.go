package bridge

import (
	"context"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
	"go.uber.org/atomic"
)

// Handle is the narrow capability a child gets instead of a reference to its
// container: one function to deliver a value, valid until it expires.
type Handle[T any] struct {
	deliver func(T)
	expired atomic.Bool
}

// NewHandle returns a Handle that expires when ctx is done.
func NewHandle[T any](ctx context.Context, deliver func(T)) *Handle[T] {
	h := &Handle[T]{deliver: deliver}
	context.AfterFunc(ctx, h.Expire)
	return h
}

// Deliver passes v on. It reports false, and does nothing, once expired.
func (h *Handle[T]) Deliver(v T) bool {
	if h.expired.Load() {
		return false
	}
	h.deliver(v)
	return true
}

func (h *Handle[T]) Expire() {
	h.expired.Store(true)
}

func (h *Handle[T]) Expired() bool {
	return h.expired.Load()
}

// Scoped is the delegate strategy. The counter reports through a Handle
// scoped to ctx, so a report after the screen is gone goes nowhere.
func Scoped(ctx context.Context, counter *viewmodel.Counter, push func(), deliver func(count int)) {
	h := NewHandle(ctx, deliver)
	counter.OnReport(func(count int) {
		h.Deliver(count)
	})

	push()

	<-ctx.Done()
	counter.Detach()
}
