package store

import "context"

// Send enqueues an action on the store that owns the running effect.
type Send[A any] func(action A)

// Effect is the work a reducer asks the store to do after an action has
// been reduced. The zero value does nothing.
type Effect[A any] struct {
	run       func(ctx context.Context, send Send[A])
	id        any
	actions   []A
	cancelIDs []any
	merged    []Effect[A]
}

// None is the effect that does nothing.
func None[A any]() Effect[A] {
	return Effect[A]{}
}

// Just enqueues actions behind the ones already waiting.
func Just[A any](actions ...A) Effect[A] {
	return Effect[A]{actions: actions}
}

// Run starts fn on its own goroutine. fn must return once ctx is done.
// Actions it sends join the same queue as every other action.
func Run[A any](fn func(ctx context.Context, send Send[A])) Effect[A] {
	return Effect[A]{run: fn}
}

// Cancel stops the running effects registered under ids. Actions they
// have sent but the store has not processed yet are discarded.
func Cancel[A any](ids ...any) Effect[A] {
	if len(ids) == 0 {
		return None[A]()
	}
	return Effect[A]{cancelIDs: ids}
}

// Merge combines effects. They are executed in order.
func Merge[A any](effects ...Effect[A]) Effect[A] {
	var out Effect[A]
	for _, e := range effects {
		if !e.IsNone() {
			out.merged = append(out.merged, e)
		}
	}
	if len(out.merged) == 1 {
		return out.merged[0]
	}
	return out
}

// Cancellable registers the running part of e under id. Starting another
// effect with the same id cancels this one. Effects combined with Merge
// keep their own ids.
func (e Effect[A]) Cancellable(id any) Effect[A] {
	e.id = id
	return e
}

// IsNone reports whether e does nothing.
func (e Effect[A]) IsNone() bool {
	return e.run == nil && len(e.actions) == 0 && len(e.cancelIDs) == 0 && len(e.merged) == 0
}

// Map lifts an effect producing A into one producing B. It is how a parent
// reducer embeds a child reducer's effects.
func Map[A, B any](e Effect[A], f func(A) B) Effect[B] {
	out := Effect[B]{
		id:        e.id,
		cancelIDs: e.cancelIDs,
	}
	for _, a := range e.actions {
		out.actions = append(out.actions, f(a))
	}
	if run := e.run; run != nil {
		out.run = func(ctx context.Context, send Send[B]) {
			run(ctx, func(a A) { send(f(a)) })
		}
	}
	for _, m := range e.merged {
		out.merged = append(out.merged, Map(m, f))
	}
	return out
}
