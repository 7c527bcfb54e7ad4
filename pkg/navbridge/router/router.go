package router

import "fmt"

// DestinationFunc renders one stack entry into a view.
// The view type is chosen by the view layer (a string for a terminal UI,
// a widget tree for a graphical one).
type DestinationFunc[E, V any] func(entry E) (V, error)

// KindFunc reports which destination an entry belongs to.
type KindFunc[K comparable, E any] func(entry E) K

// Router maps entry kinds to destinations so that a single place decides
// how every kind of stack entry is presented.
type Router[K comparable, E, V any] struct {
	kind         KindFunc[K, E]
	destinations map[K]DestinationFunc[E, V]
}

// New creates a new Router. kind classifies entries for lookup.
func New[K comparable, E, V any](kind KindFunc[K, E]) *Router[K, E, V] {
	return &Router[K, E, V]{
		kind:         kind,
		destinations: make(map[K]DestinationFunc[E, V]),
	}
}

// Register adds a destination for a kind of entry.
// Registering the same kind twice replaces the earlier destination.
func (r *Router[K, E, V]) Register(kind K, fn DestinationFunc[E, V]) *Router[K, E, V] {
	r.destinations[kind] = fn
	return r
}

// Registered reports whether a destination exists for kind.
func (r *Router[K, E, V]) Registered(kind K) bool {
	_, ok := r.destinations[kind]
	return ok
}

// Resolve renders entry with the destination registered for its kind.
func (r *Router[K, E, V]) Resolve(entry E) (V, error) {
	var zero V
	if r.kind == nil {
		return zero, fmt.Errorf("router: no kind function set")
	}

	k := r.kind(entry)
	fn, ok := r.destinations[k]
	if !ok {
		return zero, fmt.Errorf("router: screen %v not registered", k)
	}

	view, err := fn(entry)
	if err != nil {
		return zero, fmt.Errorf("router: screen %v error: %w", k, err)
	}
	return view, nil
}

// ResolveTop renders the top entry of stack. ok is false when the stack is
// empty, in which case the caller shows its root view.
func (r *Router[K, E, V]) ResolveTop(stack *Stack[E]) (view V, ok bool, err error) {
	top, ok := stack.Peek()
	if !ok {
		return view, false, nil
	}
	view, err = r.Resolve(top)
	return view, true, err
}
