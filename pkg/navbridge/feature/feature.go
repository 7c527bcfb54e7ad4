// Package feature is the parent container: a counter and a navigation path
// reduced by a single dispatch loop, able to show both nested containers
// and leaf screens backed by a viewmodel.Counter.
//
// The top-level container owns the only path. Nested containers never
// touch navigation; they raise Delegate events which the top level turns
// into pushes and pops. Values reported by a leaf travel back to the
// container that asked for it.
package feature

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/bridge"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/store"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
	"github.com/google/uuid"
)

// Store is a running parent container.
type Store = store.Store[State, Action]

type effect = store.Effect[Action]

func none() effect { return store.None[Action]() }

// Feature reduces actions for the top-level container and every nested one.
type Feature struct {
	strategy bridge.Strategy
	logger   *slog.Logger
	newID    func() uuid.UUID
}

// Option configures a Feature.
type Option func(*Feature)

// WithLogger sets the logger used by the Feature and its stores.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Feature) { f.logger = logger }
}

// WithIDs replaces the screen ID generator.
func WithIDs(newID func() uuid.UUID) Option {
	return func(f *Feature) { f.newID = newID }
}

// New returns a Feature wiring leaf screens with strategy.
func New(strategy bridge.Strategy, opts ...Option) *Feature {
	f := &Feature{
		strategy: strategy,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = internal.GetInternalLogger()
	}
	return f
}

// Strategy returns the strategy leaf screens are wired with.
func (f *Feature) Strategy() bridge.Strategy {
	return f.strategy
}

// NewStore returns a store for initial reduced by f.
func (f *Feature) NewStore(initial State) *Store {
	return store.New(initial, f.Reduce, store.WithLogger[State, Action](f.logger))
}

// Reduce is the top-level reducer.
func (f *Feature) Reduce(state *State, action Action) store.Effect[Action] {
	switch a := action.(type) {
	case Pushed:
		return f.pushLeaf(state, uuid.Nil)

	case NestedPushed:
		state.Path.Push(NestedScreen(f.newID()))
		return none()

	case ChildPushed:
		if owner := a.Screen.Owner; owner != uuid.Nil && state.indexOf(owner) < 0 {
			f.logger.Debug("leaf owner closed before the leaf arrived", "screen", a.Screen.ID, "owner", owner)
			return f.release(a.Screen)
		}
		state.Path.Push(a.Screen)
		return none()

	case ValueSelected:
		return f.valueSelected(state, a)

	case Popped:
		screen, ok := state.Path.Pop()
		if !ok {
			f.logger.Debug("pop on empty path ignored")
			return none()
		}
		return f.release(screen)

	case PoppedTo:
		return f.release(state.Path.PopTo(func(s Screen) bool { return s.ID == a.Screen })...)

	case CloseTapped:
		f.logger.Debug("close ignored at top level")
		return none()

	case Element:
		return f.element(state, a)

	case Delegate:
		f.logger.Debug("delegate ignored at top level", "event", a.Event)
		return none()

	default:
		f.logger.Error("unhandled action", "action", action)
		return none()
	}
}

// reduceNested is the reducer of a nested container. It changes only its own
// count and asks its parent for everything else.
func (f *Feature) reduceNested(state *State, action Action) store.Effect[Action] {
	switch a := action.(type) {
	case Pushed:
		return store.Just[Action](Delegate{Event: RequestLeaf{}})

	case NestedPushed:
		return store.Just[Action](Delegate{Event: RequestNested{}})

	case CloseTapped:
		return store.Just[Action](Delegate{Event: Dismiss{}})

	case ValueSelected:
		state.Count = a.Count
		return store.Just[Action](Delegate{Event: CountSelected{Screen: a.Screen, Count: a.Count}})

	default:
		f.logger.Debug("action not handled by nested screen", "action", action)
		return none()
	}
}

func (f *Feature) pushLeaf(state *State, owner uuid.UUID) effect {
	id := f.newID()

	wire, ok := f.strategy.Wiring()
	if !ok {
		// wired by the view layer, see WireLeaf
		state.Path.Push(LeafScreen(viewmodel.New(id), owner))
		return none()
	}

	return store.Run(func(ctx context.Context, send store.Send[Action]) {
		counter := viewmodel.New(id)
		wire(ctx, counter,
			func() { send(ChildPushed{Screen: LeafScreen(counter, owner)}) },
			func(count int) { send(ValueSelected{Screen: id, Count: count}) },
		)
	}).Cancellable(id)
}

func (f *Feature) valueSelected(state *State, a ValueSelected) effect {
	leaf, ok := state.Screen(a.Screen)
	if !ok || leaf.Kind != ScreenLeaf {
		f.logger.Debug("value for a screen no longer on the path", "screen", a.Screen, "count", a.Count)
		return none()
	}

	if a.Route == RouteRoot || leaf.Owner == uuid.Nil {
		state.Count = a.Count
		return f.removeThrough(state, a.Screen)
	}

	// Nobody is left to take the value.
	if state.indexOf(leaf.Owner) < 0 {
		f.logger.Debug("value for a leaf whose owner is gone", "screen", a.Screen, "owner", leaf.Owner)
		return f.removeThrough(state, a.Screen)
	}

	return f.element(state, Element{Screen: leaf.Owner, Action: a})
}

func (f *Feature) element(state *State, a Element) effect {
	screen, ok := state.Screen(a.Screen)
	if !ok || screen.Kind != ScreenNested {
		f.logger.Debug("action for a screen no longer on the path", "screen", a.Screen, "action", a.Action)
		return none()
	}

	if d, ok := a.Action.(Delegate); ok {
		return f.delegate(state, a.Screen, d.Event)
	}

	id := a.Screen
	return store.Map(f.reduceNested(screen.Nested, a.Action), func(child Action) Action {
		return Element{Screen: id, Action: child}
	})
}

func (f *Feature) delegate(state *State, from uuid.UUID, event DelegateEvent) effect {
	switch e := event.(type) {
	case RequestLeaf:
		return f.pushLeaf(state, from)
	case RequestNested:
		state.Path.Push(NestedScreen(f.newID()))
		return none()
	case CountSelected:
		return f.removeThrough(state, e.Screen)
	case Dismiss:
		return f.removeThrough(state, from)
	default:
		f.logger.Error("unhandled delegate event", "event", event)
		return none()
	}
}

// removeThrough pops id and everything above it.
func (f *Feature) removeThrough(state *State, id uuid.UUID) effect {
	i := state.indexOf(id)
	if i < 0 {
		return none()
	}
	return f.release(state.Path.Truncate(i)...)
}

// release detaches removed leaves and cancels their listeners.
func (f *Feature) release(screens ...Screen) effect {
	var ids []any
	for _, s := range screens {
		if s.Kind != ScreenLeaf {
			continue
		}
		if s.Leaf != nil {
			s.Leaf.Detach()
		}
		ids = append(ids, s.ID)
	}
	return store.Cancel[Action](ids...)
}

// WireLeaf connects a leaf built for the weak reference strategy to the
// top-level container. The view layer calls it when it builds the leaf
// view. Values always land on the top-level count, whichever container
// asked for the leaf.
func WireLeaf(root *Store, screen Screen) {
	if screen.Kind != ScreenLeaf || screen.Leaf == nil {
		return
	}
	id := screen.ID
	bridge.AttachWeak(screen.Leaf, root, func(s *Store, count int) {
		s.Send(ValueSelected{Screen: id, Count: count, Route: RouteRoot})
	})
}
