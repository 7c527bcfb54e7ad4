package feature

import (
	"fmt"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/router"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
	"github.com/google/uuid"
)

// ScreenKind tells the two kinds of stack entry apart.
type ScreenKind int

const (
	// ScreenNested is a screen driven by its own nested State.
	ScreenNested ScreenKind = iota
	// ScreenLeaf is a screen driven by a viewmodel.Counter.
	ScreenLeaf
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenNested:
		return "nested"
	case ScreenLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("ScreenKind(%d)", int(k))
	}
}

// Screen is one entry of the navigation path.
//
// Leaf entries carry their Counter as a reference. It is not reducer state:
// the view mutates it directly and snapshots share it.
type Screen struct {
	ID   uuid.UUID
	Kind ScreenKind

	// Nested is set for ScreenNested.
	Nested *State

	// Leaf and Owner are set for ScreenLeaf. Owner is the nested screen that
	// asked for the leaf, or uuid.Nil for the root.
	Leaf  *viewmodel.Counter
	Owner uuid.UUID
}

// NestedScreen returns a nested entry with a fresh State.
func NestedScreen(id uuid.UUID) Screen {
	return Screen{ID: id, Kind: ScreenNested, Nested: &State{}}
}

// LeafScreen returns a leaf entry for counter, owned by owner.
func LeafScreen(counter *viewmodel.Counter, owner uuid.UUID) Screen {
	return Screen{ID: counter.ID(), Kind: ScreenLeaf, Leaf: counter, Owner: owner}
}

func (s Screen) clone() Screen {
	if s.Nested != nil {
		nested := s.Nested.Clone()
		s.Nested = &nested
	}
	return s
}

// State is the state of a parent container.
type State struct {
	Count int
	Path  router.Stack[Screen]
}

// Clone returns a deep copy. Counters are shared.
func (s State) Clone() State {
	return State{
		Count: s.Count,
		Path:  s.Path.Clone(Screen.clone),
	}
}

// Screen returns the entry with id.
func (s *State) Screen(id uuid.UUID) (Screen, bool) {
	return s.Path.At(s.indexOf(id))
}

// Top returns the entry currently shown, if any.
func (s *State) Top() (Screen, bool) {
	return s.Path.Peek()
}

// Leaves returns the number of leaf entries on the path.
func (s *State) Leaves() int {
	n := 0
	for _, screen := range s.Path.Entries() {
		if screen.Kind == ScreenLeaf {
			n++
		}
	}
	return n
}

func (s *State) indexOf(id uuid.UUID) int {
	return s.Path.LastIndex(func(screen Screen) bool { return screen.ID == id })
}
