package router

import "errors"

// ErrEmptyStack is returned by PopStrict when there is nothing to pop.
var ErrEmptyStack = errors.New("router: stack is empty")

// Stack is an ordered sequence of navigation entries. The last entry is the
// top of the stack and determines what is currently shown.
//
// The zero value is an empty stack ready to use.
type Stack[E any] struct {
	entries []E
}

// NewStack creates a new empty navigation stack.
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{
		entries: make([]E, 0),
	}
}

// Push adds a new entry to the top of the stack.
func (s *Stack[E]) Push(entry E) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry from the stack.
// Popping an empty stack is a no-op and reports false.
func (s *Stack[E]) Pop() (E, bool) {
	var zero E
	if len(s.entries) == 0 {
		return zero, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// PopStrict is Pop for callers that treat an empty stack as an error.
func (s *Stack[E]) PopStrict() (E, error) {
	entry, ok := s.Pop()
	if !ok {
		return entry, ErrEmptyStack
	}
	return entry, nil
}

// PopTo removes entries from the top until the top entry matches pred.
// The matching entry stays on the stack. The removed entries are returned
// top first. If no entry matches, the stack is left untouched.
func (s *Stack[E]) PopTo(pred func(E) bool) []E {
	i := s.LastIndex(pred)
	if i < 0 {
		return nil
	}
	return s.Truncate(i + 1)
}

// Truncate shrinks the stack to depth entries and returns the removed
// entries, top first.
func (s *Stack[E]) Truncate(depth int) []E {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(s.entries) {
		return nil
	}
	removed := make([]E, 0, len(s.entries)-depth)
	for len(s.entries) > depth {
		entry, _ := s.Pop()
		removed = append(removed, entry)
	}
	return removed
}

// LastIndex returns the index of the topmost entry matching pred, or -1.
func (s *Stack[E]) LastIndex(pred func(E) bool) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if pred(s.entries[i]) {
			return i
		}
	}
	return -1
}

// At returns the entry at index i, counted from the bottom.
func (s *Stack[E]) At(i int) (E, bool) {
	if i < 0 || i >= len(s.entries) {
		var zero E
		return zero, false
	}
	return s.entries[i], true
}

// Peek returns the top entry without removing it.
func (s *Stack[E]) Peek() (E, bool) {
	return s.At(len(s.entries) - 1)
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[E]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[E]) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack[E]) Clear() {
	s.Truncate(0)
}

// Entries returns a copy of the entries, bottom first.
func (s *Stack[E]) Entries() []E {
	out := make([]E, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clone returns an independent stack. Entries are copied with clone when
// it is non-nil, otherwise by value.
func (s *Stack[E]) Clone(clone func(E) E) Stack[E] {
	out := Stack[E]{entries: make([]E, len(s.entries))}
	for i, entry := range s.entries {
		if clone != nil {
			entry = clone(entry)
		}
		out.entries[i] = entry
	}
	return out
}
