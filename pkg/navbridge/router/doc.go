// Package router provides the navigation stack and the destination table
// used to present it.
//
// Stack is the only structure that holds navigation history. Entries are
// pushed on the top and popped from the top; popping an empty stack is a
// no-op unless the caller asks for PopStrict. Stacks are plain values so a
// state container can embed one and snapshot it with Clone.
//
// Router decides how each kind of entry is presented. The view layer
// registers one destination per kind and resolves the top of the stack on
// every render.
//
// # Basic Usage
//
//	type Kind int
//
//	const (
//	    KindList Kind = iota
//	    KindDetail
//	)
//
//	type Entry struct {
//	    Kind  Kind
//	    Title string
//	}
//
//	var stack router.Stack[Entry]
//	stack.Push(Entry{Kind: KindList, Title: "Games"})
//	stack.Push(Entry{Kind: KindDetail, Title: "Portal"})
//
//	r := router.New[Kind, Entry, string](func(e Entry) Kind { return e.Kind })
//	r.Register(KindList, func(e Entry) (string, error) { return "list: " + e.Title, nil })
//	r.Register(KindDetail, func(e Entry) (string, error) { return "detail: " + e.Title, nil })
//
//	view, ok, err := r.ResolveTop(&stack) // "detail: Portal"
//
// # Popping
//
// Pop removes exactly one entry. PopTo removes entries above the first
// entry (from the top) that matches a predicate and leaves the stack
// untouched when nothing matches. Truncate cuts the stack to a depth and
// returns what was removed so the caller can release it.
package router
