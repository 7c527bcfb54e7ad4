package feature

import "github.com/google/uuid"

// Action is every event a container reduces. The set is closed: only the
// types in this file implement it.
type Action interface {
	isAction()
}

// Pushed asks for a new leaf screen.
type Pushed struct{}

// NestedPushed asks for a new nested screen.
type NestedPushed struct{}

// ChildPushed puts a wired leaf screen on the path.
type ChildPushed struct {
	Screen Screen
}

// Route says where a ValueSelected lands.
type Route int

const (
	// RouteOwner delivers the value to the container that asked for the
	// leaf.
	RouteOwner Route = iota
	// RouteRoot always delivers to the top-level container.
	RouteRoot
)

// ValueSelected carries a value reported by the leaf Screen.
type ValueSelected struct {
	Screen uuid.UUID
	Count  int
	Route  Route
}

// Popped is the view layer's back navigation: remove the top entry.
type Popped struct{}

// PoppedTo removes every entry above Screen.
type PoppedTo struct {
	Screen uuid.UUID
}

// CloseTapped asks a nested screen to close itself.
type CloseTapped struct{}

// Element routes Action to the nested container of Screen.
type Element struct {
	Screen uuid.UUID
	Action Action
}

// Delegate is raised by a nested container for its parent to act on.
type Delegate struct {
	Event DelegateEvent
}

func (Pushed) isAction()        {}
func (NestedPushed) isAction()  {}
func (ChildPushed) isAction()   {}
func (ValueSelected) isAction() {}
func (Popped) isAction()        {}
func (PoppedTo) isAction()      {}
func (CloseTapped) isAction()   {}
func (Element) isAction()       {}
func (Delegate) isAction()      {}

// DelegateEvent is what a nested container can ask of its parent.
type DelegateEvent interface {
	isDelegateEvent()
}

// RequestLeaf asks the parent to push a leaf owned by the sender.
type RequestLeaf struct{}

// RequestNested asks the parent to push another nested screen.
type RequestNested struct{}

// CountSelected tells the parent the sender took Count from the leaf
// Screen, which can now be removed.
type CountSelected struct {
	Screen uuid.UUID
	Count  int
}

// Dismiss asks the parent to remove the sender.
type Dismiss struct{}

func (RequestLeaf) isDelegateEvent()   {}
func (RequestNested) isDelegateEvent() {}
func (CountSelected) isDelegateEvent() {}
func (Dismiss) isDelegateEvent()       {}
