package tui

import (
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	PushLeaf   key.Binding
	PushNested key.Binding
	Close      key.Binding
	Increment  key.Binding
	Decrement  key.Binding
	Set        key.Binding
	Report     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func newKeyMap(text *internal.Localizer) keyMap {
	return keyMap{
		PushLeaf: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", text.Text("PushLeaf", nil)),
		),
		PushNested: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", text.Text("PushNested", nil)),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", text.Text("Close", nil)),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "up", "k"),
			key.WithHelp("+/↑", text.Text("Increment", nil)),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/↓", text.Text("Decrement", nil)),
		),
		Set: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", text.Text("SetDigit", nil)),
		),
		Report: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", text.Text("SendBack", nil)),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", text.Text("Back", nil)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", text.Text("Quit", nil)),
		),
	}
}

// containerHelp lists the bindings of root and nested screens.
type containerHelp struct {
	keys   keyMap
	nested bool
}

func (h containerHelp) ShortHelp() []key.Binding {
	bindings := []key.Binding{h.keys.PushLeaf, h.keys.PushNested}
	if h.nested {
		bindings = append(bindings, h.keys.Close, h.keys.Back)
	}
	return append(bindings, h.keys.Quit)
}

func (h containerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// leafHelp lists the bindings of leaf screens.
type leafHelp struct {
	keys keyMap
}

func (h leafHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Increment, h.keys.Decrement, h.keys.Set, h.keys.Report, h.keys.Back, h.keys.Quit}
}

func (h leafHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
