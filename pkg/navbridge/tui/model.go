package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/bridge"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/feature"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/router"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

var errNoCounter = errors.New("leaf screen has no counter")

// stateMsg carries a snapshot published by the store.
type stateMsg struct {
	state feature.State
}

type screenRouter = router.Router[feature.ScreenKind, feature.Screen, string]

// model renders the top-level container and whatever screen is on top of
// its path. It never mutates container state itself: container input is
// sent to the store and the next snapshot arrives as a stateMsg. Leaf input
// goes straight to the leaf's counter.
type model struct {
	store    *feature.Store
	strategy bridge.Strategy
	text     *internal.Localizer
	styles   styles
	keys     keyMap
	help     help.Model
	screens  *screenRouter
	state    feature.State
	wired    map[uuid.UUID]bool
	quitting bool
}

func newModel(st *feature.Store, strategy bridge.Strategy, text *internal.Localizer, theme Theme) *model {
	m := &model{
		store:    st,
		strategy: strategy,
		text:     text,
		styles:   theme.styles(),
		keys:     newKeyMap(text),
		help:     help.New(),
		wired:    make(map[uuid.UUID]bool),
	}
	m.help.Styles.ShortKey = m.styles.text
	m.help.Styles.ShortDesc = m.styles.hint

	m.screens = router.New[feature.ScreenKind, feature.Screen, string](func(s feature.Screen) feature.ScreenKind {
		return s.Kind
	})
	m.screens.
		Register(feature.ScreenNested, m.nestedView).
		Register(feature.ScreenLeaf, m.leafView)
	return m
}

func (m *model) Init() tea.Cmd {
	return func() tea.Msg {
		return stateMsg{state: m.store.State()}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		m.wireLeaves()
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		top, ok := m.state.Top()
		if ok && top.Kind == feature.ScreenLeaf {
			m.leafKey(top, msg)
		} else {
			m.containerKey(top, ok, msg)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) containerKey(top feature.Screen, nested bool, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PushLeaf):
		m.sendTo(top, nested, feature.Pushed{})
	case key.Matches(msg, m.keys.PushNested):
		m.sendTo(top, nested, feature.NestedPushed{})
	case key.Matches(msg, m.keys.Close):
		if nested {
			m.sendTo(top, nested, feature.CloseTapped{})
		}
	case key.Matches(msg, m.keys.Back):
		m.store.Send(feature.Popped{})
	}
}

// sendTo delivers action to the nested container on top, or to the
// top-level container when the path is empty.
func (m *model) sendTo(top feature.Screen, nested bool, action feature.Action) {
	if !nested {
		m.store.Send(action)
		return
	}
	m.store.Send(feature.Element{Screen: top.ID, Action: action})
}

func (m *model) leafKey(top feature.Screen, msg tea.KeyMsg) {
	counter := top.Leaf
	if counter == nil {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Increment):
		counter.Increment()
	case key.Matches(msg, m.keys.Decrement):
		counter.Decrement()
	case key.Matches(msg, m.keys.Set):
		if d, err := strconv.Atoi(msg.String()); err == nil {
			counter.Set(d)
		}
	case key.Matches(msg, m.keys.Report):
		counter.ReportCurrentCount()
	case key.Matches(msg, m.keys.Back):
		m.store.Send(feature.Popped{})
	}
}

// wireLeaves attaches every new leaf to the store when the weak reference
// strategy is in use. The other strategies wire inside the store.
func (m *model) wireLeaves() {
	if m.strategy != bridge.StrategyWeakRef {
		return
	}
	onPath := make(map[uuid.UUID]bool)
	for _, screen := range m.state.Path.Entries() {
		if screen.Kind != feature.ScreenLeaf {
			continue
		}
		onPath[screen.ID] = true
		if !m.wired[screen.ID] {
			feature.WireLeaf(m.store, screen)
			m.wired[screen.ID] = true
		}
	}
	for id := range m.wired {
		if !onPath[id] {
			delete(m.wired, id)
		}
	}
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	body, ok, err := m.screens.ResolveTop(&m.state.Path)
	if !ok {
		body = m.rootView()
	}
	if err != nil {
		body = m.styles.err.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(m.styles.hint.Render(
		m.text.Text("Strategy", map[string]any{"Strategy": m.strategy.String()}) + "  " +
			m.text.Text("Depth", map[string]any{"Depth": m.state.Path.Len()}),
	))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys()))
	return m.styles.frame.Render(b.String())
}

func (m *model) helpKeys() help.KeyMap {
	top, ok := m.state.Top()
	if ok && top.Kind == feature.ScreenLeaf {
		return leafHelp{keys: m.keys}
	}
	return containerHelp{keys: m.keys, nested: ok}
}

func (m *model) rootView() string {
	return m.containerView(m.text.Text("RootTitle", nil), m.state.Count)
}

func (m *model) nestedView(s feature.Screen) (string, error) {
	count := 0
	if s.Nested != nil {
		count = s.Nested.Count
	}
	return m.containerView(m.text.Text("NestedTitle", nil), count), nil
}

func (m *model) containerView(title string, count int) string {
	return m.styles.title.Render(title) + "\n\n" +
		m.styles.text.Render(m.text.Text("StoreCount", map[string]any{"Count": count}))
}

func (m *model) leafView(s feature.Screen) (string, error) {
	if s.Leaf == nil {
		return "", errNoCounter
	}
	return m.styles.title.Render(m.text.Text("LeafTitle", nil)) + "\n\n" +
		m.styles.count.Render(m.text.Text("ViewModelCount", map[string]any{"Count": s.Leaf.Count()})), nil
}
