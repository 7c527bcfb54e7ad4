// Package tui is a terminal view layer for the parent container. It shows
// the top-level container, lets the user push nested containers and leaf
// screens, and drives each leaf's counter directly from the keyboard.
package tui

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/feature"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	tea "github.com/charmbracelet/bubbletea"
)

// Run builds a container from cfg and shows it until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, cfg navbridge.Config, opts ...tea.ProgramOption) error {
	text, err := internal.NewLocalizer(cfg.Locale)
	if err != nil {
		return err
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	f := feature.New(cfg.Strategy)
	st := f.NewStore(feature.State{Count: cfg.InitialCount})
	m := newModel(st, cfg.Strategy, text, NewTheme(cfg.AccentColor))

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)...)

	stop := st.Observe(func(state feature.State, _ feature.Action) {
		p.Send(stateMsg{state: state})
	})
	defer stop()

	storeErr := make(chan error, 1)
	go func() {
		storeErr <- st.Run(ctx)
	}()

	logger := navbridge.GetLogger()
	logger.Info("starting", "strategy", cfg.Strategy.String(), "locale", text.Tag().String())

	_, err = p.Run()
	cancel()
	if serr := <-storeErr; serr != nil && err == nil {
		err = serr
	}
	if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
		err = nil
	}

	logger.Info("stopped", "processed", st.Processed())
	return err
}
