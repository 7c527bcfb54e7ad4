package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
)

// ErrUnknownStrategy is returned when a strategy name is not recognised.
var ErrUnknownStrategy = errors.New("bridge: unknown strategy")

// Strategy names a way of connecting a leaf screen to its container.
type Strategy int

const (
	// StrategyChannel wires the counter to a stream owned by a listening
	// effect of the container.
	StrategyChannel Strategy = iota
	// StrategyWeakRef lets the view layer wire the counter straight into
	// the top-level container through a weak reference.
	StrategyWeakRef
	// StrategyDelegate hands the counter a scoped Handle that expires with
	// the screen and routes through the owning container.
	StrategyDelegate
)

var strategyNames = map[Strategy]string{
	StrategyChannel:  "channel",
	StrategyWeakRef:  "weakref",
	StrategyDelegate: "delegate",
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyChannel, StrategyWeakRef, StrategyDelegate}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(raw string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(raw))
	for s, name := range strategyNames {
		if name == want {
			return s, nil
		}
	}
	return StrategyChannel, fmt.Errorf("%w: %q", ErrUnknownStrategy, raw)
}

func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Wiring connects a freshly created counter to its container. It calls push
// once the counter is wired, forwards reported values to deliver and
// returns when ctx is done.
type Wiring func(ctx context.Context, counter *viewmodel.Counter, push func(), deliver func(count int))

// Wiring returns the container-side wiring for s. The weak reference
// strategy has none: the view layer wires it with AttachWeak.
func (s Strategy) Wiring() (Wiring, bool) {
	switch s {
	case StrategyChannel:
		return Listen, true
	case StrategyDelegate:
		return Scoped, true
	default:
		return nil, false
	}
}
