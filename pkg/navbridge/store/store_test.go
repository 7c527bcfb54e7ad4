package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type counterState struct {
	Value int
	Log   []string
}

func (s counterState) Clone() counterState {
	s.Log = append([]string(nil), s.Log...)
	return s
}

type counterAction interface{ isCounterAction() }

type add struct{ N int }
type note struct{ Text string }
type listen struct{ ID string }
type stop struct{ ID string }
type burst struct{ N int }

func (add) isCounterAction()    {}
func (note) isCounterAction()   {}
func (listen) isCounterAction() {}
func (stop) isCounterAction()   {}
func (burst) isCounterAction()  {}

// feed lets tests push values into a running listen effect.
type feed chan int

func counterReducer(feeds map[string]feed) Reducer[counterState, counterAction] {
	return func(state *counterState, action counterAction) Effect[counterAction] {
		switch a := action.(type) {
		case add:
			state.Value += a.N
			state.Log = append(state.Log, "add")
			return None[counterAction]()
		case note:
			state.Log = append(state.Log, a.Text)
			return None[counterAction]()
		case burst:
			actions := make([]counterAction, 0, a.N)
			for i := 0; i < a.N; i++ {
				actions = append(actions, add{N: 1})
			}
			return Just(actions...)
		case listen:
			ch := feeds[a.ID]
			return Run(func(ctx context.Context, send Send[counterAction]) {
				for {
					select {
					case <-ctx.Done():
						return
					case n := <-ch:
						send(add{N: n})
					}
				}
			}).Cancellable(a.ID)
		case stop:
			return Cancel[counterAction](a.ID)
		}
		return None[counterAction]()
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(feeds map[string]feed) *Store[counterState, counterAction] {
	return New(counterState{}, counterReducer(feeds), WithLogger[counterState, counterAction](quietLogger()))
}

func startStore(t *testing.T, feeds map[string]feed) *Store[counterState, counterAction] {
	t.Helper()
	return runStore(t, newStore(feeds))
}

func runStore(t *testing.T, s *Store[counterState, counterAction]) *Store[counterState, counterAction] {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Run returned %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("dispatch loop did not stop")
		}
	})
	return s
}

func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestActionsAreProcessedInOrder(t *testing.T) {
	s := startStore(t, nil)

	want := []string{"a", "b", "c", "d", "e"}
	for _, text := range want {
		s.Send(note{Text: text})
	}

	eventually(t, "five actions", func() bool { return s.Processed() == 5 })
	if diff := cmp.Diff(want, s.State().Log); diff != "" {
		t.Fatalf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestJustEnqueuesBehindPendingActions(t *testing.T) {
	s := newStore(nil)
	s.Send(burst{N: 3})
	s.Send(note{Text: "after burst"})
	runStore(t, s)

	eventually(t, "burst to drain", func() bool { return s.State().Value == 3 })
	want := []string{"after burst", "add", "add", "add"}
	if diff := cmp.Diff(want, s.State().Log); diff != "" {
		t.Fatalf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestCancelledEffectCannotDispatch(t *testing.T) {
	feeds := map[string]feed{"x": make(feed)}
	s := startStore(t, feeds)

	s.Send(listen{ID: "x"})
	eventually(t, "listener to start", func() bool { return s.Running("x") })

	feeds["x"] <- 2
	eventually(t, "first value", func() bool { return s.State().Value == 2 })

	s.Send(stop{ID: "x"})
	eventually(t, "listener to stop", func() bool { return !s.Running("x") && s.ActiveEffects() == 0 })

	select {
	case feeds["x"] <- 5:
		t.Fatal("cancelled listener still receiving")
	case <-time.After(20 * time.Millisecond):
	}
	if got := s.State().Value; got != 2 {
		t.Fatalf("Value = %d, want 2", got)
	}
}

func TestSameIDReplacesRunningEffect(t *testing.T) {
	feeds := map[string]feed{"x": make(feed)}
	s := startStore(t, feeds)

	s.Send(listen{ID: "x"})
	s.Send(listen{ID: "x"})
	eventually(t, "single listener", func() bool { return s.Processed() == 2 && s.ActiveEffects() == 1 })
}

func TestObserverSeesSnapshots(t *testing.T) {
	s := startStore(t, nil)

	seen := make(chan counterState, 4)
	cancel := s.Observe(func(state counterState, _ counterAction) {
		seen <- state
	})

	s.Send(add{N: 4})
	first := <-seen
	first.Log[0] = "mutated"

	s.Send(add{N: 1})
	second := <-seen
	if second.Value != 5 || second.Log[0] != "add" {
		t.Fatalf("snapshot shared with store: %+v", second)
	}

	cancel()
	s.Send(add{N: 1})
	eventually(t, "third action", func() bool { return s.Processed() == 3 })
	select {
	case st := <-seen:
		t.Fatalf("removed observer called with %+v", st)
	default:
	}
}

func TestRunTwice(t *testing.T) {
	s := startStore(t, nil)
	eventually(t, "loop start", func() bool { return s.started.Load() })

	if err := s.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second Run = %v, want ErrAlreadyRunning", err)
	}
}

func TestStopCancelsEffectsAndDropsSends(t *testing.T) {
	feeds := map[string]feed{"x": make(feed)}
	s := newStore(feeds)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	s.Send(listen{ID: "x"})
	eventually(t, "listener to start", func() bool { return s.Running("x") })

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run = %v", err)
	}
	if s.ActiveEffects() != 0 {
		t.Fatalf("ActiveEffects = %d after stop", s.ActiveEffects())
	}

	s.Send(add{N: 1})
	if !s.Stopped() || s.State().Value != 0 {
		t.Fatalf("send after stop changed state: %+v", s.State())
	}
}

func TestMapWrapsActions(t *testing.T) {
	inner := Merge(Just(1, 2), Run(func(ctx context.Context, send Send[int]) { send(3) }))
	outer := Map(inner, func(n int) string { return string(rune('a' + n - 1)) })

	var got []string
	for _, m := range outer.merged {
		got = append(got, m.actions...)
		if m.run != nil {
			m.run(context.Background(), func(s string) { got = append(got, s) })
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("mapped actions mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSkipsNone(t *testing.T) {
	if !Merge(None[int](), Cancel[int]()).IsNone() {
		t.Fatal("merge of empty effects is not None")
	}
	one := Just(1)
	if m := Merge(None[int](), one); len(m.actions) != 1 || len(m.merged) != 0 {
		t.Fatalf("single effect not unwrapped: %+v", m)
	}
}
