package bridge

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
	"github.com/google/uuid"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(" " + s.String() + " ")
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}

		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back Strategy
		if err := back.UnmarshalText(text); err != nil || back != s {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
	}

	if _, err := ParseStrategy("WeakRef"); err != nil {
		t.Errorf("ParseStrategy should ignore case: %v", err)
	}
	if _, err := ParseStrategy("carrier-pigeon"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(carrier-pigeon) error = %v", err)
	}
	if _, err := Strategy(9).MarshalText(); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("MarshalText(9) error = %v", err)
	}
}

func TestWiring(t *testing.T) {
	if _, ok := StrategyWeakRef.Wiring(); ok {
		t.Error("weakref has container-side wiring")
	}
	for _, s := range []Strategy{StrategyChannel, StrategyDelegate} {
		if w, ok := s.Wiring(); !ok || w == nil {
			t.Errorf("%v has no wiring", s)
		}
	}
}

func TestStreamDeliversInOrderThenFinishes(t *testing.T) {
	s := NewStream[int]()
	for i := 1; i <= 3; i++ {
		s.Yield(i)
	}
	s.Finish()
	if s.Yield(4) {
		t.Fatal("Yield succeeded after Finish")
	}

	ctx := context.Background()
	for want := 1; want <= 3; want++ {
		got, ok := s.Next(ctx)
		if !ok || got != want {
			t.Fatalf("Next = %d,%v want %d", got, ok, want)
		}
	}
	if _, ok := s.Next(ctx); ok {
		t.Fatal("Next returned a value after drain")
	}
}

func TestStreamNextHonoursContext(t *testing.T) {
	s := NewStream[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, ok := s.Next(ctx); ok {
		t.Fatal("Next returned a value on an empty stream")
	}
}

// runWiring starts wire in a goroutine and returns the delivered values and
// a stop function that cancels it and waits for it to return.
func runWiring(t *testing.T, wire Wiring, counter *viewmodel.Counter) (<-chan int, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	pushed := make(chan struct{})
	values := make(chan int, 8)
	done := make(chan struct{})

	go func() {
		defer close(done)
		wire(ctx, counter, func() { close(pushed) }, func(n int) { values <- n })
	}()

	select {
	case <-pushed:
	case <-time.After(time.Second):
		t.Fatal("push never called")
	}
	if !counter.Wired() {
		t.Fatal("counter not wired when push ran")
	}

	return values, func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("wiring did not return after cancel")
		}
	}
}

func TestContainerWirings(t *testing.T) {
	for _, s := range []Strategy{StrategyChannel, StrategyDelegate} {
		t.Run(s.String(), func(t *testing.T) {
			wire, _ := s.Wiring()
			counter := viewmodel.New(uuid.New())
			values, stop := runWiring(t, wire, counter)

			counter.Set(7)
			counter.ReportCurrentCount()
			select {
			case got := <-values:
				if got != 7 {
					t.Fatalf("delivered %d, want 7", got)
				}
			case <-time.After(time.Second):
				t.Fatal("value not delivered")
			}

			stop()
			if counter.Wired() {
				t.Fatal("counter still wired after cancel")
			}

			counter.ReportCurrentCount()
			select {
			case got := <-values:
				t.Fatalf("delivered %d after cancel", got)
			case <-time.After(10 * time.Millisecond):
			}
		})
	}
}

func TestHandleExpiresWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var got []string
	h := NewHandle(ctx, func(v string) { got = append(got, v) })

	if !h.Deliver("before") {
		t.Fatal("Deliver failed on a live handle")
	}
	cancel()

	deadline := time.Now().Add(time.Second)
	for !h.Expired() {
		if time.Now().After(deadline) {
			t.Fatal("handle did not expire")
		}
		time.Sleep(time.Millisecond)
	}
	if h.Deliver("after") {
		t.Fatal("Deliver succeeded on an expired handle")
	}
	if len(got) != 1 || got[0] != "before" {
		t.Fatalf("delivered %v", got)
	}
}

type sink struct {
	values []int
	_      [64]byte
}

func TestAttachWeakDispatchesWhileAlive(t *testing.T) {
	target := &sink{}
	counter := viewmodel.New(uuid.New())
	AttachWeak(counter, target, func(s *sink, n int) { s.values = append(s.values, n) })

	counter.Set(4)
	counter.ReportCurrentCount()
	if len(target.values) != 1 || target.values[0] != 4 {
		t.Fatalf("values = %v", target.values)
	}
	runtime.KeepAlive(target)
}

func TestAttachWeakDropsAfterCollection(t *testing.T) {
	counter := viewmodel.New(uuid.New())
	calls := 0
	func() {
		target := &sink{}
		AttachWeak(counter, target, func(*sink, int) { calls++ })
	}()

	for i := 0; i < 5; i++ {
		runtime.GC()
	}
	counter.ReportCurrentCount()
	if calls != 0 {
		t.Fatalf("dispatch ran %d times into a collected container", calls)
	}
}
