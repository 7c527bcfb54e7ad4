package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"go.uber.org/atomic"
)

// ErrAlreadyRunning is returned when Run is called on a store whose
// dispatch loop is already running or has already stopped.
var ErrAlreadyRunning = errors.New("store: dispatch loop already started")

// Reducer applies an action to the state and returns the follow-up work.
// It runs on the dispatch loop and must not block.
type Reducer[S, A any] func(state *S, action A) Effect[A]

// Observer is called on the dispatch loop after every reduced action with a
// snapshot of the resulting state.
type Observer[S, A any] func(state S, action A)

// Cloner is implemented by states that hold references and need a deep copy
// to be handed out as snapshots.
type Cloner[S any] interface {
	Clone() S
}

// Option configures a Store.
type Option[S, A any] func(*Store[S, A])

// WithLogger sets the logger used by the store.
func WithLogger[S, A any](logger *slog.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		s.logger = logger
	}
}

// WithClone overrides how snapshots are copied.
func WithClone[S, A any](clone func(S) S) Option[S, A] {
	return func(s *Store[S, A]) {
		s.clone = clone
	}
}

type task struct {
	id        any
	cancel    context.CancelFunc
	cancelled atomic.Bool
}

type envelope[A any] struct {
	action A
	origin *task
}

// Store owns a state value and the single dispatch loop allowed to mutate
// it. Actions are processed strictly in the order they were enqueued.
type Store[S, A any] struct {
	reducer Reducer[S, A]
	logger  *slog.Logger
	clone   func(S) S

	stateMu sync.RWMutex
	state   S

	queueMu sync.Mutex
	queue   []envelope[A]
	wake    chan struct{}

	tasksMu sync.Mutex
	tasks   map[any]*task
	wg      sync.WaitGroup

	observersMu sync.Mutex
	observers   map[uint64]Observer[S, A]
	nextID      uint64

	started   atomic.Bool
	stopped   atomic.Bool
	processed atomic.Int64
	active    atomic.Int64
}

// New creates a store holding initial and reducing actions with reducer.
// Nothing is processed until Run is called.
func New[S, A any](initial S, reducer Reducer[S, A], opts ...Option[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		reducer:   reducer,
		state:     initial,
		wake:      make(chan struct{}, 1),
		tasks:     make(map[any]*task),
		observers: make(map[uint64]Observer[S, A]),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = internal.GetInternalLogger()
	}
	if s.clone == nil {
		s.clone = func(state S) S {
			if c, ok := any(state).(Cloner[S]); ok {
				return c.Clone()
			}
			return state
		}
	}
	return s
}

// Send enqueues an action. It never blocks and is safe to call from any
// goroutine. Actions sent after the loop stopped are dropped.
func (s *Store[S, A]) Send(action A) {
	s.enqueue(envelope[A]{action: action})
}

// State returns a snapshot of the current state.
func (s *Store[S, A]) State() S {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.clone(s.state)
}

// Observe registers fn to be called after every action. The returned
// function removes the observer.
func (s *Store[S, A]) Observe(fn Observer[S, A]) (cancel func()) {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		delete(s.observers, id)
	}
}

// Processed returns the number of actions reduced so far.
func (s *Store[S, A]) Processed() int64 {
	return s.processed.Load()
}

// ActiveEffects returns the number of running effect goroutines.
func (s *Store[S, A]) ActiveEffects() int64 {
	return s.active.Load()
}

// Running reports whether the effect registered under id is still running.
func (s *Store[S, A]) Running(id any) bool {
	s.tasksMu.Lock()
	defer s.tasksMu.Unlock()
	_, ok := s.tasks[id]
	return ok
}

// Stopped reports whether the dispatch loop has exited.
func (s *Store[S, A]) Stopped() bool {
	return s.stopped.Load()
}

// Run drains the action queue until ctx is done. On return every running
// effect has been cancelled and has exited.
func (s *Store[S, A]) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		s.stopped.Store(true)
		s.cancelAll()
		cancel()
		s.wg.Wait()
		s.logger.Debug("dispatch loop stopped", "processed", s.processed.Load())
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		env, ok := s.dequeue()
		if !ok {
			select {
			case <-ctx.Done():
				return nil
			case <-s.wake:
			}
			continue
		}

		s.process(ctx, env)
	}
}

func (s *Store[S, A]) enqueue(env envelope[A]) {
	if s.stopped.Load() {
		s.logger.Debug("dropping action sent after stop", "action", env.action)
		return
	}

	s.queueMu.Lock()
	s.queue = append(s.queue, env)
	s.queueMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store[S, A]) dequeue() (envelope[A], bool) {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()

	if len(s.queue) == 0 {
		return envelope[A]{}, false
	}
	env := s.queue[0]
	s.queue[0] = envelope[A]{}
	s.queue = s.queue[1:]
	return env, true
}

func (s *Store[S, A]) process(ctx context.Context, env envelope[A]) {
	if env.origin != nil && env.origin.cancelled.Load() {
		s.logger.Debug("dropping action from cancelled effect", "effect", env.origin.id, "action", env.action)
		return
	}

	s.stateMu.Lock()
	effect := s.reducer(&s.state, env.action)
	snapshot := s.clone(s.state)
	s.stateMu.Unlock()

	s.processed.Inc()
	s.execute(ctx, effect)
	s.notify(snapshot, env.action)
}

func (s *Store[S, A]) notify(state S, action A) {
	s.observersMu.Lock()
	observers := make([]Observer[S, A], 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.observersMu.Unlock()

	for _, fn := range observers {
		fn(state, action)
	}
}

func (s *Store[S, A]) execute(ctx context.Context, e Effect[A]) {
	for _, id := range e.cancelIDs {
		s.cancelTask(id)
	}
	for _, action := range e.actions {
		s.enqueue(envelope[A]{action: action})
	}
	if e.run != nil {
		s.spawn(ctx, e.id, e.run)
	}
	for _, m := range e.merged {
		s.execute(ctx, m)
	}
}

func (s *Store[S, A]) spawn(ctx context.Context, id any, run func(context.Context, Send[A])) {
	tctx, cancel := context.WithCancel(ctx)
	t := &task{id: id, cancel: cancel}

	if id != nil {
		s.tasksMu.Lock()
		if prev, ok := s.tasks[id]; ok {
			prev.cancelled.Store(true)
			prev.cancel()
		}
		s.tasks[id] = t
		s.tasksMu.Unlock()
	}

	s.wg.Add(1)
	s.active.Inc()
	go func() {
		defer func() {
			if id != nil {
				s.tasksMu.Lock()
				if s.tasks[id] == t {
					delete(s.tasks, id)
				}
				s.tasksMu.Unlock()
			}
			cancel()
			s.active.Dec()
			s.wg.Done()
		}()

		run(tctx, func(action A) {
			if t.cancelled.Load() {
				return
			}
			s.enqueue(envelope[A]{action: action, origin: t})
		})
	}()
}

func (s *Store[S, A]) cancelTask(id any) {
	s.tasksMu.Lock()
	t, ok := s.tasks[id]
	if ok {
		delete(s.tasks, id)
	}
	s.tasksMu.Unlock()

	if !ok {
		return
	}
	t.cancelled.Store(true)
	t.cancel()
	s.logger.Debug("effect cancelled", "effect", id)
}

func (s *Store[S, A]) cancelAll() {
	s.tasksMu.Lock()
	tasks := make([]*task, 0, len(s.tasks))
	for id, t := range s.tasks {
		tasks = append(tasks, t)
		delete(s.tasks, id)
	}
	s.tasksMu.Unlock()

	for _, t := range tasks {
		t.cancelled.Store(true)
		t.cancel()
	}
}
