package bridge

import (
	"context"
	"sync"
)

// Stream is an unbounded single-producer single-consumer queue. Yield never
// blocks, so a view callback can feed it from the UI goroutine.
type Stream[T any] struct {
	mu       sync.Mutex
	buf      []T
	finished bool
	ready    chan struct{}
}

func NewStream[T any]() *Stream[T] {
	return &Stream[T]{ready: make(chan struct{}, 1)}
}

// Yield appends v. It reports false once the stream is finished.
func (s *Stream[T]) Yield(v T) bool {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return false
	}
	s.buf = append(s.buf, v)
	s.mu.Unlock()

	s.signal()
	return true
}

// Finish ends the stream. Buffered values can still be received.
func (s *Stream[T]) Finish() {
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()

	s.signal()
}

// Next waits for the next value. ok is false when the stream is finished
// and drained, or ctx is done.
func (s *Stream[T]) Next(ctx context.Context) (v T, ok bool) {
	for {
		s.mu.Lock()
		if len(s.buf) > 0 {
			v = s.buf[0]
			var zero T
			s.buf[0] = zero
			s.buf = s.buf[1:]
			s.mu.Unlock()
			return v, true
		}
		finished := s.finished
		s.mu.Unlock()

		if finished {
			return v, false
		}

		select {
		case <-ctx.Done():
			return v, false
		case <-s.ready:
		}
	}
}

func (s *Stream[T]) signal() {
	select {
	case s.ready <- struct{}{}:
	default:
	}
}
