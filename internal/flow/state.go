// Package flow provides observable state values: a current value plus
// change notifications delivered to subscribers.
//
// Each subscriber is served by its own goroutine. Deliveries to one
// subscriber are serial and conflated: a slow subscriber skips intermediate
// values but always ends on the latest one, and never sees the same value
// twice in a row. A callback may freely update any State, including the one
// it is subscribed to.
package flow

import (
	"sync"
)

// Observable is a read-only view of a State.
type Observable[T any] interface {
	// Value returns the current value.
	Value() T
	// Subscribe delivers the current value and every later change to
	// callback until the returned function is called.
	Subscribe(callback func(T)) (unsubscribe func())
}

// State is a mutable observable value. The zero value is not usable; create
// one with New or NewWithEqual.
type State[T any] struct {
	mu    sync.RWMutex
	value T
	equal func(a, b T) bool
	subs  map[*subscription[T]]struct{}
}

// New returns a State for a comparable type.
func New[T comparable](initial T) *State[T] {
	return NewWithEqual(initial, func(a, b T) bool { return a == b })
}

// NewWithEqual returns a State that uses equal to suppress no-op updates.
func NewWithEqual[T any](initial T, equal func(a, b T) bool) *State[T] {
	return &State[T]{
		value: initial,
		equal: equal,
		subs:  make(map[*subscription[T]]struct{}),
	}
}

// Value returns the current value.
func (s *State[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and reports whether it changed.
func (s *State[T]) Set(v T) bool {
	changed := false
	s.Update(func(old T) T {
		changed = !s.equal(old, v)
		return v
	})
	return changed
}

// Update atomically replaces the value with fn(current) and returns the
// new value. Subscribers are notified only if the value changed.
func (s *State[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	next := fn(s.value)
	if s.equal(s.value, next) {
		s.mu.Unlock()
		return next
	}
	s.value = next
	for sub := range s.subs {
		sub.offer(next)
	}
	s.mu.Unlock()

	return next
}

// Subscribe implements Observable.
func (s *State[T]) Subscribe(callback func(T)) func() {
	sub := &subscription[T]{
		callback: callback,
		equal:    s.equal,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	sub.offer(s.value)
	s.mu.Unlock()

	go sub.run()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()
			close(sub.done)
		})
	}
}

type subscription[T any] struct {
	callback func(T)
	equal    func(a, b T) bool

	mu         sync.Mutex
	pending    T
	hasPending bool
	last       T
	delivered  bool

	wake chan struct{}
	done chan struct{}
}

// offer stores v as the next value to deliver, replacing any undelivered one.
func (s *subscription[T]) offer(v T) {
	s.mu.Lock()
	s.pending = v
	s.hasPending = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscription[T]) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		s.mu.Lock()
		if !s.hasPending {
			s.mu.Unlock()
			continue
		}
		v := s.pending
		s.hasPending = false
		skip := s.delivered && s.equal(s.last, v)
		s.last = v
		s.delivered = true
		s.mu.Unlock()

		if skip {
			continue
		}

		select {
		case <-s.done:
			return
		default:
			s.callback(v)
		}
	}
}
