// Package signal provides synchronous typed event streams.
//
// A Signal delivers each emitted value to its observers on the caller's
// goroutine before Emit returns, in registration order. Signals are not
// safe for concurrent Emit calls; the owner serializes them.
package signal

// Signal is a stream of values of type T.
type Signal[T any] struct {
	nextID    int
	observers []observer[T]
}

type observer[T any] struct {
	id int
	fn func(T)
}

// New returns a Signal with no observers.
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Observe registers fn for every future value and returns a function that
// removes the registration.
func (s *Signal[T]) Observe(fn func(T)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})
	return func() { s.remove(id) }
}

// Emit delivers v to every observer.
func (s *Signal[T]) Emit(v T) {
	// Copy so observers may cancel themselves mid-delivery.
	obs := make([]observer[T], len(s.observers))
	copy(obs, s.observers)
	for _, o := range obs {
		o.fn(v)
	}
}

func (s *Signal[T]) observerCount() int {
	return len(s.observers)
}

func (s *Signal[T]) remove(id int) {
	for i, o := range s.observers {
		if o.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}
