package signal

// Recorder keeps the full history of values observed on a Signal.
type Recorder[T any] struct {
	values []T
}

// Record attaches a new Recorder to s.
func Record[T any](s *Signal[T]) *Recorder[T] {
	r := &Recorder[T]{}
	s.Observe(func(v T) { r.values = append(r.values, v) })
	return r
}

// Values returns a copy of every value seen so far, oldest first.
func (r *Recorder[T]) Values() []T {
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Count returns the number of values seen.
func (r *Recorder[T]) Count() int {
	return len(r.values)
}

// Last returns the most recent value.
func (r *Recorder[T]) Last() (T, bool) {
	if len(r.values) == 0 {
		var zero T
		return zero, false
	}
	return r.values[len(r.values)-1], true
}
