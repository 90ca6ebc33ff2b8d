package order

// History is a fixed-capacity snapshot buffer supporting "undo the last
// failed drag": callers push a point-in-time copy of a collection before a
// risky mutation and restore it wholesale if the mutation fails.
//
// When full, pushing discards the oldest snapshot. The API is deliberately
// narrow - push, latest, relative lookup, clear, count - never arbitrary
// mutation. Not a general undo stack.
//
// Because every operation in this package returns fresh collections and
// never mutates input, snapshots stay valid for as long as they are held.
type History[T any] struct {
	buf   []T
	start int // index of oldest snapshot
	count int
}

// DefaultHistoryCapacity bounds snapshot history when callers have no
// reason to pick their own size.
const DefaultHistoryCapacity = 8

// NewHistory creates an empty history with the given capacity.
// Capacities below 1 are raised to 1.
func NewHistory[T any](capacity int) *History[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[T]{buf: make([]T, capacity)}
}

// Push appends a snapshot, discarding the oldest if the buffer is full.
func (h *History[T]) Push(snapshot T) {
	end := (h.start + h.count) % len(h.buf)
	h.buf[end] = snapshot
	if h.count < len(h.buf) {
		h.count++
		return
	}
	h.start = (h.start + 1) % len(h.buf)
}

// Latest returns the most recent snapshot. The second return is false if
// the history is empty.
func (h *History[T]) Latest() (T, bool) {
	return h.At(0)
}

// At returns the snapshot n steps before the latest: At(0) is the latest,
// At(1) the one before it. The second return is false when n is negative
// or past the oldest retained snapshot.
func (h *History[T]) At(n int) (T, bool) {
	var zero T
	if n < 0 || n >= h.count {
		return zero, false
	}
	idx := (h.start + h.count - 1 - n) % len(h.buf)
	return h.buf[idx], true
}

// Clear discards all snapshots. Capacity is retained.
func (h *History[T]) Clear() {
	var zero T
	for i := range h.buf {
		h.buf[i] = zero
	}
	h.start = 0
	h.count = 0
}

// Len returns the number of retained snapshots.
func (h *History[T]) Len() int {
	return h.count
}
