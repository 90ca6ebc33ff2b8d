package order

import "github.com/forkful/mise/internal/collection"

// ReorderWithin moves the element at src to dst within a single ordered
// list and reindexes the result to 0..n-1.
//
// Splice semantics: the element is removed first, then inserted into the
// remaining list, so indices after the removal point shift down by one
// before insertion. This matches typical list-reorder UX.
//
// src == dst returns the input unchanged. Out-of-range indices return a
// structural *Error; callers validate gesture data with ValidateDrop
// before reaching this point.
func ReorderWithin[T collection.Positioned[T]](items []T, src, dst int) ([]T, error) {
	if src < 0 || src >= len(items) {
		return nil, indexError("source", src, len(items))
	}
	if dst < 0 || dst >= len(items) {
		return nil, indexError("destination", dst, len(items))
	}
	if src == dst {
		return items, nil
	}

	moved := items[src]
	out := make([]T, 0, len(items))
	out = append(out, items[:src]...)
	out = append(out, items[src+1:]...)

	// Insert into the post-removal list.
	out = append(out, moved) // grow by one
	copy(out[dst+1:], out[dst:])
	out[dst] = moved

	// Stamp positions directly: out is already in final order, and a
	// (position, id) sort here could be perturbed by stale positions.
	for i := range out {
		out[i] = out[i].WithPos(i)
	}
	return out, nil
}
