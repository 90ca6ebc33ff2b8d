package order

import (
	"cmp"
	"slices"

	"github.com/forkful/mise/internal/collection"
)

// Reindex returns a copy of items with positions reassigned to 0..n-1.
//
// Input is sorted by current position ascending, ties broken by id
// lexicographic order, so even corrupt input (duplicate positions, gaps,
// negatives) produces one deterministic canonical output.
//
// Pure: the input slice and its records are never modified; each output
// record is a shallow copy with only the position changed.
//
// The len <= 1 fast paths exist because callers invoke this on every
// keystroke-adjacent edit and it must stay well under a frame even at
// hundreds of items.
func Reindex[T collection.Positioned[T]](items []T) []T {
	if len(items) == 0 {
		return items
	}
	if len(items) == 1 {
		if items[0].Pos() == 0 {
			return items
		}
		return []T{items[0].WithPos(0)}
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if c := cmp.Compare(a.Pos(), b.Pos()); c != 0 {
			return c
		}
		return cmp.Compare(a.Key(), b.Key())
	})

	for i := range sorted {
		sorted[i] = sorted[i].WithPos(i)
	}
	return sorted
}

// NormalizePositions is a named alias for Reindex, for call sites that
// mean "flatten arbitrary positions to canonical form" (e.g. after a bulk
// import) rather than "this is a reorder step."
func NormalizePositions[T collection.Positioned[T]](items []T) []T {
	return Reindex(items)
}

// ReindexSections reassigns section-level Order values to 0..n-1.
// Item positions inside each section are untouched; reindexing them is a
// separate, explicit call per section.
func ReindexSections(sections []collection.Section) []collection.Section {
	return Reindex(sections)
}
