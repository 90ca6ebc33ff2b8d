// Package merge resolves divergent versions of a sectioned collection
// under a last-write-wins policy.
//
// The policy is last-write-wins at the granularity of what the client
// submitted: a non-nil incoming list (including an explicitly empty one)
// is the complete, authoritative replacement for its scope. The resolver
// never splices existing records back in just because they are absent from
// incoming - an empty or partial incoming list may be the intentional
// result of the user having moved every item elsewhere. Only a nil
// incoming list ("caller didn't touch this field") falls back to existing.
//
// Concurrent edits to a shared document without a commit log or
// operational transforms cannot safely auto-merge partial submissions;
// the simplest correct contract is "last full write wins", and the API
// boundary is responsible for always submitting complete state.
package merge

import (
	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/order"
)

// ResolveItems merges an existing (persisted) item list with an incoming
// (client-submitted) one. The selected list is returned reindexed; input
// slices are never modified.
//
// Nil incoming means "field untouched" and falls back to existing.
// Empty non-nil incoming means "explicitly emptied" and wins.
func ResolveItems[T collection.Positioned[T]](existing, incoming []T) []T {
	if incoming == nil {
		return order.Reindex(existing)
	}
	return order.Reindex(incoming)
}

// ResolveSections applies the same rule at section granularity, then
// recursively resolves each surviving section's items: an incoming section
// with nil Items keeps the items of the matching existing section, while
// non-nil Items (including empty) replace them outright.
func ResolveSections(existing, incoming []collection.Section) []collection.Section {
	if incoming == nil {
		out := make([]collection.Section, len(existing))
		for i, s := range existing {
			s.Items = order.Reindex(s.Items)
			out[i] = s
		}
		return order.ReindexSections(out)
	}

	existingByID := make(map[string]collection.Section, len(existing))
	for _, s := range existing {
		existingByID[s.ID] = s
	}

	out := make([]collection.Section, len(incoming))
	for i, s := range incoming {
		var existingItems []collection.Item
		if prev, ok := existingByID[s.ID]; ok {
			existingItems = prev.Items
		}
		s.Items = ResolveItems(existingItems, s.Items)
		out[i] = s
	}
	return order.ReindexSections(out)
}
