// Package lifecycle orchestrates whole-section operations: add, rename,
// delete, and item placement across sections. It composes the primitives
// from internal/order and enforces the append-only ordering contract:
// a new section always lands at the end, and existing sections' orders are
// perturbed only by deletion (contiguous renumbering of survivors) or an
// explicit reindex pass.
//
// Every operation here is pure and synchronous; callers are expected to
// follow up with a validation pass (order.ValidatePositions) before
// persisting - nothing in this package silently swallows integrity
// problems.
package lifecycle

import (
	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/order"
)

// Options configures caller-policy decisions the core does not mandate.
type Options struct {
	// DropEmptiedSource removes a section that a cross-section move
	// left empty, renumbering the survivors. When false (the default)
	// the emptied section stays visible until explicitly deleted.
	DropEmptiedSource bool
}

// AddSection appends a new empty section. The new section receives
// Order = len(sections); existing sections are untouched. Never inserts
// in the middle.
func AddSection(sections []collection.Section, id, name string) []collection.Section {
	out := make([]collection.Section, 0, len(sections)+1)
	out = append(out, sections...)
	out = append(out, collection.Section{
		ID:    id,
		Name:  name,
		Order: len(sections),
		Items: []collection.Item{},
	})
	return out
}

// RenameSection replaces only the name of the matching section. Order and
// items are untouched. An unknown sectionID returns the input unchanged:
// the caller may be racing a delete, so a missing section is a no-op, not
// a failure.
func RenameSection(sections []collection.Section, sectionID, newName string) []collection.Section {
	idx := collection.FindSection(sections, sectionID)
	if idx < 0 {
		return sections
	}
	out := make([]collection.Section, len(sections))
	copy(out, sections)
	out[idx].Name = newName
	return out
}

// DeleteSection removes the matching section and renumbers the survivors'
// orders to 0..n-1 preserving relative order. Deleting the last remaining
// section is permitted; falling back to an unsectioned editing mode is the
// caller's policy. An unknown sectionID returns the input unchanged.
func DeleteSection(sections []collection.Section, sectionID string) []collection.Section {
	idx := collection.FindSection(sections, sectionID)
	if idx < 0 {
		return sections
	}
	out := make([]collection.Section, 0, len(sections)-1)
	out = append(out, sections[:idx]...)
	out = append(out, sections[idx+1:]...)
	return order.ReindexSections(out)
}

// AddItem appends an item to the matching section, assigning
// Position = len(items). This is the position-assignment primitive for
// "add item" affordances: the caller supplies the fresh id and payload.
// An unknown sectionID returns the input unchanged.
func AddItem(sections []collection.Section, sectionID string, item collection.Item) []collection.Section {
	idx := collection.FindSection(sections, sectionID)
	if idx < 0 {
		return sections
	}
	out := make([]collection.Section, len(sections))
	copy(out, sections)

	sec := out[idx]
	items := make([]collection.Item, 0, len(sec.Items)+1)
	items = append(items, sec.Items...)
	item.Position = len(items)
	item.SectionID = sec.ID
	items = append(items, item)
	sec.Items = items
	out[idx] = sec
	return out
}

// MoveItem moves the item at srcIdx in fromSectionID to dstIdx in
// toSectionID, reindexing both sections' items. dstIdx may equal the
// destination's item count (append).
//
// If the move empties its source section, opts.DropEmptiedSource decides
// whether the section is removed (with contiguous renumbering) or kept.
func MoveItem(sections []collection.Section, fromSectionID, toSectionID string, srcIdx, dstIdx int, opts Options) ([]collection.Section, error) {
	fromIdx := collection.FindSection(sections, fromSectionID)
	if fromIdx < 0 {
		return nil, &order.Error{
			Code:      order.ErrCodeUnknownSection,
			Message:   "move source section not found",
			Index:     srcIdx,
			Length:    -1,
			SectionID: fromSectionID,
		}
	}
	toIdx := collection.FindSection(sections, toSectionID)
	if toIdx < 0 {
		return nil, &order.Error{
			Code:      order.ErrCodeUnknownSection,
			Message:   "move destination section not found",
			Index:     dstIdx,
			Length:    -1,
			SectionID: toSectionID,
		}
	}

	if fromIdx == toIdx {
		items, err := order.ReorderWithin(sections[fromIdx].Items, srcIdx, dstIdx)
		if err != nil {
			return nil, err
		}
		out := make([]collection.Section, len(sections))
		copy(out, sections)
		out[fromIdx].Items = items
		return out, nil
	}

	newSource, newDest, err := order.MoveBetween(sections[fromIdx].Items, sections[toIdx].Items, srcIdx, dstIdx)
	if err != nil {
		return nil, err
	}

	out := make([]collection.Section, len(sections))
	copy(out, sections)
	out[fromIdx].Items = newSource
	out[toIdx].Items = retagged(newDest, toSectionID)

	if opts.DropEmptiedSource && len(newSource) == 0 {
		return DeleteSection(out, fromSectionID), nil
	}
	return out, nil
}

// retagged updates the SectionID back-reference on items that changed
// sections. Only the denormalized views read it, but keeping it accurate
// costs one pass.
func retagged(items []collection.Item, sectionID string) []collection.Item {
	for i := range items {
		items[i].SectionID = sectionID
	}
	return items
}
