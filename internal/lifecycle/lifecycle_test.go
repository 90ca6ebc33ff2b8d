package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/order"
)

func sec(id, name string, ord int, itemIDs ...string) collection.Section {
	items := make([]collection.Item, len(itemIDs))
	for i, itemID := range itemIDs {
		items[i] = collection.Item{ID: itemID, Position: i, Name: itemID, SectionID: id}
	}
	return collection.Section{ID: id, Name: name, Order: ord, Items: items}
}

func itemIDs(s collection.Section) []string {
	out := make([]string, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.ID
	}
	return out
}

func sectionIDs(sections []collection.Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.ID
	}
	return out
}

func TestAddSection_AppendsAtEnd(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0)}

	out := AddSection(sections, "s2", "Topping")

	require.Len(t, out, 2)
	assert.Equal(t, "s2", out[1].ID)
	assert.Equal(t, "Topping", out[1].Name)
	assert.Equal(t, 1, out[1].Order)
	assert.NotNil(t, out[1].Items)
	assert.Empty(t, out[1].Items)
	assert.Equal(t, 0, out[0].Order, "existing sections untouched")
}

func TestAddSection_FirstSection(t *testing.T) {
	out := AddSection(nil, "s1", "Base")

	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Order)
}

func TestRenameSection_ChangesOnlyName(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0, "a", "b")}

	out := RenameSection(sections, "s1", "Base")

	assert.Equal(t, "Base", out[0].Name)
	assert.Equal(t, 0, out[0].Order)
	assert.Equal(t, []string{"a", "b"}, itemIDs(out[0]))
	assert.Equal(t, "Dough", sections[0].Name, "input not mutated")
}

func TestRenameSection_UnknownIDIsNoOp(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0)}

	out := RenameSection(sections, "missing", "Base")

	assert.Equal(t, sections, out)
}

func TestDeleteSection_MiddleOfThree(t *testing.T) {
	sections := []collection.Section{
		sec("s1", "Prep", 0),
		sec("s2", "Cook", 1),
		sec("s3", "Serve", 2),
	}

	out := DeleteSection(sections, "s2")

	require.Equal(t, []string{"s1", "s3"}, sectionIDs(out))
	assert.Equal(t, 0, out[0].Order)
	assert.Equal(t, 1, out[1].Order)
}

func TestDeleteSection_LastRemaining(t *testing.T) {
	sections := []collection.Section{sec("s1", "Only", 0, "a")}

	out := DeleteSection(sections, "s1")

	assert.Empty(t, out)
}

func TestDeleteSection_UnknownIDIsNoOp(t *testing.T) {
	sections := []collection.Section{sec("s1", "Prep", 0)}

	out := DeleteSection(sections, "missing")

	assert.Equal(t, sections, out)
}

func TestAddItem_AssignsNextPosition(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0, "a", "b")}

	out := AddItem(sections, "s1", collection.Item{ID: "c", Name: "salt"})

	require.Equal(t, []string{"a", "b", "c"}, itemIDs(out[0]))
	added := out[0].Items[2]
	assert.Equal(t, 2, added.Position)
	assert.Equal(t, "s1", added.SectionID)
	assert.Len(t, sections[0].Items, 2, "input not mutated")
}

func TestAddItem_EmptySection(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0)}

	out := AddItem(sections, "s1", collection.Item{ID: "a"})

	require.Len(t, out[0].Items, 1)
	assert.Equal(t, 0, out[0].Items[0].Position)
}

func TestAddItem_UnknownSectionIsNoOp(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0)}

	out := AddItem(sections, "missing", collection.Item{ID: "a"})

	assert.Equal(t, sections, out)
}

func TestMoveItem_SameSectionReorders(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dough", 0, "a", "b", "c")}

	out, err := MoveItem(sections, "s1", "s1", 0, 2, Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, itemIDs(out[0]))
}

func TestMoveItem_AcrossSections(t *testing.T) {
	sections := []collection.Section{
		sec("s1", "Dry", 0, "flour", "sugar"),
		sec("s2", "Wet", 1, "milk"),
	}

	out, err := MoveItem(sections, "s1", "s2", 0, 1, Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"sugar"}, itemIDs(out[0]))
	assert.Equal(t, []string{"milk", "flour"}, itemIDs(out[1]))

	moved := out[1].Items[1]
	assert.Equal(t, 1, moved.Position)
	assert.Equal(t, "s2", moved.SectionID, "back-reference retagged")
}

func TestMoveItem_EmptiedSourceKeptByDefault(t *testing.T) {
	sections := []collection.Section{
		sec("s1", "Dry", 0, "flour"),
		sec("s2", "Wet", 1, "milk"),
	}

	out, err := MoveItem(sections, "s1", "s2", 0, 0, Options{})

	require.NoError(t, err)
	require.Equal(t, []string{"s1", "s2"}, sectionIDs(out))
	assert.Empty(t, out[0].Items)
	assert.NotNil(t, out[0].Items, "emptied, not absent")
}

func TestMoveItem_EmptiedSourceDropped(t *testing.T) {
	sections := []collection.Section{
		sec("s1", "Dry", 0, "flour"),
		sec("s2", "Wet", 1, "milk"),
	}

	out, err := MoveItem(sections, "s1", "s2", 0, 0, Options{DropEmptiedSource: true})

	require.NoError(t, err)
	require.Equal(t, []string{"s2"}, sectionIDs(out))
	assert.Equal(t, 0, out[0].Order, "survivor renumbered")
	assert.Equal(t, []string{"flour", "milk"}, itemIDs(out[0]))
}

func TestMoveItem_UnknownSourceSection(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dry", 0, "flour")}

	_, err := MoveItem(sections, "missing", "s1", 0, 0, Options{})

	var oe *order.Error
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, order.ErrCodeUnknownSection, oe.Code)
	assert.Equal(t, "missing", oe.SectionID)
}

func TestMoveItem_UnknownDestinationSection(t *testing.T) {
	sections := []collection.Section{sec("s1", "Dry", 0, "flour")}

	_, err := MoveItem(sections, "s1", "missing", 0, 0, Options{})

	var oe *order.Error
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, order.ErrCodeUnknownSection, oe.Code)
	assert.Equal(t, "missing", oe.SectionID)
}

func TestMoveItem_PropagatesOrderErrors(t *testing.T) {
	sections := []collection.Section{
		sec("s1", "Dry", 0, "flour"),
		sec("s2", "Wet", 1),
	}

	_, err := MoveItem(sections, "s1", "s2", 5, 0, Options{})

	var oe *order.Error
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, order.ErrCodeIndexOutOfRange, oe.Code)
	assert.True(t, order.IsStructural(err))
}

func TestMoveItem_InputNotMutated(t *testing.T) {
	sections := []collection.Section{
		sec("s1", "Dry", 0, "flour", "sugar"),
		sec("s2", "Wet", 1, "milk"),
	}

	_, err := MoveItem(sections, "s1", "s2", 0, 0, Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "sugar"}, itemIDs(sections[0]))
	assert.Equal(t, []string{"milk"}, itemIDs(sections[1]))
}
