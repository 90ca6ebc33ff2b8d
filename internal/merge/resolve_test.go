package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/lifecycle"
	"github.com/forkful/mise/internal/order"
)

func item(id string, pos int) collection.Item {
	return collection.Item{ID: id, Position: pos, Name: id}
}

func ids(items []collection.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestResolveItems_NilIncomingKeepsExisting(t *testing.T) {
	existing := []collection.Item{item("a", 0), item("b", 1)}

	merged := ResolveItems(existing, nil)

	assert.Equal(t, []string{"a", "b"}, ids(merged))
}

func TestResolveItems_IncomingWins(t *testing.T) {
	existing := []collection.Item{item("a", 0), item("b", 1)}
	incoming := []collection.Item{item("c", 0)}

	merged := ResolveItems(existing, incoming)

	assert.Equal(t, []string{"c"}, ids(merged))
}

func TestResolveItems_ExplicitlyEmptyIncomingWins(t *testing.T) {
	// An empty non-nil list is a deliberate write; the resolver must not
	// resurrect the existing items.
	existing := []collection.Item{item("a", 0), item("b", 1)}
	incoming := []collection.Item{}

	merged := ResolveItems(existing, incoming)

	assert.Empty(t, merged)
}

func TestResolveItems_ReindexesSelectedList(t *testing.T) {
	incoming := []collection.Item{item("x", 7), item("y", 3)}

	merged := ResolveItems(nil, incoming)

	require.Equal(t, []string{"y", "x"}, ids(merged))
	for i, it := range merged {
		assert.Equal(t, i, it.Position)
	}
}

func TestResolveSections_NilIncomingKeepsExisting(t *testing.T) {
	existing := []collection.Section{
		{ID: "s1", Name: "Dough", Order: 0, Items: []collection.Item{item("a", 2), item("b", 0)}},
		{ID: "s2", Name: "Topping", Order: 1},
	}

	merged := ResolveSections(existing, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "s1", merged[0].ID)
	assert.Equal(t, []string{"b", "a"}, ids(merged[0].Items))
	assert.Equal(t, 0, merged[0].Order)
	assert.Equal(t, 1, merged[1].Order)
}

func TestResolveSections_IncomingOrderWins(t *testing.T) {
	existing := []collection.Section{
		{ID: "s1", Order: 0},
		{ID: "s2", Order: 1},
	}
	incoming := []collection.Section{
		{ID: "s2", Order: 0},
		{ID: "s1", Order: 1},
	}

	merged := ResolveSections(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "s2", merged[0].ID)
	assert.Equal(t, "s1", merged[1].ID)
}

func TestResolveSections_NilItemsInheritExisting(t *testing.T) {
	existing := []collection.Section{
		{ID: "s1", Items: []collection.Item{item("a", 0), item("b", 1)}},
	}
	incoming := []collection.Section{
		{ID: "s1", Name: "Renamed", Items: nil},
	}

	merged := ResolveSections(existing, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, "Renamed", merged[0].Name)
	assert.Equal(t, []string{"a", "b"}, ids(merged[0].Items))
}

func TestResolveSections_DroppedSectionStaysDropped(t *testing.T) {
	existing := []collection.Section{
		{ID: "s1", Items: []collection.Item{item("a", 0)}},
		{ID: "s2", Items: []collection.Item{item("b", 0)}},
	}
	incoming := []collection.Section{
		{ID: "s1", Items: []collection.Item{item("a", 0), item("b", 1)}},
	}

	merged := ResolveSections(existing, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, "s1", merged[0].ID)
	assert.Equal(t, []string{"a", "b"}, ids(merged[0].Items))
}

func TestResolveSections_NewIncomingSection(t *testing.T) {
	existing := []collection.Section{{ID: "s1"}}
	incoming := []collection.Section{
		{ID: "s1", Items: nil},
		{ID: "s3", Name: "Garnish", Items: []collection.Item{item("c", 0)}},
	}

	merged := ResolveSections(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "s3", merged[1].ID)
	assert.Equal(t, []string{"c"}, ids(merged[1].Items))
}

// Regression: after the user drags every item out of a section and the
// emptied list is submitted, a later merge from stale server state must not
// make the moved items reappear in their old home.
func TestResolveSections_MovedItemsDoNotReappear(t *testing.T) {
	server := []collection.Section{
		{ID: "s1", Name: "Dry", Items: []collection.Item{item("flour", 0), item("sugar", 1)}},
		{ID: "s2", Name: "Wet", Items: []collection.Item{item("milk", 0)}},
	}

	// Client state after moving both dry items into the wet section.
	sections := append([]collection.Section(nil), server...)
	var err error
	sections, err = lifecycle.MoveItem(sections, "s1", "s2", 0, 0, lifecycle.Options{})
	require.NoError(t, err)
	sections, err = lifecycle.MoveItem(sections, "s1", "s2", 0, 1, lifecycle.Options{})
	require.NoError(t, err)
	require.Empty(t, sections[collection.FindSection(sections, "s1")].Items)

	merged := ResolveSections(server, sections)

	require.Len(t, merged, 2)
	s1 := merged[collection.FindSection(merged, "s1")]
	s2 := merged[collection.FindSection(merged, "s2")]
	assert.Empty(t, s1.Items, "emptied section must stay empty after merge")
	assert.Equal(t, []string{"flour", "sugar", "milk"}, ids(s2.Items))
}

func TestResolveSections_InputsNotMutated(t *testing.T) {
	existing := []collection.Section{
		{ID: "s1", Order: 5, Items: []collection.Item{item("a", 3)}},
	}
	incoming := []collection.Section{
		{ID: "s1", Order: 9, Items: []collection.Item{item("b", 4)}},
	}

	_ = ResolveSections(existing, incoming)

	assert.Equal(t, 5, existing[0].Order)
	assert.Equal(t, 3, existing[0].Items[0].Position)
	assert.Equal(t, 9, incoming[0].Order)
	assert.Equal(t, 4, incoming[0].Items[0].Position)
}

func TestResolveSections_OutputPositionsContiguous(t *testing.T) {
	incoming := []collection.Section{
		{ID: "s1", Order: 4, Items: []collection.Item{item("a", 10), item("b", 2)}},
		{ID: "s2", Order: 1},
	}

	merged := ResolveSections(nil, incoming)

	s1 := merged[collection.FindSection(merged, "s1")]
	report := order.ValidatePositions(order.Records(s1.Items))
	assert.True(t, report.Valid)
	for i, s := range merged {
		assert.Equal(t, i, s.Order)
	}
}
