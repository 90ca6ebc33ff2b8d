package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/mise/internal/collection"
)

func items(specs ...collection.Item) []collection.Item {
	return specs
}

func TestReindex_Empty(t *testing.T) {
	out := Reindex([]collection.Item{})
	assert.Empty(t, out)
}

func TestReindex_SingleAlreadyCanonical(t *testing.T) {
	in := items(collection.Item{ID: "a", Position: 0})
	out := Reindex(in)
	assert.Equal(t, in, out)
}

func TestReindex_SingleStalePosition(t *testing.T) {
	in := items(collection.Item{ID: "a", Position: 5})
	out := Reindex(in)

	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Position)
	// Input untouched
	assert.Equal(t, 5, in[0].Position)
}

func TestReindex_TieBrokenByID(t *testing.T) {
	in := items(
		collection.Item{ID: "b", Position: 5},
		collection.Item{ID: "a", Position: 5},
	)
	out := Reindex(in)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, 0, out[0].Position)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, 1, out[1].Position)
}

func TestReindex_ClosesGaps(t *testing.T) {
	in := items(
		collection.Item{ID: "x", Position: 10},
		collection.Item{ID: "y", Position: 3},
		collection.Item{ID: "z", Position: 7},
	)
	out := Reindex(in)

	assert.Equal(t, []string{"y", "z", "x"}, ids(out))
	for i, it := range out {
		assert.Equal(t, i, it.Position)
	}
}

func TestReindex_Idempotent(t *testing.T) {
	in := items(
		collection.Item{ID: "b", Position: 9},
		collection.Item{ID: "a", Position: 9},
		collection.Item{ID: "c", Position: 1},
	)
	once := Reindex(in)
	twice := Reindex(once)
	assert.Equal(t, once, twice)
}

func TestReindex_DoesNotMutateInput(t *testing.T) {
	in := items(
		collection.Item{ID: "b", Position: 2},
		collection.Item{ID: "a", Position: 1},
	)
	_ = Reindex(in)

	assert.Equal(t, "b", in[0].ID)
	assert.Equal(t, 2, in[0].Position)
	assert.Equal(t, "a", in[1].ID)
	assert.Equal(t, 1, in[1].Position)
}

func TestReindex_CarriesPayloadThrough(t *testing.T) {
	in := items(collection.Item{ID: "a", Position: 4, Name: "Flour", Amount: "2 cups"})
	out := Reindex(in)

	require.Len(t, out, 1)
	assert.Equal(t, "Flour", out[0].Name)
	assert.Equal(t, "2 cups", out[0].Amount)
}

func TestNormalizePositions_AliasesReindex(t *testing.T) {
	in := items(
		collection.Item{ID: "b", Position: 3},
		collection.Item{ID: "a", Position: 1},
	)
	assert.Equal(t, Reindex(in), NormalizePositions(in))
}

func TestReindexSections_OrdersOnly(t *testing.T) {
	in := []collection.Section{
		{ID: "s2", Order: 9, Items: items(collection.Item{ID: "x", Position: 7})},
		{ID: "s1", Order: 2},
	}
	out := ReindexSections(in)

	require.Len(t, out, 2)
	assert.Equal(t, "s1", out[0].ID)
	assert.Equal(t, 0, out[0].Order)
	assert.Equal(t, "s2", out[1].ID)
	assert.Equal(t, 1, out[1].Order)
	// Item positions inside sections untouched - separate explicit call.
	assert.Equal(t, 7, out[1].Items[0].Position)
}

func ids(list []collection.Item) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.ID
	}
	return out
}
