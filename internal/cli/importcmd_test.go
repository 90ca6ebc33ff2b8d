package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/mise/internal/store"
)

func TestImportCommand_PersistsNormalizedRecipe(t *testing.T) {
	in := writeFile(t, "recipe.yaml", `
id: r1
name: Pancakes
ingredient_sections:
  - name: ""
    items:
      - {name: flour}
`)
	dbPath := filepath.Join(t.TempDir(), "mise.db")

	buf := &bytes.Buffer{}
	cmd := NewImportCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{in, "--db", dbPath})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			RecipeID string `json:"recipe_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "r1", resp.Data.RecipeID)

	// The stored recipe is the normalized form.
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.LoadRecipe(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, got.IngredientSections, 1)
	assert.NotEmpty(t, got.IngredientSections[0].ID, "import generates missing section ids")
	assert.Equal(t, "flour", got.IngredientSections[0].Items[0].Name)
}

func TestImportCommand_ReimportReplaces(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mise.db")

	first := writeFile(t, "v1.yaml", `
id: r1
name: Pancakes v1
ingredients:
  - {id: a, position: 0, name: flour}
`)
	second := writeFile(t, "v2.yaml", `
id: r1
name: Pancakes v2
`)

	for _, path := range []string{first, second} {
		cmd := NewImportCommand(&RootOptions{Format: "text"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{path, "--db", dbPath})
		require.NoError(t, cmd.Execute())
	}

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.LoadRecipe(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes v2", got.Name)
}

func TestImportCommand_MissingFile(t *testing.T) {
	cmd := NewImportCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"/nonexistent/recipe.yaml", "--db", filepath.Join(t.TempDir(), "mise.db")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestShowCommand_ListsAndShows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mise.db")
	in := writeFile(t, "recipe.yaml", `
id: r1
name: Pancakes
ingredient_sections:
  - id: s1
    name: Dry
    items:
      - {id: a, position: 0, name: flour, amount: 2 cups}
`)

	importCmd := NewImportCommand(&RootOptions{Format: "text"})
	importCmd.SetOut(&bytes.Buffer{})
	importCmd.SetArgs([]string{in, "--db", dbPath})
	require.NoError(t, importCmd.Execute())

	listBuf := &bytes.Buffer{}
	listCmd := NewShowCommand(&RootOptions{Format: "text"})
	listCmd.SetOut(listBuf)
	listCmd.SetArgs([]string{"--db", dbPath})
	require.NoError(t, listCmd.Execute())
	assert.Contains(t, listBuf.String(), "r1")
	assert.Contains(t, listBuf.String(), "Pancakes")

	showBuf := &bytes.Buffer{}
	showCmd := NewShowCommand(&RootOptions{Format: "text"})
	showCmd.SetOut(showBuf)
	showCmd.SetArgs([]string{"r1", "--db", dbPath})
	require.NoError(t, showCmd.Execute())
	assert.Contains(t, showBuf.String(), "[0] Dry")
	assert.Contains(t, showBuf.String(), "0. 2 cups flour")
}

func TestShowCommand_UnknownRecipe(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mise.db")

	buf := &bytes.Buffer{}
	cmd := NewShowCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"missing", "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "E002")
}
