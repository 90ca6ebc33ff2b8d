package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forkful/mise/internal/normalize"
	"github.com/forkful/mise/internal/store"
)

// ImportResult is the payload emitted by the import command.
type ImportResult struct {
	RecipeID string           `json:"recipe_id"`
	Counts   normalize.Counts `json:"counts"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <recipe-file>",
		Short: "Normalize a recipe document and persist it",
		Long: `Schema-check and normalize a recipe document, then save it to the
store. Existing data under the same recipe id is replaced wholesale
(last write wins).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "mise.db", "path to the recipe database")

	return cmd
}

func runImport(opts *RootOptions, path, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	raw, err := LoadRawRecipe(path)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, loadErr.Error())
		}
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load failed", err)
	}

	res := normalize.Recipe(raw)

	st, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer st.Close()

	if err := st.SaveRecipe(cmd.Context(), res.Recipe); err != nil {
		formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "save recipe", err)
	}

	slog.Debug("imported recipe", "id", res.Recipe.ID, "fixes", res.Counts.Total())

	if opts.Format == "json" {
		return formatter.Success(ImportResult{RecipeID: res.Recipe.ID, Counts: res.Counts})
	}
	return formatter.Success(fmt.Sprintf("imported %s (%s)", res.Recipe.ID, fixSummary(res.Counts)))
}
