package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "show [recipe-id]",
		Short: "Print a stored recipe, or list all recipes",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runShow(rootOpts, id, dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "mise.db", "path to the recipe database")

	return cmd
}

func runShow(opts *RootOptions, recipeID, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer st.Close()

	if recipeID == "" {
		recipes, err := st.ListRecipes(cmd.Context())
		if err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return WrapExitError(ExitCommandError, "list recipes", err)
		}
		if opts.Format == "json" {
			return formatter.Success(recipes)
		}
		var b strings.Builder
		for _, r := range recipes {
			fmt.Fprintf(&b, "%s\t%s\n", r.ID, r.Name)
		}
		return formatter.Success(strings.TrimRight(b.String(), "\n"))
	}

	recipe, err := st.LoadRecipe(cmd.Context(), recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			formatter.Error(ErrCodeNotFound, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
		formatter.Error(ErrCodeStoreError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load recipe", err)
	}

	if opts.Format == "json" {
		return formatter.Success(recipe)
	}
	return formatter.Success(renderRecipe(recipe))
}

// renderRecipe formats a recipe for terminal reading.
func renderRecipe(r collection.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Name, r.ID)

	renderSections := func(title string, sections []collection.Section, kind collection.ListKind) {
		if len(sections) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, sec := range sections {
			fmt.Fprintf(&b, "  [%d] %s\n", sec.Order, sec.Name)
			for _, it := range sec.Items {
				text := it.PrimaryText(kind)
				if kind == collection.KindIngredients && it.Amount != "" {
					text = it.Amount + " " + text
				}
				fmt.Fprintf(&b, "    %d. %s\n", it.Position, text)
			}
		}
	}

	renderSections("Ingredients", r.IngredientSections, collection.KindIngredients)
	renderSections("Instructions", r.InstructionSections, collection.KindInstructions)
	return strings.TrimRight(b.String(), "\n")
}
