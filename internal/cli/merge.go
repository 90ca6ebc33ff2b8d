package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/merge"
	"github.com/forkful/mise/internal/normalize"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "merge <existing-file> <incoming-file>",
		Short: "Resolve two divergent recipe versions (last write wins)",
		Long: `Merge an existing (persisted) recipe document with an incoming
(client-submitted) one under the last-write-wins policy: any list the
incoming document carries - including an explicitly empty one - replaces
the existing list wholesale; lists absent from the incoming document keep
the existing data.

Both documents are normalized before resolution.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(rootOpts, args[0], args[1], outPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file (\"-\" for stdout)")

	return cmd
}

func runMerge(opts *RootOptions, existingPath, incomingPath, outPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	load := func(path string) (normalize.RawRecipe, error) {
		raw, err := LoadRawRecipe(path)
		if err != nil {
			var loadErr *LoadError
			if errors.As(err, &loadErr) {
				formatter.Error(loadErr.Code, loadErr.Message, nil)
				return raw, NewExitError(ExitCommandError, loadErr.Error())
			}
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return raw, WrapExitError(ExitCommandError, "load failed", err)
		}
		return raw, nil
	}

	rawExisting, err := load(existingPath)
	if err != nil {
		return err
	}
	rawIncoming, err := load(incomingPath)
	if err != nil {
		return err
	}

	merged := MergeRecipes(rawExisting, rawIncoming)
	slog.Debug("merged recipes", "existing", existingPath, "incoming", incomingPath)

	if opts.Format == "json" && outPath == "-" {
		return formatter.Success(merged)
	}
	if err := WriteDocument(outPath, merged); err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "write failed", err)
	}
	if outPath != "-" {
		return formatter.Success("merged: " + outPath)
	}
	return nil
}

// MergeRecipes normalizes both documents and resolves each list scope
// under last-write-wins. List absence is detected on the RAW incoming
// document (nil slice = field untouched), because normalization
// necessarily materializes every list.
func MergeRecipes(rawExisting, rawIncoming normalize.RawRecipe) collection.Recipe {
	existing := normalize.Recipe(rawExisting).Recipe
	incoming := normalize.Recipe(rawIncoming).Recipe

	out := existing
	if rawIncoming.ID != "" {
		out.ID = incoming.ID
	}
	if rawIncoming.Name != "" {
		out.Name = incoming.Name
	}

	out.IngredientSections = merge.ResolveSections(
		existing.IngredientSections,
		incomingSections(rawIncoming.IngredientSections, incoming.IngredientSections),
	)
	out.InstructionSections = merge.ResolveSections(
		existing.InstructionSections,
		incomingSections(rawIncoming.InstructionSections, incoming.InstructionSections),
	)

	// Flat views: an explicitly submitted flat list is authoritative;
	// otherwise the view is re-synthesized from the merged sections so it
	// never drifts from the sectioned data.
	if rawIncoming.Ingredients != nil {
		out.Ingredients = merge.ResolveItems(existing.Ingredients, incoming.Ingredients)
	} else {
		out.Ingredients = collection.Flatten(out.IngredientSections)
	}
	if rawIncoming.Instructions != nil {
		out.Instructions = merge.ResolveItems(existing.Instructions, incoming.Instructions)
	} else {
		out.Instructions = collection.Flatten(out.InstructionSections)
	}

	return out
}

// incomingSections maps "raw list absent" to nil so the resolver falls
// back to existing; otherwise the normalized incoming list is
// authoritative (empty included).
func incomingSections(raw []normalize.RawSection, normalized []collection.Section) []collection.Section {
	if raw == nil {
		return nil
	}
	if normalized == nil {
		return []collection.Section{}
	}
	return normalized
}

