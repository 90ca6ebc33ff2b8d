package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forkful/mise/internal/normalize"
)

// NormalizeResult is the payload emitted by the normalize command.
type NormalizeResult struct {
	Counts normalize.Counts `json:"counts"`
	Output string           `json:"output,omitempty"`
}

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "normalize <recipe-file>",
		Short: "Repair a raw recipe document into canonical form",
		Long: `Run the import normalizer over a recipe document: default missing
section names, drop empty items, collapse emptied sections, generate
missing identifiers, and assign contiguous positions. Prints a summary of
how many fixes were applied.

Normalization is idempotent: running it on already-normalized data
reports zero fixes.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(rootOpts, args[0], outPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file (\"-\" for stdout)")

	return cmd
}

func runNormalize(opts *RootOptions, path, outPath string, cmd *cobra.Command) error {
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
	slog.Debug("normalized recipe",
		"path", path,
		"fixes", res.Counts.Total(),
		"items_dropped", res.Counts.ItemsDropped,
		"sections_flattened", res.Counts.SectionsFlattened)

	if opts.Format == "json" && outPath == "-" {
		// Single JSON response carrying both the result and the counts.
		return formatter.Success(struct {
			Counts normalize.Counts `json:"counts"`
			Recipe any              `json:"recipe"`
		}{res.Counts, res.Recipe})
	}

	if err := WriteDocument(outPath, res.Recipe); err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "write failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(NormalizeResult{Counts: res.Counts, Output: outPath})
	}
	if outPath == "-" {
		// Document went to stdout; keep the summary off it.
		fmt.Fprintln(cmd.ErrOrStderr(), fixSummary(res.Counts))
		return nil
	}
	return formatter.Success(fixSummary(res.Counts))
}

// fixSummary renders the one-line "we fixed N things" message.
func fixSummary(c normalize.Counts) string {
	if c.Total() == 0 {
		return "already normalized: 0 fixes"
	}
	return fmt.Sprintf("fixed %d things: %d sections renamed, %d sections collapsed, %d items dropped, %d ids generated, %d positions assigned",
		c.Total(), c.SectionsRenamed, c.SectionsFlattened, c.ItemsDropped, c.IDsGenerated, c.PositionsAssigned)
}
