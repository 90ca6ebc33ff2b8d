package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forkful/mise/internal/normalize"
	"github.com/forkful/mise/internal/order"
)

// ListReport holds the validation result for one list scope.
type ListReport struct {
	Scope      string    `json:"scope"` // e.g. "ingredient_sections[2].items"
	Valid      bool      `json:"valid"`
	Errors     []string  `json:"errors,omitempty"`
	Duplicates []float64 `json:"duplicates,omitempty"`
	Invalid    []float64 `json:"invalid,omitempty"`
}

// ValidationResult aggregates all list reports for a document.
type ValidationResult struct {
	Valid   bool         `json:"valid"`
	Reports []ListReport `json:"reports,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <recipe-file>",
		Short: "Check a recipe document's position integrity",
		Long: `Check a recipe document against the document schema and report
position integrity violations (duplicates, negative or non-integer values)
for every section's items, every section list, and the flat views.

Purely diagnostic: nothing is repaired. Use "mise normalize" to repair.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	result := validateRaw(raw)
	if !result.Valid {
		slog.Debug("validation failed", "path", path, "reports", len(result.Reports))
		if err := formatter.Error(ErrCodeInvalid, "position integrity violations found", result.Reports); err != nil {
			return err
		}
		return NewExitError(ExitFailure, "validation failed")
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success("valid: all positions are unique non-negative integers")
}

// validateRaw runs the position validator over every list in the document.
func validateRaw(raw normalize.RawRecipe) ValidationResult {
	result := ValidationResult{Valid: true}

	check := func(scope string, records []order.Record) {
		report := order.ValidatePositions(records)
		if report.Valid {
			return
		}
		result.Valid = false
		result.Reports = append(result.Reports, ListReport{
			Scope:      scope,
			Valid:      false,
			Errors:     report.Errors,
			Duplicates: report.Duplicates,
			Invalid:    report.Invalid,
		})
	}

	checkSections := func(scope string, sections []normalize.RawSection) {
		sectionRecords := make([]order.Record, 0, len(sections))
		for i, sec := range sections {
			if sec.Order != nil {
				sectionRecords = append(sectionRecords, order.Record{ID: sec.ID, Position: *sec.Order})
			}
			check(fmt.Sprintf("%s[%d].items", scope, i), rawItemRecords(sec.Items))
		}
		check(scope, sectionRecords)
	}

	checkSections("ingredient_sections", raw.IngredientSections)
	checkSections("instruction_sections", raw.InstructionSections)
	check("ingredients", rawItemRecords(raw.Ingredients))
	check("instructions", rawItemRecords(raw.Instructions))

	return result
}

// rawItemRecords adapts raw items to validator records. Items without an
// explicit position are skipped: "missing" is the normalizer's concern,
// not a validity violation.
func rawItemRecords(items []normalize.RawItem) []order.Record {
	records := make([]order.Record, 0, len(items))
	for _, it := range items {
		if it.Position != nil {
			records = append(records, order.Record{ID: it.ID, Position: *it.Position})
		}
	}
	return records
}
