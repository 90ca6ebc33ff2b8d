package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/forkful/mise/internal/collection"
)

// RunWithGolden executes a scenario, checks its assertions, and compares
// a snapshot of the final state against testdata/<name>.golden.
//
// Update golden files with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	if err := CheckAssertions(scenario, result); err != nil {
		return err
	}

	g := goldie.New(t)
	g.Assert(t, scenario.Name, []byte(Snapshot(result)))
	return nil
}

// Snapshot renders a run result as a stable line-oriented text form.
// Line format is deliberately simple so diffs against golden files read
// at a glance; combined with deterministic ids it is byte-stable.
func Snapshot(result *RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "recipe %s %q\n", result.Recipe.ID, result.Recipe.Name)
	fmt.Fprintf(&b, "counts renamed=%d flattened=%d dropped=%d ids=%d positions=%d\n",
		result.Counts.SectionsRenamed, result.Counts.SectionsFlattened,
		result.Counts.ItemsDropped, result.Counts.IDsGenerated,
		result.Counts.PositionsAssigned)

	writeSections := func(label string, sections []collection.Section, kind collection.ListKind) {
		for _, s := range sections {
			fmt.Fprintf(&b, "%s section %d %s %q\n", label, s.Order, s.ID, s.Name)
			for _, it := range s.Items {
				fmt.Fprintf(&b, "  item %d %s %q\n", it.Position, it.ID, it.PrimaryText(kind))
			}
		}
	}
	writeSections("ingredient", result.Recipe.IngredientSections, collection.KindIngredients)
	writeSections("instruction", result.Recipe.InstructionSections, collection.KindInstructions)

	return b.String()
}
