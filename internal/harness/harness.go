package harness

import (
	"fmt"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/lifecycle"
	"github.com/forkful/mise/internal/merge"
	"github.com/forkful/mise/internal/normalize"
	"github.com/forkful/mise/internal/order"
	"github.com/forkful/mise/internal/testutil"
)

// RunResult is the outcome of executing a scenario.
type RunResult struct {
	// Recipe is the final state after all steps.
	Recipe collection.Recipe

	// Counts are the fix counts from the initial normalization pass.
	Counts normalize.Counts
}

// Run executes a scenario: normalize the starting document with
// deterministic ids, apply each step, and return the final state.
// Assertions are NOT checked here; see CheckAssertions and RunWithGolden.
func Run(scenario *Scenario) (*RunResult, error) {
	gen := testutil.NewDeterministicIDs("gen")

	res := normalize.Recipe(scenario.Recipe, normalize.WithIDGenerator(gen.Next))
	result := &RunResult{Recipe: res.Recipe, Counts: res.Counts}

	for i, step := range scenario.Steps {
		if err := applyStep(&result.Recipe, step, gen); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}

	// Keep the flat views tracking the sectioned data.
	result.Recipe.Ingredients = collection.Flatten(result.Recipe.IngredientSections)
	result.Recipe.Instructions = collection.Flatten(result.Recipe.InstructionSections)
	return result, nil
}

// applyStep mutates the recipe's targeted section list through the pure
// operations, writing the returned collections back.
func applyStep(r *collection.Recipe, step Step, gen *testutil.DeterministicIDs) error {
	kind := stepKind(step.List)
	sections := r.SectionsByKind(kind)

	switch step.Op {
	case OpReorder:
		idx := collection.FindSection(sections, step.Section)
		if idx < 0 {
			return fmt.Errorf("unknown section %q", step.Section)
		}
		items, err := order.ReorderWithin(sections[idx].Items, step.From, step.To)
		if err != nil {
			return err
		}
		updated := make([]collection.Section, len(sections))
		copy(updated, sections)
		updated[idx].Items = items
		setSections(r, kind, updated)

	case OpMove:
		updated, err := lifecycle.MoveItem(sections, step.FromSection, step.ToSection,
			step.From, step.To, lifecycle.Options{DropEmptiedSource: step.DropEmptied})
		if err != nil {
			return err
		}
		setSections(r, kind, updated)

	case OpAddSection:
		id := step.ID
		if id == "" {
			id = gen.Next()
		}
		setSections(r, kind, lifecycle.AddSection(sections, id, step.Name))

	case OpRenameSection:
		setSections(r, kind, lifecycle.RenameSection(sections, step.Section, step.Name))

	case OpDeleteSection:
		setSections(r, kind, lifecycle.DeleteSection(sections, step.Section))

	case OpAddItem:
		id := step.ID
		if id == "" {
			id = gen.Next()
		}
		item := collection.Item{ID: id, Name: step.Name, Amount: step.Amount, Content: step.Content}
		setSections(r, kind, lifecycle.AddItem(sections, step.Section, item))

	case OpMerge:
		incoming := normalize.Recipe(*step.Incoming, normalize.WithIDGenerator(gen.Next))
		var incomingSections []collection.Section
		if rawSectionsByKind(*step.Incoming, kind) != nil {
			incomingSections = incoming.Recipe.SectionsByKind(kind)
			if incomingSections == nil {
				incomingSections = []collection.Section{}
			}
		}
		setSections(r, kind, merge.ResolveSections(sections, incomingSections))

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	return nil
}

// CheckAssertions validates every assertion against a run result,
// returning the first failure.
func CheckAssertions(scenario *Scenario, result *RunResult) error {
	for i, a := range scenario.Assertions {
		if err := checkAssertion(a, result); err != nil {
			return fmt.Errorf("assertion %d: %w", i, err)
		}
	}
	return nil
}

func stepKind(list string) collection.ListKind {
	if list == "instructions" {
		return collection.KindInstructions
	}
	return collection.KindIngredients
}

func setSections(r *collection.Recipe, kind collection.ListKind, sections []collection.Section) {
	if kind == collection.KindInstructions {
		r.InstructionSections = sections
		return
	}
	r.IngredientSections = sections
}

func rawSectionsByKind(raw normalize.RawRecipe, kind collection.ListKind) []normalize.RawSection {
	if kind == collection.KindInstructions {
		return raw.InstructionSections
	}
	return raw.IngredientSections
}
