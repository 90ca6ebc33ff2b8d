package harness

import (
	"fmt"
	"strings"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/order"
)

// AssertionError is returned when an assertion fails. It includes the
// expected and actual outcomes plus the relevant list for debugging.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// checkAssertion dispatches one assertion against the run result.
func checkAssertion(a Assertion, result *RunResult) error {
	sections := result.Recipe.SectionsByKind(stepKind(a.List))

	switch a.Type {
	case AssertSectionOrder:
		actual := sectionIDs(sections)
		if !equalStrings(actual, a.IDs) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("section ids %v", a.IDs),
				Actual:   fmt.Sprintf("section ids %v", actual),
			}
		}

	case AssertItemOrder:
		idx := collection.FindSection(sections, a.Section)
		if idx < 0 {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("section %q present", a.Section),
				Actual:   fmt.Sprintf("sections %v", sectionIDs(sections)),
			}
		}
		actual := itemIDs(sections[idx].Items)
		if !equalStrings(actual, a.IDs) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("item ids %v in section %q", a.IDs, a.Section),
				Actual:   fmt.Sprintf("item ids %v", actual),
			}
		}

	case AssertContiguous:
		return checkContiguous(result.Recipe)

	case AssertSectionCount:
		if len(sections) != a.Count {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%d sections", a.Count),
				Actual:   fmt.Sprintf("%d sections (%v)", len(sections), sectionIDs(sections)),
			}
		}

	case AssertItemCount:
		idx := collection.FindSection(sections, a.Section)
		if idx < 0 {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("section %q present", a.Section),
				Actual:   fmt.Sprintf("sections %v", sectionIDs(sections)),
			}
		}
		if len(sections[idx].Items) != a.Count {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%d items in section %q", a.Count, a.Section),
				Actual:   fmt.Sprintf("%d items (%v)", len(sections[idx].Items), itemIDs(sections[idx].Items)),
			}
		}

	case AssertCounts:
		if a.Counts != nil && *a.Counts != result.Counts {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%+v", *a.Counts),
				Actual:   fmt.Sprintf("%+v", result.Counts),
			}
		}

	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}

	return nil
}

// checkContiguous verifies that every list in the recipe - both section
// lists, every section's items, and both flat views - has positions
// forming exactly 0..n-1.
func checkContiguous(r collection.Recipe) error {
	check := func(scope string, report order.Report, positions []int) error {
		if !report.Valid {
			return &AssertionError{
				Type:     AssertContiguous,
				Expected: fmt.Sprintf("%s: unique non-negative integer positions", scope),
				Actual:   strings.Join(report.Errors, "; "),
			}
		}
		for i, p := range positions {
			if p != i {
				return &AssertionError{
					Type:     AssertContiguous,
					Expected: fmt.Sprintf("%s: positions 0..%d", scope, len(positions)-1),
					Actual:   fmt.Sprintf("position %d at index %d", p, i),
				}
			}
		}
		return nil
	}

	checkSections := func(scope string, sections []collection.Section) error {
		orders := make([]int, len(sections))
		for i, s := range sections {
			orders[i] = s.Order
			itemPositions := make([]int, len(s.Items))
			for j, it := range s.Items {
				itemPositions[j] = it.Position
			}
			if err := check(fmt.Sprintf("%s[%s].items", scope, s.ID),
				order.ValidatePositions(order.Records(s.Items)), itemPositions); err != nil {
				return err
			}
		}
		return check(scope, order.ValidatePositions(order.Records(sections)), orders)
	}

	if err := checkSections("ingredient_sections", r.IngredientSections); err != nil {
		return err
	}
	if err := checkSections("instruction_sections", r.InstructionSections); err != nil {
		return err
	}

	flatPositions := func(items []collection.Item) []int {
		out := make([]int, len(items))
		for i, it := range items {
			out[i] = it.Position
		}
		return out
	}
	if err := check("ingredients", order.ValidatePositions(order.Records(r.Ingredients)), flatPositions(r.Ingredients)); err != nil {
		return err
	}
	return check("instructions", order.ValidatePositions(order.Records(r.Instructions)), flatPositions(r.Instructions))
}

func sectionIDs(sections []collection.Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.ID
	}
	return out
}

func itemIDs(items []collection.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
