package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forkful/mise/internal/normalize"
)

// Scenario defines a conformance test scenario: a starting raw recipe
// document, a sequence of edit steps, and assertions on the final state.
type Scenario struct {
	// Name uniquely identifies this scenario. Used as the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Recipe is the raw starting document. It is normalized (with
	// deterministic ids) before any step runs.
	Recipe normalize.RawRecipe `yaml:"recipe"`

	// Steps contains the edits to apply, in order.
	Steps []Step `yaml:"steps,omitempty"`

	// Assertions validate the final state.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one edit operation.
type Step struct {
	// Op selects the operation: reorder, move, add_section,
	// rename_section, delete_section, add_item, merge.
	Op string `yaml:"op"`

	// List selects the list kind ("ingredients" or "instructions").
	// Defaults to ingredients.
	List string `yaml:"list,omitempty"`

	// Section targets a section by id (reorder, rename_section,
	// delete_section, add_item).
	Section string `yaml:"section,omitempty"`

	// FromSection and ToSection target sections for move.
	FromSection string `yaml:"from_section,omitempty"`
	ToSection   string `yaml:"to_section,omitempty"`

	// From and To are indices for reorder and move.
	From int `yaml:"from"`
	To   int `yaml:"to"`

	// ID and Name supply identifiers/payload for add_section and
	// add_item; Name doubles as the new name for rename_section.
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name,omitempty"`

	// Amount and Content complete an add_item payload.
	Amount  string `yaml:"amount,omitempty"`
	Content string `yaml:"content,omitempty"`

	// DropEmptied applies the emptied-source policy on move.
	DropEmptied bool `yaml:"drop_emptied,omitempty"`

	// Incoming is the client-submitted document for merge.
	Incoming *normalize.RawRecipe `yaml:"incoming,omitempty"`
}

// Step operation constants.
const (
	OpReorder       = "reorder"
	OpMove          = "move"
	OpAddSection    = "add_section"
	OpRenameSection = "rename_section"
	OpDeleteSection = "delete_section"
	OpAddItem       = "add_item"
	OpMerge         = "merge"
)

// Assertion validates the final recipe state.
type Assertion struct {
	// Type specifies the assertion type: section_order, item_order,
	// contiguous, section_count, item_count, counts.
	Type string `yaml:"type"`

	// List selects the list kind. Defaults to ingredients.
	List string `yaml:"list,omitempty"`

	// Section targets a section by id (item_order, item_count).
	Section string `yaml:"section,omitempty"`

	// IDs is the expected exact id order (section_order, item_order).
	IDs []string `yaml:"ids,omitempty"`

	// Count is the expected cardinality (section_count, item_count).
	Count int `yaml:"count"`

	// Counts are the expected normalization fix counts (counts).
	Counts *normalize.Counts `yaml:"counts,omitempty"`
}

// Assertion type constants.
const (
	AssertSectionOrder = "section_order"
	AssertItemOrder    = "item_order"
	AssertContiguous   = "contiguous"
	AssertSectionCount = "section_count"
	AssertItemCount    = "item_count"
	AssertCounts       = "counts"
)

// LoadScenario reads and parses a scenario YAML file.
// Rejects unknown fields (typos) and scenarios missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks required fields and known ops/assertion types.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	validOps := map[string]bool{
		OpReorder: true, OpMove: true, OpAddSection: true,
		OpRenameSection: true, OpDeleteSection: true, OpAddItem: true,
		OpMerge: true,
	}
	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
		if step.Op == OpMerge && step.Incoming == nil {
			return fmt.Errorf("step %d: merge requires incoming", i)
		}
		if err := validateListKind(step.List); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	validAsserts := map[string]bool{
		AssertSectionOrder: true, AssertItemOrder: true,
		AssertContiguous: true, AssertSectionCount: true,
		AssertItemCount: true, AssertCounts: true,
	}
	for i, a := range s.Assertions {
		if !validAsserts[a.Type] {
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
		if err := validateListKind(a.List); err != nil {
			return fmt.Errorf("assertion %d: %w", i, err)
		}
	}

	return nil
}

func validateListKind(list string) error {
	switch list {
	case "", "ingredients", "instructions":
		return nil
	}
	return fmt.Errorf("unknown list kind %q", list)
}
