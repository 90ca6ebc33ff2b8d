// Package normalize is the one-time cleanup pass applied to
// externally-sourced or legacy recipe data before it enters the system.
//
// Freshly imported documents and legacy persisted rows go through the same
// rules on the same code path, so there are exactly two states: normalized
// and not-yet-normalized - never a third "legacy format".
//
// All rules are idempotent: re-running normalization on already-normalized
// data produces zero additional counted changes and a structurally
// identical result.
package normalize

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/forkful/mise/internal/collection"
	"github.com/forkful/mise/internal/order"
)

// ImportedSectionName is the default for sections whose name is missing,
// empty, or whitespace-only.
const ImportedSectionName = "Imported Section"

// Counts reports how many fixes a normalization pass applied, for
// user-facing "we fixed N things" messaging.
type Counts struct {
	// SectionsRenamed counts surviving sections whose name defaulted to
	// ImportedSectionName.
	SectionsRenamed int `json:"sections_renamed" yaml:"sections_renamed"`

	// SectionsFlattened counts sections dropped because item filtering
	// left them empty.
	SectionsFlattened int `json:"sections_flattened" yaml:"sections_flattened"`

	// ItemsDropped counts items removed for empty primary text.
	ItemsDropped int `json:"items_dropped" yaml:"items_dropped"`

	// IDsGenerated counts freshly generated identifiers.
	IDsGenerated int `json:"ids_generated" yaml:"ids_generated"`

	// PositionsAssigned counts positions filled in because they were
	// missing or unusable (negative, non-integer).
	PositionsAssigned int `json:"positions_assigned" yaml:"positions_assigned"`
}

// Total returns the sum of all fix counts.
func (c Counts) Total() int {
	return c.SectionsRenamed + c.SectionsFlattened + c.ItemsDropped +
		c.IDsGenerated + c.PositionsAssigned
}

// Result is the outcome of a normalization pass.
type Result struct {
	Recipe collection.Recipe `json:"recipe"`
	Counts Counts            `json:"counts"`
}

// Option configures a normalization pass.
type Option func(*config)

type config struct {
	newID func() string
}

// WithIDGenerator overrides the identifier generator. Tests inject a
// deterministic sequence; the default is a random UUID.
func WithIDGenerator(gen func() string) Option {
	return func(c *config) { c.newID = gen }
}

// Recipe normalizes a raw recipe document into the canonical model,
// applying the same rules independently to the ingredient and instruction
// lists, and reconciling the flat denormalized views.
func Recipe(raw RawRecipe, opts ...Option) Result {
	cfg := &config{newID: uuid.NewString}
	for _, opt := range opts {
		opt(cfg)
	}

	var res Result

	res.Recipe.ID = raw.ID
	if strings.TrimSpace(raw.ID) == "" {
		res.Recipe.ID = cfg.newID()
		res.Counts.IDsGenerated++
	}
	res.Recipe.Name = cleanText(raw.Name)

	res.Recipe.IngredientSections = normalizeSections(raw.IngredientSections, collection.KindIngredients, cfg, &res.Counts)
	res.Recipe.InstructionSections = normalizeSections(raw.InstructionSections, collection.KindInstructions, cfg, &res.Counts)

	res.Recipe.Ingredients = reconcileFlat(raw.Ingredients, res.Recipe.IngredientSections, collection.KindIngredients, cfg, &res.Counts)
	res.Recipe.Instructions = reconcileFlat(raw.Instructions, res.Recipe.InstructionSections, collection.KindInstructions, cfg, &res.Counts)

	return res
}

// normalizeSections applies the per-section rules: item filtering, name
// defaulting, id generation, position assignment, empty-section
// flattening, and section order assignment.
//
// Section order is the index in current array order after flattening; the
// raw document's order values are not a sort key here. Documents with
// corrupt order values would otherwise shuffle on every import.
func normalizeSections(raw []RawSection, kind collection.ListKind, cfg *config, counts *Counts) []collection.Section {
	if len(raw) == 0 {
		return nil
	}

	out := make([]collection.Section, 0, len(raw))
	for _, rs := range raw {
		items := normalizeItems(rs.Items, kind, cfg, counts)
		if len(items) == 0 {
			counts.SectionsFlattened++
			continue
		}

		sec := collection.Section{
			ID:   rs.ID,
			Name: cleanText(rs.Name),
		}
		if sec.Name == "" {
			sec.Name = ImportedSectionName
			counts.SectionsRenamed++
		}
		if strings.TrimSpace(sec.ID) == "" {
			sec.ID = cfg.newID()
			counts.IDsGenerated++
		}
		for i := range items {
			items[i].SectionID = sec.ID
		}
		sec.Items = items
		sec.Order = len(out)
		out = append(out, sec)
	}
	return out
}

// normalizeItems filters empty items, fills ids and positions, and
// reindexes the survivors to 0..n-1.
func normalizeItems(raw []RawItem, kind collection.ListKind, cfg *config, counts *Counts) []collection.Item {
	kept := make([]collection.Item, 0, len(raw))
	for _, ri := range raw {
		item := collection.Item{
			ID:        ri.ID,
			Name:      cleanText(ri.Name),
			Amount:    cleanText(ri.Amount),
			Content:   cleanText(ri.Content),
			SectionID: ri.SectionID,
		}
		if item.PrimaryText(kind) == "" {
			counts.ItemsDropped++
			continue
		}
		if strings.TrimSpace(item.ID) == "" {
			item.ID = cfg.newID()
			counts.IDsGenerated++
		}
		if p, ok := usablePosition(ri.Position); ok {
			item.Position = p
		} else {
			item.Position = len(kept)
			counts.PositionsAssigned++
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil
	}
	// Sort by position (id tie-break) and close the gaps filtering left.
	return order.NormalizePositions(kept)
}

// usablePosition reports whether a raw position value can be kept as-is:
// present, finite, integral, and non-negative. Anything else is treated as
// missing and reassigned.
func usablePosition(p *float64) (int, bool) {
	if p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// reconcileFlat maintains the flat view alongside the sectioned view.
//
// A nil raw view means the key was entirely absent: synthesize it by
// flattening the sections. A non-nil view - even an empty one - is
// explicit caller data: normalize its items under the same rules but
// never rebuild it from the sections. An explicitly empty flat view next
// to non-empty sections is sections-only mode, preserved as-is.
func reconcileFlat(raw []RawItem, sections []collection.Section, kind collection.ListKind, cfg *config, counts *Counts) []collection.Item {
	if raw == nil {
		return collection.Flatten(sections)
	}
	if len(raw) == 0 {
		return []collection.Item{}
	}
	return normalizeItems(raw, kind, cfg, counts)
}

// cleanText trims surrounding whitespace and applies Unicode NFC so that
// visually identical imported strings compare equal.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
