package collection

// ListKind distinguishes the two section lists a recipe carries.
// Both lists follow identical ordering rules; the kind only selects
// which payload field is the item's primary text.
type ListKind string

const (
	// KindIngredients identifies ingredient-like lists (primary text: Name).
	KindIngredients ListKind = "ingredients"
	// KindInstructions identifies instruction-like lists (primary text: Content).
	KindInstructions ListKind = "instructions"
)

// Item is an atomic unit of a sectioned collection: an ingredient line or
// an instruction step in the originating domain, but generically any record
// with an identifier and a position.
type Item struct {
	// ID uniquely identifies the item, stable across edits.
	ID string `json:"id" yaml:"id"`

	// Position is the item's 0-based rank within its containing list.
	// Unique within the list; contiguous from 0 after any operation.
	Position int `json:"position" yaml:"position"`

	// Name is the primary text for ingredient-like items.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Amount is an opaque quantity string ("2 cups", "1 tbsp").
	Amount string `json:"amount,omitempty" yaml:"amount,omitempty"`

	// Content is the primary text for instruction-like items.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// SectionID is a back-reference used only in flattened views.
	// Not authoritative: the containing Section is.
	SectionID string `json:"section_id,omitempty" yaml:"section_id,omitempty"`
}

// PrimaryText returns the item's primary text field for the given list kind.
func (it Item) PrimaryText(kind ListKind) string {
	if kind == KindInstructions {
		return it.Content
	}
	return it.Name
}

// Section is a named, ordered grouping of items.
type Section struct {
	// ID uniquely identifies the section.
	ID string `json:"id" yaml:"id"`

	// Name is the display name. The normalizer guarantees it non-empty;
	// ordering operations do not themselves enforce that.
	Name string `json:"name" yaml:"name"`

	// Order is the section's 0-based rank among its siblings.
	Order int `json:"order" yaml:"order"`

	// Items holds the section's items in position order.
	Items []Item `json:"items" yaml:"items"`
}

// Recipe is a complete sectioned collection: two independent section lists
// plus flat denormalized views for backward-compatible consumers.
type Recipe struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	IngredientSections  []Section `json:"ingredient_sections" yaml:"ingredient_sections"`
	InstructionSections []Section `json:"instruction_sections" yaml:"instruction_sections"`

	// Ingredients and Instructions are the flat views. They mirror the
	// sectioned lists unless the caller explicitly supplied them.
	Ingredients  []Item `json:"ingredients" yaml:"ingredients"`
	Instructions []Item `json:"instructions" yaml:"instructions"`
}

// SectionsByKind returns the recipe's section list for the given kind.
func (r Recipe) SectionsByKind(kind ListKind) []Section {
	if kind == KindInstructions {
		return r.InstructionSections
	}
	return r.IngredientSections
}

// FindSection returns the index of the section with the given id, or -1.
func FindSection(sections []Section, sectionID string) int {
	for i, s := range sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

// Flatten produces the flat denormalized view of a section list: each
// item's SectionID is set to its containing section, positions run 0..n-1
// across the whole list in (section order, item position) order.
func Flatten(sections []Section) []Item {
	var out []Item
	for _, s := range sections {
		for _, it := range s.Items {
			it.SectionID = s.ID
			it.Position = len(out)
			out = append(out, it)
		}
	}
	return out
}
