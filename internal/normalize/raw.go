package normalize

// Raw types model a recipe document as it arrives from untrusted sources:
// scraped imports, legacy persisted rows, or partial client submissions.
// Every field that the normalizer repairs is optional here.
//
// Slice nilness is meaningful: a nil flat view means the key was entirely
// absent (the normalizer synthesizes it from the sections), while an empty
// non-nil slice means the caller explicitly supplied emptiness
// (sections-only mode, preserved as-is). Standard library YAML/JSON
// decoding produces exactly this distinction.

// RawRecipe is an untrusted recipe document before normalization.
type RawRecipe struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	IngredientSections  []RawSection `json:"ingredient_sections,omitempty" yaml:"ingredient_sections,omitempty"`
	InstructionSections []RawSection `json:"instruction_sections,omitempty" yaml:"instruction_sections,omitempty"`

	// Flat denormalized views. Nil means absent; empty means explicit.
	Ingredients  []RawItem `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Instructions []RawItem `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// RawSection is an untrusted section: id, name, and order may all be
// missing or malformed.
type RawSection struct {
	ID    string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string    `json:"name,omitempty" yaml:"name,omitempty"`
	Order *float64  `json:"order,omitempty" yaml:"order,omitempty"`
	Items []RawItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// RawItem is an untrusted item. Position is a float pointer so "missing",
// "zero", and "non-integer garbage" are all distinguishable.
type RawItem struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Position  *float64 `json:"position,omitempty" yaml:"position,omitempty"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Amount    string   `json:"amount,omitempty" yaml:"amount,omitempty"`
	Content   string   `json:"content,omitempty" yaml:"content,omitempty"`
	SectionID string   `json:"section_id,omitempty" yaml:"section_id,omitempty"`
}
