package order

import (
	"fmt"
	"math"
	"slices"

	"github.com/forkful/mise/internal/collection"
)

// Record is the minimal view ValidatePositions reads: an identifier and a
// raw position value. Position is float64 so values straight out of a JSON
// or YAML decode can be checked for non-integer corruption before they are
// coerced into the typed model.
type Record struct {
	ID       string
	Position float64
}

// Report is the diagnostic result of a position validation pass.
// Purely informational: producing a Report never has side effects and
// never fails.
type Report struct {
	// Valid is true iff there are zero invalid values and zero duplicates.
	Valid bool

	// Errors holds human-readable descriptions usable directly in logs
	// or user-facing toasts.
	Errors []string

	// Duplicates lists the distinct position values occurring more than
	// once, ascending.
	Duplicates []float64

	// Invalid lists the distinct negative or non-integer position
	// values, ascending.
	Invalid []float64
}

// ValidatePositions inspects position values for validity (non-negative
// integers) and uniqueness. Empty input is trivially valid.
func ValidatePositions(records []Record) Report {
	report := Report{Valid: true}
	if len(records) == 0 {
		return report
	}

	seenInvalid := make(map[float64]bool)
	occurrences := make(map[float64]int)

	for _, r := range records {
		p := r.Position
		if p < 0 || p != math.Trunc(p) || math.IsNaN(p) || math.IsInf(p, 0) {
			if !seenInvalid[p] {
				seenInvalid[p] = true
				report.Invalid = append(report.Invalid, p)
			}
			continue
		}
		occurrences[p]++
	}

	for p, n := range occurrences {
		if n > 1 {
			report.Duplicates = append(report.Duplicates, p)
		}
	}

	slices.Sort(report.Invalid)
	slices.Sort(report.Duplicates)

	for _, p := range report.Invalid {
		report.Errors = append(report.Errors,
			fmt.Sprintf("invalid position %v: positions must be non-negative integers", p))
	}
	for _, p := range report.Duplicates {
		report.Errors = append(report.Errors,
			fmt.Sprintf("duplicate position %v: %d items share it", p, occurrences[p]))
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// Records adapts a typed collection to the Record view ValidatePositions
// reads. Typed positions are already integers, so only negativity and
// duplication can be reported for them.
func Records[T collection.Positioned[T]](items []T) []Record {
	out := make([]Record, len(items))
	for i, it := range items {
		out[i] = Record{ID: it.Key(), Position: float64(it.Pos())}
	}
	return out
}
