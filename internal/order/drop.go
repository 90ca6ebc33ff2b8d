package order

import (
	"fmt"

	"github.com/forkful/mise/internal/collection"
)

// DropTarget is the destination of a drag-and-drop gesture as reported by
// the presentation layer: a section and an insertion index within it.
// Gesture data is untrusted - the gesture may have been interrupted or
// targeted state that no longer exists - so it is validated here before
// any mutation.
type DropTarget struct {
	SectionID string
	Index     int
}

// ValidateDrop classifies drop-target failures before a move is attempted.
//
// Returns nil when the target is valid. Failures return an *Error with a
// drop-specific code carrying the attempted index, the section id, and the
// target collection length, so callers can log and message precisely.
//
// The target index may equal the section's item count (append).
func ValidateDrop(sections []collection.Section, target *DropTarget) error {
	if target == nil {
		return &Error{
			Code:    ErrCodeMissingDropTarget,
			Message: "drop target is missing",
			Index:   -1,
			Length:  -1,
		}
	}
	if target.Index < 0 {
		return &Error{
			Code:      ErrCodeNegativeDropIndex,
			Message:   fmt.Sprintf("drop index %d is negative", target.Index),
			Index:     target.Index,
			Length:    -1,
			SectionID: target.SectionID,
		}
	}
	idx := collection.FindSection(sections, target.SectionID)
	if idx < 0 {
		return &Error{
			Code:      ErrCodeUnknownSection,
			Message:   fmt.Sprintf("drop target references unknown section %q", target.SectionID),
			Index:     target.Index,
			Length:    -1,
			SectionID: target.SectionID,
		}
	}
	if n := len(sections[idx].Items); target.Index > n {
		return &Error{
			Code:      ErrCodeDropIndexOutOfRange,
			Message:   fmt.Sprintf("drop index %d out of range [0,%d]", target.Index, n),
			Index:     target.Index,
			Length:    n,
			SectionID: target.SectionID,
		}
	}
	return nil
}
