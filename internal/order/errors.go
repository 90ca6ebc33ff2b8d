package order

import (
	"errors"
	"fmt"
)

// Error represents a failed ordering operation.
//
// Structural errors (index out of range, empty source) are programmer
// errors: callers are expected to validate indices before calling
// ReorderWithin or MoveBetween, and must not retry.
//
// Drop errors (missing target, unknown section, bad target index) come
// from untrusted gesture data and are expected in normal operation; the
// caller aborts the gesture and restores the last snapshot.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the offending index, when one exists (-1 otherwise).
	Index int

	// Length is the length of the collection the index was checked
	// against (-1 when not applicable).
	Length int

	// SectionID identifies the section involved, when one exists.
	SectionID string
}

// ErrorCode categorizes ordering errors.
type ErrorCode string

const (
	// ErrCodeIndexOutOfRange indicates a source or destination index
	// outside the collection bounds.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrCodeEmptySource indicates a move out of an empty collection.
	ErrCodeEmptySource ErrorCode = "EMPTY_SOURCE"

	// ErrCodeMissingDropTarget indicates a nil/absent drop target.
	ErrCodeMissingDropTarget ErrorCode = "MISSING_DROP_TARGET"

	// ErrCodeNegativeDropIndex indicates a negative drop index.
	ErrCodeNegativeDropIndex ErrorCode = "NEGATIVE_DROP_INDEX"

	// ErrCodeDropIndexOutOfRange indicates a drop index past the end of
	// the target section.
	ErrCodeDropIndexOutOfRange ErrorCode = "DROP_INDEX_OUT_OF_RANGE"

	// ErrCodeUnknownSection indicates a drop target referencing a
	// section id that does not exist.
	ErrCodeUnknownSection ErrorCode = "UNKNOWN_SECTION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.SectionID != "" {
		return fmt.Sprintf("%s: %s (section=%s)", e.Code, e.Message, e.SectionID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// indexError builds a structural index-range error.
func indexError(what string, index, length int) *Error {
	return &Error{
		Code:    ErrCodeIndexOutOfRange,
		Message: fmt.Sprintf("%s index %d out of range [0,%d)", what, index, length),
		Index:   index,
		Length:  length,
	}
}

// IsStructural returns true if the error is a precondition violation
// (programmer error) rather than a drop-validation failure.
// Uses errors.As to handle wrapped errors.
func IsStructural(err error) bool {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeIndexOutOfRange || oe.Code == ErrCodeEmptySource
	}
	return false
}

// IsDropError returns true if the error is a drop-target validation
// failure originating from gesture data.
func IsDropError(err error) bool {
	var oe *Error
	if errors.As(err, &oe) {
		switch oe.Code {
		case ErrCodeMissingDropTarget, ErrCodeNegativeDropIndex,
			ErrCodeDropIndexOutOfRange, ErrCodeUnknownSection:
			return true
		}
	}
	return false
}
