// Package schema validates raw recipe documents against an embedded CUE
// schema before they reach the normalizer.
//
// The schema is intentionally permissive: the normalizer exists to repair
// missing ids, names, and positions, so the schema only rejects documents
// whose shape is beyond repair - wrong field types, non-list sections, and
// similar structural damage from scraping or legacy storage.
package schema

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaCUE string

var (
	compileOnce sync.Once
	compiled    cue.Value
	compileErr  error
)

// documentSchema compiles the embedded schema once and reuses it.
func documentSchema() (cue.Value, error) {
	compileOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			compileErr = fmt.Errorf("compile embedded schema: %w", err)
			return
		}
		compiled = v.LookupPath(cue.ParsePath("document"))
		if err := compiled.Err(); err != nil {
			compileErr = fmt.Errorf("lookup document schema: %w", err)
		}
	})
	return compiled, compileErr
}

// ValidationError is a structural schema violation with source position
// information when the document came from a file.
type ValidationError struct {
	Message string
	Pos     token.Pos
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Validate checks a decoded document (a map or RawRecipe-shaped value)
// against the recipe schema. Returns nil if the document's shape is
// acceptable input for the normalizer.
func Validate(document any) error {
	schemaVal, err := documentSchema()
	if err != nil {
		return err
	}

	ctx := schemaVal.Context()
	docVal := ctx.Encode(document)
	if err := docVal.Err(); err != nil {
		return formatCUEError(err)
	}

	unified := schemaVal.Unify(docVal)
	if err := unified.Err(); err != nil {
		return formatCUEError(err)
	}
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &ValidationError{
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}
	return &ValidationError{Message: firstErr.Error()}
}
