package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forkful/mise/internal/normalize"
	"github.com/forkful/mise/internal/schema"
)

// LoadError represents an error that occurred while loading a recipe
// document.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadRawRecipe reads a recipe document from a YAML or JSON file,
// schema-checks it, and returns the raw (not yet normalized) form.
//
// The file extension selects the decoder: .json is JSON, everything else
// is YAML. Schema validation runs on the generically decoded document so
// type damage (a string where a list belongs) is caught with a useful
// message instead of a decode panic downstream.
func LoadRawRecipe(path string) (normalize.RawRecipe, error) {
	var raw normalize.RawRecipe

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return raw, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "file not found"}
	}
	if err != nil {
		return raw, &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error()}
	}

	isJSON := strings.EqualFold(filepath.Ext(path), ".json")

	// Decode generically first for schema validation.
	var document map[string]any
	if isJSON {
		err = json.Unmarshal(data, &document)
	} else {
		err = yaml.Unmarshal(data, &document)
	}
	if err != nil {
		return raw, &LoadError{Code: ErrCodeBadInput, Path: path, Message: err.Error()}
	}

	if err := schema.Validate(document); err != nil {
		return raw, &LoadError{Code: ErrCodeBadInput, Path: path, Message: err.Error()}
	}

	if isJSON {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return raw, &LoadError{Code: ErrCodeBadInput, Path: path, Message: err.Error()}
	}
	return raw, nil
}

// WriteDocument writes a value to path as YAML or JSON by extension, or
// to stdout when path is "-" (YAML).
func WriteDocument(path string, v any) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error()}
	}

	if path == "-" {
		_, err = os.Stdout.Write(data)
		if err != nil {
			return &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error()}
	}
	return nil
}
