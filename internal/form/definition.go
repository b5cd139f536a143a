// internal/form/definition.go
//
// userform – form definition loader.
//
// Context
//   The registration form's presentation (title, labels, placeholders,
//   input types, and field order) is declared in YAML.  The validation
//   rules are not: they live in internal/registration and are the same for
//   every presentation layer.  A definition may only name the five draft
//   fields, each exactly once, so the renderer can never drift from the
//   model.
//
// Workflow
//   •  Default() returns the embedded forms/registration.yaml, parsed once.
//   •  LoadFormDef parses an override file from disk and applies the same
//      structural checks.
//
//------------------------------------------------------------------------------

package form

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yanizio/userform/internal/registration"
)

// FormDef represents one form definition loaded from YAML.
type FormDef struct {
	ID          string     `yaml:"id"`     // Identifier used in logs.
	Title       string     `yaml:"title"`  // Page heading.
	SubmitLabel string     `yaml:"submit"` // Button text, defaults to "Submit".
	Fields      []FieldDef `yaml:"fields"` // Display order.
}

// FieldDef describes a single input control.
type FieldDef struct {
	Name         string `yaml:"name"`         // One of the registration fields.  Required.
	Label        string `yaml:"label"`        // Human-readable label.  Required.
	Type         string `yaml:"type"`         // text, number, email, or tel.
	Placeholder  string `yaml:"placeholder"`  // Optional.
	Autocomplete string `yaml:"autocomplete"` // Optional autofill hint.
}

var inputTypes = map[string]bool{
	"text":   true,
	"number": true,
	"email":  true,
	"tel":    true,
}

//go:embed forms/registration.yaml
var defaultYAML []byte

var (
	defaultOnce sync.Once
	defaultDef  *FormDef
	defaultErr  error
)

// Default returns the built-in registration form definition.  It panics if
// the embedded file is malformed, which is a build defect.
func Default() *FormDef {
	defaultOnce.Do(func() {
		defaultDef, defaultErr = ParseFormDef(defaultYAML, "embedded registration.yaml")
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultDef
}

// LoadFormDef reads and parses a definition from path.
func LoadFormDef(path string) (*FormDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", path, err)
	}
	return ParseFormDef(raw, path)
}

// ParseFormDef parses raw YAML and validates its structure.  src only
// labels error messages.
func ParseFormDef(raw []byte, src string) (*FormDef, error) {
	var fd FormDef
	if err := yaml.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", src, err)
	}
	if fd.SubmitLabel == "" {
		fd.SubmitLabel = "Submit"
	}
	if err := validateFormDef(&fd, src); err != nil {
		return nil, err
	}
	return &fd, nil
}

// Field returns the definition for name, if present.
func (fd *FormDef) Field(name string) (FieldDef, bool) {
	for _, f := range fd.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// validateFormDef enforces the rules YAML tags cannot express.
func validateFormDef(fd *FormDef, src string) error {
	if fd.ID == "" {
		return fmt.Errorf("form definition %s: missing required 'id'", src)
	}

	seen := make(map[registration.Field]bool, len(registration.Fields))
	for i := range fd.Fields {
		f := &fd.Fields[i]
		name, err := registration.ParseField(f.Name)
		if err != nil {
			return fmt.Errorf("form %s: field '%s' is not a registration field", src, f.Name)
		}
		if seen[name] {
			return fmt.Errorf("form %s: duplicate field name '%s'", src, f.Name)
		}
		seen[name] = true

		if f.Label == "" {
			return fmt.Errorf("form %s: field '%s' missing 'label'", src, f.Name)
		}
		if f.Type == "" {
			f.Type = "text"
		}
		if !inputTypes[f.Type] {
			return fmt.Errorf("form %s: field '%s' has unsupported type '%s'", src, f.Name, f.Type)
		}
	}

	for _, name := range registration.Fields {
		if !seen[name] {
			return fmt.Errorf("form %s: missing field '%s'", src, name)
		}
	}
	return nil
}
