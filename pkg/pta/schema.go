package pta

import (
	"strings"

	"github.com/jfmartin/ptadiff/pkg/errors"
)

// Column labels as they appear in the PTA sheet header. The source files
// carry French labels; mass and reference have well-known defaults, the
// identity column varies per fleet and must be configured.
const (
	// DefaultMassColumn is the suspended mass at reference load.
	DefaultMassColumn = "Masse suspendue en charge de référence"
	// DefaultReferenceColumn is the spring reference identifier.
	DefaultReferenceColumn = "Référence"
	// DefaultMotorColumn is the optional engine designator.
	DefaultMotorColumn = "Moteur"
)

// Schema maps sheet header labels onto typed row fields. The engine never
// does string-keyed lookups; the loader resolves the schema once against
// the header row and produces typed rows.
type Schema struct {
	// MassColumn is the header label of the mass column. Required.
	MassColumn string `yaml:"mass"`

	// ReferenceColumn is the header label of the spring reference column.
	// Required.
	ReferenceColumn string `yaml:"reference"`

	// IdentityColumn is the header label of the stable vehicle identity
	// used as the match key. Required, with no default: the join key is
	// fleet-specific business configuration.
	IdentityColumn string `yaml:"identity"`

	// MotorColumn is the header label of the motor column. Optional.
	MotorColumn string `yaml:"motor"`

	// Overrides holds per-category column label overrides, keyed by
	// category code. A category with no entry uses the base labels.
	Overrides map[Category]SchemaOverride `yaml:"overrides,omitempty"`
}

// SchemaOverride replaces individual column labels for one category.
// Empty fields keep the base label.
type SchemaOverride struct {
	MassColumn      string `yaml:"mass,omitempty"`
	ReferenceColumn string `yaml:"reference,omitempty"`
	IdentityColumn  string `yaml:"identity,omitempty"`
	MotorColumn     string `yaml:"motor,omitempty"`
}

// DefaultSchema returns a schema with the standard French PTA labels.
// The identity column is intentionally left empty and must be set by the
// caller before loading.
func DefaultSchema() Schema {
	return Schema{
		MassColumn:      DefaultMassColumn,
		ReferenceColumn: DefaultReferenceColumn,
		MotorColumn:     DefaultMotorColumn,
	}
}

// ForCategory returns the schema with the category's overrides applied.
func (s Schema) ForCategory(c Category) Schema {
	o, ok := s.Overrides[c]
	if !ok {
		return s
	}
	out := s
	if o.MassColumn != "" {
		out.MassColumn = o.MassColumn
	}
	if o.ReferenceColumn != "" {
		out.ReferenceColumn = o.ReferenceColumn
	}
	if o.IdentityColumn != "" {
		out.IdentityColumn = o.IdentityColumn
	}
	if o.MotorColumn != "" {
		out.MotorColumn = o.MotorColumn
	}
	return out
}

// Validate checks that all required column labels are configured.
func (s Schema) Validate() error {
	missing := []string{}
	if strings.TrimSpace(s.MassColumn) == "" {
		missing = append(missing, "mass")
	}
	if strings.TrimSpace(s.ReferenceColumn) == "" {
		missing = append(missing, "reference")
	}
	if strings.TrimSpace(s.IdentityColumn) == "" {
		missing = append(missing, "identity")
	}
	if len(missing) > 0 {
		return &errors.ValidationError{
			Column:  strings.Join(missing, ", "),
			Message: "schema is missing required column labels",
		}
	}
	return nil
}

// Required returns the header labels that must be present in a sheet.
func (s Schema) Required() []string {
	return []string{s.MassColumn, s.ReferenceColumn, s.IdentityColumn}
}
