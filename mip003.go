// Package schemavalidator validates MIP-003 job input schemas and derives
// per-field runtime validators and default values for form renderers. The
// root package re-exports the pipeline's entry points; the implementation
// lives under pkg/.
package schemavalidator

import (
	"github.com/masumi-network/schema-validator-componenet/pkg/fieldtypes"
	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
	"github.com/masumi-network/schema-validator-componenet/pkg/validation"
)

// Core data types, aliased for consumers that only need the entry points.
type (
	FieldDescription = schema.FieldDescription
	FieldData        = schema.FieldData
	FieldType        = schema.FieldType
	ValidationRule   = schema.ValidationRule
	Result           = validation.Result
	Error            = validation.Error
	Validator        = fieldtypes.Validator
)

// Validate checks a JSON source text against the MIP-003 job input schema
// contract and reports every error with a best-effort source line.
func Validate(source string) Result {
	return validation.Validate(source)
}

// DeriveValidator builds the runtime value check for an accepted field.
func DeriveValidator(fd FieldDescription) Validator {
	return fieldtypes.DeriveValidator(fd)
}

// DeriveDefault returns the value a form input holds before interaction.
func DeriveDefault(fd FieldDescription) any {
	return fieldtypes.DeriveDefault(fd)
}

// IsOptional reports whether the field carries an optional rule.
func IsOptional(fd FieldDescription) bool {
	return fieldtypes.IsOptional(fd)
}

// IsSingleOption reports whether a choice field has single-selection
// semantics (min and max rules both valued 1).
func IsSingleOption(fd FieldDescription) bool {
	return fieldtypes.IsSingleOption(fd)
}
