package fieldtypes

import (
	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// DeriveDefault returns the value a form input holds before user
// interaction. A declared data.default wins; otherwise the type's zero
// value applies.
func DeriveDefault(fd schema.FieldDescription) any {
	if value := declaredDefault(fd); value != nil {
		return value
	}

	switch fd.Type {
	case schema.FieldTypeText, schema.FieldTypeString, schema.FieldTypeTextarea,
		schema.FieldTypeEmail, schema.FieldTypePassword, schema.FieldTypeURL,
		schema.FieldTypeTel, schema.FieldTypeDate, schema.FieldTypeDatetimeLocal,
		schema.FieldTypeTime, schema.FieldTypeMonth, schema.FieldTypeWeek:
		return ""
	case schema.FieldTypeBoolean, schema.FieldTypeCheckbox:
		return false
	case schema.FieldTypeColor:
		return "#000000"
	case schema.FieldTypeOption:
		// multi-select defaults to nothing selected
		return []int{}
	case schema.FieldTypeHidden:
		return fd.Data.Value
	}
	// number, range, file, none, radio
	return nil
}

func declaredDefault(fd schema.FieldDescription) any {
	raw := fd.Data.Default
	if raw == nil {
		return nil
	}
	switch fd.Type {
	case schema.FieldTypeBoolean, schema.FieldTypeCheckbox:
		// boolean defaults must be literal booleans; the contract already
		// enforces this, so anything else is dropped rather than coerced
		if value, ok := raw.(bool); ok {
			return value
		}
		return nil
	case schema.FieldTypeNumber, schema.FieldTypeRange:
		if number, err := coerceNumber(raw); err == nil {
			return number
		}
		return raw
	case schema.FieldTypeOption:
		if indices, err := coerceIndexList(raw); err == nil {
			return indices
		}
		return raw
	case schema.FieldTypeRadio:
		if index, err := coerceIndex(raw); err == nil {
			return index
		}
		return raw
	}
	return raw
}

// IsOptional reports whether the field carries an optional rule. Presence
// alone decides; the rule's value is ignored.
func IsOptional(fd schema.FieldDescription) bool {
	return fd.HasRule(schema.RuleOptional)
}

// IsSingleOption reports whether a choice field has single-selection
// semantics: both a min rule valued 1 and a max rule valued 1. Renderers
// use this to present a single-select widget instead of a multi-select.
func IsSingleOption(fd schema.FieldDescription) bool {
	if fd.Type != schema.FieldTypeOption && fd.Type != schema.FieldTypeRadio {
		return false
	}
	minValue, hasMin := fd.RuleValue(schema.RuleMin)
	maxValue, hasMax := fd.RuleValue(schema.RuleMax)
	return hasMin && hasMax && ruleNumber(minValue) == 1 && ruleNumber(maxValue) == 1
}
