package fieldtypes

import (
	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// attrKind is the primitive shape expected for one data sub-attribute.
type attrKind int

const (
	attrString attrKind = iota
	attrBool
	attrNumber
	attrStringOrNumber
	attrStringList
	attrNumberList
	attrAny
)

// Contract defines the structural shape associated with one field type: the
// legal data sub-attributes, the legal validation rule kinds, and the legal
// format values. Contracts are independent shapes unified only through the
// type discriminant.
type Contract struct {
	Type         schema.FieldType
	Rules        []string
	Formats      []string
	RequiredData map[string]attrKind
	OptionalData map[string]attrKind
}

// RequiresData reports whether the contract mandates a data payload.
func (c Contract) RequiresData() bool {
	return len(c.RequiredData) > 0
}

// AllowsRule reports whether the given rule kind is legal for this type.
func (c Contract) AllowsRule(kind string) bool {
	for _, legal := range c.Rules {
		if legal == kind {
			return true
		}
	}
	return false
}

// AllowsFormat reports whether the given format value is legal for this type.
func (c Contract) AllowsFormat(value string) bool {
	for _, legal := range c.Formats {
		if legal == value {
			return true
		}
	}
	return false
}

func textLikeContract(t schema.FieldType) Contract {
	return Contract{
		Type:    t,
		Rules:   []string{schema.RuleOptional, schema.RuleMin, schema.RuleMax, schema.RuleFormat},
		Formats: []string{schema.FormatURL, schema.FormatEmail, schema.FormatNonEmpty},
		OptionalData: map[string]attrKind{
			"placeholder": attrString,
			"description": attrString,
			"default":     attrString,
		},
	}
}

func dateContract(t schema.FieldType) Contract {
	return Contract{
		Type:    t,
		Rules:   []string{schema.RuleOptional, schema.RuleMin, schema.RuleMax, schema.RuleFormat},
		Formats: []string{schema.FormatNonEmpty},
		OptionalData: map[string]attrKind{
			"description": attrString,
			"default":     attrString,
		},
	}
}

func booleanContract(t schema.FieldType) Contract {
	return Contract{
		Type:  t,
		Rules: []string{schema.RuleOptional},
		OptionalData: map[string]attrKind{
			"description": attrString,
			"default":     attrBool,
		},
	}
}

func choiceContract(t schema.FieldType, defaultKind attrKind) Contract {
	return Contract{
		Type:  t,
		Rules: []string{schema.RuleOptional, schema.RuleMin, schema.RuleMax},
		RequiredData: map[string]attrKind{
			"values": attrStringList,
		},
		OptionalData: map[string]attrKind{
			"description": attrString,
			"default":     defaultKind,
		},
	}
}

// registry maps each discriminant to its contract. Built once at package
// init; never mutated afterwards, so concurrent lookups are safe.
var registry = buildRegistry()

func buildRegistry() map[schema.FieldType]Contract {
	contracts := []Contract{
		textLikeContract(schema.FieldTypeText),
		textLikeContract(schema.FieldTypeString),
		textLikeContract(schema.FieldTypeTextarea),
		textLikeContract(schema.FieldTypeEmail),
		textLikeContract(schema.FieldTypePassword),
		textLikeContract(schema.FieldTypeURL),
		textLikeContract(schema.FieldTypeTel),
		dateContract(schema.FieldTypeDate),
		dateContract(schema.FieldTypeDatetimeLocal),
		dateContract(schema.FieldTypeTime),
		dateContract(schema.FieldTypeMonth),
		dateContract(schema.FieldTypeWeek),
		{
			Type:  schema.FieldTypeColor,
			Rules: []string{schema.RuleOptional},
			OptionalData: map[string]attrKind{
				"description": attrString,
				"default":     attrString,
			},
		},
		{
			Type:    schema.FieldTypeNumber,
			Rules:   []string{schema.RuleOptional, schema.RuleMin, schema.RuleMax, schema.RuleFormat},
			Formats: []string{schema.FormatInteger},
			OptionalData: map[string]attrKind{
				"placeholder": attrString,
				"description": attrString,
				"default":     attrStringOrNumber,
			},
		},
		{
			Type:    schema.FieldTypeRange,
			Rules:   []string{schema.RuleOptional, schema.RuleMin, schema.RuleMax, schema.RuleFormat},
			Formats: []string{schema.FormatInteger},
			OptionalData: map[string]attrKind{
				"description": attrString,
				"default":     attrStringOrNumber,
				"min":         attrStringOrNumber,
				"max":         attrStringOrNumber,
				"step":        attrStringOrNumber,
			},
		},
		booleanContract(schema.FieldTypeBoolean),
		booleanContract(schema.FieldTypeCheckbox),
		choiceContract(schema.FieldTypeOption, attrNumberList),
		choiceContract(schema.FieldTypeRadio, attrNumber),
		{
			Type:  schema.FieldTypeFile,
			Rules: []string{schema.RuleOptional, schema.RuleAccept},
			OptionalData: map[string]attrKind{
				"description":  attrString,
				"outputFormat": attrString,
			},
		},
		{
			Type:  schema.FieldTypeHidden,
			Rules: []string{schema.RuleOptional},
			RequiredData: map[string]attrKind{
				"value": attrString,
			},
			OptionalData: map[string]attrKind{
				"description": attrString,
			},
		},
		{
			Type:  schema.FieldTypeNone,
			Rules: []string{schema.RuleOptional},
			OptionalData: map[string]attrKind{
				"description": attrString,
			},
		},
	}

	out := make(map[schema.FieldType]Contract, len(contracts))
	for _, contract := range contracts {
		out[contract.Type] = contract
	}
	return out
}

// Lookup returns the contract registered for the given discriminant.
func Lookup(t schema.FieldType) (Contract, bool) {
	contract, ok := registry[t]
	return contract, ok
}

// TypeNames returns the legal discriminant values in declaration order,
// used to build invalid-enum messages.
func TypeNames() []string {
	out := make([]string, 0, len(schema.FieldTypes))
	for _, t := range schema.FieldTypes {
		out = append(out, string(t))
	}
	return out
}
