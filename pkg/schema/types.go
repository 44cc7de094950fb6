package schema

// FieldType is the discriminant selecting which field-type contract applies
// to a field description.
type FieldType string

// The 22 recognized field types. Unrecognized discriminants fail validation
// with an invalid-enum error listing these values.
const (
	FieldTypeText          FieldType = "text"
	FieldTypeString        FieldType = "string"
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeEmail         FieldType = "email"
	FieldTypePassword      FieldType = "password"
	FieldTypeURL           FieldType = "url"
	FieldTypeTel           FieldType = "tel"
	FieldTypeDate          FieldType = "date"
	FieldTypeDatetimeLocal FieldType = "datetime-local"
	FieldTypeTime          FieldType = "time"
	FieldTypeMonth         FieldType = "month"
	FieldTypeWeek          FieldType = "week"
	FieldTypeColor         FieldType = "color"
	FieldTypeNumber        FieldType = "number"
	FieldTypeRange         FieldType = "range"
	FieldTypeBoolean       FieldType = "boolean"
	FieldTypeCheckbox      FieldType = "checkbox"
	FieldTypeOption        FieldType = "option"
	FieldTypeRadio         FieldType = "radio"
	FieldTypeFile          FieldType = "file"
	FieldTypeHidden        FieldType = "hidden"
	FieldTypeNone          FieldType = "none"
)

// FieldTypes lists every recognized discriminant in declaration order.
var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeString,
	FieldTypeTextarea,
	FieldTypeEmail,
	FieldTypePassword,
	FieldTypeURL,
	FieldTypeTel,
	FieldTypeDate,
	FieldTypeDatetimeLocal,
	FieldTypeTime,
	FieldTypeMonth,
	FieldTypeWeek,
	FieldTypeColor,
	FieldTypeNumber,
	FieldTypeRange,
	FieldTypeBoolean,
	FieldTypeCheckbox,
	FieldTypeOption,
	FieldTypeRadio,
	FieldTypeFile,
	FieldTypeHidden,
	FieldTypeNone,
}

// Validation rule kinds. Each field type restricts which kinds are legal.
const (
	RuleOptional = "optional"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleFormat   = "format"
	RuleAccept   = "accept"
)

// RuleKinds is the full rule-kind vocabulary, used both by contracts and by
// the pre-validation heuristics.
var RuleKinds = []string{RuleOptional, RuleMin, RuleMax, RuleFormat, RuleAccept}

// Format rule values. Contracts restrict which are legal per type.
const (
	FormatURL      = "url"
	FormatEmail    = "email"
	FormatNonEmpty = "nonempty"
	FormatInteger  = "integer"
)

// ValidationRule constrains a field's runtime value domain. Value holds a
// string for min/max/format/accept rules and may hold a boolean for
// optional rules. The mere presence of an optional rule marks the field as
// not required regardless of Value; this quirk is mandated by MIP-003.
type ValidationRule struct {
	Validation string `json:"validation"`
	Value      any    `json:"value,omitempty"`
}

// FieldData carries the type-dependent payload of a field description. Only
// the attributes legal for the field's type are populated; the structural
// validator enforces which ones may appear.
type FieldData struct {
	Placeholder  string   `json:"placeholder,omitempty"`
	Description  string   `json:"description,omitempty"`
	Default      any      `json:"default,omitempty"`
	Values       []string `json:"values,omitempty"`
	OutputFormat string   `json:"outputFormat,omitempty"`
	Value        string   `json:"value,omitempty"`
	Min          any      `json:"min,omitempty"`
	Max          any      `json:"max,omitempty"`
	Step         any      `json:"step,omitempty"`
}

// FieldDescription is the unit of input: one declarative form element.
// Instances are transient; they are parsed from caller-supplied JSON,
// validated once, and handed to the rendering layer for the duration of a
// form session.
type FieldDescription struct {
	ID          string           `json:"id"`
	Type        FieldType        `json:"type"`
	Name        string           `json:"name"`
	Data        FieldData        `json:"data"`
	Validations []ValidationRule `json:"validations,omitempty"`
}

// HasRule reports whether the field carries at least one validation rule of
// the given kind.
func (fd FieldDescription) HasRule(kind string) bool {
	for _, rule := range fd.Validations {
		if rule.Validation == kind {
			return true
		}
	}
	return false
}

// RuleValue returns the Value of the first rule of the given kind and
// whether such a rule exists.
func (fd FieldDescription) RuleValue(kind string) (any, bool) {
	for _, rule := range fd.Validations {
		if rule.Validation == kind {
			return rule.Value, true
		}
	}
	return nil, false
}
