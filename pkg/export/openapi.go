// Package export maps accepted MIP-003 field descriptions onto an OpenAPI 3
// schema so agent services can publish their job input contract alongside
// their API documents.
package export

import (
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/masumi-network/schema-validator-componenet/pkg/fieldtypes"
	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// OpenAPISchema builds an object schema with one property per field
// description, keyed by field id. Display-only elements (type none) carry
// no value and are skipped; hidden fields appear with their fixed value as
// default. Non-optional fields are listed as required.
func OpenAPISchema(fields []schema.FieldDescription) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	if root.Properties == nil {
		root.Properties = openapi3.Schemas{}
	}

	for _, fd := range fields {
		if fd.Type == schema.FieldTypeNone {
			continue
		}
		prop := fieldSchema(fd)
		prop.Description = fd.Data.Description
		root.Properties[fd.ID] = openapi3.NewSchemaRef("", prop)
		if !fieldtypes.IsOptional(fd) && fd.Type != schema.FieldTypeHidden {
			root.Required = append(root.Required, fd.ID)
		}
	}
	return root
}

func fieldSchema(fd schema.FieldDescription) *openapi3.Schema {
	min, hasMin := ruleBound(fd, schema.RuleMin)
	max, hasMax := ruleBound(fd, schema.RuleMax)

	switch fd.Type {
	case schema.FieldTypeNumber, schema.FieldTypeRange:
		prop := openapi3.NewFloat64Schema()
		if hasFormatRule(fd, schema.FormatInteger) {
			prop = openapi3.NewIntegerSchema()
		}
		if hasMin {
			prop.Min = &min
		}
		if hasMax {
			prop.Max = &max
		}
		prop.Default = fd.Data.Default
		return prop

	case schema.FieldTypeBoolean, schema.FieldTypeCheckbox:
		prop := openapi3.NewBoolSchema()
		prop.Default = fd.Data.Default
		return prop

	case schema.FieldTypeOption:
		items := indexSchema(len(fd.Data.Values))
		prop := openapi3.NewArraySchema()
		prop.Items = openapi3.NewSchemaRef("", items)
		if hasMin {
			prop.MinItems = uint64(min)
		}
		if hasMax {
			bound := uint64(max)
			prop.MaxItems = &bound
		}
		return prop

	case schema.FieldTypeRadio:
		return indexSchema(len(fd.Data.Values))

	case schema.FieldTypeFile:
		prop := openapi3.NewStringSchema()
		prop.Format = "binary"
		return prop

	case schema.FieldTypeHidden:
		prop := openapi3.NewStringSchema()
		prop.Default = fd.Data.Value
		return prop

	case schema.FieldTypeColor:
		prop := openapi3.NewStringSchema()
		prop.Pattern = "^#[0-9a-fA-F]{6}$"
		prop.Default = fd.Data.Default
		return prop
	}

	// text-like and date-family types
	prop := openapi3.NewStringSchema()
	prop.Format = stringFormat(fd)
	if hasMin {
		prop.MinLength = uint64(min)
	}
	if hasMax {
		bound := uint64(max)
		prop.MaxLength = &bound
	}
	if hasFormatRule(fd, schema.FormatNonEmpty) && prop.MinLength == 0 {
		prop.MinLength = 1
	}
	prop.Default = fd.Data.Default
	return prop
}

func indexSchema(count int) *openapi3.Schema {
	prop := openapi3.NewIntegerSchema()
	zero := float64(0)
	upper := float64(count - 1)
	prop.Min = &zero
	prop.Max = &upper
	return prop
}

func stringFormat(fd schema.FieldDescription) string {
	switch fd.Type {
	case schema.FieldTypeEmail:
		return "email"
	case schema.FieldTypeURL:
		return "uri"
	case schema.FieldTypePassword:
		return "password"
	case schema.FieldTypeDate:
		return "date"
	case schema.FieldTypeDatetimeLocal:
		return "date-time"
	}
	if hasFormatRule(fd, schema.FormatEmail) {
		return "email"
	}
	if hasFormatRule(fd, schema.FormatURL) {
		return "uri"
	}
	return ""
}

func hasFormatRule(fd schema.FieldDescription, format string) bool {
	for _, rule := range fd.Validations {
		if rule.Validation == schema.RuleFormat {
			if text, ok := rule.Value.(string); ok && text == format {
				return true
			}
		}
	}
	return false
}

func ruleBound(fd schema.FieldDescription, kind string) (float64, bool) {
	raw, ok := fd.RuleValue(kind)
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, true
		}
		return parsed, true
	}
	return 0, true
}
