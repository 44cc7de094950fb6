package fieldtypes

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// Validator checks one user-entered value against a field's derived
// constraints. A nil error means the value is accepted. An untyped nil
// value represents an absent input.
type Validator func(value any) error

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// constraints is the result of folding a field's validation rules, left to
// right, over the type's base validator.
type constraints struct {
	optional bool
	hasMin   bool
	hasMax   bool
	min      float64
	max      float64
	minText  string
	maxText  string
	integer  bool
	format   string
	accept   []string
}

func foldConstraints(fd schema.FieldDescription) constraints {
	var c constraints
	for _, rule := range fd.Validations {
		switch rule.Validation {
		case schema.RuleOptional:
			// presence alone marks the field optional; the value is ignored
			c.optional = true
		case schema.RuleMin:
			c.hasMin = true
			c.minText = ruleText(rule.Value)
			c.min = ruleNumber(rule.Value)
		case schema.RuleMax:
			c.hasMax = true
			c.maxText = ruleText(rule.Value)
			c.max = ruleNumber(rule.Value)
		case schema.RuleFormat:
			if text := ruleText(rule.Value); text == schema.FormatInteger {
				c.integer = true
			} else if text != "" {
				c.format = text
			}
		case schema.RuleAccept:
			for _, entry := range strings.Split(ruleText(rule.Value), ",") {
				if trimmed := strings.TrimSpace(entry); trimmed != "" {
					c.accept = append(c.accept, trimmed)
				}
			}
		}
	}
	return c
}

func ruleText(value any) string {
	text, _ := value.(string)
	return text
}

// ruleNumber parses a numeric rule payload. Unparsable values fall back to
// 0: structural validation has already run, and the lenient fallback keeps
// derivation total. This mirrors the reference behavior and is documented
// as an accepted tradeoff in DESIGN.md.
func ruleNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

// DeriveValidator folds the field's validation rules into the base
// validator for its type and returns the resulting value check.
func DeriveValidator(fd schema.FieldDescription) Validator {
	c := foldConstraints(fd)

	switch fd.Type {
	case schema.FieldTypeEmail:
		// the type already implies the email shape; a redundant format
		// rule is a no-op
		c.format = schema.FormatEmail
		return textValidator(c)
	case schema.FieldTypeURL:
		c.format = schema.FormatURL
		return textValidator(c)
	case schema.FieldTypeText, schema.FieldTypeString, schema.FieldTypeTextarea,
		schema.FieldTypePassword, schema.FieldTypeTel:
		return textValidator(c)
	case schema.FieldTypeDate, schema.FieldTypeDatetimeLocal, schema.FieldTypeTime,
		schema.FieldTypeMonth, schema.FieldTypeWeek:
		return dateValidator(c)
	case schema.FieldTypeNumber, schema.FieldTypeRange:
		return numberValidator(c)
	case schema.FieldTypeBoolean, schema.FieldTypeCheckbox:
		return booleanValidator(c)
	case schema.FieldTypeOption:
		return optionValidator(c, len(fd.Data.Values))
	case schema.FieldTypeRadio:
		return radioValidator(c, len(fd.Data.Values))
	case schema.FieldTypeFile:
		return fileValidator(c)
	case schema.FieldTypeColor:
		return colorValidator(c)
	case schema.FieldTypeHidden, schema.FieldTypeNone:
		return func(any) error { return nil }
	}
	return func(any) error { return nil }
}

func textValidator(c constraints) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if text == "" && c.optional {
			return nil
		}
		length := utf8.RuneCountInString(text)
		if c.hasMin && float64(length) < c.min {
			return fmt.Errorf("must be at least %d character(s) long", int(c.min))
		}
		if c.hasMax && float64(length) > c.max {
			return fmt.Errorf("must be at most %d character(s) long", int(c.max))
		}
		return checkTextFormat(c.format, text)
	}
}

func checkTextFormat(format, text string) error {
	switch format {
	case schema.FormatEmail:
		if !emailPattern.MatchString(text) {
			return fmt.Errorf("must be a valid email address")
		}
	case schema.FormatURL:
		parsed, err := url.Parse(text)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("must be a valid URL")
		}
	case schema.FormatNonEmpty:
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("must not be empty")
		}
	}
	return nil
}

// dateValidator compares against min/max bounds lexicographically. The
// date-family formats (date, datetime-local, time, month, week) order
// lexically the same way they order chronologically, so no calendar
// arithmetic is needed.
func dateValidator(c constraints) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if text == "" {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		if c.hasMin && c.minText != "" && text < c.minText {
			return fmt.Errorf("must not be before %s", c.minText)
		}
		if c.hasMax && c.maxText != "" && text > c.maxText {
			return fmt.Errorf("must not be after %s", c.maxText)
		}
		return checkTextFormat(c.format, text)
	}
}

func numberValidator(c constraints) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		number, err := coerceNumber(value)
		if err != nil {
			if text, ok := value.(string); ok && text == "" && c.optional {
				return nil
			}
			return err
		}
		if c.integer && number != float64(int64(number)) {
			return fmt.Errorf("must be an integer")
		}
		if c.hasMin && number < c.min {
			return fmt.Errorf("must be at least %v", c.min)
		}
		if c.hasMax && number > c.max {
			return fmt.Errorf("must be at most %v", c.max)
		}
		return nil
	}
}

func coerceNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("must be a number")
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("must be a number")
}

func booleanValidator(c constraints) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("must be a boolean")
		}
		return nil
	}
}

// optionValidator checks a list of indices into the field's values. The
// min/max bounds constrain the selection count, not the indices.
func optionValidator(c constraints, count int) Validator {
	return func(value any) error {
		indices, err := coerceIndexList(value)
		if err != nil {
			return err
		}
		if len(indices) == 0 && c.optional {
			return nil
		}
		if c.hasMin && float64(len(indices)) < c.min {
			return fmt.Errorf("select at least %d option(s)", int(c.min))
		}
		if c.hasMax && float64(len(indices)) > c.max {
			return fmt.Errorf("select at most %d option(s)", int(c.max))
		}
		for _, index := range indices {
			if index < 0 || index >= count {
				return fmt.Errorf("selection %d is out of range (0-%d)", index, count-1)
			}
		}
		return nil
	}
}

func radioValidator(c constraints, count int) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a selection is required")
		}
		index, err := coerceIndex(value)
		if err != nil {
			return err
		}
		if index < 0 || index >= count {
			return fmt.Errorf("selection %d is out of range (0-%d)", index, count-1)
		}
		return nil
	}
}

func coerceIndexList(value any) ([]int, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []int:
		return v, nil
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			index, err := coerceIndex(item)
			if err != nil {
				return nil, err
			}
			out = append(out, index)
		}
		return out, nil
	}
	return nil, fmt.Errorf("must be a list of option indices")
}

func coerceIndex(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("must be an option index")
		}
		return int(v), nil
	case string:
		index, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("must be an option index")
		}
		return index, nil
	}
	return 0, fmt.Errorf("must be an option index")
}

// fileValidator checks file metadata only: the value is a file name or
// reference, never file content. Accept entries with a leading dot are
// matched against the name's suffix; MIME-type entries cannot be checked
// from a name and are allowed through.
func fileValidator(c constraints) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a file is required")
		}
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a file reference")
		}
		if name == "" {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a file is required")
		}
		if len(c.accept) == 0 {
			return nil
		}
		var extensions []string
		for _, entry := range c.accept {
			if !strings.HasPrefix(entry, ".") {
				return nil
			}
			extensions = append(extensions, entry)
		}
		lower := strings.ToLower(name)
		for _, ext := range extensions {
			if strings.HasSuffix(lower, strings.ToLower(ext)) {
				return nil
			}
		}
		return fmt.Errorf("must be one of the accepted types: %s", strings.Join(extensions, ", "))
	}
}

func colorValidator(c constraints) Validator {
	return func(value any) error {
		if value == nil {
			if c.optional {
				return nil
			}
			return fmt.Errorf("a value is required")
		}
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if text == "" && c.optional {
			return nil
		}
		if !colorPattern.MatchString(text) {
			return fmt.Errorf("must be a hex color like #1a2b3c")
		}
		return nil
	}
}
