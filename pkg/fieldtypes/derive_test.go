package fieldtypes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

func rules(pairs ...schema.ValidationRule) []schema.ValidationRule {
	return pairs
}

func rule(kind string, value any) schema.ValidationRule {
	return schema.ValidationRule{Validation: kind, Value: value}
}

func TestDeriveValidator_NumberBoundsInclusive(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "age",
		Type: schema.FieldTypeNumber,
		Name: "Age",
		Validations: rules(
			rule(schema.RuleMin, "18"),
			rule(schema.RuleMax, "120"),
		),
	}
	check := DeriveValidator(fd)

	for _, accept := range []any{18, 120, "18", 42.0} {
		if err := check(accept); err != nil {
			t.Fatalf("expected %v accepted, got %v", accept, err)
		}
	}
	for _, reject := range []any{17, 121, "121"} {
		if err := check(reject); err == nil {
			t.Fatalf("expected %v rejected", reject)
		}
	}
}

func TestDeriveValidator_NumberIntegerFormat(t *testing.T) {
	fd := schema.FieldDescription{
		ID:          "count",
		Type:        schema.FieldTypeNumber,
		Name:        "Count",
		Validations: rules(rule(schema.RuleFormat, "integer")),
	}
	check := DeriveValidator(fd)

	if err := check(3); err != nil {
		t.Fatalf("whole number rejected: %v", err)
	}
	if err := check(3.5); err == nil {
		t.Fatalf("fractional number accepted")
	}
}

func TestDeriveValidator_UnparsableBoundFallsBackToZero(t *testing.T) {
	fd := schema.FieldDescription{
		ID:          "n",
		Type:        schema.FieldTypeNumber,
		Name:        "N",
		Validations: rules(rule(schema.RuleMin, "abc")),
	}
	check := DeriveValidator(fd)

	// the lenient fallback treats the bound as 0 rather than failing
	if err := check(0); err != nil {
		t.Fatalf("expected 0 accepted under fallback bound, got %v", err)
	}
	if err := check(-1); err == nil {
		t.Fatalf("expected -1 rejected under fallback bound")
	}
}

func TestDeriveValidator_TextLengthAndFormat(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "bio",
		Type: schema.FieldTypeText,
		Name: "Bio",
		Validations: rules(
			rule(schema.RuleMin, "3"),
			rule(schema.RuleMax, "5"),
		),
	}
	check := DeriveValidator(fd)

	if err := check("abc"); err != nil {
		t.Fatalf("expected abc accepted, got %v", err)
	}
	if err := check("ab"); err == nil {
		t.Fatalf("expected too-short value rejected")
	}
	if err := check("abcdef"); err == nil {
		t.Fatalf("expected too-long value rejected")
	}
}

func TestDeriveValidator_EmailTypeImpliesFormat(t *testing.T) {
	fd := schema.FieldDescription{ID: "mail", Type: schema.FieldTypeEmail, Name: "Mail"}
	check := DeriveValidator(fd)

	if err := check("user@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if err := check("not-an-email"); err == nil {
		t.Fatalf("invalid email accepted")
	}

	// a redundant format rule is a no-op
	fd.Validations = rules(rule(schema.RuleFormat, "email"))
	if err := DeriveValidator(fd)("user@example.com"); err != nil {
		t.Fatalf("redundant format rule changed behavior: %v", err)
	}
}

func TestDeriveValidator_URLFormat(t *testing.T) {
	fd := schema.FieldDescription{
		ID:          "site",
		Type:        schema.FieldTypeText,
		Name:        "Site",
		Validations: rules(rule(schema.RuleFormat, "url")),
	}
	check := DeriveValidator(fd)

	if err := check("https://example.com/path"); err != nil {
		t.Fatalf("valid url rejected: %v", err)
	}
	if err := check("not a url"); err == nil {
		t.Fatalf("invalid url accepted")
	}
}

func TestDeriveValidator_DateLexicographicBounds(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "start",
		Type: schema.FieldTypeDate,
		Name: "Start",
		Validations: rules(
			rule(schema.RuleMin, "2024-01-01"),
			rule(schema.RuleMax, "2024-12-31"),
		),
	}
	check := DeriveValidator(fd)

	if err := check("2024-06-15"); err != nil {
		t.Fatalf("in-range date rejected: %v", err)
	}
	if err := check("2023-12-31"); err == nil {
		t.Fatalf("date before min accepted")
	}
	if err := check("2025-01-01"); err == nil {
		t.Fatalf("date after max accepted")
	}
}

func TestDeriveValidator_OptionIndexDomain(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "colors",
		Type: schema.FieldTypeOption,
		Name: "Colors",
		Data: schema.FieldData{Values: []string{"red", "green", "blue"}},
	}
	check := DeriveValidator(fd)

	if err := check([]any{0.0, 2.0}); err != nil {
		t.Fatalf("valid indices rejected: %v", err)
	}
	if err := check([]any{3.0}); err == nil {
		t.Fatalf("out-of-range index accepted")
	}
}

func TestDeriveValidator_OptionSelectionCount(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "pick",
		Type: schema.FieldTypeOption,
		Name: "Pick",
		Data: schema.FieldData{Values: []string{"a", "b", "c"}},
		Validations: rules(
			rule(schema.RuleMin, "1"),
			rule(schema.RuleMax, "2"),
		),
	}
	check := DeriveValidator(fd)

	if err := check([]int{0}); err != nil {
		t.Fatalf("single selection rejected: %v", err)
	}
	if err := check([]int{}); err == nil {
		t.Fatalf("empty selection accepted despite min 1")
	}
	if err := check([]int{0, 1, 2}); err == nil {
		t.Fatalf("three selections accepted despite max 2")
	}
}

func TestDeriveValidator_OptionalAcceptsAbsent(t *testing.T) {
	fd := schema.FieldDescription{
		ID:          "nickname",
		Type:        schema.FieldTypeText,
		Name:        "Nickname",
		Validations: rules(rule(schema.RuleOptional, nil)),
	}
	check := DeriveValidator(fd)

	if err := check(nil); err != nil {
		t.Fatalf("absent value rejected on optional field: %v", err)
	}
	if err := check("anything"); err != nil {
		t.Fatalf("present value rejected on optional field: %v", err)
	}

	required := schema.FieldDescription{ID: "nickname", Type: schema.FieldTypeText, Name: "Nickname"}
	if err := DeriveValidator(required)(nil); err == nil {
		t.Fatalf("absent value accepted on required field")
	}
}

func TestDeriveValidator_ColorShape(t *testing.T) {
	fd := schema.FieldDescription{ID: "tint", Type: schema.FieldTypeColor, Name: "Tint"}
	check := DeriveValidator(fd)

	if err := check("#1a2b3c"); err != nil {
		t.Fatalf("valid color rejected: %v", err)
	}
	if err := check("red"); err == nil {
		t.Fatalf("named color accepted")
	}
}

func TestDeriveValidator_FileAcceptExtensions(t *testing.T) {
	fd := schema.FieldDescription{
		ID:          "doc",
		Type:        schema.FieldTypeFile,
		Name:        "Doc",
		Validations: rules(rule(schema.RuleAccept, ".pdf,.txt")),
	}
	check := DeriveValidator(fd)

	if err := check("report.PDF"); err != nil {
		t.Fatalf("accepted extension rejected: %v", err)
	}
	if err := check("image.png"); err == nil {
		t.Fatalf("unaccepted extension accepted")
	}
}

func TestDeriveDefault_Fallbacks(t *testing.T) {
	cases := []struct {
		fieldType schema.FieldType
		data      schema.FieldData
		want      any
	}{
		{schema.FieldTypeText, schema.FieldData{}, ""},
		{schema.FieldTypeDate, schema.FieldData{}, ""},
		{schema.FieldTypeBoolean, schema.FieldData{}, false},
		{schema.FieldTypeCheckbox, schema.FieldData{}, false},
		{schema.FieldTypeNumber, schema.FieldData{}, nil},
		{schema.FieldTypeRange, schema.FieldData{}, nil},
		{schema.FieldTypeFile, schema.FieldData{}, nil},
		{schema.FieldTypeNone, schema.FieldData{}, nil},
		{schema.FieldTypeRadio, schema.FieldData{Values: []string{"a"}}, nil},
		{schema.FieldTypeColor, schema.FieldData{}, "#000000"},
		{schema.FieldTypeHidden, schema.FieldData{Value: "token"}, "token"},
	}

	for _, tc := range cases {
		fd := schema.FieldDescription{ID: "f", Type: tc.fieldType, Name: "F", Data: tc.data}
		if got := DeriveDefault(fd); !cmp.Equal(tc.want, got) {
			t.Fatalf("type %s: expected default %v, got %v", tc.fieldType, tc.want, got)
		}
	}
}

func TestDeriveDefault_OptionEmptySelection(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "pick",
		Type: schema.FieldTypeOption,
		Name: "Pick",
		Data: schema.FieldData{Values: []string{"a", "b"}},
	}
	got, ok := DeriveDefault(fd).([]int)
	if !ok || len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", DeriveDefault(fd))
	}
}

func TestDeriveDefault_DeclaredWins(t *testing.T) {
	fd := schema.FieldDescription{
		ID:   "age",
		Type: schema.FieldTypeNumber,
		Name: "Age",
		Data: schema.FieldData{Default: "42"},
	}
	if got := DeriveDefault(fd); got != 42.0 {
		t.Fatalf("expected coerced 42, got %v", got)
	}

	boolField := schema.FieldDescription{
		ID:   "ok",
		Type: schema.FieldTypeBoolean,
		Name: "OK",
		Data: schema.FieldData{Default: true},
	}
	if got := DeriveDefault(boolField); got != true {
		t.Fatalf("expected true, got %v", got)
	}
}

func TestIsOptional_PresenceOnly(t *testing.T) {
	fd := schema.FieldDescription{
		ID:          "f",
		Type:        schema.FieldTypeText,
		Name:        "F",
		Validations: rules(rule(schema.RuleOptional, false)),
	}
	// the value is irrelevant; presence decides
	if !IsOptional(fd) {
		t.Fatalf("optional rule with false value must still mark optional")
	}
	fd.Validations = nil
	if IsOptional(fd) {
		t.Fatalf("field without optional rule reported optional")
	}
}

func TestIsSingleOption(t *testing.T) {
	base := schema.FieldDescription{
		ID:   "pick",
		Type: schema.FieldTypeOption,
		Name: "Pick",
		Data: schema.FieldData{Values: []string{"a", "b", "c"}},
	}

	single := base
	single.Validations = rules(rule(schema.RuleMin, "1"), rule(schema.RuleMax, "1"))
	if !IsSingleOption(single) {
		t.Fatalf("min=1,max=1 must report single option")
	}

	multi := base
	multi.Validations = rules(rule(schema.RuleMin, "1"), rule(schema.RuleMax, "3"))
	if IsSingleOption(multi) {
		t.Fatalf("min=1,max=3 must not report single option")
	}

	text := schema.FieldDescription{
		ID: "t", Type: schema.FieldTypeText, Name: "T",
		Validations: rules(rule(schema.RuleMin, "1"), rule(schema.RuleMax, "1")),
	}
	if IsSingleOption(text) {
		t.Fatalf("non-choice types can never be single option")
	}
}
