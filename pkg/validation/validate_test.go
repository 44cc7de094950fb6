package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

func minimalJSON(fieldType schema.FieldType) string {
	data := ""
	switch fieldType {
	case schema.FieldTypeOption, schema.FieldTypeRadio:
		data = `, "data": {"values": ["one", "two"]}`
	case schema.FieldTypeHidden:
		data = `, "data": {"value": "fixed"}`
	}
	return fmt.Sprintf(`{"id": "field", "type": %q, "name": "Field"%s}`, fieldType, data)
}

func TestValidate_MinimalInstanceRoundTripsAllTypes(t *testing.T) {
	for _, fieldType := range schema.FieldTypes {
		result := Validate(minimalJSON(fieldType))
		if !result.Valid {
			t.Fatalf("type %s: expected valid, got errors %+v", fieldType, result.Errors)
		}
		if len(result.ParsedSchemas) != 1 || result.ParsedSchemas[0].Type != fieldType {
			t.Fatalf("type %s: parsed schemas mismatch: %+v", fieldType, result.ParsedSchemas)
		}
	}
}

func TestValidate_ThreeShapesYieldIdenticalSchemas(t *testing.T) {
	field := `{"id": "age", "type": "number", "name": "Age"}`
	shapes := []string{
		field,
		fmt.Sprintf(`[%s]`, field),
		fmt.Sprintf(`{"input_data": [%s]}`, field),
	}

	var parsed [][]schema.FieldDescription
	for _, source := range shapes {
		result := Validate(source)
		if !result.Valid {
			t.Fatalf("shape %s: expected valid, got %+v", source, result.Errors)
		}
		parsed = append(parsed, result.ParsedSchemas)
	}

	if diff := cmp.Diff(parsed[0], parsed[1]); diff != "" {
		t.Fatalf("bare object vs array mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(parsed[0], parsed[2]); diff != "" {
		t.Fatalf("bare object vs wrapped mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_NullValidationsEqualsAbsent(t *testing.T) {
	withNull := Validate(`{"id": "a", "type": "text", "name": "A", "validations": null}`)
	without := Validate(`{"id": "a", "type": "text", "name": "A"}`)

	if diff := cmp.Diff(without, withNull); diff != "" {
		t.Fatalf("null and absent validations must be equivalent (-want +got):\n%s", diff)
	}
	if !withNull.Valid {
		t.Fatalf("expected valid, got %+v", withNull.Errors)
	}
}

func TestValidate_ValidationsObjectHeuristic(t *testing.T) {
	result := Validate(`{"id": "age", "type": "number", "name": "Age", "validations": {"min": "3"}}`)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %+v", result.Errors)
	}
	message := result.Errors[0].Message
	if !strings.Contains(message, `[{"validation": "min", "value": "3"}]`) {
		t.Fatalf("expected corrected array form in message, got %q", message)
	}
	if !strings.Contains(message, `"age"`) {
		t.Fatalf("expected field id in message, got %q", message)
	}
}

func TestValidate_HeuristicUnknownIDLabel(t *testing.T) {
	result := Validate(`{"type": "number", "name": "Age", "validations": {"min": "3"}}`)

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %+v", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Message, `"unknown"`) {
		t.Fatalf("expected unknown label, got %q", result.Errors[0].Message)
	}
}

func TestValidate_HeuristicOptionalTruthyOmitsValue(t *testing.T) {
	result := Validate(`{"id": "a", "type": "text", "name": "A", "validations": {"optional": true}}`)

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %+v", result.Errors)
	}
	message := result.Errors[0].Message
	if !strings.Contains(message, `[{"validation": "optional"}]`) {
		t.Fatalf("truthy optional must omit value, got %q", message)
	}
}

func TestValidate_HeuristicUnrecognizedKeysDefer(t *testing.T) {
	result := Validate(`{"id": "a", "type": "text", "name": "A", "validations": {"bogus": "1"}}`)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	// the general validator reports the list-shape mismatch instead
	if !strings.Contains(result.Errors[0].Message, "must be a list of rules") {
		t.Fatalf("expected generic list-shape error, got %q", result.Errors[0].Message)
	}
	if !strings.Contains(result.Errors[0].Message, `[{"validation": "min", "value": "3"}]`) {
		t.Fatalf("expected corrective example, got %q", result.Errors[0].Message)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	result := Validate("{ bad")

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %+v", result.Errors)
	}
	if result.Errors[0].Line < 1 {
		t.Fatalf("expected recovered line >= 1, got %d", result.Errors[0].Line)
	}
	if result.ParsedSchemas != nil {
		t.Fatalf("parse failures must not yield partial results")
	}
}

func TestValidate_UnknownTypeListsAlternatives(t *testing.T) {
	result := Validate(`{"id": "a", "type": "bogus", "name": "A"}`)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	message := result.Errors[0].Message
	for _, expected := range []string{"text", "number", "option", "hidden", "none"} {
		if !strings.Contains(message, expected) {
			t.Fatalf("expected %q among legal values, got %q", expected, message)
		}
	}
}

func TestValidate_PartialSuccessReportsInvalid(t *testing.T) {
	source := `[
  {"id": "good", "type": "text", "name": "Good"},
  {"id": "bad", "type": "bogus", "name": "Bad"}
]`
	result := Validate(source)

	if result.Valid {
		t.Fatalf("partial success must report valid false")
	}
	if len(result.ParsedSchemas) != 1 || result.ParsedSchemas[0].ID != "good" {
		t.Fatalf("expected the accepted subset, got %+v", result.ParsedSchemas)
	}
	if len(result.Errors) == 0 {
		t.Fatalf("expected errors for the rejected candidate")
	}
	if !strings.Contains(result.Errors[0].Message, "Schema 2:") {
		t.Fatalf("expected 1-based ordinal tag, got %q", result.Errors[0].Message)
	}
}

func TestValidate_ErrorsCarryLines(t *testing.T) {
	source := `{
  "id": "age",
  "type": "number",
  "name": "Age",
  "data": {
    "placeholder": 42
  }
}`
	result := Validate(source)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %+v", result.Errors)
	}
	if result.Errors[0].Line != 6 {
		t.Fatalf("expected line 6 for placeholder, got %d", result.Errors[0].Line)
	}
}

func TestValidate_NullAttributeMessage(t *testing.T) {
	result := Validate(`{"id": "a", "type": "text", "name": null}`)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	message := result.Errors[0].Message
	if !strings.Contains(message, "cannot be null") {
		t.Fatalf("null values need the dedicated message, got %q", message)
	}
}

func TestValidate_ArrayElementErrorCarriesLine(t *testing.T) {
	source := `{
  "id": "pick",
  "type": "option",
  "name": "Pick",
  "data": {
    "values": ["ok", 7]
  }
}`
	result := Validate(source)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if result.Errors[0].Line != 6 {
		t.Fatalf("expected line 6 for the values entry, got %d", result.Errors[0].Line)
	}
}

func TestValidate_NullCandidateMessage(t *testing.T) {
	result := Validate(`[null]`)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	message := result.Errors[0].Message
	if !strings.Contains(message, "cannot be null") {
		t.Fatalf("null candidates need the dedicated message, got %q", message)
	}
}

func TestValidate_ScalarCandidateReportsReceivedType(t *testing.T) {
	result := Validate(`["just a string"]`)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	message := result.Errors[0].Message
	if !strings.Contains(message, "received string") {
		t.Fatalf("expected the actual received type, got %q", message)
	}
}

func TestValidate_HiddenDefaultEchoesValue(t *testing.T) {
	result := Validate(`{"id": "token", "type": "hidden", "name": "Token", "data": {"value": "xyz"}}`)

	if !result.Valid {
		t.Fatalf("expected valid, got %+v", result.Errors)
	}
	if got := result.ParsedSchemas[0].Data.Value; got != "xyz" {
		t.Fatalf("expected hidden value to round-trip, got %q", got)
	}
}

func TestValidate_MultipleErrorsSingleCandidate(t *testing.T) {
	source := `{
  "id": "broken",
  "type": "text",
  "name": "Broken",
  "data": {"placeholder": 5},
  "validations": [{"validation": "accept", "value": ".pdf"}]
}`
	result := Validate(source)

	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected both errors reported, got %+v", result.Errors)
	}
}
