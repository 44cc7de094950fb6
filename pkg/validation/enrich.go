package validation

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// enrich converts one structural issue into a user-facing error tagged with
// the candidate's 1-based ordinal and, where recoverable, a source line.
func enrich(source string, ordinal int, id string, issue schema.Issue) Error {
	line := 0
	if issue.Field != "" {
		line = locateKey(source, issue.Field, id)
	}
	return Error{
		Message: fmt.Sprintf("Schema %d: %s", ordinal, messageFor(issue)),
		Line:    line,
	}
}

func messageFor(issue schema.Issue) string {
	switch issue.Code {
	case schema.CodeInvalidType:
		return invalidTypeMessage(issue)
	case schema.CodeRequired:
		return fmt.Sprintf("Field %q is required.", issuePath(issue))
	case schema.CodeInvalidEnum:
		legal, _ := issue.Params["legal"].([]string)
		received := paramString(issue, "received")
		return fmt.Sprintf("Field %q has invalid value %s. Expected one of: %s.",
			issuePath(issue), received, strings.Join(legal, ", "))
	case schema.CodeTooSmall:
		if paramString(issue, "kind") == "array" {
			return fmt.Sprintf("Field %q array must have at least %v element(s).",
				issuePath(issue), issue.Params["minimum"])
		}
		return fmt.Sprintf("Field %q must be at least %v character(s) long.",
			issuePath(issue), issue.Params["minimum"])
	}
	if issue.Message != "" {
		return issue.Message
	}
	// unrecognized failure kind: surface the raw code rather than dropping
	// the error
	return fmt.Sprintf("Field %q failed validation (%s).", issuePath(issue), issue.Code)
}

func invalidTypeMessage(issue schema.Issue) string {
	expected := paramString(issue, "expected")
	received := paramString(issue, "received")

	if received == "null" {
		return fmt.Sprintf("Field %q cannot be null: use an empty list or omit the field.", issuePath(issue))
	}
	if issue.Field == "validations" && expected == "array" && received == "object" {
		serialized := "{...}"
		if raw, err := gojson.Marshal(issue.Params["receivedValue"]); err == nil {
			serialized = string(raw)
		}
		return fmt.Sprintf(
			"Field \"validations\" must be a list of rules, received %s. Example: [{\"validation\": \"min\", \"value\": \"3\"}].",
			serialized,
		)
	}
	return fmt.Sprintf("Field %q has invalid type. Expected %s, received %s.",
		issuePath(issue), expected, received)
}

func issuePath(issue schema.Issue) string {
	if issue.Path != "" {
		return issue.Path
	}
	return "schema"
}

func paramString(issue schema.Issue, key string) string {
	if issue.Params == nil {
		return ""
	}
	text, _ := issue.Params[key].(string)
	return text
}
