package fieldtypes

import (
	"fmt"

	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// Check validates one normalized candidate against the contract selected by
// its "type" discriminant. Every structural mismatch is captured as a
// distinct issue; an empty result means the candidate matches its contract.
func Check(candidate any) []schema.Issue {
	payload, ok := candidate.(map[string]any)
	if !ok {
		// the candidate is present, it just has the wrong shape; report its
		// actual JSON type so null keeps its dedicated message downstream
		return []schema.Issue{schema.IssueAt("", schema.CodeInvalidType, map[string]any{
			"expected": "object",
			"received": jsonTypeName(candidate, false),
		})}
	}

	var issues []schema.Issue
	issues = append(issues, checkIdentifier(payload, "id")...)
	issues = append(issues, checkIdentifier(payload, "name")...)

	contract, enumIssue := resolveContract(payload)
	if enumIssue != nil {
		return append(issues, *enumIssue)
	}

	issues = append(issues, checkData(contract, payload)...)
	issues = append(issues, checkValidations(contract, payload)...)
	return issues
}

// resolveContract performs the union dispatch: an exact match on the type
// discriminant selects the one contract the candidate must satisfy.
func resolveContract(payload map[string]any) (Contract, *schema.Issue) {
	raw, present := payload["type"]
	name, isString := raw.(string)
	if present && isString {
		if contract, ok := Lookup(schema.FieldType(name)); ok {
			return contract, nil
		}
	}
	issue := schema.IssueAt("type", schema.CodeInvalidEnum, map[string]any{
		"legal":    TypeNames(),
		"received": jsonTypeValue(raw, !present),
	})
	return Contract{}, &issue
}

func checkIdentifier(payload map[string]any, key string) []schema.Issue {
	raw, present := payload[key]
	if !present || raw == nil {
		return []schema.Issue{schema.IssueAt(key, schema.CodeInvalidType, map[string]any{
			"expected": "string",
			"received": jsonTypeName(raw, !present),
		})}
	}
	value, ok := raw.(string)
	if !ok {
		return []schema.Issue{schema.IssueAt(key, schema.CodeInvalidType, map[string]any{
			"expected": "string",
			"received": jsonTypeName(raw, false),
		})}
	}
	if value == "" {
		return []schema.Issue{schema.IssueAt(key, schema.CodeTooSmall, map[string]any{
			"minimum": 1,
			"kind":    "string",
		})}
	}
	return nil
}

func checkData(contract Contract, payload map[string]any) []schema.Issue {
	raw, present := payload["data"]
	if !present || raw == nil {
		if !contract.RequiresData() {
			return nil
		}
		return []schema.Issue{schema.IssueAt("data", schema.CodeRequired, nil)}
	}
	data, ok := raw.(map[string]any)
	if !ok {
		return []schema.Issue{schema.IssueAt("data", schema.CodeInvalidType, map[string]any{
			"expected": "object",
			"received": jsonTypeName(raw, false),
		})}
	}

	var issues []schema.Issue
	for attr, kind := range contract.RequiredData {
		value, present := data[attr]
		if !present || value == nil {
			issues = append(issues, schema.IssueAt("data."+attr, schema.CodeRequired, nil))
			continue
		}
		issues = append(issues, checkAttr("data."+attr, value, kind)...)
	}
	for attr, kind := range contract.OptionalData {
		value, present := data[attr]
		if !present || value == nil {
			continue
		}
		issues = append(issues, checkAttr("data."+attr, value, kind)...)
	}
	return issues
}

func checkAttr(path string, value any, kind attrKind) []schema.Issue {
	mismatch := func(expected string) []schema.Issue {
		return []schema.Issue{schema.IssueAt(path, schema.CodeInvalidType, map[string]any{
			"expected": expected,
			"received": jsonTypeName(value, false),
		})}
	}

	switch kind {
	case attrString:
		if _, ok := value.(string); !ok {
			return mismatch("string")
		}
	case attrBool:
		if _, ok := value.(bool); !ok {
			return mismatch("boolean")
		}
	case attrNumber:
		if !isJSONNumber(value) {
			return mismatch("number")
		}
	case attrStringOrNumber:
		if _, ok := value.(string); !ok && !isJSONNumber(value) {
			return mismatch("string or number")
		}
	case attrStringList:
		list, ok := value.([]any)
		if !ok {
			return mismatch("array")
		}
		if len(list) == 0 {
			return []schema.Issue{schema.IssueAt(path, schema.CodeTooSmall, map[string]any{
				"minimum": 1,
				"kind":    "array",
			})}
		}
		var issues []schema.Issue
		for i, item := range list {
			if _, ok := item.(string); !ok {
				issues = append(issues, schema.IssueAt(fmt.Sprintf("%s[%d]", path, i), schema.CodeInvalidType, map[string]any{
					"expected": "string",
					"received": jsonTypeName(item, false),
				}))
			}
		}
		return issues
	case attrNumberList:
		list, ok := value.([]any)
		if !ok {
			return mismatch("array")
		}
		var issues []schema.Issue
		for i, item := range list {
			if !isJSONNumber(item) {
				issues = append(issues, schema.IssueAt(fmt.Sprintf("%s[%d]", path, i), schema.CodeInvalidType, map[string]any{
					"expected": "number",
					"received": jsonTypeName(item, false),
				}))
			}
		}
		return issues
	case attrAny:
	}
	return nil
}

func checkValidations(contract Contract, payload map[string]any) []schema.Issue {
	raw, present := payload["validations"]
	if !present {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		issue := schema.IssueAt("validations", schema.CodeInvalidType, map[string]any{
			"expected": "array",
			"received": jsonTypeName(raw, false),
		})
		if _, isObject := raw.(map[string]any); isObject {
			issue.Params["receivedValue"] = raw
		}
		return []schema.Issue{issue}
	}

	var issues []schema.Issue
	for i, item := range list {
		issues = append(issues, checkRule(contract, fmt.Sprintf("validations[%d]", i), item)...)
	}
	return issues
}

func checkRule(contract Contract, path string, item any) []schema.Issue {
	rule, ok := item.(map[string]any)
	if !ok {
		return []schema.Issue{schema.IssueAt(path, schema.CodeInvalidType, map[string]any{
			"expected": "object",
			"received": jsonTypeName(item, false),
		})}
	}

	kindRaw, present := rule["validation"]
	kind, isString := kindRaw.(string)
	if !present || !isString || !contract.AllowsRule(kind) {
		return []schema.Issue{schema.IssueAt(path+".validation", schema.CodeInvalidEnum, map[string]any{
			"legal":    contract.Rules,
			"received": jsonTypeValue(kindRaw, !present),
		})}
	}

	value, hasValue := rule["value"]
	switch kind {
	case schema.RuleOptional:
		// value is irrelevant for optional rules; tolerate string or bool.
		if hasValue && value != nil {
			if _, ok := value.(string); !ok {
				if _, ok := value.(bool); !ok {
					return []schema.Issue{schema.IssueAt(path+".value", schema.CodeInvalidType, map[string]any{
						"expected": "string or boolean",
						"received": jsonTypeName(value, false),
					})}
				}
			}
		}
	case schema.RuleFormat:
		text, ok := value.(string)
		if !hasValue || !ok {
			return []schema.Issue{schema.IssueAt(path+".value", schema.CodeInvalidType, map[string]any{
				"expected": "string",
				"received": jsonTypeName(value, !hasValue),
			})}
		}
		if !contract.AllowsFormat(text) {
			return []schema.Issue{schema.IssueAt(path+".value", schema.CodeInvalidEnum, map[string]any{
				"legal":    contract.Formats,
				"received": jsonTypeValue(value, false),
			})}
		}
	default: // min, max, accept
		if _, ok := value.(string); !hasValue || !ok {
			return []schema.Issue{schema.IssueAt(path+".value", schema.CodeInvalidType, map[string]any{
				"expected": "string",
				"received": jsonTypeName(value, !hasValue),
			})}
		}
	}
	return nil
}

func isJSONNumber(value any) bool {
	switch value.(type) {
	case float64, float32, int, int64, int32, uint, uint64, uint32:
		return true
	}
	return false
}

// jsonTypeName reports the JSON-level type of a decoded value, using the
// vocabulary the error messages are written in.
func jsonTypeName(value any, absent bool) string {
	if absent {
		return "undefined"
	}
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if isJSONNumber(value) {
			return "number"
		}
		return fmt.Sprintf("%T", value)
	}
}

// jsonTypeValue renders the received value for enum mismatch messages:
// literal strings are quoted, everything else falls back to its type name.
func jsonTypeValue(value any, absent bool) string {
	if absent {
		return "undefined"
	}
	if text, ok := value.(string); ok {
		return fmt.Sprintf("%q", text)
	}
	return jsonTypeName(value, false)
}
