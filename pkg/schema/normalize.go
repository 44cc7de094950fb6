package schema

// WrapperKey is the MIP-003 envelope attribute holding the field list:
// {"input_data": [ ...field descriptions... ]}.
const WrapperKey = "input_data"

// Candidates reduces a parsed JSON document to a uniform candidate list.
// Three shapes are accepted: an object wrapping an array under WrapperKey,
// a bare array, and a single bare object (wrapped in a one-element list).
// Anything else is returned as a single candidate and left for the
// structural validator to reject.
func Candidates(doc any) []any {
	if payload, ok := doc.(map[string]any); ok {
		if wrapped, ok := payload[WrapperKey].([]any); ok {
			return wrapped
		}
	}
	if list, ok := doc.([]any); ok {
		return list
	}
	return []any{doc}
}

// NormalizeCandidate applies shape-preserving cleanups to one candidate
// before validation. An explicitly null "validations" attribute is deleted:
// MIP-003 treats null and absent as identical, and downstream validators
// must not distinguish them.
func NormalizeCandidate(candidate any) any {
	payload, ok := candidate.(map[string]any)
	if !ok {
		return candidate
	}
	if value, present := payload["validations"]; present && value == nil {
		delete(payload, "validations")
	}
	return payload
}
