package schema

import "strings"

// Issue codes produced by the structural validator. The enrichment layer in
// pkg/validation maps each code to a user-facing message.
const (
	CodeInvalidType = "invalid_type"
	CodeInvalidEnum = "invalid_enum"
	CodeTooSmall    = "too_small"
	CodeRequired    = "required"
	CodeParseError  = "parse_error"
	CodeHeuristic   = "heuristic"
)

// Issue is a single structural-validation failure. Path is the dotted
// attribute path inside the candidate ("data.values", "validations");
// Field is the bare attribute name used by the line locator. Params carries
// structured metadata (expected/received types, bounds, legal enum values)
// consumed by message enrichment.
type Issue struct {
	Code    string
	Path    string
	Field   string
	Message string
	Params  map[string]any
}

// IssueAt builds an Issue for the given path, deriving Field from the last
// path segment. Array-element paths like "data.values[0]" yield the bare
// attribute name, since the source text only carries the key.
func IssueAt(path, code string, params map[string]any) Issue {
	return Issue{Code: code, Path: path, Field: lastSegment(path), Params: params}
}

func lastSegment(path string) string {
	segment := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			segment = path[i+1:]
			break
		}
	}
	if i := strings.IndexByte(segment, '['); i >= 0 {
		segment = segment[:i]
	}
	return segment
}
