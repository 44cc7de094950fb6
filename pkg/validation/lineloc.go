package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

var positionPattern = regexp.MustCompile(`at position (\d+)`)

// locateKey returns the 1-based source line of the first literal occurrence
// of the quoted key, optionally anchored after the field's "id" member so
// same-named attributes of earlier fields are skipped. This is a textual
// heuristic, not a structural JSON-location pass: duplicate key names and
// minified single-line documents can mislocate. Returns 0 when the key is
// not found.
func locateKey(source, key, anchorID string) int {
	needle := quoteJSON(key)
	start := 0
	if anchorID != "" {
		// anchor on the full "id": "<value>" member, not the bare value,
		// so another field's name or values entry cannot anchor too early
		anchor := regexp.MustCompile(`"id"\s*:\s*` + regexp.QuoteMeta(quoteJSON(anchorID)))
		if loc := anchor.FindStringIndex(source); loc != nil {
			start = loc[0]
		}
	}
	idx := strings.Index(source[start:], needle)
	if idx < 0 && start > 0 {
		start = 0
		idx = strings.Index(source, needle)
	}
	if idx < 0 {
		return 0
	}
	return strings.Count(source[:start+idx], "\n") + 1
}

func quoteJSON(text string) string {
	raw, err := gojson.Marshal(text)
	if err != nil {
		return strconv.Quote(text)
	}
	return string(raw)
}

// parseError maps a JSON parse failure to a single fatal error. The line is
// recovered from the parser's byte offset when one is exposed, falling back
// to the "at position N" message pattern.
func parseError(source string, err error) Error {
	out := Error{Message: fmt.Sprintf("Invalid JSON: %s", err)}

	offset := int64(-1)
	var syntaxErr *gojson.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	} else if match := positionPattern.FindStringSubmatch(err.Error()); match != nil {
		if parsed, convErr := strconv.ParseInt(match[1], 10, 64); convErr == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		return out
	}
	if offset > int64(len(source)) {
		offset = int64(len(source))
	}
	out.Line = strings.Count(source[:offset], "\n") + 1
	return out
}
