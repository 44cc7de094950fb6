package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// heuristicHit is the outcome of a recognized common mistake: a corrective
// message plus the field id used to anchor line recovery.
type heuristicHit struct {
	id      string
	message string
}

// validationsObjectMistake detects validations supplied as a single rule
// object instead of a list of rule objects, the most common malformation in
// hand-written schemas. When the object's keys overlap the rule-kind
// vocabulary the candidate is short-circuited with a corrective message
// showing the exact array form; otherwise the general validator takes over.
func validationsObjectMistake(candidate any) (heuristicHit, bool) {
	payload, ok := candidate.(map[string]any)
	if !ok {
		return heuristicHit{}, false
	}
	raw, present := payload["validations"]
	if !present || raw == nil {
		return heuristicHit{}, false
	}
	object, ok := raw.(map[string]any)
	if !ok {
		return heuristicHit{}, false
	}

	known := make([]string, 0, len(object))
	for _, kind := range schema.RuleKinds {
		if _, ok := object[kind]; ok {
			known = append(known, kind)
		}
	}
	if len(known) == 0 {
		// not a recognizable version of the mistake
		return heuristicHit{}, false
	}
	sort.Strings(known)

	id, _ := payload["id"].(string)
	label := id
	if label == "" {
		label = "unknown"
	}

	received, err := gojson.Marshal(object)
	if err != nil {
		received = []byte("{...}")
	}

	message := fmt.Sprintf(
		"Field %q has an invalid \"validations\" value: expected a list of rules but received %s. Use %s instead.",
		label, received, correctedRules(object, known),
	)
	return heuristicHit{id: id, message: message}, true
}

// correctedRules renders the array form the user should have written.
// A truthy optional entry omits its value; every other entry carries the
// string-cast value.
func correctedRules(object map[string]any, keys []string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := object[key]
		if key == schema.RuleOptional && isTruthy(value) {
			parts = append(parts, `{"validation": "optional"}`)
			continue
		}
		parts = append(parts, fmt.Sprintf(`{"validation": %q, "value": %q}`, key, castString(value)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func castString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}

// isTruthy applies loose truthiness to the optional rule's value:
// false, null, 0, and "" are falsy.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	}
	return true
}
