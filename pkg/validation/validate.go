package validation

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/masumi-network/schema-validator-componenet/pkg/fieldtypes"
	"github.com/masumi-network/schema-validator-componenet/pkg/schema"
)

// Error is one user-facing validation failure. Line is 1-based and omitted
// (zero) when the locator could not recover a position.
type Error struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// Result captures a whole validation run. Valid is true iff Errors is empty
// and every input candidate parsed; on partial success ParsedSchemas still
// holds the accepted subset for caller convenience.
type Result struct {
	Valid         bool                      `json:"valid"`
	Errors        []Error                   `json:"errors"`
	ParsedSchemas []schema.FieldDescription `json:"parsedSchemas,omitempty"`
}

// Validate checks a JSON source text against the MIP-003 job input schema
// contract. It is a pure function: all failures are collected into the
// result, never raised, and concurrent calls are safe.
func Validate(source string) Result {
	var doc any
	if err := gojson.Unmarshal([]byte(source), &doc); err != nil {
		return Result{Valid: false, Errors: []Error{parseError(source, err)}}
	}

	candidates := schema.Candidates(doc)
	errs := []Error{}
	var parsed []schema.FieldDescription

	for i, candidate := range candidates {
		candidate = schema.NormalizeCandidate(candidate)
		ordinal := i + 1

		if hit, ok := validationsObjectMistake(candidate); ok {
			errs = append(errs, Error{
				Message: fmt.Sprintf("Schema %d: %s", ordinal, hit.message),
				Line:    locateKey(source, "validations", hit.id),
			})
			continue
		}

		issues := fieldtypes.Check(candidate)
		if len(issues) > 0 {
			id := candidateID(candidate)
			for _, issue := range issues {
				errs = append(errs, enrich(source, ordinal, id, issue))
			}
			continue
		}

		fd, err := decodeField(candidate)
		if err != nil {
			errs = append(errs, Error{Message: fmt.Sprintf("Schema %d: %s", ordinal, err)})
			continue
		}
		parsed = append(parsed, fd)
	}

	// guard against silent contract mismatches: never report success while
	// candidates went missing
	if len(parsed) < len(candidates) && len(errs) == 0 {
		errs = append(errs, Error{Message: "Some schemas could not be validated."})
	}

	result := Result{
		Valid:  len(errs) == 0 && len(parsed) == len(candidates),
		Errors: errs,
	}
	if len(parsed) > 0 {
		result.ParsedSchemas = parsed
	}
	return result
}

// decodeField converts a structurally accepted candidate into its typed
// form by round-tripping through JSON.
func decodeField(candidate any) (schema.FieldDescription, error) {
	raw, err := gojson.Marshal(candidate)
	if err != nil {
		return schema.FieldDescription{}, fmt.Errorf("could not encode schema: %w", err)
	}
	var fd schema.FieldDescription
	if err := gojson.Unmarshal(raw, &fd); err != nil {
		return schema.FieldDescription{}, fmt.Errorf("could not decode schema: %w", err)
	}
	return fd, nil
}

func candidateID(candidate any) string {
	payload, ok := candidate.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := payload["id"].(string)
	return id
}
