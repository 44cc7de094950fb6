package schema

import "testing"

func TestIssueAt_FieldFromLastSegment(t *testing.T) {
	cases := []struct {
		path  string
		field string
	}{
		{"", ""},
		{"type", "type"},
		{"data.placeholder", "placeholder"},
		{"data.values[0]", "values"},
		{"validations[2].value", "value"},
		{"validations[1]", "validations"},
	}
	for _, tc := range cases {
		if got := IssueAt(tc.path, CodeInvalidType, nil).Field; got != tc.field {
			t.Fatalf("path %q: expected field %q, got %q", tc.path, tc.field, got)
		}
	}
}
