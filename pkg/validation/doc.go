// Package validation exposes the MIP-003 job input schema entry point:
// Validate parses a JSON source text, normalizes it into candidate field
// descriptions, screens each candidate with pre-validation heuristics, runs
// the field-type contracts, and enriches every failure into a one-line
// message with a best-effort source line number.
package validation
