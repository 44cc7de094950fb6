// Package fieldtypes holds the per-type contracts for the 22 MIP-003 field
// types: the legal shape of a field's data payload, the legal validation
// rule kinds and format values, and the derivation of a runtime value
// validator and a default value from an accepted field description. The
// contract table is deliberately enumerative; each type's contract is
// independent and unified only through the "type" discriminant.
package fieldtypes
