// Package schema defines the MIP-003 job input schema data model: field
// descriptions, validation rules, the field-type enumeration, and the
// issue/result types shared by the validation pipeline. It also hosts the
// input normalizer that reduces the three accepted top-level shapes to a
// uniform candidate list.
package schema
