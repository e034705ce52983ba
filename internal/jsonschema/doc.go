// Package jsonschema provides the JSON-schema-like structure used to describe
// tool parameters and structured response schemas. It models the subset of
// JSON Schema that function-calling wire formats accept; it performs no
// validation.
package jsonschema
