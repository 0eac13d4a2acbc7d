// Package schemas holds the JSON Schemas for transcript input and result output.
package schemas

import _ "embed"

// Transcript is the JSON Schema for evaluation input
//
//go:embed transcript.schema.json
var Transcript []byte

// Result is the JSON Schema for evaluation output
//
//go:embed result.schema.json
var Result []byte
