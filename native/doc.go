// Package native bridges documents and ordinary Go values.
//
// FromAny and ToAny convert between a value.Value tree and the
// map[string]any / []any shapes produced by encoding/json and YAML decoders.
// Decode reads JSON, YAML or the structural IR dump directly.
//
// Documents have no null, so a null in the input is rejected with
// ErrUnsupported.
package native
