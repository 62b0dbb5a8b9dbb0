// Package patch applies JSON patches (RFC 6902) and merge patches
// (RFC 7396) to documents using github.com/evanphx/json-patch.
//
// Documents are converted to strict JSON with native.MarshalJSON, patched
// and decoded back, so kinds survive the round trip: integral floats stay
// floats.
package patch
