package patch

import (
	"fmt"

	"github.com/nepridumalnik/lazyjson/debug"
	"github.com/nepridumalnik/lazyjson/format"
	"github.com/nepridumalnik/lazyjson/native"
	"github.com/nepridumalnik/lazyjson/value"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies an RFC 6902 JSON patch, given as its JSON text, to doc and
// returns the result. doc is not modified.
func Apply(doc *value.Value, ops []byte) (*value.Value, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("applying %d patch ops to %v\n", len(p), debug.Value{Value: doc})
	}
	d, err := native.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, err
	}
	return native.Decode(out, format.JSONFormat)
}

// ApplyValue is Apply with the patch given as a document, for example one
// decoded from YAML.
func ApplyValue(doc, ops *value.Value) (*value.Value, error) {
	d, err := native.MarshalJSON(ops)
	if err != nil {
		return nil, fmt.Errorf("encoding patch: %w", err)
	}
	return Apply(doc, d)
}

// Merge applies an RFC 7396 merge patch to doc and returns the result.
// A null in the merge patch deletes the corresponding key. doc is not
// modified.
func Merge(doc *value.Value, mergePatch []byte) (*value.Value, error) {
	if debug.Patch() {
		debug.Logf("merging %s into %v\n", mergePatch, debug.Value{Value: doc})
	}
	d, err := native.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mergePatch)
	if err != nil {
		return nil, err
	}
	return native.Decode(out, format.JSONFormat)
}

// MergeDiff returns the merge patch which turns from into to. Since a
// document cannot hold null, the patch is returned as JSON text.
func MergeDiff(from, to *value.Value) ([]byte, error) {
	fd, err := native.MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	td, err := native.MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(fd, td)
}
