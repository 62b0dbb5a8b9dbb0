package native

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/nepridumalnik/lazyjson/format"
	"github.com/nepridumalnik/lazyjson/value"
)

// Decode reads a single document from data in the given format.
func Decode(data []byte, f format.Format) (*value.Value, error) {
	switch f {
	case format.JSONFormat:
		return decodeJSON(data)
	case format.YAMLFormat:
		return decodeYAML(data)
	case format.IRFormat:
		v := &value.Value{}
		if err := json.Unmarshal(data, v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

func decodeJSON(data []byte) (*value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after json document", ErrDecode)
	}
	return FromAny(x)
}

func decodeYAML(data []byte) (*value.Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(data, &x, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromAny(x)
}
