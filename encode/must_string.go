package encode

import "github.com/nepridumalnik/lazyjson/value"

func MustString(v *value.Value, opts ...EncodeOption) string {
	s, err := ToString(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
