package native

import "errors"

var (
	// ErrUnsupported is returned for Go values with no document counterpart,
	// such as nil, channels or maps with non-string keys.
	ErrUnsupported = errors.New("unsupported go value")
	ErrDecode      = errors.New("decode error")
)
