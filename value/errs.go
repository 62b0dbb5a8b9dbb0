package value

import "errors"

var (
	// ErrInvalidAlternative is returned when a value of a type outside the
	// closed alternative set is assigned through the dynamic API.
	ErrInvalidAlternative = errors.New("invalid alternative")
	// ErrTypeMismatch is returned when reading an alternative that is not
	// active.
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyContainer  = errors.New("empty container")
	// ErrInvalidState is returned for operations which have no meaning on an
	// empty value, such as rendering it.
	ErrInvalidState = errors.New("invalid state")
)
