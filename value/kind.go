package value

import "fmt"

type Kind int

const (
	EmptyKind Kind = iota
	IntKind
	FloatKind
	BoolKind
	StringKind
	ObjectKind
	ArrayKind
)

var kindNames = map[Kind]string{
	EmptyKind:  "Empty",
	IntKind:    "Int",
	FloatKind:  "Float",
	BoolKind:   "Bool",
	StringKind: "String",
	ObjectKind: "Object",
	ArrayKind:  "Array",
}

var kindsByName = map[string]Kind{}

func init() {
	for k, name := range kindNames {
		kindsByName[name] = k
	}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := kindsByName[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Kinds returns every kind, EmptyKind included.
func Kinds() []Kind {
	return []Kind{
		EmptyKind,
		IntKind,
		FloatKind,
		BoolKind,
		StringKind,
		ObjectKind,
		ArrayKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
