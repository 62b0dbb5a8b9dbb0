package value

import (
	"encoding/json"
	"fmt"
)

// irBase is the structural JSON form of a Value. It spells out the kind
// of every node so that a tree can be inspected, stored and reloaded
// exactly. It is not the rendered text form, see package encode for that.
type irBase struct {
	Kind   Kind              `json:"kind"`
	Int    *int64            `json:"int,omitempty"`
	Float  *float64          `json:"float,omitempty"`
	Bool   *bool             `json:"bool,omitempty"`
	String *string           `json:"string,omitempty"`
	Fields map[string]*Value `json:"fields,omitempty"`
	Values []*Value          `json:"values,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	base := &irBase{Kind: v.Kind()}
	switch v.Kind() {
	case IntKind:
		base.Int = &v.i
	case FloatKind:
		base.Float = &v.f
	case BoolKind:
		base.Bool = &v.b
	case StringKind:
		base.String = &v.s
	case ObjectKind:
		base.Fields = v.obj.fields
	case ArrayKind:
		base.Values = v.arr.values
	}
	return json.Marshal(base)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	var res Value
	switch tmp.Kind {
	case EmptyKind:
	case IntKind:
		if tmp.Int == nil {
			return fmt.Errorf("malformed %s value: missing int", tmp.Kind)
		}
		Set(&res, *tmp.Int)
	case FloatKind:
		if tmp.Float == nil {
			return fmt.Errorf("malformed %s value: missing float", tmp.Kind)
		}
		Set(&res, *tmp.Float)
	case BoolKind:
		if tmp.Bool == nil {
			return fmt.Errorf("malformed %s value: missing bool", tmp.Kind)
		}
		Set(&res, *tmp.Bool)
	case StringKind:
		if tmp.String == nil {
			return fmt.Errorf("malformed %s value: missing string", tmp.Kind)
		}
		Set(&res, *tmp.String)
	case ObjectKind:
		obj := res.SetObject()
		for k, fv := range tmp.Fields {
			if fv == nil {
				return fmt.Errorf("malformed object field %q: null", k)
			}
			*obj.At(k) = *fv
		}
	case ArrayKind:
		arr := res.SetArray()
		for i, av := range tmp.Values {
			if av == nil {
				return fmt.Errorf("malformed array element %d: null", i)
			}
			*arr.AppendNew() = *av
		}
	default:
		return fmt.Errorf("malformed value: kind %s", tmp.Kind)
	}
	*v = res
	return nil
}
