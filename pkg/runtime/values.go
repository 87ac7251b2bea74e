package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. A nil Value denotes
// the absent (declared but uninitialized) slot, which is distinct from
// NilValue.
type Value interface {
	Kind() Kind
}

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// ToString renders a value in its canonical textual form: `nil`, `true` and
// `false`, strings verbatim, and numbers in plain decimal with no exponent
// and no trailing fraction for whole values.
func ToString(val Value) string {
	switch v := val.(type) {
	case NilValue:
		return "nil"
	case BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case NumberValue:
		return strconv.FormatFloat(v.Val, 'f', -1, 64)
	case StringValue:
		return v.Val
	default:
		return fmt.Sprintf("[%s]", val.Kind())
	}
}
