package interpreter

import (
	"strconv"
	"strings"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

type ValueKind int

const (
	KindNil ValueKind = iota
	KindInt
	KindBool
	KindString
)

// String returns the name TYPE reports for the kind
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "nil"
	}
}

// Value represents a dynamically-typed value in the interpreter.
type Value struct {
	Kind ValueKind
	I64  int64
	Bool bool
	Str  string
}

// String renders the value the way WRITE prints it.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// Describe renders the value with its type tag, e.g. int@5
func (v Value) Describe() string {
	if v.Kind == KindNil {
		return "nil@nil"
	}
	return v.Kind.String() + "@" + v.String()
}

// NewInt creates a new integer Value.
func newInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// NewBool creates a new boolean Value.
func newBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NewString creates a new string Value.
func newString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// nilValue is the single nil@nil value.
var nilValue = Value{Kind: KindNil}

// literalValue converts a literal operand, ok is false for labels, type names and variables
func literalValue(sym program.Symbol) (Value, bool) {
	if !sym.Type.IsLiteral() {
		return Value{}, false
	}
	switch sym.Type {
	case program.ArgInt:
		return newInt(sym.Int), true
	case program.ArgBool:
		return newBool(sym.Bool), true
	case program.ArgString:
		return newString(sym.Str), true
	case program.ArgNil:
		return nilValue, true
	}
	return Value{}, false
}

// kindSet is the set of kinds an operand position accepts
type kindSet uint8

const (
	acceptNil kindSet = 1 << iota
	acceptInt
	acceptBool
	acceptString

	acceptComparable = acceptInt | acceptBool | acceptString
	acceptAny        = acceptComparable | acceptNil
)

func kindsOf(k ValueKind) kindSet {
	return 1 << kindSet(k)
}

func (s kindSet) has(k ValueKind) bool {
	return s&kindsOf(k) != 0
}

func (s kindSet) String() string {
	var names []string
	for _, k := range []ValueKind{KindInt, KindBool, KindString, KindNil} {
		if s.has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "|")
}

// equalValues implements EQ: same kinds compare by value, nil equals only nil
func equalValues(a, b Value) (bool, error) {
	if a.Kind == KindNil || b.Kind == KindNil {
		return a.Kind == b.Kind, nil
	}
	if a.Kind != b.Kind {
		return false, fault.Errorf(fault.OperandType, "cannot compare %s with %s", a.Kind, b.Kind)
	}
	switch a.Kind {
	case KindInt:
		return a.I64 == b.I64, nil
	case KindBool:
		return a.Bool == b.Bool, nil
	default:
		return a.Str == b.Str, nil
	}
}

// compareValues implements LT/GT ordering for two values of the same non-nil kind.
// Strings are ordered case-insensitively, false orders before true.
func compareValues(a, b Value) (int, error) {
	if a.Kind != b.Kind {
		return 0, fault.Errorf(fault.OperandType, "cannot order %s against %s", a.Kind, b.Kind)
	}
	switch a.Kind {
	case KindInt:
		switch {
		case a.I64 < b.I64:
			return -1, nil
		case a.I64 > b.I64:
			return 1, nil
		}
		return 0, nil
	case KindBool:
		switch {
		case !a.Bool && b.Bool:
			return -1, nil
		case a.Bool && !b.Bool:
			return 1, nil
		}
		return 0, nil
	case KindString:
		return strings.Compare(strings.ToLower(a.Str), strings.ToLower(b.Str)), nil
	}
	return 0, fault.Errorf(fault.OperandType, "nil is not ordered")
}
