package program

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
)

// ArgType is the element type tag carried by every operand
type ArgType uint8

const (
	ArgInt ArgType = iota
	ArgBool
	ArgString
	ArgNil
	ArgLabel
	ArgTypeName
	ArgVar
)

var argTypeNames = [...]string{
	ArgInt:      "int",
	ArgBool:     "bool",
	ArgString:   "string",
	ArgNil:      "nil",
	ArgLabel:    "label",
	ArgTypeName: "type",
	ArgVar:      "var",
}

func (t ArgType) String() string {
	if int(t) < len(argTypeNames) {
		return argTypeNames[t]
	}
	return "?"
}

// IsLiteral reports whether the tag denotes a constant value
func (t ArgType) IsLiteral() bool {
	return t <= ArgNil
}

// ParseArgType maps a type tag like "int" or "var" to its ArgType
func ParseArgType(s string) (ArgType, bool) {
	for i, name := range argTypeNames {
		if name == s {
			return ArgType(i), true
		}
	}
	return 0, false
}

// Qualifier selects the frame a variable reference targets
type Qualifier uint8

const (
	GF Qualifier = iota // global frame
	LF                  // top of the local-frame stack
	TF                  // temporary frame
)

func (q Qualifier) String() string {
	switch q {
	case GF:
		return "GF"
	case LF:
		return "LF"
	case TF:
		return "TF"
	}
	return "?"
}

// ParseQualifier maps "GF", "LF" or "TF" to a Qualifier
func ParseQualifier(s string) (Qualifier, bool) {
	switch s {
	case "GF":
		return GF, true
	case "LF":
		return LF, true
	case "TF":
		return TF, true
	}
	return 0, false
}

// Symbol is an immutable operand: a literal, a variable reference, a label or a type name
type Symbol struct {
	Type  ArgType
	Frame Qualifier // ArgVar only
	Name  string    // variable, label or type name
	Int   int64
	Bool  bool
	Str   string // decoded string literal
}

func Var(q Qualifier, name string) Symbol { return Symbol{Type: ArgVar, Frame: q, Name: name} }
func IntLit(n int64) Symbol               { return Symbol{Type: ArgInt, Int: n} }
func BoolLit(b bool) Symbol               { return Symbol{Type: ArgBool, Bool: b} }
func StringLit(s string) Symbol           { return Symbol{Type: ArgString, Str: s} }
func NilLit() Symbol                      { return Symbol{Type: ArgNil} }
func Label(name string) Symbol            { return Symbol{Type: ArgLabel, Name: name} }
func TypeName(name string) Symbol         { return Symbol{Type: ArgTypeName, Name: name} }

// IsVar reports whether the symbol references a variable
func (s Symbol) IsVar() bool {
	return s.Type == ArgVar
}

// String renders the symbol in its source form
func (s Symbol) String() string {
	switch s.Type {
	case ArgVar:
		return s.Frame.String() + "@" + s.Name
	case ArgInt:
		return "int@" + strconv.FormatInt(s.Int, 10)
	case ArgBool:
		return "bool@" + strconv.FormatBool(s.Bool)
	case ArgString:
		return "string@" + s.Str
	case ArgNil:
		return "nil@nil"
	case ArgLabel, ArgTypeName:
		return s.Name
	}
	return "?"
}

var nameRegex = regexp.MustCompile(`^[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*$`)

// ValidName reports whether s is a legal variable or label name
func ValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// ParseOperand builds a Symbol from a type tag and its textual value,
// e.g. ("int", "42"), ("var", "GF@x") or ("string", "a\032b").
func ParseOperand(tag, text string) (Symbol, error) {
	typ, ok := ParseArgType(tag)
	if !ok {
		return Symbol{}, fault.Errorf(fault.Structural, "unknown operand type %q", tag)
	}

	switch typ {
	case ArgInt:
		n, err := parseIntLiteral(text)
		if err != nil {
			return Symbol{}, fault.Errorf(fault.Structural, "invalid int literal %q", text)
		}
		return IntLit(n), nil

	case ArgBool:
		switch text {
		case "true":
			return BoolLit(true), nil
		case "false":
			return BoolLit(false), nil
		}
		return Symbol{}, fault.Errorf(fault.Structural, "invalid bool literal %q", text)

	case ArgString:
		if !ValidEscapes(text) {
			return Symbol{}, fault.Errorf(fault.Structural, "invalid escape sequence in string literal %q", text)
		}
		return StringLit(DecodeEscapes(text)), nil

	case ArgNil:
		if text != "nil" {
			return Symbol{}, fault.Errorf(fault.Structural, "invalid nil literal %q", text)
		}
		return NilLit(), nil

	case ArgLabel:
		if !ValidName(text) {
			return Symbol{}, fault.Errorf(fault.Structural, "invalid label name %q", text)
		}
		return Label(text), nil

	case ArgTypeName:
		switch text {
		case "int", "bool", "string":
			return TypeName(text), nil
		}
		return Symbol{}, fault.Errorf(fault.Structural, "invalid type name %q", text)

	case ArgVar:
		frame, name, found := strings.Cut(text, "@")
		q, ok := ParseQualifier(frame)
		if !found || !ok {
			return Symbol{}, fault.Errorf(fault.Structural, "invalid frame in variable %q", text)
		}
		if !ValidName(name) {
			return Symbol{}, fault.Errorf(fault.Structural, "invalid variable name %q", text)
		}
		return Var(q, name), nil
	}

	return Symbol{}, fmt.Errorf("unhandled operand type %s", typ)
}

// parseIntLiteral accepts an optional sign followed by a decimal, 0x hex or
// 0o/leading-zero octal number. Digit separators and 0b binary are Go-only syntax.
func parseIntLiteral(text string) (int64, error) {
	digits := text
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if strings.Contains(digits, "_") || strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(text, 0, 64)
}
