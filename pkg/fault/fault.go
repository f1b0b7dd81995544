// Package fault defines the error kinds raised while loading and executing a program.
//
// Every failure carries exactly one Kind. The engine never maps kinds to numbers;
// the exit status mapping lives in the driver configuration.
package fault

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Internal        Kind = iota // anything that is not a program error
	SourceFormat                // malformed program representation
	InputFile                   // source or input file cannot be opened
	Structural                  // unknown opcode, bad arity, duplicate order/label, unknown label, redeclaration
	OperandType                 // operand type outside the accepted set
	VariableAccess              // undeclared variable, or read of an uninitialized one
	FrameAccess                 // frame does not exist
	OperandValue                // value outside the legal domain
	StringOperation             // string index out of range
	EmptyStack                  // pop from an empty operand or call stack
	Usage                       // bad command line or configuration
)

var kindNames = map[Kind]string{
	Internal:        "internal",
	SourceFormat:    "source_format",
	InputFile:       "input_file",
	Structural:      "structural",
	OperandType:     "operand_type",
	VariableAccess:  "variable_access",
	FrameAccess:     "frame_access",
	OperandValue:    "operand_value",
	StringOperation: "string_operation",
	EmptyStack:      "empty_stack",
	Usage:           "usage",
}

// String returns the snake_case name used in configuration files
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every kind in declaration order
func Kinds() []Kind {
	return []Kind{
		Internal, SourceFormat, InputFile, Structural, OperandType,
		VariableAccess, FrameAccess, OperandValue, StringOperation, EmptyStack, Usage,
	}
}

// ParseKind maps a configuration name back to its Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return Internal, false
}

// Error is a program failure of a specific kind.
// Order and Opcode identify the failing instruction when it is known (Order > 0).
type Error struct {
	Kind   Kind
	Msg    string
	Order  int
	Opcode string
}

func (e *Error) Error() string {
	if e.Order > 0 {
		return fmt.Sprintf("%s error at instruction %d (%s): %s", e.Kind, e.Order, e.Opcode, e.Msg)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

// Errorf creates a new Error of the given kind
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or Internal when err is not a fault
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

// At annotates err with the failing instruction unless it already carries one
func At(err error, order int, opcode string) error {
	var fe *Error
	if errors.As(err, &fe) && fe.Order == 0 {
		fe.Order = order
		fe.Opcode = opcode
	}
	return err
}
