package interpreter

import (
	"fmt"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

// binary resolves the two source operands of a ⟨var⟩ ⟨symb1⟩ ⟨symb2⟩ instruction
// and then the destination.
func (i *Interpreter) binary(in program.Instruction, accept kindSet) (*Variable, Value, Value, error) {
	a, err := i.resolve(in.Args[1], accept)
	if err != nil {
		return nil, Value{}, Value{}, err
	}
	b, err := i.resolve(in.Args[2], accept)
	if err != nil {
		return nil, Value{}, Value{}, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return nil, Value{}, Value{}, err
	}
	return dst, a, b, nil
}

// ADD, SUB, MUL, IDIV ⟨var⟩ ⟨int⟩ ⟨int⟩
func execArithmetic(i *Interpreter, in program.Instruction) (int, error) {
	dst, a, b, err := i.binary(in, acceptInt)
	if err != nil {
		return 0, err
	}

	var r int64
	switch in.Op {
	case program.OpAdd:
		r = a.I64 + b.I64
	case program.OpSub:
		r = a.I64 - b.I64
	case program.OpMul:
		r = a.I64 * b.I64
	case program.OpIDiv:
		if b.I64 == 0 {
			return 0, fault.Errorf(fault.OperandValue, "division by zero")
		}
		// integer division truncates toward zero
		r = a.I64 / b.I64
	default:
		return 0, fmt.Errorf("unsupported arithmetic op: %s", in.Op)
	}

	dst.Set(newInt(r))
	return i.next(), nil
}

// LT, GT ⟨var⟩ ⟨symb1⟩ ⟨symb2⟩, operands of one comparable kind
func execRelational(i *Interpreter, in program.Instruction) (int, error) {
	dst, a, b, err := i.binary(in, acceptComparable)
	if err != nil {
		return 0, err
	}

	cmp, err := compareValues(a, b)
	if err != nil {
		return 0, err
	}

	if in.Op == program.OpLt {
		dst.Set(newBool(cmp < 0))
	} else {
		dst.Set(newBool(cmp > 0))
	}
	return i.next(), nil
}

// EQ ⟨var⟩ ⟨symb1⟩ ⟨symb2⟩
func execEq(i *Interpreter, in program.Instruction) (int, error) {
	dst, a, b, err := i.binary(in, acceptAny)
	if err != nil {
		return 0, err
	}

	eq, err := equalValues(a, b)
	if err != nil {
		return 0, err
	}
	dst.Set(newBool(eq))
	return i.next(), nil
}

// AND, OR ⟨var⟩ ⟨bool⟩ ⟨bool⟩
func execLogical(i *Interpreter, in program.Instruction) (int, error) {
	dst, a, b, err := i.binary(in, acceptBool)
	if err != nil {
		return 0, err
	}

	if in.Op == program.OpAnd {
		dst.Set(newBool(a.Bool && b.Bool))
	} else {
		dst.Set(newBool(a.Bool || b.Bool))
	}
	return i.next(), nil
}

// NOT ⟨var⟩ ⟨bool⟩
func execNot(i *Interpreter, in program.Instruction) (int, error) {
	a, err := i.resolve(in.Args[1], acceptBool)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}
	dst.Set(newBool(!a.Bool))
	return i.next(), nil
}
