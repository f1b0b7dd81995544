package interpreter

import (
	"fmt"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

// LABEL is resolved before the run, executing it does nothing
func execLabel(i *Interpreter, _ program.Instruction) (int, error) {
	return i.next(), nil
}

// JUMP ⟨label⟩
func execJump(i *Interpreter, in program.Instruction) (int, error) {
	return i.jumpTarget(in.Args[0])
}

// JUMPIFEQ, JUMPIFNEQ ⟨label⟩ ⟨symb1⟩ ⟨symb2⟩
func execJumpIf(i *Interpreter, in program.Instruction) (int, error) {
	dest, err := i.jumpTarget(in.Args[0])
	if err != nil {
		return 0, err
	}
	a, err := i.resolve(in.Args[1], acceptAny)
	if err != nil {
		return 0, err
	}
	b, err := i.resolve(in.Args[2], acceptAny)
	if err != nil {
		return 0, err
	}

	eq, err := equalValues(a, b)
	if err != nil {
		return 0, err
	}
	if eq == (in.Op == program.OpJumpIfEq) {
		return dest, nil
	}
	return i.next(), nil
}

// CALL ⟨label⟩ pushes the return address and jumps
func execCall(i *Interpreter, in program.Instruction) (int, error) {
	dest, err := i.jumpTarget(in.Args[0])
	if err != nil {
		return 0, err
	}
	i.calls.Push(i.next())
	return dest, nil
}

func execReturn(i *Interpreter, _ program.Instruction) (int, error) {
	ret, ok := i.calls.Pop()
	if !ok {
		return 0, fault.Errorf(fault.EmptyStack, "call stack is empty")
	}
	return ret, nil
}

// EXIT ⟨int⟩ stops the run with a status in [0, 9]
func execExit(i *Interpreter, in program.Instruction) (int, error) {
	code, err := i.resolve(in.Args[0], acceptInt)
	if err != nil {
		return 0, err
	}
	if code.I64 < 0 || code.I64 > 9 {
		return 0, fault.Errorf(fault.OperandValue, "exit code %d outside [0, 9]", code.I64)
	}

	i.exitCode = int(code.I64)
	if err := i.out.Flush(); err != nil {
		return 0, fmt.Errorf("flush output: %w", err)
	}
	return halt, nil
}
