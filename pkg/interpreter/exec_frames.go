package interpreter

import (
	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

func execCreateFrame(i *Interpreter, _ program.Instruction) (int, error) {
	i.frames.CreateTemp()
	return i.next(), nil
}

func execPushFrame(i *Interpreter, _ program.Instruction) (int, error) {
	if err := i.frames.PushTempAsLocal(); err != nil {
		return 0, err
	}
	return i.next(), nil
}

func execPopFrame(i *Interpreter, _ program.Instruction) (int, error) {
	if err := i.frames.PopLocalAsTemp(); err != nil {
		return 0, err
	}
	return i.next(), nil
}

// DEFVAR ⟨var⟩
func execDefVar(i *Interpreter, in program.Instruction) (int, error) {
	sym := in.Args[0]
	if !sym.IsVar() {
		return 0, fault.Errorf(fault.OperandType, "DEFVAR needs a variable, got %s", sym)
	}
	if err := i.frames.Declare(sym.Frame, sym.Name); err != nil {
		return 0, err
	}
	return i.next(), nil
}

// MOVE ⟨var⟩ ⟨symb⟩
func execMove(i *Interpreter, in program.Instruction) (int, error) {
	val, err := i.resolve(in.Args[1], acceptAny)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}
	dst.Set(val)
	return i.next(), nil
}

// PUSHS ⟨symb⟩
func execPushS(i *Interpreter, in program.Instruction) (int, error) {
	val, err := i.resolve(in.Args[0], acceptAny)
	if err != nil {
		return 0, err
	}
	i.data.Push(val)
	return i.next(), nil
}

// POPS ⟨var⟩
func execPopS(i *Interpreter, in program.Instruction) (int, error) {
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}
	val, ok := i.data.Pop()
	if !ok {
		return 0, fault.Errorf(fault.EmptyStack, "operand stack is empty")
	}
	dst.Set(val)
	return i.next(), nil
}
