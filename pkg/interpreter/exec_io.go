package interpreter

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

// READ ⟨var⟩ ⟨type⟩, missing or malformed input stores nil
func execRead(i *Interpreter, in program.Instruction) (int, error) {
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}

	typ := in.Args[1]
	if typ.Type != program.ArgTypeName {
		return 0, fault.Errorf(fault.OperandType, "READ needs a type, got %s", typ)
	}

	val := nilValue
	switch typ.Name {
	case "int":
		if n, ok := i.in.ReadInt(); ok {
			val = newInt(n)
		}
	case "string":
		if s, ok := i.in.ReadString(); ok {
			val = newString(s)
		}
	case "bool":
		if b, ok := i.in.ReadBool(); ok {
			val = newBool(b)
		}
	default:
		return 0, fault.Errorf(fault.OperandValue, "cannot read values of type %q", typ.Name)
	}

	dst.Set(val)
	return i.next(), nil
}

// WRITE ⟨symb⟩
func execWrite(i *Interpreter, in program.Instruction) (int, error) {
	val, err := i.resolve(in.Args[0], acceptAny)
	if err != nil {
		return 0, err
	}

	if val.Kind == KindInt {
		err = i.out.WriteInt(val.I64)
	} else {
		err = i.out.WriteString(val.String())
	}
	if err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}
	return i.next(), nil
}

// DPRINT ⟨symb⟩
func execDPrint(i *Interpreter, in program.Instruction) (int, error) {
	val, err := i.resolve(in.Args[0], acceptAny)
	if err != nil {
		return 0, err
	}
	if _, err := fmt.Fprint(i.diag, val.String()); err != nil {
		return 0, fmt.Errorf("write diagnostics: %w", err)
	}
	return i.next(), nil
}

func execBreak(i *Interpreter, _ program.Instruction) (int, error) {
	if _, err := pretty.Fprintf(i.diag, "%# v\n", i.Snapshot()); err != nil {
		return 0, fmt.Errorf("write diagnostics: %w", err)
	}
	return i.next(), nil
}

// Snapshot is the engine state BREAK reports
type Snapshot struct {
	RunID        string
	Order        int
	Opcode       string
	Args         []string
	PC           int
	Executed     int
	ActiveFrames int
	LocalDepth   int
	Global       []string
	Local        []string
	Temporary    []string
	OperandStack []string
	CallStack    []int
}

// Snapshot captures the current engine state
func (i *Interpreter) Snapshot() Snapshot {
	s := Snapshot{
		RunID:        i.runID,
		PC:           i.pc,
		Executed:     i.steps,
		ActiveFrames: i.frames.Active(),
		LocalDepth:   i.frames.LocalDepth(),
		Global:       describeFrame(i.frames.Global()),
		Local:        describeFrame(i.frames.Local()),
		Temporary:    describeFrame(i.frames.Temp()),
		CallStack:    append([]int(nil), i.calls.Array()...),
	}

	if i.pc >= 0 && i.pc < len(i.pb) {
		in := i.pb[i.pc]
		s.Order = in.Order
		s.Opcode = in.Op.String()
		for _, a := range in.Args {
			s.Args = append(s.Args, a.String())
		}
	}

	for _, v := range i.data.Array() {
		s.OperandStack = append(s.OperandStack, v.Describe())
	}

	return s
}

func describeFrame(f *Frame) []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, f.Len())
	for _, v := range f.Variables() {
		out = append(out, v.Describe())
	}
	return out
}
