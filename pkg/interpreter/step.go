package interpreter

import (
	"fmt"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

// halt is returned by a handler instead of the next PC to stop the run
const halt = -1

// handler executes one instruction and returns the next PC
type handler func(i *Interpreter, in program.Instruction) (int, error)

// handlers is indexed by opcode; the array length ties it to the opcode enumeration
var handlers = [program.OpcodeCount]handler{
	program.OpCreateFrame: execCreateFrame,
	program.OpPushFrame:   execPushFrame,
	program.OpPopFrame:    execPopFrame,
	program.OpDefVar:      execDefVar,
	program.OpMove:        execMove,
	program.OpPushS:       execPushS,
	program.OpPopS:        execPopS,

	program.OpAdd:  execArithmetic,
	program.OpSub:  execArithmetic,
	program.OpMul:  execArithmetic,
	program.OpIDiv: execArithmetic,
	program.OpLt:   execRelational,
	program.OpGt:   execRelational,
	program.OpEq:   execEq,
	program.OpAnd:  execLogical,
	program.OpOr:   execLogical,
	program.OpNot:  execNot,

	program.OpInt2Char: execInt2Char,
	program.OpStri2Int: execStri2Int,
	program.OpConcat:   execConcat,
	program.OpStrLen:   execStrLen,
	program.OpGetChar:  execGetChar,
	program.OpSetChar:  execSetChar,
	program.OpType:     execType,

	program.OpRead:   execRead,
	program.OpWrite:  execWrite,
	program.OpDPrint: execDPrint,
	program.OpBreak:  execBreak,

	program.OpLabel:     execLabel,
	program.OpJump:      execJump,
	program.OpJumpIfEq:  execJumpIf,
	program.OpJumpIfNeq: execJumpIf,
	program.OpCall:      execCall,
	program.OpReturn:    execReturn,
	program.OpExit:      execExit,
}

func init() {
	for op, h := range handlers {
		if h == nil {
			panic(fmt.Sprintf("interpreter: no handler for opcode %s", program.Opcode(op)))
		}
	}
}

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(i *Interpreter) (bool, error) {
	// reaching the end of the program is a normal halt
	pc := i.pc
	if pc < 0 || pc >= len(i.pb) {
		return true, nil
	}

	in := i.pb[pc]
	next, err := handlers[in.Op](i, in)
	if err != nil {
		return false, fault.At(err, in.Order, in.Op.String())
	}

	if next == halt {
		return true, nil
	}

	i.pc = next
	return false, nil
}

// next is the PC of the instruction after the current one
func (i *Interpreter) next() int {
	return i.pc + 1
}

// resolve turns a ⟨symb⟩ operand into a value whose kind is in accept.
// Variables are looked up in the frame named by their own qualifier.
func (i *Interpreter) resolve(sym program.Symbol, accept kindSet) (Value, error) {
	var (
		val Value
		ok  bool
	)

	if sym.IsVar() {
		v, err := i.frames.Read(sym.Frame, sym.Name)
		if err != nil {
			return Value{}, err
		}
		val, ok = v, true
	} else {
		val, ok = literalValue(sym)
	}

	if !ok {
		return Value{}, fault.Errorf(fault.OperandType, "%s operand %s where a value is expected", sym.Type, sym)
	}
	if !accept.has(val.Kind) {
		return Value{}, fault.Errorf(fault.OperandType, "operand %s is %s, expected %s", sym, val.Kind, accept)
	}

	return val, nil
}

// target returns the declared destination variable of a ⟨var⟩ operand
func (i *Interpreter) target(sym program.Symbol) (*Variable, error) {
	if !sym.IsVar() {
		return nil, fault.Errorf(fault.OperandType, "destination must be a variable, got %s", sym)
	}
	return i.frames.Lookup(sym.Frame, sym.Name)
}

// jumpTarget looks up a label in the label table
func (i *Interpreter) jumpTarget(sym program.Symbol) (int, error) {
	idx, ok := i.labels[sym.Name]
	if !ok {
		return 0, fault.Errorf(fault.Structural, "undefined label %s", sym.Name)
	}
	return idx, nil
}
