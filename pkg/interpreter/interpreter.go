package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
	"github.com/cinskabotanicka/IPP2/pkg/stack"
)

// Interpreter executes a linearised instruction sequence
type Interpreter struct {
	pb []program.Instruction // program block (list of instructions)
	pc int                   // index of the next instruction

	frames *FrameStore         // GF, LF stack and TF
	data   *stack.Stack[Value] // operand stack (PUSHS/POPS)
	calls  *stack.Stack[int]   // return addresses (CALL/RETURN)
	labels map[string]int      // label name -> PB index
	ready  bool                // label resolution done

	in   InputPort  // READ source
	out  OutputPort // WRITE sink
	diag io.Writer  // DPRINT and BREAK sink

	ctx   context.Context
	runID string

	// Exec hook, coreStep unless replaced via SetExecStep
	execStep func(*Interpreter) (halted bool, err error)

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
	exitCode int // status set by EXIT
}

type Option func(*Interpreter)

// WithInput sets the port READ takes its lines from
func WithInput(in InputPort) Option {
	return func(i *Interpreter) { i.in = in }
}

// WithOutput sets the port WRITE prints to
func WithOutput(out OutputPort) Option {
	return func(i *Interpreter) { i.out = out }
}

// WithDiagnostics sets the writer for DPRINT and BREAK
func WithDiagnostics(w io.Writer) Option {
	return func(i *Interpreter) { i.diag = w }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithContext makes Step fail once ctx is done
func WithContext(ctx context.Context) Option {
	return func(i *Interpreter) { i.ctx = ctx }
}

// WithRunID tags BREAK snapshots with the run identifier
func WithRunID(id string) Option {
	return func(i *Interpreter) { i.runID = id }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(pb []program.Instruction, opts ...Option) *Interpreter {
	it := &Interpreter{
		pb:       append([]program.Instruction(nil), pb...),
		maxSteps: 0, // 0 => unlimited
	}
	it.Reset()

	for _, o := range opts {
		o(it)
	}

	if it.in == nil {
		it.in = NewLineReader(os.Stdin)
	}
	if it.out == nil {
		it.out = NewWriter(os.Stdout)
	}
	if it.diag == nil {
		it.diag = os.Stderr
	}
	if it.ctx == nil {
		it.ctx = context.Background()
	}

	if it.execStep == nil {
		it.execStep = coreStep
	}

	return it
}

// Load replaces the current program block with a new one, resetting state
func (i *Interpreter) Load(pb []program.Instruction) {
	i.pb = append([]program.Instruction(nil), pb...)
	i.Reset()
}

// Reset clears runtime state (frames, stacks, PC, counters) and forgets resolved labels
func (i *Interpreter) Reset() {
	i.pc = 0
	i.frames = NewFrameStore()
	i.data = stack.NewStack[Value]()
	i.calls = stack.NewStack[int]()
	i.labels = nil
	i.ready = false
	i.steps = 0
	i.exitCode = 0
}

// Program returns the active PB
func (i *Interpreter) Program() []program.Instruction {
	return i.pb
}

// Frames returns the frame store
func (i *Interpreter) Frames() *FrameStore {
	return i.frames
}

// SetExecStep installs the step function
func (i *Interpreter) SetExecStep(fn func(*Interpreter) (bool, error)) {
	i.execStep = fn
}

// Prepare checks every instruction's operand signature and builds the label table.
// It runs once before the first step; any error here means nothing was executed.
func (i *Interpreter) Prepare() error {
	labels := make(map[string]int)

	for idx, ins := range i.pb {
		if err := checkSignature(ins); err != nil {
			return fault.At(err, ins.Order, ins.Op.String())
		}

		if ins.Op == program.OpLabel {
			name := ins.Args[0].Name
			if _, dup := labels[name]; dup {
				return fault.At(fault.Errorf(fault.Structural, "duplicate label %s", name), ins.Order, ins.Op.String())
			}
			labels[name] = idx
		}
	}

	i.labels = labels
	i.ready = true
	log.Debug("Labels resolved", "labels", len(labels), "instructions", len(i.pb))

	return nil
}

// checkSignature verifies arity and the label/type operand positions
func checkSignature(ins program.Instruction) error {
	slots := ins.Op.Slots()
	if len(ins.Args) != len(slots) {
		return fault.Errorf(fault.Structural, "expected %d operands, got %d", len(slots), len(ins.Args))
	}

	for pos, slot := range slots {
		arg := ins.Args[pos]
		switch slot {
		case program.SlotLabel:
			if arg.Type != program.ArgLabel {
				return fault.Errorf(fault.Structural, "operand %d must be a label, got %s", pos+1, arg.Type)
			}
		case program.SlotType:
			if arg.Type != program.ArgTypeName {
				return fault.Errorf(fault.Structural, "operand %d must be a type, got %s", pos+1, arg.Type)
			}
		}
	}

	return nil
}

// Step executes a single instruction, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	if !i.ready {
		if err := i.Prepare(); err != nil {
			return false, err
		}
	}

	if i.execStep == nil {
		return false, ErrNotImplemented
	}

	// falling off the end halts without counting as a step
	if i.pc < 0 || i.pc >= len(i.pb) {
		return true, nil
	}

	if err := i.ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := i.execStep(i)
	i.steps++

	return halted, err
}

// Run executes until halt or error and returns the exit status.
// Output written before a failure is flushed as well.
func (i *Interpreter) Run() (int, error) {
	for {
		halted, err := i.Step()
		if err != nil {
			_ = i.out.Flush()
			return 0, err
		}

		if halted {
			if err := i.out.Flush(); err != nil {
				return 0, fmt.Errorf("flush output: %w", err)
			}
			log.Debug("Program halted", "code", i.exitCode, "steps", i.steps)
			return i.exitCode, nil
		}
	}
}

// PC returns the index of the next instruction
func (i *Interpreter) PC() int {
	return i.pc
}

// SetPC moves the program counter
func (i *Interpreter) SetPC(pc int) {
	i.pc = pc
}

// Steps returns the number of instructions executed so far
func (i *Interpreter) Steps() int {
	return i.steps
}

// ExitCode returns the status requested by EXIT, 0 otherwise
func (i *Interpreter) ExitCode() int {
	return i.exitCode
}

// OperandStack returns the operand stack contents, bottom first
func (i *Interpreter) OperandStack() []Value {
	return i.data.Array()
}

var (
	ErrNotImplemented   = errors.New("interpreter step function not linked")
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
	ErrCanceled         = errors.New("execution canceled")
)
