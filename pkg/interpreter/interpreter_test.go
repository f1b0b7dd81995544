package interpreter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/parser"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

type result struct {
	out  string
	diag string
	code int
	err  error
	it   *Interpreter
}

// runSource parses body (header added) and runs it with the given stdin.
func runSource(t *testing.T, body, input string, opts ...Option) result {
	t.Helper()
	prog, err := parser.Parse(".IPPcode24\n" + body)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var out, diag bytes.Buffer
	base := []Option{
		WithInput(NewLineReader(strings.NewReader(input))),
		WithOutput(NewWriter(&out)),
		WithDiagnostics(&diag),
		WithMaxSteps(100000),
	}
	it := NewInterpreter(prog.Instructions(), append(base, opts...)...)
	code, err := it.Run()

	return result{out: out.String(), diag: diag.String(), code: code, err: err, it: it}
}

// expectOutput runs body and fails unless it succeeds with exactly want on stdout.
func expectOutput(t *testing.T, body, input, want string) {
	t.Helper()
	r := runSource(t, body, input)
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if r.out != want {
		t.Errorf("expected output %q, got %q", want, r.out)
	}
}

// expectKind runs body and fails unless it stops with an error of the given kind.
func expectKind(t *testing.T, body string, kind fault.Kind) result {
	t.Helper()
	r := runSource(t, body, "")
	if r.err == nil {
		t.Fatalf("expected %s error, but program ran successfully (output %q)", kind, r.out)
	}
	if got := fault.KindOf(r.err); got != kind {
		t.Fatalf("expected %s error, got %s: %v", kind, got, r.err)
	}
	return r
}

func TestScenarioArithmetic(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@x
MOVE GF@x int@5
ADD GF@x GF@x int@3
WRITE GF@x
`, "", "8")
}

func TestScenarioUninitializedRead(t *testing.T) {
	expectKind(t, `
DEFVAR GF@x
WRITE GF@x
`, fault.VariableAccess)
}

func TestScenarioInfiniteLoop(t *testing.T) {
	r := runSource(t, `
LABEL loop
JUMP loop
`, "", WithMaxSteps(500))
	if !errors.Is(r.err, ErrMaxStepsExceeded) {
		t.Fatalf("expected step limit to stop the loop, got %v", r.err)
	}
	if r.it.Steps() != 500 {
		t.Errorf("expected 500 executed steps, got %d", r.it.Steps())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	r = runSource(t, `
LABEL loop
JUMP loop
`, "", WithMaxSteps(0), WithContext(ctx))
	if !errors.Is(r.err, ErrCanceled) || !errors.Is(r.err, context.DeadlineExceeded) {
		t.Fatalf("expected cancellation, got %v", r.err)
	}
}

func TestScenarioReturnWithoutCall(t *testing.T) {
	r := expectKind(t, `
CALL f
WRITE string@after
RETURN
LABEL f
WRITE string@in
RETURN
`, fault.EmptyStack)
	if r.out != "inafter" {
		t.Errorf("expected output written before the failure, got %q", r.out)
	}

	var fe *fault.Error
	if !errors.As(r.err, &fe) || fe.Order != 3 || fe.Opcode != "RETURN" {
		t.Errorf("expected failure located at 3/RETURN, got %v", r.err)
	}
}

func TestScenarioTemporaryFrame(t *testing.T) {
	expectOutput(t, `
CREATEFRAME
DEFVAR TF@a
MOVE TF@a string@hi
PUSHFRAME
WRITE LF@a
`, "", "hi")
}

func TestQualifierResolution(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@x
MOVE GF@x string@global
CREATEFRAME
PUSHFRAME
DEFVAR LF@x
MOVE LF@x string@local
WRITE GF@x
WRITE LF@x
POPFRAME
WRITE TF@x
`, "", "globallocallocal")
}

func TestFrameLifecycle(t *testing.T) {
	r := runSource(t, `
CREATEFRAME
DEFVAR TF@a
DEFVAR TF@b
MOVE TF@b int@2
PUSHFRAME
CREATEFRAME
PUSHFRAME
`, "")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}

	fs := r.it.Frames()
	if fs.Global() == nil || fs.Global().Len() != 0 {
		t.Errorf("expected an empty global frame to exist")
	}
	if fs.LocalDepth() != 2 || fs.Temp() != nil {
		t.Fatalf("expected 2 local frames and no temporary frame, got %d / %v", fs.LocalDepth(), fs.Temp())
	}
	if err := fs.PopLocalAsTemp(); err != nil {
		t.Fatal(err)
	}
	if err := fs.PopLocalAsTemp(); err != nil {
		t.Fatal(err)
	}

	vars := fs.Temp().Variables()
	if len(vars) != 2 || vars[0].Name != "a" || vars[1].Name != "b" {
		t.Fatalf("expected promoted variables [a b], got %v", describeFrame(fs.Temp()))
	}
	if vars[0].Initialized() {
		t.Errorf("expected a to stay uninitialized")
	}
	if v, _ := vars[1].Get(); v != newInt(2) {
		t.Errorf("expected b = int@2, got %s", v.Describe())
	}
}

func TestFrameAccessErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"defvar without temporary frame", "DEFVAR TF@x"},
		{"defvar without local frame", "DEFVAR LF@x"},
		{"pushframe without temporary frame", "PUSHFRAME"},
		{"pushframe twice", "CREATEFRAME\nPUSHFRAME\nPUSHFRAME"},
		{"popframe without local frame", "POPFRAME"},
		{"write from missing local frame", "WRITE LF@x"},
		{"temporary frame consumed by push", "CREATEFRAME\nDEFVAR TF@a\nPUSHFRAME\nMOVE TF@a int@1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKind(t, tt.body, fault.FrameAccess)
		})
	}
}

func TestCreateFrameDiscardsTemporary(t *testing.T) {
	expectKind(t, `
CREATEFRAME
DEFVAR TF@a
MOVE TF@a int@1
CREATEFRAME
WRITE TF@a
`, fault.VariableAccess)
}

func TestVariableErrors(t *testing.T) {
	expectKind(t, "WRITE GF@nope", fault.VariableAccess)
	expectKind(t, "MOVE GF@nope int@1", fault.VariableAccess)
	expectKind(t, "DEFVAR GF@x\nDEFVAR GF@x", fault.Structural)
	expectKind(t, "MOVE int@1 int@2", fault.OperandType)
}

func TestTypeIsIdempotent(t *testing.T) {
	r := runSource(t, `
DEFVAR GF@v
DEFVAR GF@t1
DEFVAR GF@t2
TYPE GF@t1 GF@v
TYPE GF@t2 GF@v
JUMPIFNEQ bad GF@t1 GF@t2
WRITE string@[
WRITE GF@t1
WRITE string@]
MOVE GF@v bool@true
TYPE GF@t1 GF@v
TYPE GF@t2 GF@v
JUMPIFNEQ bad GF@t1 GF@t2
WRITE GF@t1
WRITE GF@v
EXIT int@0
LABEL bad
EXIT int@1
`, "")
	if r.err != nil || r.code != 0 {
		t.Fatalf("expected success, got code %d, err %v", r.code, r.err)
	}
	if r.out != "[]booltrue" {
		t.Errorf("unexpected output %q", r.out)
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		operand string
		want    string
	}{
		{"int@-3", "int"},
		{"bool@false", "bool"},
		{"string@", "string"},
		{"nil@nil", "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			expectOutput(t, "DEFVAR GF@t\nTYPE GF@t "+tt.operand+"\nWRITE GF@t", "", tt.want)
		})
	}
	expectKind(t, "DEFVAR GF@t\nTYPE GF@t GF@missing", fault.VariableAccess)
}

func TestStackRoundTrip(t *testing.T) {
	tests := []struct {
		operand string
		want    Value
	}{
		{"int@42", newInt(42)},
		{"bool@true", newBool(true)},
		{`string@a\032b`, newString("a b")},
		{"nil@nil", nilValue},
	}
	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			r := runSource(t, "DEFVAR GF@x\nPUSHS "+tt.operand+"\nPOPS GF@x", "")
			if r.err != nil {
				t.Fatalf("unexpected error: %v", r.err)
			}
			got, err := r.it.Frames().Read(program.GF, "x")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want.Describe(), got.Describe())
			}
			if len(r.it.OperandStack()) != 0 {
				t.Errorf("expected empty operand stack, got %v", r.it.OperandStack())
			}
		})
	}
}

func TestStackOrder(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@x
PUSHS int@1
PUSHS int@2
POPS GF@x
WRITE GF@x
POPS GF@x
WRITE GF@x
`, "", "21")
	expectKind(t, "DEFVAR GF@x\nPOPS GF@x", fault.EmptyStack)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		op, a, b, want string
	}{
		{"ADD", "int@2", "int@40", "42"},
		{"SUB", "int@2", "int@40", "-38"},
		{"MUL", "int@-6", "int@7", "-42"},
		{"IDIV", "int@7", "int@2", "3"},
		{"IDIV", "int@-7", "int@2", "-3"},
		{"IDIV", "int@7", "int@-2", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.op+" "+tt.a+" "+tt.b, func(t *testing.T) {
			expectOutput(t, "DEFVAR GF@r\n"+tt.op+" GF@r "+tt.a+" "+tt.b+"\nWRITE GF@r", "", tt.want)
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, dividend := range []string{"int@5", "int@-5", "int@0"} {
		t.Run(dividend, func(t *testing.T) {
			expectKind(t, "DEFVAR GF@r\nIDIV GF@r "+dividend+" int@0", fault.OperandValue)
		})
	}
}

func TestOperandTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"add string", "DEFVAR GF@r\nADD GF@r int@1 string@1"},
		{"add nil", "DEFVAR GF@r\nADD GF@r nil@nil int@1"},
		{"lt mixed", "DEFVAR GF@r\nLT GF@r int@1 string@1"},
		{"lt nil", "DEFVAR GF@r\nLT GF@r nil@nil nil@nil"},
		{"gt nil and int", "DEFVAR GF@r\nGT GF@r int@1 nil@nil"},
		{"eq mixed", "DEFVAR GF@r\nEQ GF@r int@1 bool@true"},
		{"and int", "DEFVAR GF@r\nAND GF@r bool@true int@1"},
		{"not string", "DEFVAR GF@r\nNOT GF@r string@true"},
		{"concat int", "DEFVAR GF@r\nCONCAT GF@r string@a int@1"},
		{"strlen int", "DEFVAR GF@r\nSTRLEN GF@r int@1"},
		{"int2char string", "DEFVAR GF@r\nINT2CHAR GF@r string@a"},
		{"getchar swapped", "DEFVAR GF@r\nGETCHAR GF@r int@0 string@a"},
		{"jumpifeq mixed", "LABEL l\nJUMPIFEQ l int@1 string@1"},
		{"exit string", "EXIT string@0"},
		{"write label", "WRITE l\nLABEL l"},
		{"variable holding wrong kind", "DEFVAR GF@s\nMOVE GF@s string@x\nDEFVAR GF@r\nADD GF@r GF@s int@1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKind(t, tt.body, fault.OperandType)
		})
	}
}

func TestRelational(t *testing.T) {
	tests := []struct {
		op, a, b, want string
	}{
		{"LT", "int@1", "int@2", "true"},
		{"GT", "int@1", "int@2", "false"},
		{"LT", "bool@false", "bool@true", "true"},
		{"GT", "bool@false", "bool@true", "false"},
		{"LT", "string@abc", "string@abd", "true"},
		{"LT", "string@ABC", "string@abd", "true"},
		{"GT", "string@b", "string@A", "true"},
		{"LT", "string@a", "string@A", "false"},
		{"GT", "string@", "string@a", "false"},
		{"EQ", "int@3", "int@3", "true"},
		{"EQ", "string@a", "string@A", "false"},
		{"EQ", "nil@nil", "nil@nil", "true"},
		{"EQ", "nil@nil", "int@0", "false"},
		{"EQ", "string@", "nil@nil", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.op+" "+tt.a+" "+tt.b, func(t *testing.T) {
			expectOutput(t, "DEFVAR GF@r\n"+tt.op+" GF@r "+tt.a+" "+tt.b+"\nWRITE GF@r", "", tt.want)
		})
	}
}

func TestLogical(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@r
AND GF@r bool@true bool@false
WRITE GF@r
OR GF@r bool@true bool@false
WRITE GF@r
NOT GF@r GF@r
WRITE GF@r
`, "", "falsetruefalse")
}

func TestStringInstructions(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@s
DEFVAR GF@n
CONCAT GF@s string@p\229 string@li\235
WRITE GF@s
STRLEN GF@n GF@s
WRITE GF@n
GETCHAR GF@s GF@s int@2
WRITE GF@s
STRI2INT GF@n string@\229 int@0
WRITE GF@n
INT2CHAR GF@s int@8364
WRITE GF@s
MOVE GF@s string@kolo
SETCHAR GF@s int@0 string@Polo
WRITE GF@s
`, "", "pålië5l229€Polo")
}

func TestStringIndexBounds(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"getchar -1", "DEFVAR GF@r\nGETCHAR GF@r string@abc int@-1"},
		{"getchar len", "DEFVAR GF@r\nGETCHAR GF@r string@abc int@3"},
		{"getchar empty", "DEFVAR GF@r\nGETCHAR GF@r string@ int@0"},
		{"stri2int -1", "DEFVAR GF@r\nSTRI2INT GF@r string@abc int@-1"},
		{"stri2int len", "DEFVAR GF@r\nSTRI2INT GF@r string@abc int@3"},
		{"setchar -1", "DEFVAR GF@r\nMOVE GF@r string@abc\nSETCHAR GF@r int@-1 string@x"},
		{"setchar len", "DEFVAR GF@r\nMOVE GF@r string@abc\nSETCHAR GF@r int@3 string@x"},
		{"setchar empty replacement", "DEFVAR GF@r\nMOVE GF@r string@abc\nSETCHAR GF@r int@0 string@"},
		{"setchar uninitialized", "DEFVAR GF@r\nSETCHAR GF@r int@0 string@x"},
		{"setchar non string", "DEFVAR GF@r\nMOVE GF@r int@1\nSETCHAR GF@r int@0 string@x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKind(t, tt.body, fault.StringOperation)
		})
	}
}

func TestInt2CharRange(t *testing.T) {
	for _, code := range []string{"int@-1", "int@1114112", "int@55296", "int@9223372036854775807"} {
		t.Run(code, func(t *testing.T) {
			expectKind(t, "DEFVAR GF@r\nINT2CHAR GF@r "+code, fault.OperandValue)
		})
	}
}

func TestReadAndWrite(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@a
DEFVAR GF@t
READ GF@a int
WRITE GF@a
READ GF@a bool
WRITE GF@a
READ GF@a bool
WRITE GF@a
READ GF@a string
WRITE GF@a
READ GF@a int
TYPE GF@t GF@a
WRITE GF@t
READ GF@a string
TYPE GF@t GF@a
WRITE GF@t
WRITE nil@nil
WRITE bool@false
`, "  -12 \nTRUE\nyes\nhello\\032world\r\nnot a number\n", "-12truefalsehello worldnilnilfalse")
}

func TestReadAtEOF(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@a
DEFVAR GF@t
READ GF@a string
WRITE GF@a
READ GF@a string
TYPE GF@t GF@a
WRITE GF@t
`, "last", "lastnil")
}

func TestDebugOutput(t *testing.T) {
	r := runSource(t, `
DEFVAR GF@x
MOVE GF@x int@7
PUSHS bool@true
DPRINT GF@x
BREAK
WRITE string@done
`, "", WithRunID("run-1"))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if r.out != "done" {
		t.Errorf("expected debug instructions to leave stdout alone, got %q", r.out)
	}
	for _, want := range []string{"7", "run-1", `"x = int@7"`, `"bool@true"`, "Executed:", "ActiveFrames:", `"BREAK"`} {
		if !strings.Contains(r.diag, want) {
			t.Errorf("expected diagnostics to contain %q, got:\n%s", want, r.diag)
		}
	}
}

func TestSnapshot(t *testing.T) {
	r := runSource(t, `
CREATEFRAME
PUSHFRAME
CREATEFRAME
DEFVAR TF@a
CALL f
LABEL f
`, "")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	s := r.it.Snapshot()
	if s.ActiveFrames != 3 || s.LocalDepth != 1 {
		t.Errorf("expected 3 active frames with depth 1, got %d/%d", s.ActiveFrames, s.LocalDepth)
	}
	if len(s.Temporary) != 1 || s.Temporary[0] != "a = <uninitialized>" {
		t.Errorf("unexpected temporary frame dump %v", s.Temporary)
	}
	if len(s.CallStack) != 1 || s.CallStack[0] != 5 {
		t.Errorf("expected return address 5, got %v", s.CallStack)
	}
	if s.Executed != 6 {
		t.Errorf("expected 6 executed instructions, got %d", s.Executed)
	}
}

func TestControlFlow(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@i
MOVE GF@i int@0
LABEL loop
ADD GF@i GF@i int@1
WRITE GF@i
JUMPIFNEQ loop GF@i int@3
JUMPIFEQ skip nil@nil nil@nil
WRITE string@unreachable
LABEL skip
CALL sub
WRITE string@back
JUMP end
LABEL sub
WRITE string@sub
RETURN
LABEL end
`, "", "123subback")
}

func TestRecursiveCalls(t *testing.T) {
	expectOutput(t, `
DEFVAR GF@n
MOVE GF@n int@4
CALL countdown
JUMP end
LABEL countdown
JUMPIFEQ done GF@n int@0
WRITE GF@n
SUB GF@n GF@n int@1
CALL countdown
LABEL done
RETURN
LABEL end
`, "", "4321")
}

func TestExit(t *testing.T) {
	for _, tt := range []struct {
		code string
		want int
	}{{"int@0", 0}, {"int@9", 9}, {"int@3", 3}} {
		t.Run(tt.code, func(t *testing.T) {
			r := runSource(t, "WRITE string@before\nEXIT "+tt.code+"\nWRITE string@after", "")
			if r.err != nil {
				t.Fatalf("unexpected error: %v", r.err)
			}
			if r.code != tt.want || r.out != "before" {
				t.Errorf("expected code %d and output %q, got %d and %q", tt.want, "before", r.code, r.out)
			}
			if r.it.Steps() != 2 {
				t.Errorf("expected EXIT to stop after 2 steps, got %d", r.it.Steps())
			}
		})
	}

	for _, code := range []string{"int@-1", "int@10"} {
		t.Run(code, func(t *testing.T) {
			expectKind(t, "EXIT "+code, fault.OperandValue)
		})
	}
}

func TestStructuralErrorsBeforeExecution(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"duplicate label", "WRITE string@x\nLABEL a\nLABEL a"},
		{"too many operands", "WRITE string@x\nWRITE int@1 int@2"},
		{"too few operands", "WRITE string@x\nADD GF@x int@1"},
		{"literal instead of label", "WRITE string@x\nJUMP int@1"},
		{"literal instead of type", "WRITE string@x\nDEFVAR GF@a\nREAD GF@a string@int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := expectKind(t, tt.body, fault.Structural)
			if r.out != "" || r.it.Steps() != 0 {
				t.Errorf("expected nothing to run, got output %q after %d steps", r.out, r.it.Steps())
			}
		})
	}
}

func TestUndefinedLabel(t *testing.T) {
	expectKind(t, "JUMP nowhere", fault.Structural)
	expectKind(t, "CALL nowhere", fault.Structural)
	expectKind(t, "JUMPIFEQ nowhere int@1 int@1", fault.Structural)
	expectOutput(t, "WRITE string@ok\nEXIT int@0\nJUMP nowhere", "", "ok")
}

func TestEmptyProgram(t *testing.T) {
	r := runSource(t, "", "")
	if r.err != nil || r.code != 0 || r.it.Steps() != 0 {
		t.Errorf("expected clean halt, got code %d err %v steps %d", r.code, r.err, r.it.Steps())
	}
}

func TestLoadResetsState(t *testing.T) {
	var out bytes.Buffer
	first, err := parser.Parse(".IPPcode24\nDEFVAR GF@x\nMOVE GF@x int@1\nWRITE GF@x")
	if err != nil {
		t.Fatal(err)
	}
	it := NewInterpreter(first.Instructions(), WithOutput(NewWriter(&out)))
	if _, err := it.Run(); err != nil {
		t.Fatal(err)
	}

	// the same global variable must be declarable again after Load
	it.Load(first.Instructions())
	if _, err := it.Run(); err != nil {
		t.Fatalf("expected reloaded program to run, got %v", err)
	}
	if out.String() != "11" {
		t.Errorf("expected output 11, got %q", out.String())
	}
}

func TestExecStepHook(t *testing.T) {
	prog, err := parser.Parse(".IPPcode24\nWRITE int@1\nWRITE int@2")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	var seen []int
	it := NewInterpreter(prog.Instructions(), WithOutput(NewWriter(&out)))
	it.SetExecStep(func(i *Interpreter) (bool, error) {
		seen = append(seen, i.PC())
		return coreStep(i)
	})
	if _, err := it.Run(); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Errorf("expected steps at pc 0 and 1, got %v", seen)
	}
}

func TestEveryOpcodeHasHandler(t *testing.T) {
	for op, h := range handlers {
		if h == nil {
			t.Errorf("no handler for %s", program.Opcode(op))
		}
	}
}

func TestReadUnknownType(t *testing.T) {
	// loaders reject unknown type names, records built in code can still carry one
	pb := []program.Instruction{
		{Op: program.OpDefVar, Order: 1, Args: []program.Symbol{program.Var(program.GF, "x")}},
		{Op: program.OpRead, Order: 2, Args: []program.Symbol{program.Var(program.GF, "x"), program.TypeName("float")}},
	}
	it := NewInterpreter(pb,
		WithInput(NewLineReader(strings.NewReader("1.5\n"))),
		WithOutput(NewWriter(io.Discard)),
	)
	if _, err := it.Run(); !fault.Is(err, fault.OperandValue) {
		t.Errorf("expected operand value error, got %v", err)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestDiagnosticsWriteFailure(t *testing.T) {
	for _, body := range []string{"DPRINT int@1", "BREAK"} {
		t.Run(body, func(t *testing.T) {
			r := runSource(t, body, "", WithDiagnostics(brokenWriter{}))
			if r.err == nil || !strings.Contains(r.err.Error(), "stream closed") {
				t.Fatalf("expected the diagnostics write error, got %v", r.err)
			}
			if fault.KindOf(r.err) != fault.Internal {
				t.Errorf("expected an internal error, got %s", fault.KindOf(r.err))
			}
		})
	}
}
