package parser_test

import (
	"strings"
	"testing"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/lexer"
	"github.com/cinskabotanicka/IPP2/pkg/parser"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

func TestParseProgram(t *testing.T) {
	input := "# leading comment\n" +
		"\n" +
		".IPPcode24   # header comment\n" +
		"defvar GF@counter\n" +
		"\n" +
		"MOVE GF@counter int@-0x10\n" +
		"   # a full-line comment\n" +
		"LABEL loop\n" +
		"READ LF@x bool\n" +
		"JumpIfEq loop GF@counter nil@nil\n" +
		"WRITE string@a\\032b#trailing\n" +
		"BREAK"

	prog, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		op   program.Opcode
		args []program.Symbol
	}{
		{program.OpDefVar, []program.Symbol{program.Var(program.GF, "counter")}},
		{program.OpMove, []program.Symbol{program.Var(program.GF, "counter"), program.IntLit(-16)}},
		{program.OpLabel, []program.Symbol{program.Label("loop")}},
		{program.OpRead, []program.Symbol{program.Var(program.LF, "x"), program.TypeName("bool")}},
		{program.OpJumpIfEq, []program.Symbol{program.Label("loop"), program.Var(program.GF, "counter"), program.NilLit()}},
		{program.OpWrite, []program.Symbol{program.StringLit("a b")}},
		{program.OpBreak, nil},
	}

	instructions := prog.Instructions()
	if len(instructions) != len(expected) {
		t.Fatalf("expected %d instructions, got %d:\n%s", len(expected), len(instructions), strings.Join(prog.Listing(), "\n"))
	}

	for i, exp := range expected {
		in := instructions[i]
		if in.Order != i+1 {
			t.Errorf("instruction %d: expected order %d, got %d", i, i+1, in.Order)
		}
		if in.Op != exp.op {
			t.Errorf("instruction %d: expected %s, got %s", i, exp.op, in.Op)
		}
		if len(in.Args) != len(exp.args) {
			t.Errorf("instruction %d: expected %d operands, got %d", i, len(exp.args), len(in.Args))
			continue
		}
		for j, arg := range exp.args {
			if in.Args[j] != arg {
				t.Errorf("instruction %d operand %d: expected %s, got %s", i, j, arg, in.Args[j])
			}
		}
	}
}

func TestParseLeavesArityToEngine(t *testing.T) {
	prog, err := parser.Parse(".IPPcode24\nWRITE int@1 int@2\nADD GF@x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.Len() != 2 {
		t.Errorf("expected 2 instructions, got %d", prog.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  fault.Kind
	}{
		{"empty source", "", fault.SourceFormat},
		{"missing header", "WRITE int@1\n", fault.SourceFormat},
		{"wrong header", ".IPPcode23\nWRITE int@1\n", fault.SourceFormat},
		{"text after header", ".IPPcode24 WRITE\n", fault.SourceFormat},
		{"duplicate header", ".IPPcode24\n.IPPcode24\n", fault.SourceFormat},
		{"illegal character", ".IPPcode24\nWRITE (\n", fault.SourceFormat},
		{"operand in opcode position", ".IPPcode24\nint@1\n", fault.SourceFormat},
		{"unknown opcode", ".IPPcode24\nPRINT int@1\n", fault.Structural},
		{"bad integer", ".IPPcode24\nWRITE int@abc\n", fault.Structural},
		{"bad bool", ".IPPcode24\nWRITE bool@yes\n", fault.Structural},
		{"bad nil", ".IPPcode24\nWRITE nil@null\n", fault.Structural},
		{"bad variable name", ".IPPcode24\nWRITE GF@1x\n", fault.Structural},
		{"bad type name", ".IPPcode24\nREAD GF@x float\n", fault.Structural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse(tt.input)
			if err == nil {
				t.Fatalf("expected %s error, got program:\n%s", tt.kind, strings.Join(prog.Listing(), "\n"))
			}
			if got := fault.KindOf(err); got != tt.kind {
				t.Errorf("expected %s error, got %s: %v", tt.kind, got, err)
			}
		})
	}
}

func TestParserRecoversPerLine(t *testing.T) {
	p := parser.NewParser(lexer.NewLexer(".IPPcode24\nPRINT int@1\nWRITE int@x\nWRITE int@2\n"))
	p.Parse()

	if n := len(p.Errors()); n != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", n, p.Errors())
	}
	if !strings.Contains(p.Errors()[0], "PRINT") || !strings.Contains(p.Errors()[0], "Line: 2") {
		t.Errorf("expected first error to name PRINT on line 2, got %q", p.Errors()[0])
	}

	records := p.Records()
	if len(records) != 1 || records[0].Op != program.OpWrite || records[0].Args[0] != program.IntLit(2) {
		t.Errorf("expected only the last WRITE to be recorded, got %v", records)
	}
}
