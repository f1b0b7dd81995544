package program

import "strings"

type Opcode uint8

// List of instruction opcodes
const (
	OpMove Opcode = iota
	OpCreateFrame
	OpPushFrame
	OpPopFrame
	OpDefVar
	OpCall
	OpReturn
	OpPushS
	OpPopS
	OpAdd
	OpSub
	OpMul
	OpIDiv
	OpLt
	OpGt
	OpEq
	OpAnd
	OpOr
	OpNot
	OpInt2Char
	OpStri2Int
	OpRead
	OpWrite
	OpConcat
	OpStrLen
	OpGetChar
	OpSetChar
	OpType
	OpLabel
	OpJump
	OpJumpIfEq
	OpJumpIfNeq
	OpExit
	OpDPrint
	OpBreak

	OpcodeCount int = iota
)

// Slot describes what an operand position accepts
type Slot uint8

const (
	SlotVar   Slot = iota // ⟨var⟩
	SlotSymb              // ⟨symb⟩: variable or literal
	SlotLabel             // ⟨label⟩
	SlotType              // ⟨type⟩
)

func (s Slot) String() string {
	switch s {
	case SlotVar:
		return "var"
	case SlotSymb:
		return "symb"
	case SlotLabel:
		return "label"
	case SlotType:
		return "type"
	}
	return "?"
}

type opcodeInfo struct {
	name  string
	slots []Slot
}

var (
	none        = []Slot{}
	varOnly     = []Slot{SlotVar}
	symbOnly    = []Slot{SlotSymb}
	labelOnly   = []Slot{SlotLabel}
	varSymb     = []Slot{SlotVar, SlotSymb}
	varSymbSymb = []Slot{SlotVar, SlotSymb, SlotSymb}
)

var opcodes = [OpcodeCount]opcodeInfo{
	OpMove:        {"MOVE", varSymb},
	OpCreateFrame: {"CREATEFRAME", none},
	OpPushFrame:   {"PUSHFRAME", none},
	OpPopFrame:    {"POPFRAME", none},
	OpDefVar:      {"DEFVAR", varOnly},
	OpCall:        {"CALL", labelOnly},
	OpReturn:      {"RETURN", none},
	OpPushS:       {"PUSHS", symbOnly},
	OpPopS:        {"POPS", varOnly},
	OpAdd:         {"ADD", varSymbSymb},
	OpSub:         {"SUB", varSymbSymb},
	OpMul:         {"MUL", varSymbSymb},
	OpIDiv:        {"IDIV", varSymbSymb},
	OpLt:          {"LT", varSymbSymb},
	OpGt:          {"GT", varSymbSymb},
	OpEq:          {"EQ", varSymbSymb},
	OpAnd:         {"AND", varSymbSymb},
	OpOr:          {"OR", varSymbSymb},
	OpNot:         {"NOT", varSymb},
	OpInt2Char:    {"INT2CHAR", varSymb},
	OpStri2Int:    {"STRI2INT", varSymbSymb},
	OpRead:        {"READ", []Slot{SlotVar, SlotType}},
	OpWrite:       {"WRITE", symbOnly},
	OpConcat:      {"CONCAT", varSymbSymb},
	OpStrLen:      {"STRLEN", varSymb},
	OpGetChar:     {"GETCHAR", varSymbSymb},
	OpSetChar:     {"SETCHAR", varSymbSymb},
	OpType:        {"TYPE", varSymb},
	OpLabel:       {"LABEL", labelOnly},
	OpJump:        {"JUMP", labelOnly},
	OpJumpIfEq:    {"JUMPIFEQ", []Slot{SlotLabel, SlotSymb, SlotSymb}},
	OpJumpIfNeq:   {"JUMPIFNEQ", []Slot{SlotLabel, SlotSymb, SlotSymb}},
	OpExit:        {"EXIT", symbOnly},
	OpDPrint:      {"DPRINT", symbOnly},
	OpBreak:       {"BREAK", none},
}

var opcodeByName = func() map[string]Opcode {
	m := make(map[string]Opcode, OpcodeCount)
	for op := 0; op < OpcodeCount; op++ {
		m[opcodes[op].name] = Opcode(op)
	}
	return m
}()

// String returns the upper-case mnemonic
func (op Opcode) String() string {
	if int(op) < OpcodeCount {
		return opcodes[op].name
	}
	return "UNKNOWN"
}

// Slots returns the operand signature of the opcode
func (op Opcode) Slots() []Slot {
	if int(op) < OpcodeCount {
		return opcodes[op].slots
	}
	return nil
}

// Arity returns the number of operands the opcode takes
func (op Opcode) Arity() int {
	return len(op.Slots())
}

// ParseOpcode maps a mnemonic (any case) to its opcode
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodeByName[strings.ToUpper(name)]
	return op, ok
}
