package parser

import (
	"errors"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/lexer"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

type Parser struct {
	lexer        *lexer.Lexer          // lexer instance
	currentToken lexer.Token           // current token
	records      []program.Instruction // parsed instructions in source order
	errors       []string              // list of errors
	errorKind    fault.Kind            // kind of the first error
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer:  l,
		errors: []string{},
	}

	// Initialize current token
	p.nextToken()

	return p
}

// Parse reads the header and then one instruction per line
func (p *Parser) Parse() {
	p.skipNewlines()

	if p.currentToken.Type != lexer.HEADER {
		p.addError(fault.SourceFormat, "Missing header "+program.Language)
		return
	}
	p.nextToken()
	if !p.atLineEnd() {
		p.addError(fault.SourceFormat, "Unexpected token after header")
		p.skipLine()
	}

	for {
		p.skipNewlines()
		if p.currentToken.Type == lexer.EOF {
			return
		}
		p.parseInstruction()
	}
}

// parseInstruction parses `OPCODE operand*` up to the end of the line
func (p *Parser) parseInstruction() {
	if p.currentToken.Type != lexer.ID {
		p.handleUnexpectedToken("Expected opcode")
		return
	}

	op, ok := program.ParseOpcode(p.currentToken.Lexeme)
	if !ok {
		p.addError(fault.Structural, "Unknown opcode `"+p.currentToken.Lexeme+"`")
		p.skipLine()
		return
	}
	p.nextToken()

	slots := op.Slots()
	args := []program.Symbol{}
	for !p.atLineEnd() {
		if !p.currentToken.Type.IsOperand() {
			p.handleUnexpectedToken("Expected operand")
			return
		}

		slot := program.SlotSymb
		if len(args) < len(slots) {
			slot = slots[len(args)]
		}

		sym, err := operand(p.currentToken, slot)
		if err != nil {
			msg := err.Error()
			var fe *fault.Error
			if errors.As(err, &fe) {
				msg = fe.Msg
			}
			p.addError(fault.KindOf(err), msg)
			p.skipLine()
			return
		}
		args = append(args, sym)
		p.nextToken()
	}

	p.records = append(p.records, program.Instruction{
		Op:    op,
		Order: len(p.records) + 1,
		Args:  args,
	})
}

// operand converts a token into a Symbol, bare words become labels or type names by slot
func operand(tok lexer.Token, slot program.Slot) (program.Symbol, error) {
	switch tok.Type {
	case lexer.VAR:
		return program.ParseOperand("var", tok.Lexeme)
	case lexer.INT, lexer.BOOL, lexer.STRING, lexer.NIL:
		return program.ParseOperand(tok.Type.String(), tok.Literal)
	}

	if slot == program.SlotType {
		return program.ParseOperand("type", tok.Lexeme)
	}
	return program.ParseOperand("label", tok.Lexeme)
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

func (p *Parser) atLineEnd() bool {
	return p.currentToken.Type == lexer.NEWLINE || p.currentToken.Type == lexer.EOF
}

func (p *Parser) skipNewlines() {
	for p.currentToken.Type == lexer.NEWLINE {
		p.nextToken()
	}
}

// skipLine drops the rest of the current line
func (p *Parser) skipLine() {
	for !p.atLineEnd() {
		p.nextToken()
	}
}

// Records returns the instructions parsed so far
func (p *Parser) Records() []program.Instruction {
	return p.records
}

// Parse parses textual source into a linearised program.
// The first recorded error is returned as a fault of its kind.
func Parse(src string) (*program.Program, error) {
	p := NewParser(lexer.NewLexer(src))
	p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		return nil, fault.Errorf(p.errorKind, "%s", errs[0])
	}

	return program.NewProgram(p.records)
}
