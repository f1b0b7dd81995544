package parser

import (
	"fmt"

	"github.com/cinskabotanicka/IPP2/pkg/color"
	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/lexer"
)

// handleUnexpectedToken reports a token that cannot start or continue an instruction
// and resynchronises on the next line.
func (p *Parser) handleUnexpectedToken(expected string) {
	if p.currentToken.Type == lexer.ILLEGAL {
		p.addError(fault.SourceFormat, fmt.Sprintf("Illegal character '%s'", p.currentToken.Lexeme))
	} else if p.currentToken.Type == lexer.HEADER {
		p.addError(fault.SourceFormat, "Duplicate header")
	} else {
		p.addError(fault.SourceFormat, fmt.Sprintf("%s, found %s `%s`", expected, p.currentToken.Type, p.currentToken.Lexeme))
	}
	p.skipLine()
}

// addError records a parsing error with location
func (p *Parser) addError(kind fault.Kind, msg string) {
	if len(p.errors) == 0 {
		p.errorKind = kind
	}
	pos := p.currentToken.Pos
	formatted := color.RedText(msg) + " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
	p.errors = append(p.errors, formatted)
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}
