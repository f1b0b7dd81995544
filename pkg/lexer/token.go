package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Text after the '@' for literals, the whole lexeme otherwise
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, Pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     Pos,
	}
}

const (
	NONE TokenCategory = iota
	HEADING
	IDENTIFIER
	VARIABLE
	LITERAL
	SEPARATOR
)

const (
	EOF TokenType = iota // End of file

	NEWLINE // end of an instruction line
	HEADER  // .IPPcode24

	VAR    // GF@name, LF@name, TF@name
	INT    // int@42
	BOOL   // bool@true
	STRING // string@text
	NIL    // nil@nil
	ID     // opcode, label or type name

	ILLEGAL // illegal token
)

var tokenNames = map[TokenType]string{
	EOF:     "$",
	NEWLINE: "newline",
	HEADER:  "header",
	VAR:     "var",
	INT:     "int",
	BOOL:    "bool",
	STRING:  "string",
	NIL:     "nil",
	ID:      "id",
	ILLEGAL: "illegal",
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %v, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %v, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch t {
	case HEADER:
		return HEADING
	case ID:
		return IDENTIFIER
	case VAR:
		return VARIABLE
	case INT, BOOL, STRING, NIL:
		return LITERAL
	case NEWLINE:
		return SEPARATOR
	default:
		return NONE
	}
}

// IsOperand checks if the token can stand in an operand position
func (t TokenType) IsOperand() bool {
	switch t.GetCategory() {
	case IDENTIFIER, VARIABLE, LITERAL:
		return true
	}
	return false
}
