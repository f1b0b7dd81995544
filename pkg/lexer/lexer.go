package lexer

import "strings"

// Lexer splits IPPcode24 source into tokens. Instructions are line based,
// so newlines are reported while blanks and # comments are dropped.
type Lexer struct {
	input    string   // source text
	position int      // byte offset of the next unread character
	pos      Position // line/column of the next unread character
}

// NewLexer creates a lexer positioned at the start of s
func NewLexer(s string) *Lexer {
	return &Lexer{
		input: s,
		pos:   Position{Line: 1, Column: 1},
	}
}

// NextToken returns the next token, EOF once the input is exhausted
func (l *Lexer) NextToken() Token {
	l.skipBlanks()

	start := l.pos
	if l.position >= len(l.input) {
		return NewToken(EOF, "", "", start)
	}

	tokenType, lexeme, matched := MatchToken(l.input[l.position:])
	if !matched {
		// one byte at a time so the parser can resynchronise on the next line
		lexeme = l.input[l.position : l.position+1]
		l.advance(1)
		return NewToken(ILLEGAL, lexeme, "", start)
	}
	l.advance(len(lexeme))

	literal := lexeme
	switch tokenType {
	case INT, BOOL, STRING, NIL:
		_, literal, _ = strings.Cut(lexeme, "@")
	case NEWLINE:
		literal = ""
	}

	return NewToken(tokenType, lexeme, literal, start)
}

// skipBlanks consumes spaces, tabs, carriage returns and comments
func (l *Lexer) skipBlanks() {
	for l.position < len(l.input) {
		tokenType, lexeme, matched := MatchToken(l.input[l.position:])
		if !matched || tokenType != EOF || lexeme == "" {
			return
		}
		l.advance(len(lexeme))
	}
}

// advance moves n bytes forward, keeping line and column in step
func (l *Lexer) advance(n int) {
	end := min(l.position+n, len(l.input))
	for ; l.position < end; l.position++ {
		if l.input[l.position] == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
	}
	l.pos.Offset = l.position
}
