package lexer

import (
	"regexp"
)

const nameChars = `A-Za-z0-9_\-$&%*!?`

// Token patterns, all anchored at the start of the remaining input
var tokenRegexes = map[TokenType]*regexp.Regexp{
	HEADER: regexp.MustCompile(`^(?i)\.ippcode24\b`),

	VAR:    regexp.MustCompile(`^(GF|LF|TF)@[^\s#]*`),
	INT:    regexp.MustCompile(`^int@[^\s#]*`),
	BOOL:   regexp.MustCompile(`^bool@[^\s#]*`),
	STRING: regexp.MustCompile(`^string@[^\s#]*`),
	NIL:    regexp.MustCompile(`^nil@[^\s#]*`),

	ID: regexp.MustCompile(`^[` + nameChars + `]+`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^[ \t\r]+`)
	commentRegex    = regexp.MustCompile(`^#[^\n]*`)
	newlineRegex    = regexp.MustCompile(`^\n`)
)

// Token precedence order for matching (typed operands before bare identifiers)
var tokenPrecedenceOrder = []TokenType{
	HEADER, VAR, STRING, BOOL, INT, NIL, ID,
}

// Match the first token at the start of the string.
// Whitespace and comments are reported as EOF with the skipped lexeme.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := newlineRegex.FindString(s); match != "" {
		return NEWLINE, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		match := tokenRegexes[tokenType].FindString(s)
		if match == "" {
			continue
		}
		// a typed operand must end at a separator, otherwise it is part of a longer word
		if tokenType != ID && !atBoundary(s, len(match)) {
			continue
		}
		return tokenType, match, true
	}

	return ILLEGAL, string(s[0]), false
}

// atBoundary checks that s[n] ends a token
func atBoundary(s string, n int) bool {
	if n >= len(s) {
		return true
	}
	switch s[n] {
	case ' ', '\t', '\r', '\n', '#':
		return true
	}
	return false
}
