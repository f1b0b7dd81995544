package lexer

import "fmt"

// Position locates a token in the source, Line and Column are 1-based
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
