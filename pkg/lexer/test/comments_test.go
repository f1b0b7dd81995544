package lexer_test

import (
	"testing"

	"github.com/cinskabotanicka/IPP2/pkg/lexer"
)

func TestComments(t *testing.T) {
	input := `# test comment
.IPPcode24 # header comment
DEFVAR GF@x#no space before comment
# another comment
WRITE GF@x`

	mylexer := lexer.NewLexer(input)
	expectedTokens := []lexer.TokenType{
		lexer.NEWLINE,
		lexer.HEADER, lexer.NEWLINE,
		lexer.ID, lexer.VAR, lexer.NEWLINE,
		lexer.NEWLINE,
		lexer.ID, lexer.VAR,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}
