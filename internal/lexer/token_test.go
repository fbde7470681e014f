package lexer_test

import (
	"testing"

	"github.com/darren11992/craftingInterpreters/internal/lexer"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok      lexer.Token
		expected string
	}{
		{lexer.NewToken(lexer.NUMBER, "10", 10.0, 1), "NUMBER 10 10.0"},
		{lexer.NewToken(lexer.NUMBER, "1.50", 1.5, 1), "NUMBER 1.50 1.5"},
		{lexer.NewToken(lexer.STRING, `"hi"`, "hi", 1), `STRING "hi" hi`},
		{lexer.NewToken(lexer.BANG_EQUAL, "!=", nil, 1), "BANG_EQUAL != null"},
		{lexer.NewToken(lexer.EOF, "", nil, 3), "EOF  null"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := lexer.GREATER_EQUAL.String(); got != "GREATER_EQUAL" {
		t.Errorf("expected GREATER_EQUAL, got %q", got)
	}
	if got := lexer.EOF.String(); got != "EOF" {
		t.Errorf("expected EOF, got %q", got)
	}
	if got := lexer.TokenType(999).String(); got != "TokenType(999)" {
		t.Errorf("expected TokenType(999), got %q", got)
	}
}

func TestLookupIdent(t *testing.T) {
	if got := lexer.LookupIdent("while"); got != lexer.WHILE {
		t.Errorf("expected WHILE, got %v", got)
	}
	if got := lexer.LookupIdent("While"); got != lexer.IDENTIFIER {
		t.Errorf("expected IDENTIFIER, got %v", got)
	}
}
