package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lox/interpreter-go/pkg/token"
)

func tokenTypes(tokens []token.Token) []token.Type {
	types := make([]token.Type, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestScanStatement(t *testing.T) {
	tokens, errs := Scan(`var answer = 42;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	want := []token.Type{token.Var, token.Identifier, token.Equal, token.Number, token.Semicolon, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
	}
	if lit, ok := tokens[3].Literal.(float64); !ok || lit != 42 {
		t.Fatalf("number literal = %#v, want 42", tokens[3].Literal)
	}
}

func TestScanOperators(t *testing.T) {
	tokens, errs := Scan(`! != = == > >= < <= + - * /`)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	want := []token.Type{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
		token.Plus, token.Minus, token.Star, token.Slash, token.EOF,
	}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanStringLiteral(t *testing.T) {
	tokens, errs := Scan(`"hello world"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Type != token.String {
		t.Fatalf("unexpected token %#v", tokens[0])
	}
	if lit, ok := tokens[0].Literal.(string); !ok || lit != "hello world" {
		t.Fatalf("string literal = %#v", tokens[0].Literal)
	}
}

func TestScanMultilineStringAdvancesLine(t *testing.T) {
	tokens, errs := Scan("\"a\nb\"\nx")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[1].Type != token.Identifier || tokens[1].Line != 3 {
		t.Fatalf("identifier after multiline string = %#v, want line 3", tokens[1])
	}
}

func TestScanCommentsAndLines(t *testing.T) {
	tokens, errs := Scan("// intro\nprint 1; // trailing\nprint 2;")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Type != token.Print || tokens[0].Line != 2 {
		t.Fatalf("first token = %#v, want print on line 2", tokens[0])
	}
	if tokens[3].Type != token.Print || tokens[3].Line != 3 {
		t.Fatalf("second print = %#v, want line 3", tokens[3])
	}
}

func TestScanKeywordsVersusIdentifiers(t *testing.T) {
	tokens, errs := Scan("while whileish or orchid nil nils")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	want := []token.Type{token.While, token.Identifier, token.Or, token.Identifier, token.Nil, token.Identifier, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanDecimalNumber(t *testing.T) {
	tokens, errs := Scan("3.25 7.")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if lit, ok := tokens[0].Literal.(float64); !ok || lit != 3.25 {
		t.Fatalf("decimal literal = %#v", tokens[0].Literal)
	}
	// `7.` scans as a number followed by a dot; the dot never folds in.
	want := []token.Type{token.Number, token.Number, token.Dot, token.EOF}
	if diff := cmp.Diff(want, tokenTypes(tokens)); diff != "" {
		t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := Scan("\n\"never closed")
	if len(errs) != 1 {
		t.Fatalf("expected a single error, got %v", errs)
	}
	if errs[0].Line != 2 || errs[0].Message != "Unterminated string." {
		t.Fatalf("unexpected error %#v", errs[0])
	}
}

func TestScanUnexpectedCharacterKeepsGoing(t *testing.T) {
	tokens, errs := Scan("@ #\nprint 1;")
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	if errs[0].Line != 1 || errs[1].Line != 1 {
		t.Fatalf("errors carry wrong lines: %#v", errs)
	}
	if tokens[0].Type != token.Print {
		t.Fatalf("scanning did not continue past bad characters: %#v", tokens[0])
	}
}
