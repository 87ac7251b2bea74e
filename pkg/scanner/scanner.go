// Package scanner implements the Lox tokenizer.
package scanner

import (
	"fmt"
	"strconv"

	"lox/interpreter-go/pkg/token"
)

// Error is a lexical error tagged with the line it occurred on.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

var keywords = map[string]token.Type{
	"and":    token.And,
	"class":  token.Class,
	"else":   token.Else,
	"false":  token.False,
	"fun":    token.Fun,
	"for":    token.For,
	"if":     token.If,
	"nil":    token.Nil,
	"or":     token.Or,
	"print":  token.Print,
	"return": token.Return,
	"super":  token.Super,
	"this":   token.This,
	"true":   token.True,
	"var":    token.Var,
	"while":  token.While,
}

type scanner struct {
	source  string
	tokens  []token.Token
	errors  []*Error
	start   int
	current int
	line    int
}

// Scan tokenizes source, always terminating the stream with an EOF token.
// All lexical errors are collected rather than stopping at the first.
func Scan(source string) ([]token.Token, []*Error) {
	s := &scanner{source: source, line: 1}
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.EOFToken(s.line))
	return s.tokens, s.errors
}

func (s *scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.add(token.LeftParen)
	case ')':
		s.add(token.RightParen)
	case '{':
		s.add(token.LeftBrace)
	case '}':
		s.add(token.RightBrace)
	case ',':
		s.add(token.Comma)
	case '.':
		s.add(token.Dot)
	case '-':
		s.add(token.Minus)
	case '+':
		s.add(token.Plus)
	case ';':
		s.add(token.Semicolon)
	case '*':
		s.add(token.Star)
	case '!':
		if s.match('=') {
			s.add(token.BangEqual)
		} else {
			s.add(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.add(token.EqualEqual)
		} else {
			s.add(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.add(token.LessEqual)
		} else {
			s.add(token.Less)
		}
	case '>':
		if s.match('=') {
			s.add(token.GreaterEqual)
		} else {
			s.add(token.Greater)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.current++
			}
		} else {
			s.add(token.Slash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.errorf("Unexpected character '%c'.", c)
		}
	}
}

func (s *scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}
	if s.atEnd() {
		s.errorf("Unterminated string.")
		return
	}
	s.current++ // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addLiteral(token.String, value)
}

func (s *scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.current++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}
	lexeme := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf("Invalid number literal '%s'.", lexeme)
		return
	}
	s.addLiteral(token.Number, value)
}

func (s *scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	lexeme := s.source[s.start:s.current]
	if kw, ok := keywords[lexeme]; ok {
		s.add(kw)
		return
	}
	s.add(token.Identifier)
}

func (s *scanner) add(typ token.Type) {
	s.addLiteral(typ, nil)
}

func (s *scanner) addLiteral(typ token.Type, literal any) {
	s.tokens = append(s.tokens, token.New(typ, s.source[s.start:s.current], literal, s.line))
}

func (s *scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) errorf(format string, args ...any) {
	s.errors = append(s.errors, &Error{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
