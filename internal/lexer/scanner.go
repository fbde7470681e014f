package lexer

import (
	"fmt"
	"strconv"
)

const (
	msgUnexpectedCharacter = "Unexpected character"
	msgUnterminatedString  = "Unterminated string."
)

// ErrorHandler receives lexical errors. It is called with the 1-based line
// the error was found on and must not stop the scan.
type ErrorHandler func(line int, msg string)

// Scanner turns Lox source into tokens in a single pass. A Scanner is
// single use: create one per source text.
type Scanner struct {
	source string
	report ErrorHandler
	tokens []Token

	start     int // first byte of the lexeme being scanned
	current   int // next unconsumed byte
	line      int
	startLine int // line of source[start]
	done      bool
}

func NewScanner(source string, report ErrorHandler) *Scanner {
	return &Scanner{
		source: source,
		report: report,
		line:   1,
	}
}

// Scan runs a fresh scanner over source.
func Scan(source string, report ErrorHandler) []Token {
	return NewScanner(source, report).ScanTokens()
}

// ScanTokens consumes the whole source and returns the tokens, always
// terminated by one EOF token. Lexical errors go to the ErrorHandler and
// produce no token.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.scanToken()
	}

	if !s.done {
		s.tokens = append(s.tokens, NewToken(EOF, "", nil, s.line))
		s.done = true
	}
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '-':
		s.addToken(MINUS)
	case '+':
		s.addToken(PLUS)
	case ';':
		s.addToken(SEMICOLON)
	case '*':
		s.addToken(STAR)

	case '!':
		s.addToken(s.either('=', BANG_EQUAL, BANG))
	case '=':
		s.addToken(s.either('=', EQUAL_EQUAL, EQUAL))
	case '<':
		s.addToken(s.either('=', LESS_EQUAL, LESS))
	case '>':
		s.addToken(s.either('=', GREATER_EQUAL, GREATER))

	case '/':
		if s.match('/') {
			// Comment runs to the end of the line; the newline itself is
			// left for the next scanToken.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(SLASH)
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
			s.errorAt(s.line, fmt.Sprintf("%s '%c'.", msgUnexpectedCharacter, c))
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.errorAt(s.line, msgUnterminatedString)
		return
	}

	// closing "
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addLiteral(STRING, value)
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A '.' only belongs to the number when a digit follows it.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// The lexeme is digits with an optional fraction, so the only possible
	// error is ErrRange, for which ParseFloat already returns ±Inf.
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteral(NUMBER, value)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	s.addToken(LookupIdent(s.source[s.start:s.current]))
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the next byte only if it is expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) either(next byte, two, one TokenType) TokenType {
	if s.match(next) {
		return two
	}
	return one
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(typ TokenType) {
	s.addLiteral(typ, nil)
}

func (s *Scanner) addLiteral(typ TokenType, literal any) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, NewToken(typ, text, literal, s.startLine))
}

func (s *Scanner) errorAt(line int, msg string) {
	if s.report != nil {
		s.report(line, msg)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
