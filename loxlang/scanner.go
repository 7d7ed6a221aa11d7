package loxlang

import (
	"fmt"
	"strconv"
)

type Scanner struct {
	source *Source
	runes  []rune
	table  *TokenTable

	cursor int
	line   int
	column int

	start       int
	startLine   int
	startColumn int
}

func NewScanner(source *Source) *Scanner {
	return &Scanner{
		source: source,
		runes:  []rune(source.Content),
		table: &TokenTable{
			Source: source,
		},
		line: 1,
	}
}

// Scan scans the whole source into a token table. Lexical errors are
// collected in the table and never stop the pass.
func Scan(source *Source) *TokenTable {
	return NewScanner(source).Scan()
}

func ScanString(content string) *TokenTable {
	return Scan(NewSource("", content))
}

func (s *Scanner) Scan() *TokenTable {
	for !s.isAtEnd() {
		s.start = s.cursor
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.table.add(Token{
		Type:    EOF,
		Literal: None,
		Line:    s.line,
		Column:  s.column,
	})
	return s.table
}

func (s *Scanner) isAtEnd() bool {
	return s.cursor >= len(s.runes)
}

func (s *Scanner) advance() rune {
	r := s.runes[s.cursor]
	s.cursor++
	if r == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return r
}

func (s *Scanner) peek(n int) (rune, bool) {
	if s.cursor+n >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.cursor+n], true
}

func (s *Scanner) match(expected rune) bool {
	if r, ok := s.peek(0); !ok || r != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) scanToken() {
	r := s.advance()
	switch r {

	case '(':
		s.addToken(LeftParen, None)
	case ')':
		s.addToken(RightParen, None)
	case '{':
		s.addToken(LeftBrace, None)
	case '}':
		s.addToken(RightBrace, None)
	case ',':
		s.addToken(Comma, None)
	case '.':
		s.addToken(Dot, None)
	case '-':
		s.addToken(Minus, None)
	case '+':
		s.addToken(Plus, None)
	case ';':
		s.addToken(Semicolon, None)
	case '*':
		s.addToken(Star, None)

	case '!':
		s.addToken(s.either('=', BangEqual, Bang), None)
	case '=':
		s.addToken(s.either('=', EqualEqual, Equal), None)
	case '<':
		s.addToken(s.either('=', LessEqual, Less), None)
	case '>':
		s.addToken(s.either('=', GreaterEqual, Greater), None)

	case '/':
		if s.match('/') {
			s.skipComment()
		} else {
			s.addToken(Slash, None)
		}

	case ' ', '\r', '\t', '\n':
		// line and column already updated by advance

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(r):
			s.scanNumber()
		case isAlpha(r):
			s.scanIdentifier()
		default:
			s.errorAt(s.startLine, s.startColumn, fmt.Errorf("%w: %q", ErrUnexpectedCharacter, r))
		}

	}
}

func (s *Scanner) either(next rune, matched TokenType, single TokenType) TokenType {
	if s.match(next) {
		return matched
	}
	return single
}

func (s *Scanner) skipComment() {
	for {
		r, ok := s.peek(0)
		if !ok || r == '\n' {
			return
		}
		s.advance()
	}
}

func (s *Scanner) scanString() {
	for {
		if s.isAtEnd() {
			s.errorAt(s.startLine, s.startColumn, ErrUnterminatedString)
			return
		}
		if s.advance() == '"' {
			break
		}
	}
	text := string(s.runes[s.start+1 : s.cursor-1])
	s.addToken(String, Str(text))
}

func (s *Scanner) scanNumber() {
	s.digits()
	if r, ok := s.peek(0); ok && r == '.' {
		if next, ok := s.peek(1); ok && isDigit(next) {
			s.advance()
			s.digits()
		}
	}
	lexeme := s.lexeme()
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// digits with at most one inner dot always parse
		panic(fmt.Errorf("invalid number lexeme %q: %w", lexeme, err))
	}
	s.addToken(Number, Num(f))
}

func (s *Scanner) digits() {
	for {
		r, ok := s.peek(0)
		if !ok || !isDigit(r) {
			return
		}
		s.advance()
	}
}

func (s *Scanner) scanIdentifier() {
	for {
		r, ok := s.peek(0)
		if !ok || !isAlpha(r) {
			break
		}
		s.advance()
	}
	typ := Identifier
	if keyword, ok := LookupKeyword(s.lexeme()); ok {
		typ = keyword
	}
	s.addToken(typ, None)
}

func (s *Scanner) lexeme() string {
	return string(s.runes[s.start:s.cursor])
}

func (s *Scanner) addToken(typ TokenType, literal Value) {
	s.table.add(Token{
		Type:    typ,
		Lexeme:  s.lexeme(),
		Literal: literal,
		Line:    s.startLine,
		Column:  s.startColumn,
	})
}

func (s *Scanner) errorAt(line, column int, err error) {
	s.table.Errors = append(s.table.Errors, WithPos(err, Pos{
		Source: s.source,
		Line:   line,
		Column: column,
	}))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}
