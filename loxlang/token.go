package loxlang

import "fmt"

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Value
	Line    int
	Column  int
}

func NewToken(typ TokenType, lexeme string, literal Value) Token {
	if literal == nil {
		literal = None
	}
	return Token{
		Type:    typ,
		Lexeme:  lexeme,
		Literal: literal,
	}
}

// Equal compares type, lexeme and literal. Positions are ignored.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type &&
		t.Lexeme == other.Lexeme &&
		literalOrNone(t.Literal) == literalOrNone(other.Literal)
}

// Pos locates the token in source.
func (t Token) Pos(source *Source) Pos {
	return Pos{
		Source: source,
		Line:   t.Line,
		Column: t.Column,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q %v %d:%d", t.Type, t.Lexeme, literalOrNone(t.Literal), t.Line, t.Column)
}

func literalOrNone(v Value) Value {
	if v == nil {
		return None
	}
	return v
}
