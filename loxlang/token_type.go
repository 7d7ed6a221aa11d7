package loxlang

import "fmt"

type TokenType uint8

const (
	// single-character tokens
	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF

	numTokenTypes
)

var tokenTypeNames = [numTokenTypes]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Minus:        "Minus",
	Plus:         "Plus",
	Semicolon:    "Semicolon",
	Slash:        "Slash",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Identifier:   "Identifier",
	String:       "String",
	Number:       "Number",
	And:          "And",
	Class:        "Class",
	Else:         "Else",
	False:        "False",
	Fun:          "Fun",
	For:          "For",
	If:           "If",
	Nil:          "Nil",
	Or:           "Or",
	Print:        "Print",
	Return:       "Return",
	Super:        "Super",
	This:         "This",
	True:         "True",
	Var:          "Var",
	While:        "While",
	EOF:          "Eof",
}

func (t TokenType) String() string {
	if t < numTokenTypes {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

var keywords = map[string]TokenType{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword reports the keyword type of an identifier lexeme.
func LookupKeyword(text string) (TokenType, bool) {
	t, ok := keywords[text]
	return t, ok
}

func (t TokenType) IsKeyword() bool {
	return t >= And && t <= While
}

func (t TokenType) IsEquality() bool {
	return t == EqualEqual || t == BangEqual
}

func (t TokenType) IsComparison() bool {
	switch t {
	case Greater, GreaterEqual, Less, LessEqual:
		return true
	}
	return false
}

func (t TokenType) IsTerm() bool {
	return t == Minus || t == Plus
}

func (t TokenType) IsFactor() bool {
	return t == Slash || t == Star
}

func (t TokenType) IsUnary() bool {
	return t == Bang || t == Minus
}

// StartsExpression reports whether an expression may begin with t.
func (t TokenType) StartsExpression() bool {
	switch t {
	case Bang, Minus,
		Number, String, True, False, Nil,
		LeftParen:
		return true
	}
	return false
}

// StartsStatement reports whether t marks a statement boundary for error recovery.
func (t TokenType) StartsStatement() bool {
	switch t {
	case Semicolon, Class, Fun, Var, For, If, While, Print, Return:
		return true
	}
	return false
}
