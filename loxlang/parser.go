package loxlang

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Parser struct {
	table  *TokenTable
	cursor int

	allowTrailing bool
	diagnostics   io.Writer
	logger        *slog.Logger
}

type ParserOption func(*Parser)

// AllowTrailing makes Parse stop after the first expression and ignore the
// tokens after it.
func AllowTrailing() ParserOption {
	return func(p *Parser) {
		p.allowTrailing = true
	}
}

// WithDiagnostics sets where syntax errors are written when they are raised.
// Defaults to os.Stderr.
func WithDiagnostics(w io.Writer) ParserOption {
	return func(p *Parser) {
		p.diagnostics = w
	}
}

func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

func NewParser(table *TokenTable, options ...ParserOption) *Parser {
	if !table.WellFormed() {
		panic(fmt.Errorf("token table must end with exactly one %v token", EOF))
	}
	p := &Parser{
		table:       table,
		diagnostics: os.Stderr,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse parses one expression starting at the current token. Unless
// AllowTrailing is set, the expression must span the rest of the table.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.allowTrailing && !p.isAtEnd() {
		tok := p.peek()
		return nil, p.error(tok, fmt.Errorf("%w %q", ErrTrailingTokens, tok.Lexeme))
	}
	return expr, nil
}

func (p *Parser) Expression() (Expr, error) {
	return p.equality()
}

func (p *Parser) Current() Token {
	return p.peek()
}

// Synchronize skips the current token, then discards tokens up to the next
// statement boundary or EOF.
func (p *Parser) Synchronize() {
	if p.isAtEnd() {
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.peek().Type.StartsStatement() {
			return
		}
		p.advance()
	}
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, TokenType.IsEquality)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, TokenType.IsComparison)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, TokenType.IsTerm)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, TokenType.IsFactor)
}

// binary parses operand ( op operand )* folding to the left.
func (p *Parser) binary(
	operand func() (Expr, error),
	isOperator func(TokenType) bool,
) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for isOperator(p.peek().Type) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:  expr,
			Op:    OpsFromTokenType(op.Type),
			Right: right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	tok := p.peek()
	if tok.Type.IsUnary() {
		p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{
			Sign:    SignFromTokenType(tok.Type),
			Operand: operand,
		}, nil
	}

	if !tok.Type.StartsExpression() {
		if tok.Type == EOF {
			return nil, p.error(tok, fmt.Errorf("reached end of input, %w", ErrExpectedExpression))
		}
		return nil, p.error(tok, fmt.Errorf("%w, got %q", ErrExpectedExpression, tok.Lexeme))
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {

	case True:
		return &Literal{Lit: Lit{Kind: LitTrue}}, nil
	case False:
		return &Literal{Lit: Lit{Kind: LitFalse}}, nil
	case Nil:
		return &Literal{Lit: Lit{Kind: LitNil}}, nil
	case Number:
		return &Literal{Lit: Lit{Kind: LitNum, Value: tok.Literal}}, nil
	case String:
		return &Literal{Lit: Lit{Kind: LitStr, Value: tok.Literal}}, nil

	case LeftParen:
		inner, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, ErrUnclosedGroup); err != nil {
			return nil, err
		}
		return &Grouping{Inner: inner}, nil

	}

	// unary only delegates tokens that start an expression
	panic(fmt.Errorf("invalid primary token %v %q", tok.Type, tok.Lexeme))
}

func (p *Parser) consume(typ TokenType, err error) (Token, error) {
	tok := p.peek()
	if tok.Type == typ {
		return p.advance(), nil
	}
	if tok.Type == EOF {
		err = fmt.Errorf("reached end of input, %w", err)
	}
	return Token{}, p.error(tok, err)
}

func (p *Parser) peek() Token {
	return p.table.Tokens[p.cursor]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) advance() Token {
	if p.isAtEnd() {
		panic(fmt.Errorf("advance past end of token table"))
	}
	tok := p.peek()
	p.cursor++
	return tok
}

// error builds a syntax error and reports it right away.
func (p *Parser) error(tok Token, err error) error {
	perr := WithPos(err, tok.Pos(p.table.Source))
	if p.diagnostics != nil {
		fmt.Fprintln(p.diagnostics, perr.Error())
	}
	p.logger.Debug("syntax error",
		"token", tok.Type,
		"line", tok.Line,
		"column", tok.Column,
		"error", err,
	)
	return perr
}
