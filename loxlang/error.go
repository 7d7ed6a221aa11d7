package loxlang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnclosedGroup       = errors.New(`expected ")" to close expression`)
	ErrExpectedExpression  = errors.New("expected expression")
	ErrTrailingTokens      = errors.New("unexpected trailing token")
	ErrLexical             = errors.New("errors during lexing")
)

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Column < 0 {
		return fmt.Sprintf("[line: %d] Error: %s", p.Pos.Line, p.Err.Error())
	}
	return fmt.Sprintf("[line: %d column: %d] Error: %s", p.Pos.Line, p.Pos.Column, p.Err.Error())
}

func (p PosError) Unwrap() error {
	return p.Err
}

// Detail renders the message followed by Context.
func (p PosError) Detail() string {
	return p.Error() + "\n" + p.Context()
}

// Context renders the offending source line with a caret under the column.
// It is empty when no source is attached.
func (p PosError) Context() string {
	if p.Pos.Source == nil {
		return ""
	}
	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	line := lines[idx]

	var sb strings.Builder
	if p.Pos.Source.Name != "" {
		sb.WriteString(fmt.Sprintf("  --> %s:%d\n", p.Pos.Source.Name, p.Pos.Line))
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	if p.Pos.Column < 0 {
		return sb.String()
	}
	for i, r := range []rune(line) {
		if i >= p.Pos.Column {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for range runewidth.RuneWidth(r) {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

// Errors is a batch of positioned diagnostics collected during one pass.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (e Errors) Unwrap() []error {
	return e
}

// Err returns nil for an empty batch.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
