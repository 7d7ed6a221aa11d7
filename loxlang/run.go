package loxlang

import (
	"fmt"
	"io"
	"log/slog"
)

type Options struct {
	AllowTrailing bool
	Diagnostics   io.Writer    // if nil, default to os.Stderr
	Logger        *slog.Logger // if nil, logs are discarded
}

type Result struct {
	Tokens *TokenTable
	Expr   Expr
}

// Run scans and parses one source. Lexical errors are returned as a batch
// wrapped in ErrLexical and the parse is not attempted.
func Run(source *Source, options Options) (*Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	table := Scan(source)
	logger.Debug("scanned",
		"source", source.Name,
		"tokens", table.Len(),
		"errors", len(table.Errors),
	)
	result := &Result{
		Tokens: table,
	}
	if table.HasErrors() {
		return result, fmt.Errorf("%w: %w", ErrLexical, table.Errors)
	}

	parserOptions := []ParserOption{
		WithLogger(logger),
	}
	if options.Diagnostics != nil {
		parserOptions = append(parserOptions, WithDiagnostics(options.Diagnostics))
	}
	if options.AllowTrailing {
		parserOptions = append(parserOptions, AllowTrailing())
	}
	expr, err := NewParser(table, parserOptions...).Parse()
	if err != nil {
		return result, err
	}
	result.Expr = expr
	logger.Debug("parsed",
		"source", source.Name,
		"expr", Sprint(expr),
	)

	return result, nil
}
