package runners

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/loxlang"
	"golang.org/x/term"
)

var tapFlag = cmds.Switch("-tap", "inspect each result in a starlark REPL")

type StdinTerminal bool

func (Module) StdinTerminal() StdinTerminal {
	return StdinTerminal(term.IsTerminal(int(os.Stdin.Fd())))
}

// TapEnabled is off when stdin is not a terminal, since the tap REPL reads
// stdin too.
type TapEnabled bool

func (Module) TapEnabled(
	stdinTerminal StdinTerminal,
) TapEnabled {
	return TapEnabled(*tapFlag && bool(stdinTerminal))
}

// RunSource scans and parses one source, printing the tree to Stdout and
// diagnostics to Stderr.
type RunSource func(ctx context.Context, source *loxlang.Source) (*loxlang.Result, error)

func (Module) RunSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	stdout Stdout,
	stderr Stderr,
	allowTrailing loxconfigs.AllowTrailing,
	printTokens loxconfigs.PrintTokens,
	tapEnabled TapEnabled,
	tap debugs.Tap,
) RunSource {
	errColor := color.New(color.FgRed, color.Bold)

	return func(ctx context.Context, source *loxlang.Source) (*loxlang.Result, error) {
		ctx, _ = newSpan(ctx, "run "+source.Name)

		result, err := loxlang.Run(source, loxlang.Options{
			AllowTrailing: bool(allowTrailing),
			Diagnostics: colorWriter{
				w:     stderr,
				color: errColor,
			},
			Logger: logger,
		})

		if printTokens {
			for _, tok := range result.Tokens.Tokens {
				fmt.Fprintln(stdout, tok)
			}
		}

		var tree string
		if err != nil {
			report(stderr, errColor, err, result)
			logger.DebugContext(ctx, "run failed",
				"source", source.Name,
				"error", err,
			)
		} else {
			tree = loxlang.Sprint(result.Expr)
			fmt.Fprintln(stdout, tree)
		}

		if tapEnabled {
			var errs []string
			for _, e := range result.Tokens.Errors {
				errs = append(errs, e.Error())
			}
			if err != nil && len(errs) == 0 {
				errs = append(errs, err.Error())
			}
			tap(ctx, "run "+source.Name, map[string]any{
				"tokens": result.Tokens.Tokens,
				"errors": errs,
				"expr":   result.Expr,
				"tree":   tree,
			})
		}

		return result, err
	}
}

// report prints what the parser has not already written: every lexical
// error, or the source context of a syntax error.
func report(w io.Writer, c *color.Color, err error, result *loxlang.Result) {
	if errors.Is(err, loxlang.ErrLexical) {
		for _, e := range result.Tokens.Errors {
			c.Fprintln(w, e.Error())
			var posErr loxlang.PosError
			if errors.As(e, &posErr) {
				io.WriteString(w, posErr.Context())
			}
		}
		return
	}
	var posErr loxlang.PosError
	if errors.As(err, &posErr) {
		io.WriteString(w, posErr.Context())
	}
}

// Reported tells whether err was already written to Stderr by RunSource.
func Reported(err error) bool {
	if errors.Is(err, loxlang.ErrLexical) {
		return true
	}
	var posErr loxlang.PosError
	return errors.As(err, &posErr)
}

type colorWriter struct {
	w     io.Writer
	color *color.Color
}

func (c colorWriter) Write(p []byte) (int, error) {
	if _, err := c.color.Fprint(c.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
