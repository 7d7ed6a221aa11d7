package debugs

import (
	"context"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/reusee/lox/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound. It returns when the
// REPL reads EOF.
type Tap func(ctx context.Context, what string, globals map[string]any)

type TapOutput io.Writer

func (Module) TapOutput() TapOutput {
	return os.Stdout
}

func (Module) Tap(
	logger logs.Logger,
	output TapOutput,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
			Print: func(_ *starlark.Thread, msg string) {
				io.WriteString(output, msg+"\n")
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts Go values to starlark values.
func Globals(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
