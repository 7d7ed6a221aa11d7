package runners

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/loxlang"
)

type LineReader interface {
	Readline() (string, error)
	Close() error
}

type NewLineReader func() (LineReader, error)

func (Module) NewLineReader(
	prompt loxconfigs.Prompt,
	historyFile loxconfigs.HistoryFile,
) NewLineReader {
	return func() (LineReader, error) {
		return readline.NewEx(&readline.Config{
			Prompt:          string(prompt),
			HistoryFile:     string(historyFile),
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
	}
}

// RunREPL runs each input line as its own program until exit, quit or EOF.
type RunREPL func(ctx context.Context) error

func (Module) RunREPL(
	newLineReader NewLineReader,
	runSource RunSource,
	logger logs.Logger,
) RunREPL {
	return func(ctx context.Context) error {
		rl, err := newLineReader()
		if err != nil {
			return wrap(err)
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			if err != nil {
				return wrap(err)
			}

			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "exit", "quit":
				return nil
			}

			if _, err := runSource(ctx, loxlang.NewSource("", line)); err != nil {
				logger.DebugContext(ctx, "repl line failed", "error", err)
			}
		}
	}
}
