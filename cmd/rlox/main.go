package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/runners"
)

var filePath = cmds.Var[string]("run", "scan and parse a .lox file")

func main() {
	args := os.Args[1:]
	// rlox <path> is rlox run <path>
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") && !cmds.Has(args[0]) {
		args = append([]string{"run"}, args...)
	}
	if err := cmds.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		loader configs.Loader,
	) {
		err = loader.Validate()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	scope.Call(func(
		logger logs.Logger,
		runFile runners.RunFile,
		runREPL runners.RunREPL,
		runReader runners.RunReader,
		stdinTerminal runners.StdinTerminal,
	) {
		switch {
		case *filePath != "":
			err = runFile(ctx, *filePath)
		case bool(stdinTerminal):
			err = runREPL(ctx)
		default:
			err = runReader(ctx, "<stdin>", os.Stdin)
		}
		if err != nil {
			logger.DebugContext(ctx, "exit", "error", err)
		}
	})

	if err != nil {
		if !runners.Reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
