package loxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/vars"
)

const DefaultPrompt = "lox >>> "

var (
	promptFlag        = cmds.Var[string]("-prompt", "set the interactive prompt")
	allowTrailingFlag = cmds.Switch("-allow-trailing", "ignore tokens after the first expression")
	printTokensFlag   = cmds.Switch("-tokens", "print the token table")
)

type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		DefaultPrompt,
	))
}

type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".lox_history"))
}

type AllowTrailing bool

func (Module) AllowTrailing(
	loader configs.Loader,
) AllowTrailing {
	return AllowTrailing(*allowTrailingFlag || configs.First[bool](loader, "allow_trailing"))
}

type PrintTokens bool

func (Module) PrintTokens(
	loader configs.Loader,
) PrintTokens {
	return PrintTokens(*printTokensFlag || configs.First[bool](loader, "print_tokens"))
}
