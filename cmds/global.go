package cmds

import "os"

var GlobalExecutor = NewExecutor()

func init() {
	GlobalExecutor.Define("-h", Func(func() {
		GlobalExecutor.PrintUsage(os.Stdout)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func Has(name string) bool {
	return GlobalExecutor.Has(name)
}
