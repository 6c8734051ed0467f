package cmds

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

func Defined(name string) bool {
	return defaultExecutor.Defined(name)
}

func Execute(args []string) {
	defaultExecutor.MustExecute(args)
}
