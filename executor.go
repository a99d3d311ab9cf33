package commander

// Executor runs a command. It receives the context given to [Commander.Execute], the parsed
// arguments and the name the command was invoked with, which is either its identifier or one of
// its aliases.
//
// Executors run detached from the caller of Execute. A returned error, or a panic, is reported to
// the commander's error handler as a [*DetachedError].
type Executor[C any] interface {
	Execute(ctx C, args *Arguments, alias string) error
}

// ExecutorFunc adapts an ordinary function to an [Executor].
type ExecutorFunc[C any] func(ctx C, args *Arguments, alias string) error

func (f ExecutorFunc[C]) Execute(ctx C, args *Arguments, alias string) error {
	return f(ctx, args, alias)
}

func isNilExecutor[C any](e Executor[C]) bool {
	if e == nil {
		return true
	}
	f, ok := e.(ExecutorFunc[C])
	return ok && f == nil
}
