// Package commander turns text lines into command invocations. It is transport agnostic: the same
// commands can be driven by chat messages, a REPL or a list of command-line tokens.
//
// A [LineParser] splits a prefixed line into a command name and positional arguments. A
// [Commander] resolves the name, which may be an identifier or an alias, to a registered
// [Executor] and runs it detached from the caller. Executors consume their [Arguments] with
// ordered lists of [ValueParser]s: the first parser that recognizes an argument wins, so cheap
// fallbacks such as [Constant] can end a list.
//
//	c := commander.New[*Session](commander.WithPrefix("!"))
//	_ = c.Register(commander.CommandConfig{Identifier: "ban", Aliases: []string{"b"}},
//	    commander.ExecutorFunc[*Session](func(s *Session, args *commander.Arguments, alias string) error {
//	        user, _ := commander.Shift(args, commander.NewStringParser())
//	        minutes, _ := commander.Shift(args, commander.NewNumberParser(commander.WithMin(1)), commander.Constant(10.0))
//	        return s.Ban(user, minutes)
//	    }))
//	c.ExecuteLine("! b alice 30", session)
package commander
