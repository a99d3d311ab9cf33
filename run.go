package commander

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// ExecutionResult reports whether [Commander.Execute] found a command. It says nothing about
// whether the command succeeded: the executor is still running when Execute returns.
type ExecutionResult int

const (
	NotFound ExecutionResult = iota // NotFound means no command is registered under the name
	Executed                        // Executed means the command's executor was started
)

func (r ExecutionResult) String() string {
	switch r {
	case NotFound:
		return "not found"
	case Executed:
		return "executed"
	default:
		return "unknown"
	}
}

// Execute looks up command, which may be an identifier or an alias, and starts its executor on a
// new goroutine with ctx, fresh [Arguments] built from args, and command itself. It returns
// without waiting for the executor. Failures are reported to the error handler.
//
// If no command is registered under the name, Execute returns [NotFound] and runs nothing.
func (c *Commander[C]) Execute(command string, args []string, ctx C) ExecutionResult {
	d, ok := c.Lookup(command)
	if !ok {
		c.logger.Debug("command not found", "command", command)
		return NotFound
	}

	id := uuid.New()
	c.logger.Debug("executing command",
		"command", d.Config.Identifier,
		"alias", command,
		"args", len(args),
		"invocation", id.String(),
	)
	c.inflight.add()
	go c.run(d, ctx, NewArguments(args), command, id)
	return Executed
}

// ExecuteLine splits input with the configured prefix and executes the resulting command. The
// second return value is false if input is not a command line, in which case nothing is looked up.
func (c *Commander[C]) ExecuteLine(input string, ctx C) (ExecutionResult, bool) {
	c.mu.RLock()
	line, ok := c.parser.Parse(input)
	c.mu.RUnlock()
	if !ok {
		return NotFound, false
	}
	return c.Execute(line.Name, line.Args, ctx), true
}

// SetPrefix changes the prefix used by [Commander.ExecuteLine].
func (c *Commander[C]) SetPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parser.SetPrefix(prefix)
}

// Prefix returns the prefix used by [Commander.ExecuteLine].
func (c *Commander[C]) Prefix() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parser.Prefix()
}

// Wait blocks until no executor is running, or ctx is done. It may be called concurrently with
// Execute; executors started while Wait is blocked are waited for as well.
func (c *Commander[C]) Wait(ctx context.Context) error {
	select {
	case <-c.inflight.idle():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// inflight counts running executors. Unlike a sync.WaitGroup it can be waited on with a
// deadline and reused while executors are being added.
type inflight struct {
	mu   sync.Mutex
	n    int
	done chan struct{} // closed when n drops to zero
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func (f *inflight) add() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.n == 0 {
		f.done = make(chan struct{})
	}
	f.n++
}

func (f *inflight) finish() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n--
	if f.n == 0 {
		close(f.done)
	}
}

func (f *inflight) idle() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.n == 0 {
		return closedChan
	}
	return f.done
}

func (c *Commander[C]) run(d *Descriptor[C], ctx C, args *Arguments, alias string, id uuid.UUID) {
	defer c.inflight.finish()

	if err := c.invoke(d, ctx, args, alias, id); err != nil {
		c.onError(err)
	}
}

// invoke runs the executor, turning a returned error or a panic into a *DetachedError.
func (c *Commander[C]) invoke(d *Descriptor[C], ctx C, args *Arguments, alias string, id uuid.UUID) (derr *DetachedError) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			derr = &DetachedError{
				Command:    d.Config.Identifier,
				Alias:      alias,
				Invocation: id,
				Panic:      true,
				Stack:      stack[:n],
				err:        err,
			}
		}
	}()

	if err := d.Executor.Execute(ctx, args, alias); err != nil {
		return &DetachedError{
			Command:    d.Config.Identifier,
			Alias:      alias,
			Invocation: id,
			err:        err,
		}
	}
	return nil
}

func (c *Commander[C]) logError(err error) {
	c.logger.Error("command failed", "error", err)
}
