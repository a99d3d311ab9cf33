package commander

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrEmptyIdentifier is returned when registering a command without an identifier.
	ErrEmptyIdentifier = errors.New("command identifier is empty")
	// ErrInvalidName is returned when an identifier or alias is not a single word.
	ErrInvalidName = errors.New("invalid command name")
	// ErrNilExecutor is returned when registering a command without an executor.
	ErrNilExecutor = errors.New("command has no executor")
)

// DetachedError describes a failed executor. Executors run detached from [Commander.Execute], so
// these errors only ever reach the error handler configured with [WithErrorHandler].
type DetachedError struct {
	// Command is the identifier of the command that failed.
	Command string
	// Alias is the name the command was invoked with.
	Alias string
	// Invocation uniquely identifies the execution.
	Invocation uuid.UUID
	// Panic is true if the executor panicked rather than returning an error.
	Panic bool
	// Stack holds the goroutine stack for panics.
	Stack []byte

	err error
}

func (e *DetachedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	what := "failed"
	if e.Panic {
		what = "panicked"
	}
	if e.Alias != "" && e.Alias != e.Command {
		return fmt.Sprintf("command %q (as %q) %s [%s]: %v", e.Command, e.Alias, what, e.Invocation, e.err)
	}
	return fmt.Sprintf("command %q %s [%s]: %v", e.Command, what, e.Invocation, e.err)
}

func (e *DetachedError) Unwrap() error {
	return e.err
}
