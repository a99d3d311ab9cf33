package commander

import "github.com/hashicorp/go-hclog"

type config struct {
	prefix  string
	logger  hclog.Logger
	onError func(error)
}

// ConfigureFunc configures a [Commander].
type ConfigureFunc func(*config)

// WithPrefix sets the prefix used by [Commander.ExecuteLine]. See [LineParser] for how the prefix
// and the separator after it are matched.
func WithPrefix(prefix string) ConfigureFunc {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger. Dispatch is logged at debug level and, unless an error handler is
// set, failed executors at error level. Defaults to a logger that discards everything.
func WithLogger(logger hclog.Logger) ConfigureFunc {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorHandler sets the function receiving executor failures, always as a [*DetachedError].
// It is called from the executor's goroutine and must be safe for concurrent use.
func WithErrorHandler(fn func(error)) ConfigureFunc {
	return func(c *config) {
		c.onError = fn
	}
}
