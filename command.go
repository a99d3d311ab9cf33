package commander

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/mfridman/commander/pkg/suggest"
	orderedmap "github.com/wk8/go-ordered-map"
)

// CommandConfig identifies a command.
type CommandConfig struct {
	// Identifier is the command's primary name. It must be a single non-empty word.
	Identifier string

	// Aliases are alternative names resolving to the same command.
	Aliases []string

	// ShortHelp is a brief description shown in usage text.
	ShortHelp string

	// Usage is the command's full usage pattern.
	//
	// Example: "ban <user> [minutes]"
	Usage string
}

// Descriptor pairs a command's configuration with its executor. The identifier and every alias of
// a registered command map to the same *Descriptor.
type Descriptor[C any] struct {
	Config   CommandConfig
	Executor Executor[C]
}

// Commander maps command identifiers and aliases to executors and dispatches to them. C is the
// type of the context handed to every executor.
//
// A Commander is safe for concurrent use.
type Commander[C any] struct {
	mu       sync.RWMutex
	commands *orderedmap.OrderedMap // name -> *Descriptor[C]
	parser   *LineParser

	logger   hclog.Logger
	onError  func(error)
	inflight inflight
}

// New returns an empty Commander.
func New[C any](opts ...ConfigureFunc) *Commander[C] {
	cfg := &config{
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	c := &Commander[C]{
		commands: orderedmap.New(),
		parser:   NewLineParser(cfg.prefix),
		logger:   cfg.logger,
		onError:  cfg.onError,
	}
	if c.onError == nil {
		c.onError = c.logError
	}
	return c
}

// Register registers executor under the identifier and every alias in cfg. Names that are already
// registered are overwritten.
func (c *Commander[C]) Register(cfg CommandConfig, executor Executor[C]) error {
	return c.RegisterDescriptor(&Descriptor[C]{Config: cfg, Executor: executor})
}

// RegisterDescriptor registers d under its identifier and every alias.
func (c *Commander[C]) RegisterDescriptor(d *Descriptor[C]) error {
	if d == nil {
		return fmt.Errorf("failed to register: %w", ErrNilExecutor)
	}
	if err := validateConfig(d.Config); err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	if isNilExecutor(d.Executor) {
		return fmt.Errorf("failed to register command %q: %w", d.Config.Identifier, ErrNilExecutor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.commands.Set(d.Config.Identifier, d)
	for _, alias := range d.Config.Aliases {
		c.commands.Set(alias, d)
	}
	c.logger.Debug("registered command", "command", d.Config.Identifier, "aliases", d.Config.Aliases)
	return nil
}

// Deregister removes the identifier and every alias listed in cfg. Only the names in cfg are
// removed: aliases that were registered but are missing from cfg keep resolving to the command.
// Use [Commander.Remove] to remove a command by identifier alone.
func (c *Commander[C]) Deregister(cfg CommandConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.commands.Delete(cfg.Identifier)
	for _, alias := range cfg.Aliases {
		c.commands.Delete(alias)
	}
}

// Remove removes the command registered under identifier together with the aliases it was
// registered with. Aliases since taken over by another command are left alone. It returns false if
// identifier does not name a registered command.
func (c *Commander[C]) Remove(identifier string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.get(identifier)
	if !ok || d.Config.Identifier != identifier {
		return false
	}
	for _, name := range append([]string{identifier}, d.Config.Aliases...) {
		if owner, ok := c.get(name); ok && owner == d {
			c.commands.Delete(name)
		}
	}
	return true
}

// Lookup returns the command registered under name, which may be an identifier or an alias.
func (c *Commander[C]) Lookup(name string) (*Descriptor[C], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.get(name)
}

// Commands returns a snapshot of every registered identifier and alias and the command it maps to.
func (c *Commander[C]) Commands() map[string]*Descriptor[C] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m := make(map[string]*Descriptor[C], c.commands.Len())
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key.(string)] = pair.Value.(*Descriptor[C])
	}
	return m
}

// Names returns every registered identifier and alias in registration order.
func (c *Commander[C]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, c.commands.Len())
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

// Suggest returns up to n registered names similar to name, best match first.
func (c *Commander[C]) Suggest(name string, n int) []string {
	return suggest.FindSimilar(name, c.Names(), n)
}

// descriptors returns each registered command once, in registration order.
func (c *Commander[C]) descriptors() []*Descriptor[C] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[*Descriptor[C]]bool)
	var out []*Descriptor[C]
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		d := pair.Value.(*Descriptor[C])
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

func (c *Commander[C]) get(name string) (*Descriptor[C], bool) {
	v, ok := c.commands.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Descriptor[C]), true
}

func validateConfig(cfg CommandConfig) error {
	if cfg.Identifier == "" {
		return ErrEmptyIdentifier
	}
	if err := validateName(cfg.Identifier); err != nil {
		return err
	}
	for _, alias := range cfg.Aliases {
		if err := validateName(alias); err != nil {
			return fmt.Errorf("command %q: %w", cfg.Identifier, err)
		}
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty alias", ErrInvalidName)
	}
	if strings.Contains(name, " ") {
		return fmt.Errorf("%w: %q contains spaces, must be a single word", ErrInvalidName, name)
	}
	return nil
}
