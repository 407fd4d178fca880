package devconsole

// Handler is the callback invoked when a bound command is executed. It
// returns true for success and false for "handled but failed". Panics raised
// inside a handler are recovered by the executor, logged at ErrorLevel, and
// converted to a failed result.
type Handler func(inv Invocation) bool

// Command is an immutable binding in the command registry.
type Command struct {
	name        string
	description string
	usage       string
	hidden      bool
	handler     Handler
}

// Name returns the unique command name.
func (c *Command) Name() string {
	return c.name
}

// Description returns the one-line description shown by help listings.
func (c *Command) Description() string {
	return c.description
}

// Usage returns the usage text shown by "help <name>".
func (c *Command) Usage() string {
	return c.usage
}

// Hidden reports whether the command is excluded from default listings.
func (c *Command) Hidden() bool {
	return c.hidden
}

// Invocation carries one execution of a command to its handler.
type Invocation struct {
	// Command is the bound command being executed.
	Command *Command
	// Args are the parsed arguments, in input order, quotes stripped.
	Args []string
	// Console is the console the command was executed on. Handlers use it to
	// emit output through the logging channel.
	Console *Console
}

// BindOption customizes a command binding.
type BindOption func(*Command)

// WithDescription sets the command's description.
func WithDescription(description string) BindOption {
	return func(c *Command) {
		c.description = description
	}
}

// WithUsage sets the command's usage text.
func WithUsage(usage string) BindOption {
	return func(c *Command) {
		c.usage = usage
	}
}

// AsHidden excludes the command from default listings. It stays executable.
func AsHidden() BindOption {
	return func(c *Command) {
		c.hidden = true
	}
}
