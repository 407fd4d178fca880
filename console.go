// Package devconsole implements an in-process developer console: a
// ring-buffered, level-filtered logging pipeline and a command registry with
// validated bindings and shell-like line parsing.
//
// The package provides:
// - Severity levels with display metadata and parsing (Level)
// - Immutable log entries with plain and color-decorated renderings (Entry)
// - A bounded logger with listener fan-out and parent forwarding (Logger)
// - External output destinations with an explicit flush hook (Sink)
// - A name-keyed command table with charset-validated bindings (Registry)
// - A single-pass quoted-token line parser (SplitLine)
// - A facade tying logger, registry and bounded command history together
//   (Console)
// - An explicit lifecycle state machine replacing host engine callbacks
//   (Lifecycle)
//
// The console never terminates the host: bad input, unknown commands,
// panicking handlers and failing listeners are all recovered locally and
// reported through the logging channel. Binding errors are the exception —
// they indicate a broken command table and should abort startup.
//
// Basic usage:
//
//	console, err := devconsole.New(devconsole.DefaultConfig())
//	if err != nil {
//		panic(err)
//	}
//	defer console.Close()
//
//	_, err = console.Bind("greet", func(inv devconsole.Invocation) bool {
//		inv.Console.Print("hello")
//		return true
//	}, devconsole.WithDescription("Prints a greeting."))
//	if err != nil {
//		panic(err)
//	}
//
//	console.Execute("greet")
package devconsole

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/devconsole/internal/ring"
)

// Console is the single public surface subsystems use to log and to register
// commands. It owns a root logger, a command registry and a bounded history
// of executed lines.
type Console struct {
	mu         sync.Mutex
	logger     *Logger
	registry   *Registry
	history    *ring.Buffer[string]
	timeFormat string
}

// New creates a console from cfg. Zero values in cfg fall back to the
// DefaultConfig settings.
func New(cfg Config) (*Console, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}

	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}

	if cfg.HistorySize == 0 {
		cfg.HistorySize = DefaultHistorySize
	}

	if cfg.TimeFormat == "" {
		cfg.TimeFormat = DefaultTimeFormat
	}

	logger, err := NewLogger(cfg.Name, cfg.Level, cfg.Capacity, WithErrorHandler(cfg.ErrorHandler))
	if err != nil {
		return nil, ewrap.Wrap(err, "creating console logger")
	}

	history, err := ring.New[string](cfg.HistorySize)
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid history size")
	}

	return &Console{
		logger:     logger,
		registry:   NewRegistry(),
		history:    history,
		timeFormat: cfg.TimeFormat,
	}, nil
}

// Logger returns the console's root logger.
func (c *Console) Logger() *Logger {
	return c.logger
}

// Registry returns the console's command registry.
func (c *Console) Registry() *Registry {
	return c.registry
}

// TimeFormat returns the timestamp format used for rendered entries.
func (c *Console) TimeFormat() string {
	return c.timeFormat
}

// Bind registers a command on the console's registry. See Registry.Bind for
// the validation contract; a Bind failure should abort startup.
func (c *Console) Bind(name string, handler Handler, opts ...BindOption) (*Command, error) {
	return c.registry.Bind(name, handler, opts...)
}

// Print emits unclassified console output: always visible, rendered without
// level decoration. Command handlers use it for their results.
func (c *Console) Print(msg string) {
	c.logger.report(c.logger.Push(NoneLevel, msg))
}

// Printf emits formatted unclassified console output.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// Execute runs one line of console input and reports success.
//
// Empty or whitespace-only input is a no-op success: nothing is dispatched
// and nothing is recorded in history. Every other line is recorded in the
// bounded history (raw text, oldest evicted first) and echoed through the
// logger before dispatch, so failed lines remain visible and recallable.
//
// Failures — parse errors, unknown commands, panicking handlers — are
// reported through the logging channel at ErrorLevel and yield false; they
// never propagate to the caller.
func (c *Console) Execute(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	c.recordHistory(trimmed)
	c.Print("> " + trimmed)

	tokens, err := SplitLine(trimmed)
	if err != nil {
		c.logger.Errorf("could not parse input: %v", err)

		return false
	}

	if len(tokens) == 0 {
		return true
	}

	cmd := c.registry.Get(tokens[0])
	if cmd == nil {
		c.logger.Errorf("unknown command: %s", tokens[0])

		return false
	}

	return c.invoke(cmd, tokens[1:])
}

// invoke dispatches to the handler, converting a panic into a failed result.
// The console must never crash the host because one command misbehaves.
func (c *Console) invoke(cmd *Command, args []string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorf("command %s panicked: %v", cmd.Name(), r)

			ok = false
		}
	}()

	return cmd.handler(Invocation{
		Command: cmd,
		Args:    args,
		Console: c,
	})
}

func (c *Console) recordHistory(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history.Push(line)
}

// History returns the recorded input lines, oldest to newest.
func (c *Console) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.history.Snapshot()
}

// HistorySize returns the history ring capacity.
func (c *Console) HistorySize() int {
	return c.history.Cap()
}

// Close disposes the root logger and clears the command registry. Close is
// idempotent.
func (c *Console) Close() error {
	c.registry.Clear()

	err := c.logger.Dispose()
	if err != nil {
		return ewrap.Wrap(err, "closing console")
	}

	return nil
}
