package devconsole

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/devconsole/internal/ring"
)

// ErrLoggerDisposed indicates that an operation was attempted on a logger
// after Dispose.
var ErrLoggerDisposed = ewrap.New("logger has been disposed")

// Listener is a callback notified for every admitted entry. Listeners run
// synchronously on the pushing goroutine, in registration order, while the
// logger's lock is held: a listener must not call back into Push on the same
// logger or it will deadlock.
type Listener func(Entry)

// Sink is an external output destination attached to a logger. Write receives
// every admitted entry; Flush drains any buffered state. Sink I/O is
// synchronous — callers needing non-blocking behavior must offload it
// themselves.
type Sink interface {
	Write(entry Entry) error
	Flush() error
}

// LoggerOption customizes a logger at construction time.
type LoggerOption func(*Logger)

// WithParent forwards every admitted entry to parent, which applies its own
// independent admission filter. Used to route subsystem loggers into the
// process-wide root logger.
func WithParent(parent *Logger) LoggerOption {
	return func(l *Logger) {
		l.parent = parent
	}
}

// WithOwner tags the logger with the name of the subsystem that owns it.
func WithOwner(owner string) LoggerOption {
	return func(l *Logger) {
		l.owner = owner
	}
}

// WithErrorHandler sets the callback invoked when a listener panics or a sink
// write fails. The default handler writes to stderr.
func WithErrorHandler(handler func(error)) LoggerOption {
	return func(l *Logger) {
		if handler != nil {
			l.errorHandler = handler
		}
	}
}

// Logger is a ring-buffered, level-filtered log pipeline with synchronous
// listener fan-out.
//
// All mutating operations on one Logger instance are mutually exclusive under
// a single coarse lock; entries pushed to one logger are observed by its
// listeners in push order with no reordering or coalescing.
type Logger struct {
	mu           sync.Mutex
	name         string
	owner        string
	level        Level
	buffer       *ring.Buffer[Entry]
	parent       *Logger
	listeners    []registeredListener
	nextListener int
	sinks        []Sink
	errorHandler func(error)
	disposed     bool
}

type registeredListener struct {
	id int
	fn Listener
}

// NewLogger creates a logger that admits entries at or above level and
// retains up to capacity entries, evicting the oldest first.
func NewLogger(name string, level Level, capacity int, opts ...LoggerOption) (*Logger, error) {
	if !level.IsValid() {
		return nil, ewrap.New("invalid log level").
			WithMetadata("level", level)
	}

	buffer, err := ring.New[Entry](capacity)
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid logger capacity").
			WithMetadata("name", name)
	}

	logger := &Logger{
		name:   name,
		level:  level,
		buffer: buffer,
		errorHandler: func(err error) {
			fmt.Fprintf(os.Stderr, "devconsole logger error: %v\n", err)
		},
	}

	for _, opt := range opts {
		opt(logger)
	}

	return logger, nil
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Owner returns the owning subsystem tag, if any.
func (l *Logger) Owner() string {
	return l.owner
}

// Level returns the minimum admitted severity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

// SetLevel changes the minimum admitted severity. Invalid levels are ignored.
func (l *Logger) SetLevel(level Level) {
	if !level.IsValid() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

// ShouldPush reports whether an entry at the given level would be admitted.
// NoneLevel is always admitted.
func (l *Logger) ShouldPush(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.shouldPushLocked(level)
}

func (l *Logger) shouldPushLocked(level Level) bool {
	return level == NoneLevel || level.Priority() >= l.level.Priority()
}

// Push logs a message at the given level. Entries below the logger's minimum
// level are silently dropped: not buffered, not forwarded, nil error.
// Admitted entries are buffered (evicting the oldest entry at capacity),
// fanned out to listeners in registration order, written to sinks, and
// forwarded to the parent logger, which applies its own admission filter.
//
// A panicking listener does not prevent later listeners from observing the
// entry; each failure is reported through the error handler independently.
//
// Push fails with ErrLoggerDisposed after Dispose.
func (l *Logger) Push(level Level, message string) error {
	entry := Entry{
		Level:     level,
		Timestamp: time.Now().UTC(),
		Content:   message,
	}

	return l.push(entry)
}

// push runs admission and fan-out for an already constructed entry. Parent
// forwarding reuses the same entry so child and parent buffers agree on the
// timestamp.
func (l *Logger) push(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return ewrap.Wrap(ErrLoggerDisposed, "push rejected").
			WithMetadata("logger", l.name)
	}

	if !l.shouldPushLocked(entry.Level) {
		return nil
	}

	l.buffer.Push(entry)

	for _, listener := range l.listeners {
		l.notify(listener.fn, entry)
	}

	for _, sink := range l.sinks {
		err := sink.Write(entry)
		if err != nil {
			l.errorHandler(ewrap.Wrap(err, "sink write failed").
				WithMetadata("logger", l.name))
		}
	}

	if l.parent != nil {
		err := l.parent.push(entry)
		if err != nil {
			l.errorHandler(ewrap.Wrap(err, "parent forward failed").
				WithMetadata("logger", l.name))
		}
	}

	return nil
}

// notify runs one listener, isolating panics so one bad subscriber never
// breaks the pipeline.
func (l *Logger) notify(fn Listener, entry Entry) {
	defer func() {
		if r := recover(); r != nil {
			l.errorHandler(ewrap.New("log listener panicked").
				WithMetadata("logger", l.name).
				WithMetadata("panic", fmt.Sprintf("%v", r)))
		}
	}()

	fn(entry)
}

// AddListener registers a callback for admitted entries and returns a
// function that removes the registration.
func (l *Logger) AddListener(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextListener
	l.nextListener++

	l.listeners = append(l.listeners, registeredListener{id: id, fn: fn})

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		for i, listener := range l.listeners {
			if listener.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)

				break
			}
		}
	}
}

// AddSink attaches an external output destination.
func (l *Logger) AddSink(sink Sink) error {
	if sink == nil {
		return ewrap.New("cannot attach nil sink").
			WithMetadata("logger", l.name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return ewrap.Wrap(ErrLoggerDisposed, "cannot attach sink").
			WithMetadata("logger", l.name)
	}

	l.sinks = append(l.sinks, sink)

	return nil
}

// Flush drains every attached sink. Without sinks it is a no-op.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.flushLocked()
}

func (l *Logger) flushLocked() error {
	errorGroup := ewrap.NewErrorGroup()

	for _, sink := range l.sinks {
		err := sink.Flush()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}

// Dispose flushes attached sinks and releases all listener and sink
// registrations. Dispose is idempotent; any Push after the first Dispose
// fails with ErrLoggerDisposed.
func (l *Logger) Dispose() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disposed {
		return nil
	}

	err := l.flushLocked()

	l.listeners = nil
	l.sinks = nil
	l.disposed = true

	if err != nil {
		return ewrap.Wrap(err, "flush during dispose failed").
			WithMetadata("logger", l.name)
	}

	return nil
}

// Count returns the number of buffered entries.
func (l *Logger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buffer.Len()
}

// Capacity returns the ring buffer capacity.
func (l *Logger) Capacity() int {
	return l.buffer.Cap()
}

// At returns the buffered entry at position i, ordered oldest to newest. The
// second return value is false when i is out of range.
func (l *Logger) At(i int) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buffer.At(i)
}

// Entries returns a copy of the buffered entries ordered oldest to newest.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.buffer.Snapshot()
}

// Clear removes all buffered entries. Listener and sink registrations are
// unaffected.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buffer.Clear()
}

// Convenience level methods. Push errors (a disposed logger) are routed to
// the error handler rather than returned.

// Trace logs a message at TraceLevel.
func (l *Logger) Trace(msg string) { l.report(l.Push(TraceLevel, msg)) }

// Debug logs a message at DebugLevel.
func (l *Logger) Debug(msg string) { l.report(l.Push(DebugLevel, msg)) }

// Info logs a message at InfoLevel.
func (l *Logger) Info(msg string) { l.report(l.Push(InfoLevel, msg)) }

// Warning logs a message at WarningLevel.
func (l *Logger) Warning(msg string) { l.report(l.Push(WarningLevel, msg)) }

// Error logs a message at ErrorLevel.
func (l *Logger) Error(msg string) { l.report(l.Push(ErrorLevel, msg)) }

// Fatal logs a message at FatalLevel. Unlike engine loggers, this does not
// terminate the process; the host decides how to react to fatal entries.
func (l *Logger) Fatal(msg string) { l.report(l.Push(FatalLevel, msg)) }

// Tracef logs a formatted message at TraceLevel.
func (l *Logger) Tracef(format string, args ...any) { l.Trace(fmt.Sprintf(format, args...)) }

// Debugf logs a formatted message at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) { l.Debug(fmt.Sprintf(format, args...)) }

// Infof logs a formatted message at InfoLevel.
func (l *Logger) Infof(format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }

// Warningf logs a formatted message at WarningLevel.
func (l *Logger) Warningf(format string, args ...any) { l.Warning(fmt.Sprintf(format, args...)) }

// Errorf logs a formatted message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }

// Fatalf logs a formatted message at FatalLevel.
func (l *Logger) Fatalf(format string, args ...any) { l.Fatal(fmt.Sprintf(format, args...)) }

func (l *Logger) report(err error) {
	if err != nil {
		l.errorHandler(err)
	}
}

//nolint:gochecknoglobals
var defaultLogger = struct {
	sync.Mutex

	logger *Logger
}{}

// Default returns the process-wide root logger, creating it on first use with
// DefaultConfig settings. Subsystem loggers may declare it as parent via
// WithParent.
func Default() *Logger {
	defaultLogger.Lock()
	defer defaultLogger.Unlock()

	if defaultLogger.logger == nil {
		logger, err := NewLogger("root", DefaultLevel, DefaultCapacity)
		if err != nil {
			// Constants guarantee a valid configuration.
			panic(err)
		}

		defaultLogger.logger = logger
	}

	return defaultLogger.logger
}

// SetDefault replaces the process-wide root logger. Passing nil resets it so
// the next Default call creates a fresh instance; used for test isolation.
func SetDefault(logger *Logger) {
	defaultLogger.Lock()
	defer defaultLogger.Unlock()

	defaultLogger.logger = logger
}
