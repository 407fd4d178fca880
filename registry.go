package devconsole

import (
	"slices"
	"strings"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/devconsole/internal/textutil"
)

// Binding errors are configuration errors: commands are bound at startup, and
// a broken command table is a development-time defect. Callers should treat a
// Bind failure as fatal and abort startup rather than ignore it.
var (
	// ErrInvalidName indicates a command name outside the [a-z0-9_-]+ charset.
	ErrInvalidName = ewrap.New("invalid command name")
	// ErrInvalidDescription indicates a non-printable command description.
	ErrInvalidDescription = ewrap.New("invalid command description")
	// ErrInvalidUsage indicates a non-printable command usage string.
	ErrInvalidUsage = ewrap.New("invalid command usage")
	// ErrDuplicateName indicates a name that is already bound.
	ErrDuplicateName = ewrap.New("command name already bound")
)

// Registry is a name-keyed table of bound commands. Binds happen mostly at
// startup; lookups happen on every executed line. A read-write lock keeps the
// two mutually exclusive.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Bind validates and stores a new command. The name must match [a-z0-9_-]+;
// description and usage have tabs normalized to spaces and must then be
// printable ASCII. Binding an already-bound name fails with ErrDuplicateName.
// On success the stored immutable Command is returned.
func (r *Registry) Bind(name string, handler Handler, opts ...BindOption) (*Command, error) {
	if !textutil.IsValidName(name) {
		return nil, ewrap.Wrap(ErrInvalidName, "name must match [a-z0-9_-]+").
			WithMetadata("name", name)
	}

	if handler == nil {
		return nil, ewrap.New("command handler cannot be nil").
			WithMetadata("name", name)
	}

	cmd := &Command{
		name:    name,
		handler: handler,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	cmd.description = textutil.NormalizeTabs(cmd.description)
	if !textutil.IsPrintable(cmd.description) {
		return nil, ewrap.Wrap(ErrInvalidDescription, "description must be printable ASCII").
			WithMetadata("name", name)
	}

	cmd.usage = textutil.NormalizeTabs(cmd.usage)
	if !textutil.IsPrintable(cmd.usage) {
		return nil, ewrap.Wrap(ErrInvalidUsage, "usage must be printable ASCII").
			WithMetadata("name", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return nil, ewrap.Wrap(ErrDuplicateName, "rebinding is not supported").
			WithMetadata("name", name)
	}

	r.commands[name] = cmd

	return cmd, nil
}

// Get returns the command bound to name, or nil when absent. Lookup is an
// exact match on the bound name; it never fails for a missing command.
func (r *Registry) Get(name string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.commands[name]
}

// List returns the bound commands sorted by name. Hidden commands are
// excluded unless includeHidden is set.
func (r *Registry) List(includeHidden bool) []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Command, 0, len(r.commands))

	for _, cmd := range r.commands {
		if cmd.hidden && !includeHidden {
			continue
		}

		out = append(out, cmd)
	}

	slices.SortFunc(out, func(a, b *Command) int {
		return strings.Compare(a.name, b.name)
	})

	return out
}

// Len returns the number of bound commands, hidden included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.commands)
}

// Clear empties the registry. Used at shutdown and for test isolation; no
// partial unbind is exposed.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = make(map[string]*Command)
}
