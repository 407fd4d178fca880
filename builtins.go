package devconsole

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// RegisterBuiltins binds the stock command set (help, history, clear, echo)
// on the console. The builtins are plain consumers of the Bind contract; a
// host is free to skip them and register its own set.
func RegisterBuiltins(c *Console) error {
	bindings := []struct {
		name    string
		handler Handler
		opts    []BindOption
	}{
		{
			name:    "help",
			handler: helpHandler,
			opts: []BindOption{
				WithDescription("Lists available commands, or shows usage for one command."),
				WithUsage("help [command]"),
			},
		},
		{
			name:    "history",
			handler: historyHandler,
			opts: []BindOption{
				WithDescription("Prints the recorded command history."),
				WithUsage("history"),
			},
		},
		{
			name:    "clear",
			handler: clearHandler,
			opts: []BindOption{
				WithDescription("Clears the buffered log entries."),
				WithUsage("clear"),
			},
		},
		{
			name:    "echo",
			handler: echoHandler,
			opts: []BindOption{
				WithDescription("Prints its arguments."),
				WithUsage("echo [args...]"),
			},
		},
	}

	for _, binding := range bindings {
		_, err := c.Bind(binding.name, binding.handler, binding.opts...)
		if err != nil {
			return ewrap.Wrapf(err, "registering builtin %s", binding.name)
		}
	}

	return nil
}

func helpHandler(inv Invocation) bool {
	if len(inv.Args) > 0 {
		cmd := inv.Console.Registry().Get(inv.Args[0])
		if cmd == nil {
			inv.Console.Printf("unknown command: %s", inv.Args[0])

			return false
		}

		if cmd.Usage() != "" {
			inv.Console.Printf("usage: %s", cmd.Usage())
		}

		if cmd.Description() != "" {
			inv.Console.Print(cmd.Description())
		}

		return true
	}

	for _, cmd := range inv.Console.Registry().List(false) {
		if cmd.Description() == "" {
			inv.Console.Print(cmd.Name())

			continue
		}

		inv.Console.Printf("%-12s %s", cmd.Name(), cmd.Description())
	}

	return true
}

func historyHandler(inv Invocation) bool {
	for i, line := range inv.Console.History() {
		inv.Console.Printf("%3d  %s", i+1, line)
	}

	return true
}

func clearHandler(inv Invocation) bool {
	inv.Console.Logger().Clear()

	return true
}

func echoHandler(inv Invocation) bool {
	inv.Console.Print(strings.Join(inv.Args, " "))

	return true
}
