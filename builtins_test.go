package devconsole

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuiltinConsole(t *testing.T) *Console {
	t.Helper()

	console := newTestConsole(t)
	require.NoError(t, RegisterBuiltins(console))

	return console
}

func TestRegisterBuiltins(t *testing.T) {
	console := newBuiltinConsole(t)

	for _, name := range []string{"help", "history", "clear", "echo"} {
		assert.NotNil(t, console.Registry().Get(name), "builtin %s missing", name)
	}
}

func TestRegisterBuiltinsTwiceFails(t *testing.T) {
	console := newBuiltinConsole(t)

	require.Error(t, RegisterBuiltins(console))
}

func TestHelpListsCommands(t *testing.T) {
	console := newBuiltinConsole(t)

	_, err := console.Bind("secret", noopHandler, AsHidden())
	require.NoError(t, err)

	require.True(t, console.Execute("help"))

	logged := contents(console)
	assert.Contains(t, logged, fmt.Sprintf("%-12s %s", "help", "Lists available commands, or shows usage for one command."))
	assert.Contains(t, logged, fmt.Sprintf("%-12s %s", "echo", "Prints its arguments."))

	for _, line := range logged {
		assert.NotContains(t, line, "secret", "hidden commands stay out of the listing")
	}
}

func TestHelpForOneCommand(t *testing.T) {
	console := newBuiltinConsole(t)

	require.True(t, console.Execute("help echo"))

	logged := contents(console)
	assert.Contains(t, logged, "usage: echo [args...]")
	assert.Contains(t, logged, "Prints its arguments.")
}

func TestHelpUnknownCommand(t *testing.T) {
	console := newBuiltinConsole(t)

	assert.False(t, console.Execute("help nonesuch"))
	assert.Contains(t, contents(console), "unknown command: nonesuch")
}

func TestEchoCommand(t *testing.T) {
	console := newBuiltinConsole(t)

	require.True(t, console.Execute(`echo hello "big world"`))

	logged := contents(console)
	assert.Equal(t, "hello big world", logged[len(logged)-1])
}

func TestHistoryCommand(t *testing.T) {
	console := newBuiltinConsole(t)

	console.Execute("echo one")
	console.Execute("history")

	logged := contents(console)
	assert.Contains(t, logged, "  1  echo one")
	assert.Contains(t, logged, "  2  history")
}

func TestClearCommand(t *testing.T) {
	console := newBuiltinConsole(t)

	console.Logger().Info("noise")
	require.True(t, console.Execute("clear"))

	// The echo of "clear" itself was wiped along with everything else.
	assert.Equal(t, 0, console.Logger().Count())
}
