package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hyp3rd/devconsole"
)

const prompt = "» "

// runREPL reads lines until the lifecycle terminates or input closes, feeding
// each one into the console executor. Readline supplies line editing, a
// persistent history file and tab completion over the bound command names.
func runREPL(console *devconsole.Console, lifecycle *devconsole.Lifecycle) error {
	historyFile := filepath.Join(os.TempDir(), ".devconsole_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		AutoComplete:      newCompleter(console),
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	console.Logger().Info("console ready, type 'help' for available commands")

	for lifecycle.Phase() == devconsole.PhaseRunning {
		line, err := rl.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// Ctrl+C with pending input clears the line; on an empty line it
			// behaves like quit.
			if len(line) != 0 {
				continue
			}

			return lifecycle.Shutdown(devconsole.QuitHostClosed, "interrupt")
		case errors.Is(err, io.EOF):
			return lifecycle.Shutdown(devconsole.QuitHostClosed, "input closed")
		case err != nil:
			shutdownErr := lifecycle.Shutdown(devconsole.QuitFatal, err.Error())
			if shutdownErr != nil {
				return shutdownErr
			}

			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		console.Execute(line)
	}

	return nil
}

// newCompleter builds tab completion over all bound command names, hidden
// commands included.
func newCompleter(console *devconsole.Console) readline.AutoCompleter {
	commands := console.Registry().List(true)
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))

	for _, cmd := range commands {
		items = append(items, readline.PcItem(cmd.Name()))
	}

	return readline.NewPrefixCompleter(items...)
}
