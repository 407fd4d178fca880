// Command devconsole runs an interactive developer console in the terminal:
// a readline loop feeding lines into the console executor, with the stock
// command set bound.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyp3rd/devconsole"
	"github.com/hyp3rd/devconsole/pkg/configloader"
)

type cliOptions struct {
	configPath  string
	level       string
	capacity    int
	historySize int
	noColor     bool
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "devconsole",
		Short:         "Interactive developer console",
		Long:          "devconsole runs an interactive developer console: logging pipeline, command registry and readline input loop.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	rootCmd.Flags().StringVar(&opts.level, "level", "", "minimum log level (trace, debug, info, warning, error, fatal)")
	rootCmd.Flags().IntVar(&opts.capacity, "capacity", 0, "log ring buffer capacity")
	rootCmd.Flags().IntVar(&opts.historySize, "history-size", 0, "command history capacity")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return rootCmd
}

func run(opts *cliOptions) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	console, err := devconsole.New(*cfg)
	if err != nil {
		return err
	}

	err = console.Logger().AddSink(devconsole.NewWriterSink(os.Stdout, cfg.Color, cfg.TimeFormat))
	if err != nil {
		return err
	}

	lifecycle := devconsole.NewLifecycle(console.Logger())

	err = lifecycle.Advance(devconsole.PhaseBootstrap)
	if err != nil {
		return err
	}

	// A broken command table is a build defect; abort startup.
	err = devconsole.RegisterBuiltins(console)
	if err != nil {
		return err
	}

	_, err = console.Bind("quit", func(devconsole.Invocation) bool {
		return lifecycle.Shutdown(devconsole.QuitRequested, "quit command") == nil
	},
		devconsole.WithDescription("Exits the console."),
		devconsole.WithUsage("quit"),
	)
	if err != nil {
		return err
	}

	err = lifecycle.Advance(devconsole.PhaseSubsystems)
	if err != nil {
		return err
	}

	err = lifecycle.Advance(devconsole.PhaseRunning)
	if err != nil {
		return err
	}

	err = runREPL(console, lifecycle)

	closeErr := console.Close()
	if err != nil {
		return err
	}

	return closeErr
}

func buildConfig(opts *cliOptions) (*devconsole.Config, error) {
	cfg := devconsole.DefaultConfig()

	if opts.configPath != "" {
		loaded, err := configloader.FromFile(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = *loaded
	}

	if opts.level != "" {
		level, err := devconsole.ParseLevel(opts.level)
		if err != nil {
			return nil, err
		}

		cfg.Level = level
	}

	if opts.capacity > 0 {
		cfg.Capacity = opts.capacity
	}

	if opts.historySize > 0 {
		cfg.HistorySize = opts.historySize
	}

	if opts.noColor {
		cfg.Color.Enable = false
	}

	return &cfg, nil
}
