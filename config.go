package devconsole

import (
	"time"
)

const (
	// DefaultTimeFormat is the default timestamp format for rendered entries.
	DefaultTimeFormat = time.RFC3339
	// DefaultLevel is the default minimum admitted severity.
	DefaultLevel = InfoLevel
	// DefaultCapacity is the default log ring buffer capacity.
	DefaultCapacity = 1024
	// DefaultHistorySize is the default command history capacity.
	DefaultHistorySize = 128
	// DefaultName is the default console/root logger name.
	DefaultName = "console"
)

// Config holds configuration for a Console and its root logger.
type Config struct {
	// Name identifies the console's root logger.
	Name string
	// Level is the minimum admitted severity.
	Level Level
	// Capacity is the log ring buffer capacity.
	Capacity int
	// HistorySize bounds the command history ring.
	HistorySize int
	// TimeFormat specifies the timestamp format for rendered entries.
	TimeFormat string
	// Color configuration for attached console sinks.
	Color ColorConfig
	// ErrorHandler is invoked for listener panics and sink write failures.
	// Defaults to writing on stderr.
	ErrorHandler func(error)
}

// DefaultConfig returns the default console configuration.
func DefaultConfig() Config {
	return Config{
		Name:        DefaultName,
		Level:       DefaultLevel,
		Capacity:    DefaultCapacity,
		HistorySize: DefaultHistorySize,
		TimeFormat:  DefaultTimeFormat,
		Color:       DefaultColorConfig(),
	}
}

// DevelopmentConfig returns a configuration suited to development builds:
// verbose level and colored output.
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.Level = DebugLevel
	config.Color.Enable = true

	return config
}

// ProductionConfig returns a configuration suited to shipping builds: info
// level, colors disabled.
func ProductionConfig() Config {
	config := DefaultConfig()
	config.Level = InfoLevel
	config.Color.Enable = false

	return config
}
