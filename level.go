package devconsole

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level represents the severity of a log entry.
//
// Levels are totally ordered by priority. NoneLevel sits below every other
// level and is special-cased by the admission filter: entries logged at
// NoneLevel are always visible and render without level decoration, which is
// what the console uses for echoing command input and command output.
type Level uint8

const (
	// NoneLevel marks unclassified console output. Always admitted.
	NoneLevel Level = iota
	// TraceLevel represents verbose debugging information.
	TraceLevel
	// DebugLevel represents debugging information.
	DebugLevel
	// InfoLevel represents general operational information.
	InfoLevel
	// WarningLevel represents warning messages.
	WarningLevel
	// ErrorLevel represents error messages.
	ErrorLevel
	// FatalLevel represents unrecoverable error messages.
	FatalLevel
)

// ErrUnknownLevel indicates that a level name could not be parsed.
var ErrUnknownLevel = ewrap.New("unknown log level")

// String returns the distinct name of the level, e.g. "Warning".
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "None"
	case TraceLevel:
		return "Trace"
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	case FatalLevel:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// LogName returns the short token used in rendered log lines, e.g. "WRN".
// NoneLevel has no token.
func (l Level) LogName() string {
	switch l {
	case NoneLevel:
		return ""
	case TraceLevel:
		return "TRC"
	case DebugLevel:
		return "DBG"
	case InfoLevel:
		return "INF"
	case WarningLevel:
		return "WRN"
	case ErrorLevel:
		return "ERR"
	case FatalLevel:
		return "FTL"
	default:
		return "UNK"
	}
}

// Priority returns the numeric ordering of the level. Priorities strictly
// increase with severity; NoneLevel is the minimum.
func (l Level) Priority() int {
	return int(l)
}

// IsValid returns true if the given Level is a recognized level.
func (l Level) IsValid() bool {
	return l <= FatalLevel
}

// Color returns the ANSI color sequence associated with the level.
func (l Level) Color() string {
	if colour, ok := DefaultLevelColors()[l]; ok {
		return colour
	}

	return ""
}

// ParseLevel resolves a level from its distinct name, its short token, or the
// "warn" alias. Matching is case-insensitive. Unrecognized input fails with
// ErrUnknownLevel.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return NoneLevel, nil
	case "trace", "trc":
		return TraceLevel, nil
	case "debug", "dbg":
		return DebugLevel, nil
	case "info", "inf":
		return InfoLevel, nil
	case "warning", "warn", "wrn":
		return WarningLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "fatal", "ftl":
		return FatalLevel, nil
	default:
		return NoneLevel, ewrap.Wrap(ErrUnknownLevel, "unrecognized level name").
			WithMetadata("name", name)
	}
}
