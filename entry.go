package devconsole

import (
	"time"
)

// Entry is an immutable record of one logged event. Entries are created by
// Logger.Push and stored in the logger's ring buffer until evicted; they are
// never mutated after construction.
type Entry struct {
	// Level is the severity the entry was logged at.
	Level Level
	// Timestamp is the UTC time the entry was created.
	Timestamp time.Time
	// Content is the logged message. Never nil; empty is allowed.
	Content string
}

// EmptyEntry returns the distinguished empty entry: NoneLevel, zero time,
// empty content.
func EmptyEntry() Entry {
	return Entry{Level: NoneLevel}
}

// IsEmpty reports whether the entry is the distinguished empty entry.
func (e Entry) IsEmpty() bool {
	return e.Level == NoneLevel && e.Timestamp.IsZero() && e.Content == ""
}

// Line renders the entry as a plain text line: "timestamp [LVL] content".
// NoneLevel entries render as bare content. timeFormat defaults to
// DefaultTimeFormat when empty. Pure function of the entry's fields.
func (e Entry) Line(timeFormat string) string {
	if e.Level == NoneLevel {
		return e.Content
	}

	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return e.Timestamp.Format(timeFormat) + " [" + e.Level.LogName() + "] " + e.Content
}

// Decorated renders the entry like Line with the level token wrapped in the
// level's ANSI color. NoneLevel entries render as bare content. Pure function
// of the entry's fields, computed on demand.
func (e Entry) Decorated(timeFormat string) string {
	if e.Level == NoneLevel {
		return e.Content
	}

	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	colour := e.Level.Color()
	if colour == "" {
		return e.Line(timeFormat)
	}

	return e.Timestamp.Format(timeFormat) + " " + colour + "[" + e.Level.LogName() + "]" + Reset + " " + e.Content
}
