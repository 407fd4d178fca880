package devconsole

import (
	"io"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/devconsole/internal/output"
)

// WriterSink renders entries to a console-like stream, choosing the decorated
// or plain rendering per the color configuration and terminal detection.
type WriterSink struct {
	writer     *output.ConsoleWriter
	timeFormat string
}

// NewWriterSink creates a sink over out. A nil out defaults to stdout.
// timeFormat defaults to DefaultTimeFormat when empty.
func NewWriterSink(out io.Writer, colors ColorConfig, timeFormat string) *WriterSink {
	mode := output.ColorModeAuto

	switch {
	case !colors.Enable:
		mode = output.ColorModeNever
	case colors.ForceTTY:
		mode = output.ColorModeAlways
	}

	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return &WriterSink{
		writer:     output.NewConsoleWriter(out, mode),
		timeFormat: timeFormat,
	}
}

// Write implements Sink.
func (s *WriterSink) Write(entry Entry) error {
	line := entry.Line(s.timeFormat)
	if s.writer.UseColors() {
		line = entry.Decorated(s.timeFormat)
	}

	_, err := s.writer.Write([]byte(line + "\n"))
	if err != nil {
		return ewrap.Wrap(err, "writer sink failed")
	}

	return nil
}

// Flush implements Sink.
func (s *WriterSink) Flush() error {
	return s.writer.Flush()
}

// Close releases the underlying stream.
func (s *WriterSink) Close() error {
	return s.writer.Close()
}

// FileSink renders entries as plain lines into a buffered log file. Entries
// stay buffered until Flush; Logger.Flush and Logger.Dispose drain it.
type FileSink struct {
	writer     *output.FileWriter
	timeFormat string
}

// NewFileSink opens (or creates) a log file at path in append mode. Relative
// paths are confined to the system temporary directory. timeFormat defaults
// to DefaultTimeFormat when empty.
func NewFileSink(path, timeFormat string) (*FileSink, error) {
	writer, err := output.NewFileWriter(path)
	if err != nil {
		return nil, ewrap.Wrap(err, "creating file sink")
	}

	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	return &FileSink{
		writer:     writer,
		timeFormat: timeFormat,
	}, nil
}

// Path returns the resolved absolute path of the log file.
func (s *FileSink) Path() string {
	return s.writer.Path()
}

// Write implements Sink.
func (s *FileSink) Write(entry Entry) error {
	_, err := s.writer.Write([]byte(entry.Line(s.timeFormat) + "\n"))
	if err != nil {
		return ewrap.Wrap(err, "file sink failed")
	}

	return nil
}

// Flush implements Sink.
func (s *FileSink) Flush() error {
	return s.writer.Flush()
}

// Close flushes and closes the log file.
func (s *FileSink) Close() error {
	return s.writer.Close()
}
