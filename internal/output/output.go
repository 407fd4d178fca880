// Package output provides byte-level output destinations for console log
// sinks.
//
// Two writers are provided:
//   - ConsoleWriter writes to a terminal-like stream and decides whether ANSI
//     color sequences should be emitted, based on the configured color mode
//     and terminal detection.
//   - FileWriter writes to a buffered log file with an explicit Flush.
//
// Both implement the Writer interface, which extends io.Writer with Flush and
// Close. Formatting happens upstream; this package only moves bytes.
package output

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

const (
	// fileBufferSize is the size of the buffered writer in front of log files.
	fileBufferSize = 4096

	// logFilePermissions are the permissions applied to newly created log files.
	logFilePermissions = 0o644
)

// Writer is the interface for sink output destinations.
type Writer interface {
	io.Writer
	// Flush ensures that all buffered data has been written out.
	Flush() error
	// Close flushes and releases any resources held by the writer.
	Close() error
}

// ColorMode determines how color sequences are handled by a ConsoleWriter.
type ColorMode int

const (
	// ColorModeAuto enables colors only when the output is a terminal.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways forces color output.
	ColorModeAlways
	// ColorModeNever disables color output.
	ColorModeNever
)

// ConsoleWriter writes to a console-like stream. It does not inject colors
// itself; callers query UseColors and pick a colored or plain rendering.
type ConsoleWriter struct {
	mu         sync.Mutex
	out        io.Writer
	mode       ColorMode
	isTerminal bool
}

// NewConsoleWriter creates a ConsoleWriter for the given stream. A nil out
// defaults to os.Stdout.
func NewConsoleWriter(out io.Writer, mode ColorMode) *ConsoleWriter {
	if out == nil {
		out = os.Stdout
	}

	return &ConsoleWriter{
		out:        out,
		mode:       mode,
		isTerminal: IsTerminal(out),
	}
}

// UseColors reports whether color sequences should be written to this stream.
//
//nolint:exhaustive // ColorModeAuto is handled as default.
func (w *ConsoleWriter) UseColors() bool {
	switch w.mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default: // ColorModeAuto
		return w.isTerminal
	}
}

// Write implements io.Writer.
func (w *ConsoleWriter) Write(payload []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	bytesWritten, err := w.out.Write(payload)
	if err != nil {
		return bytesWritten, ewrap.Wrap(err, "failed writing to console output")
	}

	return bytesWritten, nil
}

// Flush flushes the underlying stream when it supports flushing. Standard
// streams need no flushing and always succeed.
func (w *ConsoleWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if f, ok := w.out.(*os.File); ok {
		if f == os.Stdout || f == os.Stderr {
			return nil
		}
	}

	if syncer, ok := w.out.(interface{ Sync() error }); ok {
		err := syncer.Sync()
		if err != nil {
			return ewrap.Wrap(err, "flushing console output")
		}
	}

	return nil
}

// Close closes the underlying stream when it is closable. Standard streams
// are left open.
func (w *ConsoleWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if f, ok := w.out.(*os.File); ok {
		if f == os.Stdout || f == os.Stderr {
			return nil
		}
	}

	if closer, ok := w.out.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			return ewrap.Wrap(err, "closing console output")
		}
	}

	return nil
}

// FileWriter appends to a buffered log file. Writes stay in the buffer until
// Flush or Close; both are safe to call repeatedly.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	path string
}

// NewFileWriter opens (or creates) the log file at path in append mode.
// Relative paths are confined to the system temporary directory to keep
// user-supplied dump targets from escaping into arbitrary locations.
func NewFileWriter(path string) (*FileWriter, error) {
	securePath, err := resolveLogPath(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(securePath)

	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		return nil, ewrap.Wrap(err, "creating log directory").
			WithMetadata("path", dir)
	}

	file, err := os.OpenFile(securePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePermissions)
	if err != nil {
		return nil, ewrap.Wrap(err, "opening log file").
			WithMetadata("path", securePath)
	}

	return &FileWriter{
		file: file,
		buf:  bufio.NewWriterSize(file, fileBufferSize),
		path: securePath,
	}, nil
}

// Path returns the resolved absolute path of the log file.
func (w *FileWriter) Path() string {
	return w.path
}

// Write implements io.Writer.
func (w *FileWriter) Write(payload []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, ewrap.New("log file already closed").
			WithMetadata("path", w.path)
	}

	bytesWritten, err := w.buf.Write(payload)
	if err != nil {
		return bytesWritten, ewrap.Wrap(err, "failed writing to log file").
			WithMetadata("path", w.path)
	}

	return bytesWritten, nil
}

// Flush drains the buffer to disk.
func (w *FileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.flushLocked()
}

// Close flushes any remaining data and closes the file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.flushLocked()
	if err != nil {
		return err
	}

	err = w.file.Close()
	if err != nil {
		return ewrap.Wrap(err, "closing log file").
			WithMetadata("path", w.path)
	}

	w.file = nil

	return nil
}

func (w *FileWriter) flushLocked() error {
	if w.file == nil {
		return nil
	}

	err := w.buf.Flush()
	if err != nil {
		return ewrap.Wrap(err, "flushing log file buffer").
			WithMetadata("path", w.path)
	}

	err = w.file.Sync()
	if err != nil {
		return ewrap.Wrap(err, "syncing log file").
			WithMetadata("path", w.path)
	}

	return nil
}

// resolveLogPath normalizes a log file path. Absolute paths inside the temp
// directory pass through; other absolute paths and traversal sequences are
// rejected; relative paths are anchored at the temp directory.
func resolveLogPath(path string) (string, error) {
	if path == "" {
		return "", ewrap.New("log file path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return "", ewrap.New("log file path contains directory traversal sequence").
			WithMetadata("path", path)
	}

	tempDir := os.TempDir()

	if filepath.IsAbs(cleanPath) {
		if strings.HasPrefix(cleanPath, tempDir) {
			return cleanPath, nil
		}

		return "", ewrap.New("absolute log file paths outside the temp directory are not allowed").
			WithMetadata("path", path)
	}

	return filepath.Join(tempDir, cleanPath), nil
}

// IsTerminal reports whether the writer is connected to a terminal. Used to
// decide color support in ColorModeAuto.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	return false
}
