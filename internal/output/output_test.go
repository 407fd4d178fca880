package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/devconsole/internal/output"
)

func TestConsoleWriterColorModes(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name string
		mode output.ColorMode
		want bool
	}{
		{name: "always", mode: output.ColorModeAlways, want: true},
		{name: "never", mode: output.ColorModeNever, want: false},
		// A bytes.Buffer is not a terminal, so auto resolves to no colors.
		{name: "auto on non-terminal", mode: output.ColorModeAuto, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := output.NewConsoleWriter(&buf, tt.mode)
			assert.Equal(t, tt.want, writer.UseColors())
		})
	}
}

func TestConsoleWriterWrite(t *testing.T) {
	var buf bytes.Buffer

	writer := output.NewConsoleWriter(&buf, output.ColorModeNever)

	n, err := writer.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "hello\n", buf.String())

	require.NoError(t, writer.Flush())
	require.NoError(t, writer.Close())
}

func TestFileWriterWriteFlushClose(t *testing.T) {
	path := filepath.Join(os.TempDir(), "devconsole-output-test.log")
	t.Cleanup(func() { os.Remove(path) })

	writer, err := output.NewFileWriter(path)
	require.NoError(t, err)
	assert.Equal(t, path, writer.Path())

	_, err = writer.Write([]byte("one\n"))
	require.NoError(t, err)

	require.NoError(t, writer.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(data))

	require.NoError(t, writer.Close())
	// Close is idempotent.
	require.NoError(t, writer.Close())

	_, err = writer.Write([]byte("two\n"))
	require.Error(t, err)
}

func TestFileWriterRelativePathAnchoredInTempDir(t *testing.T) {
	writer, err := output.NewFileWriter("devconsole-relative-test.log")
	require.NoError(t, err)

	t.Cleanup(func() {
		writer.Close()
		os.Remove(writer.Path())
	})

	assert.Equal(t, filepath.Join(os.TempDir(), "devconsole-relative-test.log"), writer.Path())
}

func TestFileWriterRejectsBadPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty", path: ""},
		{name: "traversal", path: "../escape.log"},
		{name: "absolute outside temp", path: "/etc/devconsole.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := output.NewFileWriter(tt.path)
			require.Error(t, err)
			assert.Nil(t, writer)
		})
	}
}
