package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyp3rd/devconsole/internal/textutil"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple lowercase", input: "echo", want: true},
		{name: "digits and separators", input: "net_stat-2", want: true},
		{name: "empty", input: "", want: false},
		{name: "uppercase rejected", input: "Echo", want: false},
		{name: "punctuation rejected", input: "foo!", want: false},
		{name: "space rejected", input: "foo bar", want: false},
		{name: "unicode rejected", input: "héllo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textutil.IsValidName(tt.input))
		})
	}
}

func TestNormalizeTabs(t *testing.T) {
	assert.Equal(t, "a    b", textutil.NormalizeTabs("a\tb"))
	assert.Equal(t, "plain", textutil.NormalizeTabs("plain"))
	assert.Equal(t, "        x", textutil.NormalizeTabs("\t\tx"))
}

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: true},
		{name: "plain text", input: "Lists all commands.", want: true},
		{name: "full range", input: " !~azAZ09", want: true},
		{name: "tab rejected", input: "a\tb", want: false},
		{name: "newline rejected", input: "a\nb", want: false},
		{name: "non-ascii rejected", input: "ünïcode", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textutil.IsPrintable(tt.input))
		})
	}
}
