package devconsole

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single token",
			input:    "help",
			expected: []string{"help"},
		},
		{
			name:     "multiple tokens",
			input:    "spawn enemy 3",
			expected: []string{"spawn", "enemy", "3"},
		},
		{
			name:     "runs of whitespace collapse",
			input:    "spawn   enemy\t 3",
			expected: []string{"spawn", "enemy", "3"},
		},
		{
			name:     "leading and trailing whitespace",
			input:    "  help  ",
			expected: []string{"help"},
		},
		{
			name:     "quoted token preserves spaces",
			input:    `echo "a b" c`,
			expected: []string{"echo", "a b", "c"},
		},
		{
			name:     "quotes joined to surrounding text",
			input:    `say pre"mid dle"post`,
			expected: []string{"say", "premid dlepost"},
		},
		{
			name:     "empty quoted token",
			input:    `set name ""`,
			expected: []string{"set", "name", ""},
		},
		{
			name:     "quoted token only",
			input:    `"lonely token"`,
			expected: []string{"lonely token"},
		},
		{
			name:     "adjacent quoted regions merge",
			input:    `echo "a""b"`,
			expected: []string{"echo", "ab"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \t  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := SplitLine(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestSplitLineUnterminatedQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "open quote at end", input: `echo "unclosed`},
		{name: "lone quote", input: `"`},
		{name: "reopened quote", input: `echo "a" "b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := SplitLine(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnterminatedQuote))
			assert.Nil(t, tokens)
		})
	}
}

func TestSplitLineNoEscapeSequences(t *testing.T) {
	// A backslash is an ordinary character; a quote always closes the region,
	// so a literal double quote cannot be embedded in a token.
	tokens, err := SplitLine(`echo "a\" b`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", `a\`, "b"}, tokens)
}
