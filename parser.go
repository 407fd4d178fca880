package devconsole

import (
	"strings"
	"unicode"

	"github.com/hyp3rd/ewrap"
)

// ErrUnterminatedQuote indicates an input line that ended inside a quoted
// token.
var ErrUnterminatedQuote = ewrap.New("unterminated quote in input")

// scanState tracks the line scanner position relative to quoting.
type scanState uint8

const (
	// scanDefault is the state between tokens and inside unquoted tokens.
	scanDefault scanState = iota
	// scanQuoted is the state inside a double-quoted region.
	scanQuoted
)

// SplitLine splits one line of console input into tokens.
//
// Tokens are separated by runs of whitespace. A double-quoted region
// preserves whitespace verbatim; the quotes themselves are stripped. No
// escape sequences are recognized inside quotes — a quote always closes the
// region, so a literal double quote cannot be embedded in a token. An input
// ending inside a quoted region fails with ErrUnterminatedQuote.
//
// Empty or whitespace-only input yields no tokens and no error.
func SplitLine(line string) ([]string, error) {
	var (
		tokens  []string
		token   strings.Builder
		inToken bool
		state   scanState
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, token.String())
			token.Reset()

			inToken = false
		}
	}

	for _, r := range line {
		switch state {
		case scanQuoted:
			if r == '"' {
				state = scanDefault

				continue
			}

			token.WriteRune(r)
		default: // scanDefault
			switch {
			case r == '"':
				state = scanQuoted
				// An opening quote starts a token even when it closes
				// immediately: `""` is the empty token.
				inToken = true
			case unicode.IsSpace(r):
				flush()
			default:
				inToken = true

				token.WriteRune(r)
			}
		}
	}

	if state == scanQuoted {
		return nil, ewrap.Wrap(ErrUnterminatedQuote, "input ended inside quotes").
			WithMetadata("line", line)
	}

	flush()

	return tokens, nil
}
