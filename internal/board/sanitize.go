package board

import (
	"strings"
	"unicode"
)

// Sanitize makes user-supplied text safe to print to a terminal. ANSI
// escape sequences are removed, control characters become spaces, and
// whitespace runs collapse to single spaces. Everything the client
// renders from server data goes through here first.
func Sanitize(s string) string {
	const (
		plain = iota
		escape
		csi
		osc
	)

	state := plain
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch state {
		case escape:
			switch r {
			case '[':
				state = csi
			case ']':
				state = osc
			default:
				state = plain
			}
		case csi:
			// parameter bytes run until a final byte in @..~
			if r >= '@' && r <= '~' {
				state = plain
			}
		case osc:
			switch r {
			case 0x07:
				state = plain
			case 0x1b:
				// ST terminator; the trailing backslash rides through escape
				state = escape
			}
		default:
			switch {
			case r == 0x1b:
				state = escape
			case unicode.IsControl(r):
				b.WriteRune(' ')
			case unicode.Is(unicode.Cf, r):
				// zero-width and bidi formatting characters
			default:
				b.WriteRune(r)
			}
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
