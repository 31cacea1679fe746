package panel

import (
	"strings"
	"unicode"
)

// controlPlaceholder stands in for control characters in displayed text.
const controlPlaceholder = '?'

// sanitizeText replaces control characters (newlines, ESC, ...) with a
// placeholder so file names and paths always render as one line and never
// reach the terminal as escape sequences.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return controlPlaceholder
		}
		return r
	}, s)
}
