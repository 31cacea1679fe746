package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.txt", "report.txt"},
		{"unicode kept", "résumé ■.md", "résumé ■.md"},
		{"newline", "0\nx", "0?x"},
		{"escape sequence", "esc\x1b[2Jclear", "esc?[2Jclear"},
		{"osc", "\x1b]0;title\x07", "?]0;title?"},
		{"tab and carriage return", "a\tb\rc", "a?b?c"},
		{"c1 control", "a\u009bb", "a?b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeText(tt.in))
		})
	}
}
