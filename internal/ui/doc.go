// Package ui holds the styling shared by sx's plain (non-panel) command
// output: semantic colors, status symbols, and simple tables.
//
// Colors are ANSI codes so output degrades cleanly on limited terminals;
// the --no-color flag switches lipgloss to the ASCII profile instead of
// touching these values.
package ui
