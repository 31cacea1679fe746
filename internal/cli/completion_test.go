package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"# bash completion for sx", "__start_sx"}},
		{"zsh", []string{"#compdef sx", "_sx()"}},
		{"fish", []string{"fish completion for sx", "complete -c sx"}},
		{"powershell", []string{"Register-ArgumentCompleter"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			completionCmd.SetOut(&buf)
			t.Cleanup(func() { completionCmd.SetOut(nil) })

			require.NoError(t, completionCmd.RunE(completionCmd, []string{tt.shell}))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestCompletionUnknownShell(t *testing.T) {
	err := completionCmd.RunE(completionCmd, []string{"tcsh"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown shell: tcsh")
}

func TestCompletionIncludesSubcommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "_sx_root_command")
	assert.Contains(t, output, "_sx_sample()")
	assert.Contains(t, output, "_sx_init()")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	joined := strings.Join(names, ",")

	for _, want := range []string{"sample", "init", "version", "completion"} {
		assert.Contains(t, joined, want)
	}
}
