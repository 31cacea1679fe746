package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func setVersionForTest(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = origVersion, origCommit, origDate
	})
	SetVersionInfo(v, c, d)
}

func captureVersion(short bool) string {
	cmd := &cobra.Command{Use: "version"}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	printVersion(cmd, short)
	return buf.String()
}

func TestVersionOutput(t *testing.T) {
	setVersionForTest(t, "1.2.3", "abc1234", "2025-01-08T12:00:00Z")

	output := captureVersion(false)

	assert.Contains(t, output, "sx v1.2.3", "should show version with v prefix")
	assert.Contains(t, output, "commit: abc1234")
	assert.Contains(t, output, "built: 2025-01-08T12:00:00Z")
	assert.Contains(t, output, "go: "+runtime.Version())
	assert.Contains(t, output, "os/arch: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionOutputShort(t *testing.T) {
	setVersionForTest(t, "1.2.3", "abc1234", "today")

	assert.Equal(t, "1.2.3", strings.TrimSpace(captureVersion(true)))
	assert.Equal(t, "1.2.3", GetVersion())
}

func TestVersionOutputDev(t *testing.T) {
	setVersionForTest(t, "dev", "none", "unknown")

	output := captureVersion(false)
	assert.Contains(t, output, "sx dev", "dev version should not get a v prefix")
	assert.NotContains(t, output, "vdev")
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.0.0", "v1.0.0"},
		{"v1.0.0", "v1.0.0"},
		{"dev", "dev"},
		{"", ""},
		{"0.1.0-beta", "v0.1.0-beta"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}
