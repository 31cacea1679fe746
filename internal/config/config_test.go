package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, DefaultFrameInterval, cfg.FrameInterval)
	assert.Equal(t, CPUModeDelta, cfg.Metrics.CPUMode)
	assert.Equal(t, SortDirsFirst, cfg.Explorer.Sort)
	assert.False(t, cfg.Explorer.ClearSelectionOnNavigate)
	assert.Empty(t, cfg.StartDir)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
version: 1
start_dir: /tmp
frame_interval: 250ms
metrics:
  cpu_mode: cumulative
explorer:
  sort: name
  clear_selection_on_navigate: true
assets:
  icons: icons.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp", cfg.StartDir)
	assert.Equal(t, 250*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, CPUModeCumulative, cfg.Metrics.CPUMode)
	assert.Equal(t, SortName, cfg.Explorer.Sort)
	assert.True(t, cfg.Explorer.ClearSelectionOnNavigate)
	assert.Equal(t, filepath.Join(dir, "icons.yaml"), cfg.Assets.Icons, "relative icon path resolves against the config dir")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "explorer:\n  sort: none\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SortNone, cfg.Explorer.Sort)
	assert.Equal(t, DefaultFrameInterval, cfg.FrameInterval)
	assert.Equal(t, CPUModeDelta, cfg.Metrics.CPUMode)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "explorer: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "frame_interval: 250ms\n")
	t.Setenv("SX_METRICS_CPU_MODE", CPUModeCumulative)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CPUModeCumulative, cfg.Metrics.CPUMode)
	assert.Equal(t, 250*time.Millisecond, cfg.FrameInterval)
}

func TestFind(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "version: 1\n")
		found, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("HOME", t.TempDir())
		path := writeConfig(t, dir, "version: 1\n")
		t.Chdir(dir)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(path), filepath.Base(found))
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		found, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SX_FRAME_INTERVAL", "50ms")

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, SortDirsFirst, cfg.Explorer.Sort)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "future version",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "interval too short",
			mutate:  func(c *Config) { c.FrameInterval = time.Millisecond },
			wantErr: "too short",
		},
		{
			name:    "unknown cpu mode",
			mutate:  func(c *Config) { c.Metrics.CPUMode = "average" },
			wantErr: "cpu_mode",
		},
		{
			name:    "unknown sort",
			mutate:  func(c *Config) { c.Explorer.Sort = "size" },
			wantErr: "explorer.sort",
		},
		{
			name:   "cumulative mode and raw order",
			mutate: func(c *Config) { c.Metrics.CPUMode = CPUModeCumulative; c.Explorer.Sort = SortNone },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestMarshal_WritesReadableDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameInterval = 250 * time.Millisecond

	data, err := Marshal(cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "frame_interval: 250ms")
	assert.Contains(t, out, "cpu_mode: delta")
	assert.Contains(t, out, "sort: dirs_first")
	assert.NotContains(t, out, "assets:", "empty assets block is omitted")
}

func TestWrite_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := DefaultConfig()
	cfg.Explorer.ClearSelectionOnNavigate = true
	cfg.Metrics.CPUMode = CPUModeCumulative

	require.NoError(t, Write(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.FrameInterval, loaded.FrameInterval)
	assert.True(t, loaded.Explorer.ClearSelectionOnNavigate)
	assert.Equal(t, CPUModeCumulative, loaded.Metrics.CPUMode)
}

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USER", "alice")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"~", home},
		{"~/projects", filepath.Join(home, "projects")},
		{"${HOME}/x", home + "/x"},
		{"/home/${USER}", "/home/alice"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.in))
		})
	}
}
