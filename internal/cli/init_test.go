package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/sx/internal/config"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NonInteractiveDefaults(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Init(InitOptions{Dir: dir, NonInteractive: true}))

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.CurrentConfigVersion, cfg.Version)
	assert.Equal(t, config.CPUModeDelta, cfg.Metrics.CPUMode)
	assert.Equal(t, config.SortDirsFirst, cfg.Explorer.Sort)
	assert.Equal(t, config.DefaultFrameInterval, cfg.FrameInterval)
}

func TestInit_NonInteractiveWithFlags(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Init(InitOptions{
		Dir:            dir,
		NonInteractive: true,
		CPUMode:        config.CPUModeCumulative,
		Sort:           config.SortNone,
	}))

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.CPUModeCumulative, cfg.Metrics.CPUMode)
	assert.Equal(t, config.SortNone, cfg.Explorer.Sort)
}

func TestInit_ExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	err := Init(InitOptions{Dir: dir, NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(InitOptions{Dir: dir, NonInteractive: true, Overwrite: true, Sort: config.SortName}))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.SortName, cfg.Explorer.Sort)
}

func TestInit_InvalidFlagValue(t *testing.T) {
	dir := t.TempDir()

	err := Init(InitOptions{Dir: dir, NonInteractive: true, CPUMode: "average"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	_, statErr := os.Stat(filepath.Join(dir, config.ConfigFileName))
	assert.True(t, os.IsNotExist(statErr), "nothing is written for an invalid config")
}
