package cli

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, map[string]int{"count": 2}))

	var env struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
		Error   *JSONError     `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Data["count"])
	assert.Nil(t, env.Error)
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.WrapWithCode(stderrors.New("permission denied"), errors.ErrFS,
		"Cannot read directory /root", "Check permissions")
	require.NoError(t, WriteJSONFromError(&buf, err))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeFilesystem, env.Error.Code)
	assert.Equal(t, "Cannot read directory /root: permission denied", env.Error.Message)
	assert.Equal(t, "Check permissions", env.Error.Suggestion)
}

func TestErrorToJSON(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"config not found", errors.New(errors.ErrConfig, "Config file not found", ""), ErrCodeConfigNotFound},
		{"config invalid", errors.New(errors.ErrConfig, "Unknown explorer.sort 'x'", ""), ErrCodeConfigInvalid},
		{"filesystem", errors.New(errors.ErrFS, "Cannot enter 'x'", ""), ErrCodeFilesystem},
		{"metrics", errors.New(errors.ErrMetrics, "No counters", ""), ErrCodeMetrics},
		{"asset", errors.New(errors.ErrAsset, "Icon set unavailable", ""), ErrCodeAsset},
		{"terminal", errors.New(errors.ErrUI, "Not a terminal", ""), ErrCodeTerminal},
		{"plain error", stderrors.New("boom"), ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.code, got.Code)
		})
	}

	assert.Nil(t, ErrorToJSON(nil))
}

func TestReportJSONError(t *testing.T) {
	var buf bytes.Buffer
	cause := errors.New(errors.ErrMetrics, "Cannot read CPU times", "")

	err := reportJSONError(&buf, cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.IsCode(err, errors.ErrMetrics))

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Cannot read CPU times", env.Error.Message)
}
