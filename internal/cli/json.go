package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rileyhilliard/sx/internal/errors"
)

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeFilesystem     = "FILESYSTEM"
	ErrCodeMetrics        = "METRICS_UNAVAILABLE"
	ErrCodeAsset          = "ASSET_INVALID"
	ErrCodeTerminal       = "TERMINAL"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// reportedError marks an error already written out as a JSON envelope.
// It still fails the command, but Execute does not print it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reportJSONError writes err to w as a JSON error envelope. If the envelope
// can't be written, err comes back unmarked so it still reaches stderr.
func reportJSONError(w io.Writer, err error) error {
	if werr := WriteJSONFromError(w, err); werr != nil {
		return err
	}
	return &reportedError{err: err}
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if sxErr, ok := err.(*errors.Error); ok {
		return &JSONError{
			Code:       mapErrorCode(sxErr.Code, sxErr.Message),
			Message:    sxErr.Summary(),
			Suggestion: sxErr.Suggestion,
		}
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		msgLower := strings.ToLower(message)
		if strings.Contains(msgLower, "not found") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrFS:
		return ErrCodeFilesystem
	case errors.ErrMetrics:
		return ErrCodeMetrics
	case errors.ErrAsset:
		return ErrCodeAsset
	case errors.ErrUI:
		return ErrCodeTerminal
	}

	return ErrCodeUnknown
}
