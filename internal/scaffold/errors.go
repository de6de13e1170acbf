package scaffold

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrConfiguration = errors.New("template configuration error")
	ErrIO            = errors.New("template i/o error")
)

// ConfigurationError reports an unknown or malformed template selection.
// Nothing has been written to the target directory when it is returned.
type ConfigurationError struct {
	Template string
	Reason   string
	Err      error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("template %q: %s", e.Template, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure on a single path. The target directory
// may already be partially populated.
type IOError struct {
	Op   string // "read", "write", "mkdir"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }
