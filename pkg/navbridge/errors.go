package navbridge

import (
	"errors"
	"fmt"
)

// ConfigError reports a configuration that could not be read or is invalid.
// The program cannot start with it, so it is surfaced rather than defaulted.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "decode", "strategy")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navbridge: config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navbridge: config %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
