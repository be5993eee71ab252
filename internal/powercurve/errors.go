package powercurve

import "fmt"

// ConfigError reports a required parameter that is missing or semantically
// invalid for the selected method, such as an absent turbulence intensity or
// a non-positive tail step. It is fatal to the call; no partial result is
// returned alongside it.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func newConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// InvalidConfigError reports a config whose value shape does not match the
// selected method, or an unrecognized method name.
type InvalidConfigError struct {
	Message string
}

func (e *InvalidConfigError) Error() string {
	return e.Message
}

func newInvalidConfigError(format string, args ...interface{}) *InvalidConfigError {
	return &InvalidConfigError{Message: fmt.Sprintf(format, args...)}
}
