package appcore

import "fmt"

// ConfigError reports an inconsistent run description, detected before any
// input or output is touched.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func configErrorf(format string, a ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}
