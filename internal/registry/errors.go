package registry

import (
	"errors"
	"fmt"
)

// ErrNoDefaultDevice is returned when resolution is attempted without a
// device reference and no usable default is configured.
var ErrNoDefaultDevice = errors.New(
	"no device specified and no default device set (pass a device name or address, or run 'wld set-default')")

// NotFoundError reports an operation that referenced a device name absent
// from the registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("device '%s' not found", e.Name)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ConfigError reports a registry file that could not be read, parsed, or
// written. The underlying cause is preserved for errors.Is/As.
type ConfigError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s registry %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
