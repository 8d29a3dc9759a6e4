package elemental

import (
	"errors"
	"fmt"

	"github.com/pthm/elemental/lib/encoding"
)

// Sentinel errors for rendering and configuration.
var (
	ErrViewNotFound  = errors.New("elemental: view not found")
	ErrRouteNotFound = errors.New("elemental: route not found")
	ErrUnknownFormat = errors.New("elemental: unknown config format")
	ErrInvalidConfig = errors.New("elemental: invalid table config")
)

// IsNotFound checks if err is a missing view or route error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrViewNotFound) || errors.Is(err, ErrRouteNotFound)
}

// IsConfigError checks if err came from decoding a table configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) || errors.Is(err, ErrUnknownFormat)
}

// wrapEncodingError maps encoding package errors onto elemental sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrUnknownFormat) {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}
