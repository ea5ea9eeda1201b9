package gollowmap

import (
	"errors"
	"fmt"
)

var (
	ErrConfig      = errors.New("invalid table configuration")
	ErrKeyNotFound = errors.New("key not found")

	// panic value raised when a cursor is used after its table was mutated
	ErrCursorInvalidated = errors.New("cursor used after table mutation")
)

// ConfigError is returned by the constructors when the load factor bounds,
// the initial capacity or the bulk input slices are invalid.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfig, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// KeyNotFoundError is returned by read-only lookups of an absent key.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
