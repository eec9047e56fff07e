package view

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when a key is not part of a view.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateKey is returned when a key sequence repeats a key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// KeyError reports a lookup of a key that a view does not hold.
//
// It matches ErrKeyNotFound via errors.Is.
type KeyError struct {
	View string
	Key  any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: key %v: %v", e.View, e.Key, ErrKeyNotFound)
}

func (e *KeyError) Unwrap() error { return ErrKeyNotFound }
