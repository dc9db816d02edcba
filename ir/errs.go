package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned by typed getters when the requested Go
	// type does not correspond to the node's tag.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrWrongShape is returned when a map-only or array-only operation is
	// applied to a node of another tag.
	ErrWrongShape = errors.New("wrong shape")

	ErrKeyNotFound = errors.New("key not found")
	ErrOutOfRange  = errors.New("index out of range")
	ErrNilNode     = errors.New("nil node")
	ErrPath        = errors.New("path error")
)

func mismatch(want string, got Type) error {
	return fmt.Errorf("%w: cannot get %s from %s node", ErrTypeMismatch, want, got)
}

func wrongShape(op string, want, got Type) error {
	return fmt.Errorf("%w: %s requires %s node, got %s", ErrWrongShape, op, want, got)
}
