package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrTypeMismatch = errors.New("type mismatch")
)

// TypeMismatchError is returned when a caller asks for a view of a node
// which holds a different kind of value.
type TypeMismatchError struct {
	Path string
	Want string
	Got  Type
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("%s at %s: want %s, got %s", ErrTypeMismatch, path, e.Want, e.Got)
}

func mismatch(node *Node, want string) error {
	return &TypeMismatchError{Path: node.KPath(), Want: want, Got: node.Type}
}
