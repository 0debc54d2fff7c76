package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrIO          = errors.New("io error")
	ErrUnsupported = errors.New("unsupported value")
)

// ParseError reports text which is not valid YAML. It matches ErrParse
// under errors.Is as well as the underlying decoder error.
type ParseError struct {
	Source string
	Doc    int
	Err    error
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s in document %d: %v", ErrParse, e.Doc, e.Err)
	}
	return fmt.Sprintf("%s in %s document %d: %v", ErrParse, e.Source, e.Doc, e.Err)
}

// IOError reports a source path which exists but could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not read %q: %v", e.Path, e.Err)
}
