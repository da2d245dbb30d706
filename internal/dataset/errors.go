package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrRender     = errors.New("render failed")
	ErrFilesystem = errors.New("filesystem error")
)

// Error reports the artifact a batch stopped at. It matches both its Kind
// and the underlying cause with errors.Is.
type Error struct {
	Kind  error
	Index int // -1 before the first artifact
	Path  string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: artifact %d: %v", e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("%s: artifact %d (%s): %v", e.Kind, e.Index, e.Path, e.Err)
}

func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }
