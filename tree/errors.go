package tree

import (
	"errors"
	"fmt"
)

// ErrUnsupported is wrapped by a SourceError when the input holds a
// construct that has no place in a configuration tree, such as a list.
var ErrUnsupported = errors.New("unsupported construct")

// A SourceError reports where in the input document a tree could not be
// built. Path is the group path or key path of the offending element.
type SourceError struct {
	Format string
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("tree: %s: %s: %v", e.Format, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
