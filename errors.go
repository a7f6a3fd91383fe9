package gcf

import (
	"errors"
	"reflect"
)

// ErrInvalidValue is returned when a group yields a zero Value for one of its keys.
var ErrInvalidValue = errors.New("gcf: invalid value")

// A WriteTargetError reports that the document could not be saved to its
// target. Target names the file path or stream identifier; Err holds the
// underlying I/O failure.
type WriteTargetError struct {
	Target string
	Err    error
}

func (e *WriteTargetError) Error() string {
	return "gcf: error occurred while saving " + e.Target
}

func (e *WriteTargetError) Unwrap() error { return e.Err }

// An UnsupportedValueError is returned by ValueOf when a Go value has no
// scalar representation.
type UnsupportedValueError struct {
	Type reflect.Type
}

func (e *UnsupportedValueError) Error() string {
	if e.Type == nil {
		return "gcf: unsupported value: nil"
	}
	return "gcf: unsupported value type: " + e.Type.String()
}
