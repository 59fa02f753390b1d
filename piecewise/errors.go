package piecewise

import (
	"errors"
	"fmt"
)

// ErrInvalidPreviousSegment indicates a factory which derives its start from
// the previous segment has been built without one.
var ErrInvalidPreviousSegment = errors.New("invalid previous segment")

// ErrorKind classifies construction errors.
type ErrorKind int8

// There is currently just one kind of construction error.
const (
	InvalidPreviousSegment ErrorKind = iota
)

func (k ErrorKind) String() string {
	if k == InvalidPreviousSegment {
		return "InvalidPreviousSegment"
	}
	return fmt.Sprintf("ErrorKind(%d)", int8(k))
}

// ConstructionError is returned by factories which are unable to build a
// segment. It unwraps to ErrInvalidPreviousSegment.
type ConstructionError struct {
	Factory string    // type name of the failing factory
	Kind    ErrorKind // reason
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s requires a previous segment for building", e.Factory)
}

func (e *ConstructionError) Unwrap() error {
	return ErrInvalidPreviousSegment
}

func missingPrevious(f Factory) error {
	err := &ConstructionError{
		Factory: fmt.Sprintf("%T", f),
		Kind:    InvalidPreviousSegment,
	}
	tracer().Errorf("%v", err)
	return err
}
