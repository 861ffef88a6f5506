package ex

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

var (
	ErrEmptyList  = errors.New("the list is empty.")
	ErrEmptyValue = errors.New("value is not defined.")
	ErrNoMatch    = errors.New("sequence contains no matching element")
)

// DeserializeErr reports that a stored object could not be restored. Cause,
// when set, is reachable through errors.Unwrap but not part of the message.
type DeserializeErr struct {
	ClassName string
	Path      string
	Cause     error
}

func (e *DeserializeErr) Error() string {
	return fmt.Sprintf("unable to restore an object of class %s from file '%s'", e.ClassName, e.Path)
}

func (e *DeserializeErr) Unwrap() error {
	return e.Cause
}

// EmptyListError is returned when an operation needs at least one successful
// element and got none.
func EmptyListError() error {
	return errs.Wrap(ErrEmptyList)
}

// EmptyValueError is returned when a value is absent where one is required.
func EmptyValueError() error {
	return errs.Wrap(ErrEmptyValue)
}

func NoMatchError() error {
	return errs.Wrap(ErrNoMatch)
}

// DeserializeError builds a *DeserializeErr for className read from path.
// Retrieve it with errors.As.
func DeserializeError(className, path string) error {
	return errs.Wrap(&DeserializeErr{ClassName: className, Path: path})
}

// DeserializeErrorWith is DeserializeError keeping the underlying decode error.
func DeserializeErrorWith(className, path string, cause error) error {
	return errs.Wrap(&DeserializeErr{ClassName: className, Path: path, Cause: cause})
}
