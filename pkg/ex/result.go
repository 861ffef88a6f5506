package ex

import "fmt"

// Result holds either a successfully produced value or the error that
// prevented it. The zero Result is a Failure carrying no error and should not
// be used; build one with Success, Fail or the capture functions.
type Result[T any] struct {
	value     T
	err       error
	isSuccess bool
}

// Success wraps v. An absent v (nil pointer, map, channel, func or interface)
// yields a Failure carrying EmptyValueError instead.
func Success[T any](v T) Result[T] {
	if IsNil(v) {
		return Fail[T](EmptyValueError())
	}

	return Result[T]{
		value:     v,
		isSuccess: true,
	}
}

// Fail wraps err. A nil err is replaced by EmptyValueError so that a Failure
// always has something to report.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = EmptyValueError()
	}

	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FailFrom carries the error of a failed Result over to another value type.
// It must only be called on a Failure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Fail[Out](from.err)
}

// FromPair converts the usual (value, error) return into a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the value and the error, forcing the caller to look at both.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) GetOrElse(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// Message returns the error text of a Failure and an empty string otherwise.
func (r Result[T]) Message() string {
	if r.isSuccess || r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("%v", r.value)
	}
	return r.Message()
}
