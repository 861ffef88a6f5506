package ex

import (
	"github.com/zeebo/errs"
)

// Of runs fn and wraps its return value with Success. A panic raised by fn is
// recovered and returned as a Failure; nothing escapes this boundary.
func Of[R any](fn func() R) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[R](FromPanic(p))
		}
	}()

	return Success(fn())
}

// OfWith is Of for a function of one argument.
func OfWith[T, R any](in T, fn func(T) R) Result[R] {
	return Of(func() R { return fn(in) })
}

// OfErr runs fn and converts both a returned error and a panic into a Failure.
func OfErr[R any](fn func() (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[R](FromPanic(p))
		}
	}()

	return FromPair(fn())
}

func OfErrWith[T, R any](in T, fn func(T) (R, error)) Result[R] {
	return OfErr(func() (R, error) { return fn(in) })
}

// OfResult runs fn, which already produces a Result, and returns it as is.
// Only a panic is turned into a Failure.
func OfResult[R any](fn func() Result[R]) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[R](FromPanic(p))
		}
	}()

	return fn()
}

// Do runs fn for its effect. The result is Success(true) if fn returns
// normally.
func Do(fn func()) Result[bool] {
	return Of(func() bool {
		fn()
		return true
	})
}

// FromPanic turns a recovered panic value into an error. An error value is
// kept (errors.Is and errors.As still see it), a string becomes the message
// verbatim, anything else is formatted with %v.
func FromPanic(p any) error {
	switch v := p.(type) {
	case error:
		return errs.Wrap(v)
	case string:
		return errs.New("%s", v)
	default:
		return errs.New("%v", v)
	}
}
