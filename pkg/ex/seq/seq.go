package seq

import (
	"iter"
	"slices"

	"github.com/ib-77/ex/pkg/ex"
)

// Values lifts values into a sequence of outcomes. Absent values become
// failures.
func Values[T any](values ...T) iter.Seq[ex.Result[T]] {
	return FromSlice(values)
}

func FromSlice[T any](values []T) iter.Seq[ex.Result[T]] {
	return func(yield func(ex.Result[T]) bool) {
		for _, v := range values {
			if !yield(ex.Success(v)) {
				return
			}
		}
	}
}

func Of[T any](results ...ex.Result[T]) iter.Seq[ex.Result[T]] {
	return slices.Values(results)
}

func Collect[T any](src iter.Seq[ex.Result[T]]) []ex.Result[T] {
	return slices.Collect(src)
}

// Map applies f to every successful element under capture. Failures are
// passed through; the sequence is never cut short.
func Map[T, R any](src iter.Seq[ex.Result[T]], f func(T) R) iter.Seq[ex.Result[R]] {
	return func(yield func(ex.Result[R]) bool) {
		for item := range src {
			var out ex.Result[R]
			if item.IsSuccess() {
				out = ex.OfWith(item.Value(), f)
			} else {
				out = ex.FailFrom[T, R](item)
			}

			if !yield(out) {
				return
			}
		}
	}
}

// FlatMap expands every successful element into the values produced by f.
// A failure is emitted once and not expanded. A panic raised by f, or while
// the inner sequence runs, is emitted as one failure and the outer sequence
// continues.
func FlatMap[T, R any](src iter.Seq[ex.Result[T]], f func(T) iter.Seq[R]) iter.Seq[ex.Result[R]] {
	return func(yield func(ex.Result[R]) bool) {
		for item := range src {
			if item.IsFailure() {
				if !yield(ex.FailFrom[T, R](item)) {
					return
				}
				continue
			}

			if !expand(item.Value(), f, yield) {
				return
			}
		}
	}
}

// expand reports false once the consumer asked to stop. Panics raised by the
// consumer's loop body are not captured.
func expand[T, R any](v T, f func(T) iter.Seq[R], yield func(ex.Result[R]) bool) (more bool) {
	inYield := false
	defer func() {
		if inYield {
			return
		}
		if p := recover(); p != nil {
			more = yield(ex.Fail[R](ex.FromPanic(p)))
		}
	}()

	for sub := range f(v) {
		inYield = true
		ok := yield(ex.Success(sub))
		inYield = false
		if !ok {
			return false
		}
	}
	return true
}

// Filter keeps every failure and the successes for which predicate holds.
// A panicking predicate turns that element into a failure.
func Filter[T any](src iter.Seq[ex.Result[T]], predicate func(T) bool) iter.Seq[ex.Result[T]] {
	return func(yield func(ex.Result[T]) bool) {
		for item := range src {
			if item.IsFailure() {
				if !yield(item) {
					return
				}
				continue
			}

			keep := ex.OfWith(item.Value(), predicate)
			switch {
			case keep.IsFailure():
				if !yield(ex.FailFrom[bool, T](keep)) {
					return
				}
			case keep.Value():
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Successes yields the values of successful elements in order.
func Successes[T any](src iter.Seq[ex.Result[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range src {
			if item.IsSuccess() && !yield(item.Value()) {
				return
			}
		}
	}
}

// Failures yields the error messages of failed elements in order.
func Failures[T any](src iter.Seq[ex.Result[T]]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for item := range src {
			if item.IsFailure() && !yield(item.Message()) {
				return
			}
		}
	}
}

func Errors[T any](src iter.Seq[ex.Result[T]]) iter.Seq[error] {
	return func(yield func(error) bool) {
		for item := range src {
			if item.IsFailure() && !yield(item.Err()) {
				return
			}
		}
	}
}

// Partition drains src once and splits it into values and errors.
func Partition[T any](src iter.Seq[ex.Result[T]]) ([]T, []error) {
	var values []T
	var errs []error
	for item := range src {
		if item.IsSuccess() {
			values = append(values, item.Value())
		} else {
			errs = append(errs, item.Err())
		}
	}
	return values, errs
}
