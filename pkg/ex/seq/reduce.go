package seq

import (
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/ex/pkg/ex"
)

// Min returns the successful element with the smallest key. Failures are
// ignored; when no success exists the result is EmptyListError. On ties the
// earliest element wins.
func Min[T any, K constraints.Ordered](src iter.Seq[ex.Result[T]], key func(T) K) ex.Result[T] {
	return ex.OfResult(func() ex.Result[T] {
		var (
			best    T
			bestKey K
			found   bool
		)

		for v := range Successes(src) {
			if k := key(v); !found || k < bestKey {
				best, bestKey, found = v, k, true
			}
		}

		if !found {
			return ex.Fail[T](ex.EmptyListError())
		}
		return ex.Success(best)
	})
}

// First returns the first successful element matching predicate. When none
// matches the result wraps ex.ErrNoMatch.
func First[T any](src iter.Seq[ex.Result[T]], predicate func(T) bool) ex.Result[T] {
	return ex.OfResult(func() ex.Result[T] {
		for v := range Successes(src) {
			if predicate(v) {
				return ex.Success(v)
			}
		}
		return ex.Fail[T](ex.NoMatchError())
	})
}

// FirstOrDefault is First returning def when nothing matches. A panicking
// predicate counts as no match.
func FirstOrDefault[T any](src iter.Seq[ex.Result[T]], predicate func(T) bool, def T) ex.Result[T] {
	found := First(src, func(v T) bool {
		return ex.OfWith(v, predicate).GetOrElse(false)
	})
	if found.IsSuccess() {
		return found
	}
	return ex.Success(def)
}

// Aggregate left-folds the successful values with combine. The first failure
// met becomes the result and the rest of src is not consumed. An empty src
// yields EmptyValueError; a panic in combine is captured.
func Aggregate[T any](src iter.Seq[ex.Result[T]], combine func(T, T) T) ex.Result[T] {
	return ex.OfResult(func() ex.Result[T] {
		var acc ex.Result[T]
		started := false

		for item := range src {
			if item.IsFailure() {
				return item
			}

			if !started {
				acc, started = item, true
				continue
			}

			acc = ex.Success(combine(acc.Value(), item.Value()))
			if acc.IsFailure() {
				return acc
			}
		}

		if !started {
			return ex.Fail[T](ex.EmptyValueError())
		}
		return acc
	})
}

// Join pairs successful outer and inner elements whose keys are equal and
// projects each pair. Failures on either side are skipped, not emitted. inner
// is traversed again for every outer element. A panic in a key function or
// in project, or a key comparison that panics, is emitted as a failure.
func Join[O, I any, K comparable, R any](
	outer iter.Seq[ex.Result[O]],
	inner iter.Seq[ex.Result[I]],
	outerKey func(O) K,
	innerKey func(I) K,
	project func(O, I) R) iter.Seq[ex.Result[R]] {

	return func(yield func(ex.Result[R]) bool) {
		for o := range outer {
			if o.IsFailure() {
				continue
			}

			wanted, err := call(o.Value(), outerKey)
			if err != nil {
				if !yield(ex.Fail[R](err)) {
					return
				}
				continue
			}

			for i := range inner {
				if i.IsFailure() {
					continue
				}

				ik, err := call(i.Value(), innerKey)
				if err != nil {
					if !yield(ex.Fail[R](err)) {
						return
					}
					continue
				}

				same, err := equal(ik, wanted)
				if err != nil {
					if !yield(ex.Fail[R](err)) {
						return
					}
					continue
				}
				if !same {
					continue
				}

				ov, iv := o.Value(), i.Value()
				if !yield(ex.Of(func() R { return project(ov, iv) })) {
					return
				}
			}
		}
	}
}

// Render writes one line per element: the error message of a failure or the
// %v form of a value.
func Render[T any](src iter.Seq[ex.Result[T]]) string {
	var sb strings.Builder
	for item := range src {
		sb.WriteString(item.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// call runs f under capture without the absent-value rule, so nil keys stay
// usable.
func call[T, R any](v T, f func(T) R) (out R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = ex.FromPanic(p)
		}
	}()
	return f(v), nil
}

// equal compares keys under capture: interface keys holding uncomparable
// values panic on ==.
func equal[K comparable](a, b K) (same bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = ex.FromPanic(p)
		}
	}()
	return a == b, nil
}
