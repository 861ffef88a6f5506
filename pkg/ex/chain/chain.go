package chain

import (
	"github.com/ib-77/ex/pkg/ex"
	"github.com/ib-77/ex/pkg/ex/solo"
)

// Chain wraps an ex.Result to enable fluent chaining
type Chain[T any] struct {
	res ex.Result[T]
}

// Start creates a new chain from an ex.Result
func Start[T any](r ex.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a value; an absent value starts failed
func FromValue[T any](v T) Chain[T] {
	return Start(ex.Success(v))
}

// Of starts a chain from a computation run under capture
func Of[T any](fn func() T) Chain[T] {
	return Start(ex.Of(fn))
}

func (c Chain[T]) Result() ex.Result[T] {
	return c.res
}

func (c Chain[T]) GetOrElse(def T) T {
	return c.res.GetOrElse(def)
}

// Then composes functions that already return ex.Result[T]
func (c Chain[T]) Then(onSuccess func(t T) ex.Result[T]) Chain[T] {
	return Chain[T]{res: solo.Bind(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{res: solo.TryErr(c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: solo.Map(c.res, onSuccess)}
}

// Apply refines the value; a panicking refinement leaves the chain as it was
func (c Chain[T]) Apply(refine func(t T) ex.Result[T]) Chain[T] {
	return Chain[T]{res: solo.Apply(c.res, refine)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	solo.MatchDo(c.res,
		func(t T) {
			if onSuccess != nil {
				ex.Do(func() { onSuccess(t) })
			}
		},
		func(err error) {
			if onFailure != nil {
				ex.Do(func() { onFailure(err) })
			}
		})
	return c
}

func (c Chain[T]) RepeatUntil(onSuccess func(t T) ex.Result[T], until func(t T) bool) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !solo.IsTrue(c.res, until) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(t T) ex.Result[T], while func(t T) bool) Chain[T] {
	for solo.IsTrue(c.res, while) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or the first failure if none
// succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain, or the last one if all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// To switches the chain to another value type
func To[T, U any](c Chain[T], onSuccess func(T) ex.Result[U]) Chain[U] {
	return Chain[U]{res: solo.Bind(c.res, onSuccess)}
}

func ToTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{res: solo.TryErr(c.res, tryOnSuccess)}
}

func MapTo[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{res: solo.Map(c.res, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Match(c.res, onSuccess, onFailure)
}
