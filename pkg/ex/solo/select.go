package solo

import "github.com/ib-77/ex/pkg/ex"

// Select is Map under its comprehension name.
func Select[In, Out any](input ex.Result[In], project func(r In) Out) ex.Result[Out] {
	return Map(input, project)
}

// SelectMany runs a two-step comprehension: bind the value of input, then
// project both values into the result. A failure at either step is returned
// as the result; panics in bind or project are captured.
func SelectMany[T, R, RR any](input ex.Result[T],
	bind func(t T) ex.Result[R],
	project func(t T, r R) RR) ex.Result[RR] {

	if input.IsFailure() {
		return ex.FailFrom[T, RR](input)
	}

	t := input.Value()
	bound := Bind(input, bind)
	if bound.IsFailure() {
		return ex.FailFrom[R, RR](bound)
	}

	return ex.Of(func() RR { return project(t, bound.Value()) })
}
