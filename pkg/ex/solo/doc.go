// Package solo contains single-value, synchronous combinators that operate on
// ex.Result[T]. Every function argument runs under capture: a panic inside it
// becomes a failure and never escapes.
//
// Highlights:
// - Map/Bind/Try/TryErr/TryBind: transform successful values, pass failures
// - TryValue/TryBoolValue: promote a bare value into a Result
// - TryBool: run a probe for its effect, Success(true) when it completed
// - Apply/ApplyWith: same-type refinement that keeps the input if it panics
// - ApplyDo/Tee: side-effect helpers
// - Match/MatchDo/GetOrElse: reduce to a concrete value
// - Select/SelectMany: two-step comprehension
// - Validate/AndValidate/FailOnError: turn checks into failures
package solo
