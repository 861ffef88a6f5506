// Package ex defines Result[T], a value that is either a Success holding a T
// or a Failure holding an error, together with the capture boundary that
// brings ordinary Go code into it.
//
// Highlights:
// - Success/Fail/FromPair: construct Result[T]; Success of an absent value
//   (nil pointer, map, chan, func, interface) is a Failure with EmptyValueError
// - Of/OfWith/OfErr/OfResult/Do: run a function and turn a panic or a
//   returned error into a Failure
// - EmptyListError/EmptyValueError/DeserializeError: named failures
//
// Combinators live in package solo, fluent chains in package chain and lazy
// sequence operators in package seq.
package ex
