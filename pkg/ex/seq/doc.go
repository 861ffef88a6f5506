// Package seq lifts the Result discipline over ordered sequences of outcomes
// expressed as iter.Seq[ex.Result[T]].
//
// Every sequence returned here is lazy and keeps no state between
// traversals: ranging over it twice runs the upstream producer twice. Collect
// the sequence first if the producer is expensive or has side effects.
//
// Element-wise operators (Map, FlatMap, Filter) never cut the sequence short
// on a failure; they pass it on in place. Reductions (Aggregate, Min, First)
// return a single ex.Result. Join is an inner join and drops failures.
// Successes, Failures and Errors partition a sequence; Render prints it.
package seq
