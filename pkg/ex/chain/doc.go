// Package chain provides a fluent wrapper around ex.Result[T]
// for building synchronous railway-style chains using solo primitives.
//
// Key operations:
// - Start/FromValue/Of: begin a chain from a Result[T], a value or a computation
// - Then/ThenTry/Map/Apply: same-type steps
// - To/ToTry/MapTo: switch to a new Result[U]
// - Ensure: run side effects without changing the result
// - Or/And: pick among alternative chains
// - RepeatUntil/While: loop a step while a condition holds
// - Finally: collapse the chain into a final value via handlers
package chain
