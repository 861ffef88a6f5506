// Package check provides parameter guards. A failed guard panics with an
// *ArgumentError; run guarded code through ex.Of to get a Result instead.
package check

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/ex/pkg/ex"
)

// Error is the class of every guard failure.
var Error = errs.Class("check")

// ArgumentError names the offending parameter and why it was rejected.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %q %s", e.Name, e.Reason)
}

func fail(name, reason string) {
	panic(Error.Wrap(&ArgumentError{Name: name, Reason: reason}))
}

func NotNil[T any](value T, name string) T {
	if ex.IsNil(value) {
		fail(name, "must not be nil")
	}
	return value
}

func NotEmpty(value string, name string) string {
	if value == "" {
		fail(name, "must not be empty")
	}
	return value
}

func NotBlank(value string, name string) string {
	if strings.TrimSpace(value) == "" {
		fail(name, "must not be blank")
	}
	return value
}

func NotEmptySlice[S ~[]E, E any](value S, name string) S {
	if len(value) == 0 {
		fail(name, "must not be empty")
	}
	return value
}

// Bounds describes an optional range. A nil Min or Max leaves that side open.
type Bounds[T constraints.Ordered] struct {
	Min, Max                   *T
	MinExclusive, MaxExclusive bool
}

func Between[T constraints.Ordered](min, max T) Bounds[T] {
	return Bounds[T]{Min: &min, Max: &max}
}

func AtLeast[T constraints.Ordered](min T) Bounds[T] {
	return Bounds[T]{Min: &min}
}

func AtMost[T constraints.Ordered](max T) Bounds[T] {
	return Bounds[T]{Max: &max}
}

func IsInRange[T constraints.Ordered](value T, b Bounds[T]) bool {
	if b.Min != nil {
		if b.MinExclusive && value <= *b.Min || !b.MinExclusive && value < *b.Min {
			return false
		}
	}
	if b.Max != nil {
		if b.MaxExclusive && value >= *b.Max || !b.MaxExclusive && value > *b.Max {
			return false
		}
	}
	return true
}

// RangeError describes why value is outside b, or returns "" if it is inside.
func RangeError[T constraints.Ordered](value T, b Bounds[T], name string) string {
	if IsInRange(value, b) {
		return ""
	}

	var parts []string
	if b.Min != nil {
		op := ">="
		if b.MinExclusive {
			op = ">"
		}
		parts = append(parts, fmt.Sprintf("%s %v", op, *b.Min))
	}
	if b.Max != nil {
		op := "<="
		if b.MaxExclusive {
			op = "<"
		}
		parts = append(parts, fmt.Sprintf("%s %v", op, *b.Max))
	}
	return fmt.Sprintf("%s must be %s, got %v", name, strings.Join(parts, " and "), value)
}

func Range[T constraints.Ordered](value T, b Bounds[T], name string) T {
	if !IsInRange(value, b) {
		fail(name, "out of range: "+RangeError(value, b, name))
	}
	return value
}
