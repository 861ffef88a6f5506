package seq

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ex/pkg/ex"
)

var errBad = errors.New("bad")

func sample() iter.Seq[ex.Result[int]] {
	return Of(ex.Success(2), ex.Fail[int](errBad), ex.Success(4))
}

// counting wraps src and counts how many times it is traversed.
func counting[T any](src iter.Seq[T], runs *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		*runs++
		for v := range src {
			if !yield(v) {
				return
			}
		}
	}
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	mapped := Map(sample(), func(x int) int { return x * 10 })

	got := Collect(mapped)
	require.Len(t, got, 3)
	assert.Equal(t, 20, got[0].Value())
	assert.ErrorIs(t, got[1].Err(), errBad)
	assert.Equal(t, 40, got[2].Value())

	assert.Equal(t, []int{20, 40}, slices.Collect(Successes(mapped)))
	assert.Equal(t, []string{"bad"}, slices.Collect(Failures(mapped)))
	assert.Equal(t, "20\nbad\n40\n", Render(mapped))
}

func TestMap_IsLazyAndRestartable(t *testing.T) {
	t.Parallel()

	runs, calls := 0, 0
	src := counting(sample(), &runs)
	mapped := Map(src, func(x int) int { calls++; return x + 1 })

	require.Zero(t, runs)
	require.Zero(t, calls)

	first := slices.Collect(Successes(mapped))
	second := slices.Collect(Successes(mapped))

	assert.Equal(t, []int{3, 5}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 4, calls)
}

func TestMap_CapturesPerElement(t *testing.T) {
	t.Parallel()

	mapped := Map(Values(1, 0, 5), func(x int) int { return 10 / x })
	got := Collect(mapped)

	require.Len(t, got, 3)
	assert.Equal(t, 10, got[0].Value())
	assert.True(t, got[1].IsFailure())
	assert.Equal(t, 2, got[2].Value())
}

func TestMap_StopsWhenConsumerStops(t *testing.T) {
	t.Parallel()

	calls := 0
	for v := range Map(Values(1, 2, 3, 4), func(x int) int { calls++; return x }) {
		if v.Value() == 2 {
			break
		}
	}
	assert.Equal(t, 2, calls)
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	repeat := func(x int) iter.Seq[string] {
		return func(yield func(string) bool) {
			for i := 0; i < x; i++ {
				if !yield(strconv.Itoa(x)) {
					return
				}
			}
		}
	}

	src := Of(ex.Success(2), ex.Fail[int](errBad), ex.Success(1), ex.Success(0))
	got := Collect(FlatMap(src, repeat))

	require.Len(t, got, 4)
	assert.Equal(t, "2", got[0].Value())
	assert.Equal(t, "2", got[1].Value())
	assert.ErrorIs(t, got[2].Err(), errBad)
	assert.Equal(t, "1", got[3].Value())
}

func TestFlatMap_PanicEmitsOneFailureAndContinues(t *testing.T) {
	t.Parallel()

	explode := func(x int) iter.Seq[int] {
		if x == 2 {
			panic("cannot expand")
		}
		return slices.Values([]int{x, x})
	}

	got := Collect(FlatMap(Values(1, 2, 3), explode))
	require.Len(t, got, 5)
	assert.EqualError(t, got[2].Err(), "cannot expand")
	assert.Equal(t, []int{1, 1, 3, 3}, slices.Collect(Successes(Of(got...))))
}

func TestFlatMap_ConsumerBreak(t *testing.T) {
	t.Parallel()

	var got []int
	for r := range FlatMap(Values(1, 2), func(x int) iter.Seq[int] { return slices.Values([]int{x, x, x}) }) {
		got = append(got, r.Value())
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, []int{1, 1, 1, 2}, got)
}

func TestFilter_KeepsFailures(t *testing.T) {
	t.Parallel()

	src := Of(ex.Success(1), ex.Fail[int](errBad), ex.Success(2), ex.Success(3))
	got := Collect(Filter(src, func(x int) bool { return x%2 == 1 }))

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Value())
	assert.True(t, got[1].IsFailure())
	assert.Equal(t, 3, got[2].Value())

	panicky := Collect(Filter(Values(1), func(int) bool { panic("pred") }))
	require.Len(t, panicky, 1)
	assert.EqualError(t, panicky[0].Err(), "pred")
}

func TestPartition_PreservesCountsAndOrder(t *testing.T) {
	t.Parallel()

	src := Of(
		ex.Fail[string](errors.New("e1")),
		ex.Success("a"),
		ex.Fail[string](errors.New("e2")),
		ex.Success("b"),
		ex.Success("c"),
	)

	succ := slices.Collect(Successes(src))
	fail := slices.Collect(Failures(src))
	assert.Equal(t, []string{"a", "b", "c"}, succ)
	assert.Equal(t, []string{"e1", "e2"}, fail)
	assert.Equal(t, len(Collect(src)), len(succ)+len(fail))

	values, errs := Partition(src)
	assert.Equal(t, succ, values)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[1], "e2")
	assert.Len(t, slices.Collect(Errors(src)), 2)
}

func TestFromSlice_AbsentValuesFail(t *testing.T) {
	t.Parallel()

	one := 1
	got := Collect(FromSlice([]*int{&one, nil}))
	require.Len(t, got, 2)
	assert.True(t, got[0].IsSuccess())
	assert.ErrorIs(t, got[1].Err(), ex.ErrEmptyValue)
}
