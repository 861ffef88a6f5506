package seq

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ex/pkg/ex"
)

func add(a, b int) int { return a + b }

func TestAggregate(t *testing.T) {
	t.Parallel()

	errE := errors.New("E")

	res := Aggregate(Of(ex.Success(1), ex.Fail[int](errE), ex.Success(3)), add)
	assert.ErrorIs(t, res.Err(), errE)

	res = Aggregate(Of[int](), add)
	assert.ErrorIs(t, res.Err(), ex.ErrEmptyValue)

	res = Aggregate(Values(1, 2, 3), add)
	assert.Equal(t, 6, res.Value())

	res = Aggregate(Values(7), add)
	assert.Equal(t, 7, res.Value())
}

func TestAggregate_FirstFailureWinsAndStops(t *testing.T) {
	t.Parallel()

	calls, pulled := 0, 0
	src := func(yield func(ex.Result[int]) bool) {
		for _, r := range []ex.Result[int]{
			ex.Success(1),
			ex.Fail[int](errors.New("first")),
			ex.Fail[int](errors.New("second")),
			ex.Success(4),
		} {
			pulled++
			if !yield(r) {
				return
			}
		}
	}

	res := Aggregate(src, func(a, b int) int { calls++; return a + b })
	assert.EqualError(t, res.Err(), "first")
	assert.Zero(t, calls)
	assert.Equal(t, 2, pulled)
}

func TestAggregate_CapturesCombinePanic(t *testing.T) {
	t.Parallel()

	res := Aggregate(Values(1, 2), func(int, int) int { panic("combine") })
	assert.EqualError(t, res.Err(), "combine")
}

func TestMin(t *testing.T) {
	t.Parallel()

	type person struct {
		Name string
		Age  int
	}

	src := Of(
		ex.Success(person{"ann", 40}),
		ex.Fail[person](errors.New("skip")),
		ex.Success(person{"bob", 20}),
		ex.Success(person{"cid", 20}),
	)

	res := Min(src, func(p person) int { return p.Age })
	require.True(t, res.IsSuccess())
	assert.Equal(t, "bob", res.Value().Name)

	res = Min(Of(ex.Fail[person](errors.New("only"))), func(p person) int { return p.Age })
	assert.ErrorIs(t, res.Err(), ex.ErrEmptyList)
	assert.Equal(t, "the list is empty.", res.Message())
}

func TestFirst_FirstOrDefault(t *testing.T) {
	t.Parallel()

	src := Of(ex.Fail[int](errBad), ex.Success(3), ex.Success(8), ex.Success(10))
	even := func(x int) bool { return x%2 == 0 }

	assert.Equal(t, 8, First(src, even).Value())
	assert.ErrorIs(t, First(src, func(x int) bool { return x > 100 }).Err(), ex.ErrNoMatch)
	assert.ErrorIs(t, First(Of[int](), even).Err(), ex.ErrNoMatch)
	assert.EqualError(t, First(src, func(int) bool { panic("pred") }).Err(), "pred")

	assert.Equal(t, 8, FirstOrDefault(src, even, -1).Value())
	assert.Equal(t, -1, FirstOrDefault(src, func(x int) bool { return x > 100 }, -1).Value())
	assert.Equal(t, -1, FirstOrDefault(src, func(int) bool { panic("pred") }, -1).Value())
}

type order struct {
	ID       int
	Customer string
}

type customer struct {
	Name string
	City string
}

func TestJoin_InnerOnly(t *testing.T) {
	t.Parallel()

	orders := Of(
		ex.Success(order{1, "ann"}),
		ex.Fail[order](errors.New("broken order")),
		ex.Success(order{2, "bob"}),
		ex.Success(order{3, "zed"}),
		ex.Success(order{4, "ann"}),
	)
	customers := Of(
		ex.Success(customer{"ann", "Oslo"}),
		ex.Fail[customer](errors.New("broken customer")),
		ex.Success(customer{"bob", "Rome"}),
	)

	joined := Join(orders, customers,
		func(o order) string { return o.Customer },
		func(c customer) string { return c.Name },
		func(o order, c customer) string { return c.City })

	assert.Equal(t, []string{"Oslo", "Rome", "Oslo"}, slices.Collect(Successes(joined)))
	assert.Empty(t, slices.Collect(Failures(joined)))
}

func TestJoin_FailureWithMatchingKeyIsExcluded(t *testing.T) {
	t.Parallel()

	outer := Of(ex.Fail[int](errors.New("o")), ex.Success(1))
	inner := Of(ex.Success(1), ex.Fail[int](errors.New("i")))

	pairs := Collect(Join(outer, inner,
		func(x int) int { return x },
		func(x int) int { return x },
		func(a, b int) [2]int { return [2]int{a, b} }))

	require.Len(t, pairs, 1)
	assert.Equal(t, [2]int{1, 1}, pairs[0].Value())
}

func TestJoin_ReTraversesInner(t *testing.T) {
	t.Parallel()

	runs := 0
	inner := counting(Values(1, 2), &runs)
	_ = Collect(Join(Values(1, 2, 3), inner,
		func(x int) int { return x },
		func(x int) int { return x },
		add))

	assert.Equal(t, 3, runs)
}

func TestJoin_ProjectPanicIsFailure(t *testing.T) {
	t.Parallel()

	got := Collect(Join(Values(1), Values(1),
		func(x int) int { return x },
		func(x int) int { return x },
		func(int, int) int { panic("project") }))

	require.Len(t, got, 1)
	assert.EqualError(t, got[0].Err(), "project")
}

func TestJoin_UncomparableKeysAreFailures(t *testing.T) {
	t.Parallel()

	got := Collect(Join(Values([]int{1}, []int{2}), Values([]int{1}),
		func(o []int) any { return o },
		func(i []int) any { return i },
		func(o, i []int) int { return o[0] + i[0] }))

	require.Len(t, got, 2)
	for _, r := range got {
		require.True(t, r.IsFailure())
		assert.Contains(t, r.Message(), "comparing uncomparable type []int")
	}

	mixed := Collect(Join(Values(1, 2), Values(2),
		func(o int) any { return o },
		func(i int) any { return i },
		add))
	require.Len(t, mixed, 1)
	assert.Equal(t, 4, mixed[0].Value())
}

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Render(Of[string]()))
	assert.Equal(t, "a\nboom\n", Render(Of(ex.Success("a"), ex.Fail[string](errors.New("boom")))))
}
