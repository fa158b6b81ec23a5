package sets_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgames/sets"
)

func TestEnum_ZeroAndNil(t *testing.T) {
	var nilEnum *sets.Enum[string]
	assert.Equal(t, 0, nilEnum.Len())
	assert.False(t, nilEnum.Contains("a"))
	assert.True(t, nilEnum.SubsetOf(sets.New("a")))

	var zero sets.Enum[string]
	assert.Equal(t, 0, zero.Len())
	assert.True(t, sets.Equal[string](&zero, nil))
	assert.True(t, sets.Equal[string](nil, sets.New[string]()))
}

func TestEnum_DuplicatesCollapse(t *testing.T) {
	s := sets.New("a", "b", "a", "c", "b")
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, sets.Sorted[string](s))
}

func TestEnum_Algebra(t *testing.T) {
	a := sets.New(1, 2, 3)
	b := sets.New(3, 4)

	tests := []struct {
		name string
		got  sets.Set[int]
		want []int
	}{
		{"union", a.Union(b), []int{1, 2, 3, 4}},
		{"difference", a.Difference(b), []int{1, 2}},
		{"reverse difference", b.Difference(a), []int{4}},
		{"intersection", sets.Intersection[int](a, b), []int{3}},
		{"union nil", a.Union(nil), []int{1, 2, 3}},
		{"difference nil", a.Difference(nil), []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sets.Sorted(tc.got))
		})
	}

	// operands are untouched
	assert.Equal(t, []int{1, 2, 3}, sets.Sorted[int](a))
	assert.Equal(t, []int{3, 4}, sets.Sorted[int](b))
}

func TestEnum_SubsetAndEqual(t *testing.T) {
	small := sets.New("x")
	big := sets.New("x", "y")

	assert.True(t, small.SubsetOf(big))
	assert.False(t, big.SubsetOf(small))
	assert.True(t, big.SubsetOf(big))
	assert.True(t, sets.New[string]().SubsetOf(small))

	assert.True(t, sets.Equal[string](big, sets.New("y", "x")))
	assert.False(t, sets.Equal[string](big, small))
	assert.False(t, sets.Equal[string](sets.New("x", "z"), big))
}

func TestIntersects(t *testing.T) {
	assert.True(t, sets.Intersects[int](sets.New(1, 2, 3, 4), sets.New(4)))
	assert.False(t, sets.Intersects[int](sets.New(1, 2), sets.New(3)))
	assert.False(t, sets.Intersects[int](nil, sets.New(3)))
	assert.False(t, sets.Intersects[int](sets.New[int](), sets.New[int]()))
}

func TestCollectAndFactory(t *testing.T) {
	s := sets.Collect(sets.New("p", "q").All())
	assert.Equal(t, []string{"p", "q"}, sets.Sorted[string](s))

	f := sets.EnumFactory[string]()
	assert.Equal(t, []string{"r"}, sets.Sorted(f("r", "r")))
}

func TestSortedFunc(t *testing.T) {
	type pos struct{ x, y int }
	s := sets.New(pos{1, 0}, pos{0, 2}, pos{0, 1})
	got := sets.SortedFunc[pos](s, func(a, b pos) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		return cmp.Compare(a.y, b.y)
	})
	assert.Equal(t, []pos{{0, 1}, {0, 2}, {1, 0}}, got)
	assert.Nil(t, sets.Sorted[int](nil))
}

func TestEnum_String(t *testing.T) {
	assert.Equal(t, "{a, b, c}", sets.New("c", "a", "b").String())
	assert.Equal(t, "{}", sets.New[int]().String())
}
