package ordmap_test

import (
	"strings"
	"testing"

	"github.com/mna/splitmut/borrow"
	"github.com/mna/splitmut/ordmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBasics(t *testing.T) {
	m := ordmap.New[int, string]()
	for _, k := range []int{5, 1, 3, 2, 4} {
		m.Set(k, strings.Repeat("x", k))
	}
	m.Set(3, "three")

	assert.Equal(t, 5, m.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, m.Keys())
	v, ok := m.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "three", v)
	_, ok = m.Get(6)
	assert.False(t, ok)

	k, v, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, "x", v)
	k, _, ok = m.Max()
	assert.True(t, ok)
	assert.Equal(t, 5, k)

	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.False(t, m.Has(1))
	assert.True(t, m.Has(2))

	var got []int
	m.Ascend(func(k int, _ string) bool {
		got = append(got, k)
		return k < 3
	})
	assert.Equal(t, []int{2, 3}, got)

	empty := ordmap.New[string, int]()
	_, _, ok = empty.Min()
	assert.False(t, ok)
	_, _, ok = empty.Max()
	assert.False(t, ok)
}

func TestMapSwap(t *testing.T) {
	m := ordmap.New[int, string]()
	m.Set(1, "Hello")
	m.Set(2, "world")

	r1, r2 := m.Get2(1, 2)
	require.NoError(t, r1.Err)
	require.NoError(t, r2.Err)
	borrow.Swap(r1.Ref, r2.Ref)

	v1, _ := m.Get(1)
	v2, _ := m.Get(2)
	assert.Equal(t, "world", v1)
	assert.Equal(t, "Hello", v2)

	r1, r2, r3 := m.Get3(0, 1, 1)
	assert.ErrorIs(t, r1.Err, borrow.ErrNoValue)
	assert.Equal(t, "world", r2.Ref.Get())
	assert.ErrorIs(t, r3.Err, borrow.ErrSameValue)
	assert.Equal(t, 2, m.Len())
}

func TestMapEquivalentKeys(t *testing.T) {
	m := ordmap.NewFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	m.Set("Alpha", 1)
	m.Set("beta", 2)
	m.Set("ALPHA", 10)

	assert.Equal(t, []string{"Alpha", "beta"}, m.Keys())

	// distinct key values that compare equal designate the same entry
	r1, r2, r3, r4 := m.Get4("alpha", "BETA", "Alpha", "gamma")
	assert.Equal(t, 10, r1.Ref.Get())
	assert.Equal(t, 2, r2.Ref.Get())
	assert.ErrorIs(t, r3.Err, borrow.ErrSameValue)
	assert.ErrorIs(t, r4.Err, borrow.ErrNoValue)

	p, ok := borrow.PtrOf(r1.Ref)
	require.True(t, ok)
	*p = 100
	v, _ := m.Get("aLpHa")
	assert.Equal(t, 100, v)
}

func TestMapMustGet(t *testing.T) {
	m := ordmap.New[string, int]()
	for i, k := range []string{"d", "c", "b", "a"} {
		m.Set(k, i)
	}
	a, b, c, d := m.MustGet4("a", "b", "c", "d")
	assert.Equal(t, []int{3, 2, 1, 0}, []int{a.Get(), b.Get(), c.Get(), d.Get()})
	a.Set(b.Get() + c.Get() + d.Get())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)

	x, y := m.MustGet2("d", "c")
	borrow.Swap(x, y)
	_, _, z := m.MustGet3("a", "b", "d")
	assert.Equal(t, 1, z.Get())

	assert.Panics(t, func() { m.MustGet2("a", "e") })
}
