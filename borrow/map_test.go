package borrow_test

import (
	"testing"

	"github.com/mna/splitmut/borrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSwap(t *testing.T) {
	m := borrow.Map[int, string]{1: "Hello", 2: "world"}
	r1, r2 := m.Get2(1, 2)

	v1, ok1 := r1.Value()
	v2, ok2 := r2.Value()
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, "Hello", v1)
	assert.Equal(t, "world", v2)

	borrow.Swap(r1.Ref, r2.Ref)
	assert.Equal(t, borrow.Map[int, string]{1: "world", 2: "Hello"}, m)
}

func TestMapGet3(t *testing.T) {
	m := borrow.Map[int, string]{1: "world", 2: "Hello"}
	r1, r2, r3 := m.Get3(0, 1, 1)

	assert.ErrorIs(t, r1.Err, borrow.ErrNoValue)
	v, ok := r2.Value()
	assert.True(t, ok)
	assert.Equal(t, "world", v)
	assert.ErrorIs(t, r3.Err, borrow.ErrSameValue)

	_, ok = r1.Value()
	assert.False(t, ok)
}

func TestMapLookupDoesNotInsert(t *testing.T) {
	m := borrow.Map[string, int]{"a": 1}
	r1, r2, r3, r4 := m.Get4("x", "y", "a", "x")

	assert.ErrorIs(t, r1.Err, borrow.ErrNoValue)
	assert.ErrorIs(t, r2.Err, borrow.ErrNoValue)
	assert.True(t, r3.OK())
	assert.ErrorIs(t, r4.Err, borrow.ErrNoValue)
	assert.Equal(t, borrow.Map[string, int]{"a": 1}, m)

	_, ok := borrow.PtrOf(r3.Ref)
	assert.False(t, ok)
}

func TestMapMustGet(t *testing.T) {
	m := borrow.Map[string, int]{"a": 1, "b": 2, "c": 3, "d": 4}
	a, b, c, d := m.MustGet4("a", "b", "c", "d")
	a.Set(a.Get() + d.Get())
	borrow.Swap(b, c)
	assert.Equal(t, borrow.Map[string, int]{"a": 5, "b": 3, "c": 2, "d": 4}, m)

	assert.Panics(t, func() { m.MustGet2("a", "z") })
	assert.Panics(t, func() { m.MustGet3("a", "b", "a") })
}

func TestMapRefObservesContainer(t *testing.T) {
	m := borrow.Map[int, int]{1: 1, 2: 2}
	r1, r2 := m.MustGet2(1, 2)
	m[1] = 100
	assert.Equal(t, 100, r1.Get())
	r2.Set(200)
	assert.Equal(t, 200, m[2])
	assert.Len(t, m, 2)
}
