package borrow_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mna/splitmut/borrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceOutOfRange(t *testing.T) {
	arr := [2]int{10, 20}
	r1, r2 := borrow.Slice[int](arr[:]).Get2(0, 5)

	require.True(t, r1.OK())
	v, _ := r1.Value()
	assert.Equal(t, 10, v)
	assert.ErrorIs(t, r2.Err, borrow.ErrNoValue)

	r1.Ref.Set(11)
	assert.Equal(t, [2]int{11, 20}, arr)
}

func TestSliceSameIndex(t *testing.T) {
	arr := [3]string{"a", "b", "c"}
	r1, r2 := borrow.Slice[string](arr[:]).Get2(1, 1)

	require.NoError(t, r1.Err)
	assert.Equal(t, "b", r1.Ref.Get())
	assert.ErrorIs(t, r2.Err, borrow.ErrSameValue)
	assert.Nil(t, r2.Ref)

	var ae *borrow.AddrError
	require.ErrorAs(t, r2.Err, &ae)
	assert.Equal(t, 1, ae.Pos)
	assert.Equal(t, 1, ae.Addr)
	assert.Equal(t, "address #2 (1): same value", ae.Error())
}

func TestGet1(t *testing.T) {
	s := borrow.Slice[int]{1, 2}
	r := borrow.Get1[int, int, int](s, 1)
	require.True(t, r.OK())
	r.Ref.Set(20)
	assert.Equal(t, borrow.Slice[int]{1, 20}, s)

	r = borrow.Get1[int, int, int](s, 2)
	assert.ErrorIs(t, r.Err, borrow.ErrNoValue)
	assert.EqualError(t, r.Err, "address #1 (2): no value")

	m := borrow.Map[string, int]{"a": 1}
	mr := borrow.Get1[string, string, int](m, "a")
	v, ok := mr.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	mr = borrow.Get1[string, string, int](m, "b")
	assert.ErrorIs(t, mr.Err, borrow.ErrNoValue)
	assert.Len(t, m, 1)
}

func TestSliceGet3(t *testing.T) {
	s := borrow.Slice[string]{"Hello", "world", "!"}
	a, b, c := s.MustGet3(0, 1, 2)
	c.Set("universe")
	borrow.Swap(a, b)
	assert.Equal(t, borrow.Slice[string]{"world", "Hello", "universe"}, s)
}

func TestSliceGet4(t *testing.T) {
	s := borrow.Slice[int]{0, 1, 2}
	r1, r2, r3, r4 := s.Get4(-1, 2, 3, 2)

	assert.ErrorIs(t, r1.Err, borrow.ErrNoValue)
	assert.True(t, r2.OK())
	assert.ErrorIs(t, r3.Err, borrow.ErrNoValue)
	assert.ErrorIs(t, r4.Err, borrow.ErrSameValue)
	assert.Len(t, s, 3)
}

func TestSliceNoValueNeverSameValue(t *testing.T) {
	s := borrow.Slice[int]{1}
	r1, r2, r3 := s.Get3(7, 7, 7)
	for i, r := range []borrow.Result[int]{r1, r2, r3} {
		assert.ErrorIs(t, r.Err, borrow.ErrNoValue, "result %d", i)
	}
}

func TestSlicePointer(t *testing.T) {
	s := borrow.Slice[int]{1, 2}
	r1, r2 := s.MustGet2(1, 0)

	p1, ok := borrow.PtrOf(r1)
	require.True(t, ok)
	assert.Same(t, &s[1], p1)
	*p1 = 42
	assert.Equal(t, 42, r1.Get())
	assert.Equal(t, 1, r2.Get())
}

func TestSliceMustPanics(t *testing.T) {
	s := borrow.Slice[int]{1, 2, 3, 4}
	assert.NotPanics(t, func() { s.MustGet4(3, 2, 1, 0) })
	assert.PanicsWithError(t, "address #2 (0): same value", func() { s.MustGet2(0, 0) })
	assert.PanicsWithError(t, "address #3 (9): no value", func() { s.MustGet3(0, 1, 9) })
}

func TestResolveArity(t *testing.T) {
	s := borrow.Slice[int]{1, 2, 3, 4, 5}
	res := make([]borrow.Result[int], 5)
	assert.Panics(t, func() { borrow.Resolve[int, int, int](s, []int{0}, res) })
	assert.Panics(t, func() { borrow.Resolve[int, int, int](s, []int{0, 1, 2, 3, 4}, res) })

	borrow.Resolve[int, int, int](s, []int{4, 0, 4}, res)
	assert.True(t, res[0].OK())
	assert.True(t, res[1].OK())
	assert.ErrorIs(t, res[2].Err, borrow.ErrSameValue)
}

// TestSliceRandom checks the resolution properties against random index
// tuples: order is preserved, missing indices are NoValue, the first
// occurrence of an index wins and the handles returned never alias.
func TestSliceRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		n := rnd.Intn(5)
		s := make(borrow.Slice[int], n)
		for i := range s {
			s[i] = i * 10
		}

		var idx [4]int
		for i := range idx {
			idx[i] = rnd.Intn(n+3) - 1
		}
		r1, r2, r3, r4 := s.Get4(idx[0], idx[1], idx[2], idx[3])
		res := []borrow.Result[int]{r1, r2, r3, r4}

		t.Run(fmt.Sprintf("%d-%v", n, idx), func(t *testing.T) {
			seen := make(map[int]bool)
			for i, r := range res {
				ix := idx[i]
				switch {
				case ix < 0 || ix >= n:
					assert.ErrorIs(t, r.Err, borrow.ErrNoValue)
				case seen[ix]:
					assert.ErrorIs(t, r.Err, borrow.ErrSameValue)
				default:
					seen[ix] = true
					if assert.NoError(t, r.Err) {
						assert.Equal(t, ix*10, r.Ref.Get())
					}
				}
			}

			// write a distinct marker through every handle, then check that each
			// handle still reads its own marker.
			for i, r := range res {
				if r.OK() {
					r.Ref.Set(-(i + 1))
				}
			}
			for i, r := range res {
				if r.OK() {
					assert.Equal(t, -(i + 1), r.Ref.Get())
				}
			}
			assert.Len(t, s, n)
		})
	}
}
