package borrow

// Slice adapts a slice for multiple borrows, addressed by index. It covers
// both growable arrays and fixed-size arrays, the latter through a slice
// expression:
//
//	var arr [3]int
//	r1, r2 := borrow.Slice[int](arr[:]).Get2(0, 2)
type Slice[V any] []V

var _ Container[int, int, string] = Slice[string](nil)

// Locate returns i if it is a valid index in s.
func (s Slice[V]) Locate(i int) (int, bool) { return i, i >= 0 && i < len(s) }

// Borrow returns a handle on s[i]. The handle implements Pointer.
func (s Slice[V]) Borrow(i int) Ref[V] { return PtrRef(&s[i]) }

func (s Slice[V]) Get2(i1, i2 int) (Result[V], Result[V]) {
	return Get2[int, int, V](s, i1, i2)
}

func (s Slice[V]) Get3(i1, i2, i3 int) (Result[V], Result[V], Result[V]) {
	return Get3[int, int, V](s, i1, i2, i3)
}

func (s Slice[V]) Get4(i1, i2, i3, i4 int) (Result[V], Result[V], Result[V], Result[V]) {
	return Get4[int, int, V](s, i1, i2, i3, i4)
}

func (s Slice[V]) MustGet2(i1, i2 int) (Ref[V], Ref[V]) {
	return MustGet2[int, int, V](s, i1, i2)
}

func (s Slice[V]) MustGet3(i1, i2, i3 int) (Ref[V], Ref[V], Ref[V]) {
	return MustGet3[int, int, V](s, i1, i2, i3)
}

func (s Slice[V]) MustGet4(i1, i2, i3, i4 int) (Ref[V], Ref[V], Ref[V], Ref[V]) {
	return MustGet4[int, int, V](s, i1, i2, i3, i4)
}
