// Package deque implements a double-ended queue on top of a ring buffer whose
// size is always a power of two, so that positions wrap around with a bit
// mask. Elements are addressed by their index relative to the front of the
// queue, and a Deque supports borrowing multiple disjoint elements at once
// (see package borrow).
package deque

import (
	"errors"

	"github.com/mna/splitmut/borrow"
)

// minLen is the smallest capacity of the ring buffer. It must be a power of
// two.
const minLen = 16

var (
	// ErrEmpty is the panic value when removing or peeking an element of an
	// empty deque.
	ErrEmpty = errors.New("deque: empty")
	// ErrIndexOutOfBounds is the panic value when accessing an invalid index.
	ErrIndexOutOfBounds = errors.New("deque: index out of bounds")
)

// A Deque is a double-ended queue. The zero value is an empty deque ready to
// use. It is not safe for concurrent use.
type Deque[V any] struct {
	buf   []V
	head  int // position of the front element
	tail  int // position after the back element
	count int
}

var _ borrow.Container[int, int, string] = (*Deque[string])(nil)

// New returns a deque holding vals, front to back.
func New[V any](vals ...V) *Deque[V] {
	var d Deque[V]
	for _, v := range vals {
		d.PushBack(v)
	}
	return &d
}

// Len returns the number of elements in the deque.
func (d *Deque[V]) Len() int { return d.count }

// PushBack adds v at the back of the deque.
func (d *Deque[V]) PushBack(v V) {
	d.growIfFull()
	d.buf[d.tail] = v
	d.tail = d.wrap(d.tail + 1)
	d.count++
}

// PushFront adds v at the front of the deque.
func (d *Deque[V]) PushFront(v V) {
	d.growIfFull()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = v
	d.count++
}

// PopFront removes and returns the front element. It panics with ErrEmpty if
// the deque is empty.
func (d *Deque[V]) PopFront() V {
	if d.count == 0 {
		panic(ErrEmpty)
	}
	var zero V
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.count--
	d.shrinkIfSparse()
	return v
}

// PopBack removes and returns the back element. It panics with ErrEmpty if
// the deque is empty.
func (d *Deque[V]) PopBack() V {
	if d.count == 0 {
		panic(ErrEmpty)
	}
	var zero V
	d.tail = d.wrap(d.tail - 1)
	v := d.buf[d.tail]
	d.buf[d.tail] = zero
	d.count--
	d.shrinkIfSparse()
	return v
}

// Front returns the front element. It panics with ErrEmpty if the deque is
// empty.
func (d *Deque[V]) Front() V {
	if d.count == 0 {
		panic(ErrEmpty)
	}
	return d.buf[d.head]
}

// Back returns the back element. It panics with ErrEmpty if the deque is
// empty.
func (d *Deque[V]) Back() V {
	if d.count == 0 {
		panic(ErrEmpty)
	}
	return d.buf[d.wrap(d.tail-1)]
}

// At returns the element at index i, where 0 is the front. It panics with
// ErrIndexOutOfBounds if i is not a valid index.
func (d *Deque[V]) At(i int) V {
	pos, ok := d.Locate(i)
	if !ok {
		panic(ErrIndexOutOfBounds)
	}
	return d.buf[pos]
}

// Set replaces the element at index i, where 0 is the front. It panics with
// ErrIndexOutOfBounds if i is not a valid index.
func (d *Deque[V]) Set(i int, v V) {
	pos, ok := d.Locate(i)
	if !ok {
		panic(ErrIndexOutOfBounds)
	}
	d.buf[pos] = v
}

// Clear removes all elements, keeping the current capacity.
func (d *Deque[V]) Clear() {
	clear(d.buf)
	d.head, d.tail, d.count = 0, 0, 0
}

// Each calls fn for each element from front to back, stopping early if fn
// returns false.
func (d *Deque[V]) Each(fn func(i int, v V) bool) {
	for i := 0; i < d.count; i++ {
		if !fn(i, d.buf[d.wrap(d.head+i)]) {
			return
		}
	}
}

// Locate returns the position in the ring buffer of the element at index i.
func (d *Deque[V]) Locate(i int) (int, bool) {
	if i < 0 || i >= d.count {
		return 0, false
	}
	return d.wrap(d.head + i), true
}

// Borrow returns a handle on the element stored at pos in the ring buffer.
// The handle implements borrow.Pointer and is invalidated by any push or pop.
func (d *Deque[V]) Borrow(pos int) borrow.Ref[V] { return borrow.PtrRef(&d.buf[pos]) }

func (d *Deque[V]) Get2(i1, i2 int) (borrow.Result[V], borrow.Result[V]) {
	return borrow.Get2[int, int, V](d, i1, i2)
}

func (d *Deque[V]) Get3(i1, i2, i3 int) (borrow.Result[V], borrow.Result[V], borrow.Result[V]) {
	return borrow.Get3[int, int, V](d, i1, i2, i3)
}

func (d *Deque[V]) Get4(i1, i2, i3, i4 int) (borrow.Result[V], borrow.Result[V], borrow.Result[V], borrow.Result[V]) {
	return borrow.Get4[int, int, V](d, i1, i2, i3, i4)
}

func (d *Deque[V]) MustGet2(i1, i2 int) (borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet2[int, int, V](d, i1, i2)
}

func (d *Deque[V]) MustGet3(i1, i2, i3 int) (borrow.Ref[V], borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet3[int, int, V](d, i1, i2, i3)
}

func (d *Deque[V]) MustGet4(i1, i2, i3, i4 int) (borrow.Ref[V], borrow.Ref[V], borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet4[int, int, V](d, i1, i2, i3, i4)
}

// wrap maps p, which may be off by one buffer length in either direction,
// to a valid buffer position.
func (d *Deque[V]) wrap(p int) int { return p & (len(d.buf) - 1) }

func (d *Deque[V]) growIfFull() {
	if d.count < len(d.buf) {
		return
	}
	n := len(d.buf) << 1
	if n == 0 {
		n = minLen
	}
	d.resize(n)
}

func (d *Deque[V]) shrinkIfSparse() {
	if len(d.buf) > minLen && d.count<<2 == len(d.buf) {
		d.resize(len(d.buf) >> 1)
	}
}

// resize moves the elements to a new buffer of size n, front element first.
func (d *Deque[V]) resize(n int) {
	buf := make([]V, n)
	if d.count > 0 {
		if d.tail > d.head {
			copy(buf, d.buf[d.head:d.tail])
		} else {
			c := copy(buf, d.buf[d.head:])
			copy(buf[c:], d.buf[:d.tail])
		}
	}
	d.head = 0
	d.tail = d.count & (n - 1)
	d.buf = buf
}
