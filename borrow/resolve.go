package borrow

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// A Container is implemented by every container shape that supports
// borrowing multiple disjoint slots at once. A is the type of the addresses
// accepted by the container and S the identity of its storage slots: two
// addresses designate the same slot if and only if Locate returns equal
// slot identities for them.
type Container[A any, S comparable, V any] interface {
	// Locate returns the identity of the slot that addr designates, or false
	// if addr does not designate a stored value. It must not modify the
	// container.
	Locate(addr A) (slot S, ok bool)

	// Borrow returns a handle on the slot identified by slot, as previously
	// returned by Locate.
	Borrow(slot S) Ref[V]
}

// A Result is the outcome of borrowing a single address. Exactly one of Ref
// and Err is set.
type Result[V any] struct {
	Ref Ref[V]
	Err error
}

// OK returns true if the address was successfully borrowed.
func (r Result[V]) OK() bool { return r.Err == nil }

// Value returns the current value behind the handle, or false if the address
// could not be borrowed.
func (r Result[V]) Value() (V, bool) {
	if r.Err != nil {
		var zero V
		return zero, false
	}
	return r.Ref.Get(), true
}

// Get1 borrows the slot designated by a in c. The result is never
// ErrSameValue.
func Get1[A any, S comparable, V any](c Container[A, S, V], a A) Result[V] {
	slot, ok := c.Locate(a)
	if !ok {
		return Result[V]{Err: &AddrError{Pos: 0, Addr: a, Err: ErrNoValue}}
	}
	return Result[V]{Ref: c.Borrow(slot)}
}

// Get2 borrows the slots designated by a1 and a2 in c.
func Get2[A any, S comparable, V any](c Container[A, S, V], a1, a2 A) (Result[V], Result[V]) {
	var res [2]Result[V]
	resolve(c, []A{a1, a2}, res[:])
	return res[0], res[1]
}

// Get3 borrows the slots designated by a1, a2 and a3 in c.
func Get3[A any, S comparable, V any](c Container[A, S, V], a1, a2, a3 A) (Result[V], Result[V], Result[V]) {
	var res [3]Result[V]
	resolve(c, []A{a1, a2, a3}, res[:])
	return res[0], res[1], res[2]
}

// Get4 borrows the slots designated by a1, a2, a3 and a4 in c.
func Get4[A any, S comparable, V any](c Container[A, S, V], a1, a2, a3, a4 A) (Result[V], Result[V], Result[V], Result[V]) {
	var res [4]Result[V]
	resolve(c, []A{a1, a2, a3, a4}, res[:])
	return res[0], res[1], res[2], res[3]
}

// MustGet2 is like Get2 but returns the handles directly. It panics with the
// *AddrError of the first address that could not be borrowed.
func MustGet2[A any, S comparable, V any](c Container[A, S, V], a1, a2 A) (Ref[V], Ref[V]) {
	r1, r2 := Get2(c, a1, a2)
	must(r1, r2)
	return r1.Ref, r2.Ref
}

// MustGet3 is like Get3 but returns the handles directly. It panics with the
// *AddrError of the first address that could not be borrowed.
func MustGet3[A any, S comparable, V any](c Container[A, S, V], a1, a2, a3 A) (Ref[V], Ref[V], Ref[V]) {
	r1, r2, r3 := Get3(c, a1, a2, a3)
	must(r1, r2, r3)
	return r1.Ref, r2.Ref, r3.Ref
}

// MustGet4 is like Get4 but returns the handles directly. It panics with the
// *AddrError of the first address that could not be borrowed.
func MustGet4[A any, S comparable, V any](c Container[A, S, V], a1, a2, a3, a4 A) (Ref[V], Ref[V], Ref[V], Ref[V]) {
	r1, r2, r3, r4 := Get4(c, a1, a2, a3, a4)
	must(r1, r2, r3, r4)
	return r1.Ref, r2.Ref, r3.Ref, r4.Ref
}

// Resolve borrows the slots designated by addrs in c and stores the outcome
// of addrs[i] in res[i]. Addresses are processed in order, so the first
// address to designate a given slot gets the handle and any later one gets
// ErrSameValue. An address that designates no value gets ErrNoValue, even if
// it is repeated. Between 2 and 4 addresses are supported and res must be at
// least as long as addrs.
func Resolve[A any, S comparable, V any](c Container[A, S, V], addrs []A, res []Result[V]) {
	if len(addrs) < 2 || len(addrs) > 4 {
		panic(fmt.Sprintf("borrow: invalid number of addresses: %d", len(addrs)))
	}
	resolve(c, addrs, res)
}

func resolve[A any, S comparable, V any](c Container[A, S, V], addrs []A, res []Result[V]) {
	var (
		claimed [4]S
		n       int
	)
	for i, addr := range addrs {
		slot, ok := c.Locate(addr)
		switch {
		case !ok:
			res[i] = Result[V]{Err: &AddrError{Pos: i, Addr: addr, Err: ErrNoValue}}
		case slices.Contains(claimed[:n], slot):
			res[i] = Result[V]{Err: &AddrError{Pos: i, Addr: addr, Err: ErrSameValue}}
		default:
			claimed[n] = slot
			n++
			res[i] = Result[V]{Ref: c.Borrow(slot)}
		}
	}
}

func must[V any](res ...Result[V]) {
	for _, r := range res {
		if r.Err != nil {
			panic(r.Err)
		}
	}
}
