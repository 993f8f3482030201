// Package borrow resolves several mutable handles into the same container in
// a single call, guaranteeing that no two handles returned by that call refer
// to the same storage slot.
//
// A call takes 2, 3 or 4 addresses (indices or keys) and returns one Result
// per address, in the same order. Each Result holds either a Ref on the slot
// designated by the address, or an error: ErrNoValue if the address
// designates no stored value, ErrSameValue if the slot was already claimed by
// an earlier address of the same call. The first occurrence of a slot always
// wins.
//
//	m := borrow.Map[int, string]{1: "Hello", 2: "world"}
//	r1, r2 := m.Get2(1, 2)
//	borrow.Swap(r1.Ref, r2.Ref)
//	// m is now {1: "world", 2: "Hello"}
//
// Handles are only valid as long as the container is not structurally
// modified (elements added or removed, storage grown). None of the
// containers are safe for concurrent use.
package borrow
