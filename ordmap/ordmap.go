// Package ordmap implements a map whose keys are kept sorted according to an
// ordering function. Keys that compare equal designate the same entry, even
// if they are otherwise distinguishable values. An ordmap.Map supports
// borrowing multiple disjoint values at once (see package borrow).
package ordmap

import (
	"cmp"

	"github.com/mna/splitmut/borrow"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type entry[K, V any] struct {
	key K
	val V
}

// A Map is an ordered map. It is not safe for concurrent use.
type Map[K, V any] struct {
	cmp     func(a, b K) int
	entries []entry[K, V]
}

var _ borrow.Container[string, int, int] = (*Map[string, int])(nil)

// New returns an empty map of naturally ordered keys.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty map ordered by compare, which must return a
// negative number when a < b, a positive number when a > b and zero when a
// and b are the same key.
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{cmp: compare}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// Get returns the value of k, or false if k is not in the map.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if i, ok := m.search(k); ok {
		return m.entries[i].val, true
	}
	var zero V
	return zero, false
}

// Has returns true if k is in the map.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.search(k)
	return ok
}

// Set sets the value of k, inserting k if it is not in the map. When k
// replaces an equal key, the stored key is kept.
func (m *Map[K, V]) Set(k K, v V) {
	i, ok := m.search(k)
	if ok {
		m.entries[i].val = v
		return
	}
	m.entries = slices.Insert(m.entries, i, entry[K, V]{key: k, val: v})
}

// Delete removes k from the map and returns true if it was present.
func (m *Map[K, V]) Delete(k K) bool {
	i, ok := m.search(k)
	if ok {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	return ok
}

// Min returns the smallest key and its value, or false if the map is empty.
func (m *Map[K, V]) Min() (K, V, bool) { return m.at(0) }

// Max returns the largest key and its value, or false if the map is empty.
func (m *Map[K, V]) Max() (K, V, bool) { return m.at(len(m.entries) - 1) }

// Ascend calls fn for each entry in key order, stopping early if fn returns
// false.
func (m *Map[K, V]) Ascend(fn func(k K, v V) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// Keys returns the keys of the map in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Locate returns the position of the entry of k.
func (m *Map[K, V]) Locate(k K) (int, bool) { return m.search(k) }

// Borrow returns a handle on the value of the entry at pos. The handle
// implements borrow.Pointer and is invalidated by any insertion or deletion.
func (m *Map[K, V]) Borrow(pos int) borrow.Ref[V] { return borrow.PtrRef(&m.entries[pos].val) }

func (m *Map[K, V]) Get2(k1, k2 K) (borrow.Result[V], borrow.Result[V]) {
	return borrow.Get2[K, int, V](m, k1, k2)
}

func (m *Map[K, V]) Get3(k1, k2, k3 K) (borrow.Result[V], borrow.Result[V], borrow.Result[V]) {
	return borrow.Get3[K, int, V](m, k1, k2, k3)
}

func (m *Map[K, V]) Get4(k1, k2, k3, k4 K) (borrow.Result[V], borrow.Result[V], borrow.Result[V], borrow.Result[V]) {
	return borrow.Get4[K, int, V](m, k1, k2, k3, k4)
}

func (m *Map[K, V]) MustGet2(k1, k2 K) (borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet2[K, int, V](m, k1, k2)
}

func (m *Map[K, V]) MustGet3(k1, k2, k3 K) (borrow.Ref[V], borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet3[K, int, V](m, k1, k2, k3)
}

func (m *Map[K, V]) MustGet4(k1, k2, k3, k4 K) (borrow.Ref[V], borrow.Ref[V], borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet4[K, int, V](m, k1, k2, k3, k4)
}

func (m *Map[K, V]) search(k K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, k, func(e entry[K, V], k K) int {
		return m.cmp(e.key, k)
	})
}

func (m *Map[K, V]) at(i int) (K, V, bool) {
	if i < 0 || i >= len(m.entries) {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	e := m.entries[i]
	return e.key, e.val, true
}
