// Package swissmap provides a hash map backed by a SwissTable that supports
// borrowing multiple disjoint values at once (see package borrow).
package swissmap

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/splitmut/borrow"
)

// A Map is a hash map. Equal keys always designate the same slot. If you know
// the exact final number of entries, it is more efficient to create it with
// that size. It is not safe for concurrent use.
type Map[K comparable, V any] struct {
	m *swiss.Map[K, V]
}

var (
	_ borrow.Container[string, string, int] = (*Map[string, int])(nil)
	_ borrow.Ref[int]                       = ref[string, int]{}
)

// New returns a map with initial capacity for at least size entries. A
// negative size is the same as 0.
func New[K comparable, V any](size int) *Map[K, V] {
	if size < 0 {
		size = 0
	}
	return &Map[K, V]{m: swiss.NewMap[K, V](uint32(size))}
}

func (m *Map[K, V]) String() string { return fmt.Sprintf("swissmap(%p)", m) }
func (m *Map[K, V]) Len() int       { return m.m.Count() }
func (m *Map[K, V]) Has(k K) bool   { return m.m.Has(k) }
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.m.Get(k)
}
func (m *Map[K, V]) Put(k K, v V) { m.m.Put(k, v) }

// Delete removes k and returns true if it was present.
func (m *Map[K, V]) Delete(k K) bool { return m.m.Delete(k) }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.m.Clear() }

// Each calls fn for each entry in unspecified order, stopping early if fn
// returns false. The map must not be modified during the call.
func (m *Map[K, V]) Each(fn func(k K, v V) bool) {
	m.m.Iter(func(k K, v V) bool {
		return !fn(k, v)
	})
}

// Locate returns k if it is present in m. It never inserts k.
func (m *Map[K, V]) Locate(k K) (K, bool) { return k, m.m.Has(k) }

// Borrow returns a handle on the value of k. The handle addresses the entry
// by key, so it remains valid if the table is rehashed, but not if k is
// deleted.
func (m *Map[K, V]) Borrow(k K) borrow.Ref[V] { return ref[K, V]{m: m.m, k: k} }

func (m *Map[K, V]) Get2(k1, k2 K) (borrow.Result[V], borrow.Result[V]) {
	return borrow.Get2[K, K, V](m, k1, k2)
}

func (m *Map[K, V]) Get3(k1, k2, k3 K) (borrow.Result[V], borrow.Result[V], borrow.Result[V]) {
	return borrow.Get3[K, K, V](m, k1, k2, k3)
}

func (m *Map[K, V]) Get4(k1, k2, k3, k4 K) (borrow.Result[V], borrow.Result[V], borrow.Result[V], borrow.Result[V]) {
	return borrow.Get4[K, K, V](m, k1, k2, k3, k4)
}

func (m *Map[K, V]) MustGet2(k1, k2 K) (borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet2[K, K, V](m, k1, k2)
}

func (m *Map[K, V]) MustGet3(k1, k2, k3 K) (borrow.Ref[V], borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet3[K, K, V](m, k1, k2, k3)
}

func (m *Map[K, V]) MustGet4(k1, k2, k3, k4 K) (borrow.Ref[V], borrow.Ref[V], borrow.Ref[V], borrow.Ref[V]) {
	return borrow.MustGet4[K, K, V](m, k1, k2, k3, k4)
}

type ref[K comparable, V any] struct {
	m *swiss.Map[K, V]
	k K
}

func (r ref[K, V]) Get() V {
	v, _ := r.m.Get(r.k)
	return v
}

func (r ref[K, V]) Set(v V) { r.m.Put(r.k, v) }
