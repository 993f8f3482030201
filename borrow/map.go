package borrow

// Map adapts a Go map for multiple borrows, addressed by key. Equal keys
// always designate the same slot. Borrowing never inserts a key, and writes
// through the handles only ever replace the value of an existing key, so
// they do not grow the map.
type Map[K comparable, V any] map[K]V

var _ Container[string, string, int] = Map[string, int](nil)

// Locate returns k if it is present in m.
func (m Map[K, V]) Locate(k K) (K, bool) {
	_, ok := m[k]
	return k, ok
}

// Borrow returns a handle on the value of k.
func (m Map[K, V]) Borrow(k K) Ref[V] { return mapRef[K, V]{m: m, k: k} }

func (m Map[K, V]) Get2(k1, k2 K) (Result[V], Result[V]) {
	return Get2[K, K, V](m, k1, k2)
}

func (m Map[K, V]) Get3(k1, k2, k3 K) (Result[V], Result[V], Result[V]) {
	return Get3[K, K, V](m, k1, k2, k3)
}

func (m Map[K, V]) Get4(k1, k2, k3, k4 K) (Result[V], Result[V], Result[V], Result[V]) {
	return Get4[K, K, V](m, k1, k2, k3, k4)
}

func (m Map[K, V]) MustGet2(k1, k2 K) (Ref[V], Ref[V]) {
	return MustGet2[K, K, V](m, k1, k2)
}

func (m Map[K, V]) MustGet3(k1, k2, k3 K) (Ref[V], Ref[V], Ref[V]) {
	return MustGet3[K, K, V](m, k1, k2, k3)
}

func (m Map[K, V]) MustGet4(k1, k2, k3, k4 K) (Ref[V], Ref[V], Ref[V], Ref[V]) {
	return MustGet4[K, K, V](m, k1, k2, k3, k4)
}
