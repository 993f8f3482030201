package borrow

// A Ref is a mutable handle on a single storage slot of a container. Reads
// and writes go straight to the container, so a Ref observes changes made
// through other means and vice versa.
type Ref[V any] interface {
	Get() V
	Set(v V)
}

// A Pointer is a Ref on an addressable slot.
type Pointer[V any] interface {
	Ref[V]
	Ptr() *V
}

var (
	_ Pointer[int] = ptrRef[int]{}
	_ Ref[int]     = mapRef[int, int]{}
)

// PtrRef returns a Ref on the value pointed to by p. The returned Ref also
// implements Pointer.
func PtrRef[V any](p *V) Ref[V] { return ptrRef[V]{p: p} }

// PtrOf returns the address of the slot behind r if r is a Pointer.
func PtrOf[V any](r Ref[V]) (*V, bool) {
	if p, ok := r.(Pointer[V]); ok {
		return p.Ptr(), true
	}
	return nil, false
}

// Swap exchanges the values behind a and b.
func Swap[V any](a, b Ref[V]) {
	va, vb := a.Get(), b.Get()
	a.Set(vb)
	b.Set(va)
}

type ptrRef[V any] struct{ p *V }

func (r ptrRef[V]) Get() V  { return *r.p }
func (r ptrRef[V]) Set(v V) { *r.p = v }
func (r ptrRef[V]) Ptr() *V { return r.p }

// mapRef addresses a key known to be present in m, so Set never grows m.
type mapRef[K comparable, V any] struct {
	m map[K]V
	k K
}

func (r mapRef[K, V]) Get() V  { return r.m[r.k] }
func (r mapRef[K, V]) Set(v V) { r.m[r.k] = v }
