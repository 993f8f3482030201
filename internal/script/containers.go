package script

import (
	"fmt"
	"io"

	"github.com/mna/splitmut/borrow"
	"github.com/mna/splitmut/deque"
	"github.com/mna/splitmut/ordmap"
	"github.com/mna/splitmut/swissmap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// container is the common interface of the containers that a script can
// manipulate. All of them hold string values addressed by int.
type container interface {
	// resolve borrows the slots of addrs into res, which has the same length.
	resolve(addrs []int, res []borrow.Result[string])
	dump(w io.Writer)
}

// containerKinds maps the kind names accepted by the "new" command to their
// constructors, which receive the element words.
var containerKinds = map[string]func(elems []string) (container, error){
	"slice": func(elems []string) (container, error) {
		return sliceContainer(slices.Clone(elems)), nil
	},
	"deque": func(elems []string) (container, error) {
		return dequeContainer{deque.New(elems...)}, nil
	},
	"map": func(elems []string) (container, error) {
		m := make(borrow.Map[int, string], len(elems))
		err := parsePairs(elems, func(k int, v string) { m[k] = v })
		return mapContainer(m), err
	},
	"swiss": func(elems []string) (container, error) {
		m := swissmap.New[int, string](len(elems))
		err := parsePairs(elems, m.Put)
		return swissContainer{m}, err
	},
	"ordmap": func(elems []string) (container, error) {
		m := ordmap.New[int, string]()
		err := parsePairs(elems, m.Set)
		return ordContainer{m}, err
	},
}

type sliceContainer borrow.Slice[string]

func (c sliceContainer) resolve(addrs []int, res []borrow.Result[string]) {
	borrow.Resolve[int, int, string](borrow.Slice[string](c), addrs, res)
}

func (c sliceContainer) dump(w io.Writer) {
	fmt.Fprintf(w, "slice %s\n", quoteList([]string(c)))
}

type dequeContainer struct{ d *deque.Deque[string] }

func (c dequeContainer) resolve(addrs []int, res []borrow.Result[string]) {
	borrow.Resolve[int, int, string](c.d, addrs, res)
}

func (c dequeContainer) dump(w io.Writer) {
	vals := make([]string, 0, c.d.Len())
	c.d.Each(func(_ int, v string) bool {
		vals = append(vals, v)
		return true
	})
	fmt.Fprintf(w, "deque %s\n", quoteList(vals))
}

type mapContainer borrow.Map[int, string]

func (c mapContainer) resolve(addrs []int, res []borrow.Result[string]) {
	borrow.Resolve[int, int, string](borrow.Map[int, string](c), addrs, res)
}

func (c mapContainer) dump(w io.Writer) {
	fmt.Fprintf(w, "map %s\n", quoteMap(c))
}

type swissContainer struct{ m *swissmap.Map[int, string] }

func (c swissContainer) resolve(addrs []int, res []borrow.Result[string]) {
	borrow.Resolve[int, int, string](c.m, addrs, res)
}

func (c swissContainer) dump(w io.Writer) {
	m := make(map[int]string, c.m.Len())
	c.m.Each(func(k int, v string) bool {
		m[k] = v
		return true
	})
	fmt.Fprintf(w, "swiss %s\n", quoteMap(m))
}

type ordContainer struct{ m *ordmap.Map[int, string] }

func (c ordContainer) resolve(addrs []int, res []borrow.Result[string]) {
	borrow.Resolve[int, int, string](c.m, addrs, res)
}

func (c ordContainer) dump(w io.Writer) {
	var buf []byte
	c.m.Ascend(func(k int, v string) bool {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%d:%q", k, v)
		return true
	})
	fmt.Fprintf(w, "ordmap {%s}\n", buf)
}

func quoteList(vals []string) string {
	var buf []byte
	for i, v := range vals {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%q", v)
	}
	return "[" + string(buf) + "]"
}

func quoteMap(m map[int]string) string {
	keys := maps.Keys(m)
	slices.Sort(keys)

	var buf []byte
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%d:%q", k, m[k])
	}
	return "{" + string(buf) + "}"
}
