package insrcdata

import (
	"cmp"
	"slices"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Index is an auxiliary array of row positions sorted ascending by a key.
// Rows sharing a key keep the relative order fixed when the index was
// generated. A full index is a permutation of [0, table length), a
// filtered index omits some rows (e.g. rows without an optional relation).
//
// String keys compare byte-wise, float keys must not contain NaN.
type Index[R any, K cmp.Ordered] struct {
	t    *Table[R]
	name string
	key  func(*R) K
	perm []uint32
	full bool
}

// NewIndex wraps a generated full permutation, which must list every row of
// t. The index takes ownership of perm.
func NewIndex[R any, K cmp.Ordered](t *Table[R], name string, key func(*R) K, perm []uint32) *Index[R, K] {
	return &Index[R, K]{t: t, name: name, key: key, perm: perm, full: true}
}

// NewFilteredIndex wraps a generated permutation of a subset of the rows of t.
func NewFilteredIndex[R any, K cmp.Ordered](t *Table[R], name string, key func(*R) K, perm []uint32) *Index[R, K] {
	return &Index[R, K]{t: t, name: name, key: key, perm: perm}
}

// BuildIndex sorts all rows of t by key. Equal keys keep table order.
func BuildIndex[R any, K cmp.Ordered](t *Table[R], name string, key func(*R) K) *Index[R, K] {
	return BuildFilteredIndex(t, name, key, nil)
}

// BuildFilteredIndex sorts the rows of t accepted by keep (all rows when keep
// is nil) by key. Equal keys keep table order.
func BuildFilteredIndex[R any, K cmp.Ordered](t *Table[R], name string, key func(*R) K, keep func(*R) bool) *Index[R, K] {
	perm := make([]uint32, 0, len(t.rows))
	for i := range t.rows {
		if keep == nil || keep(&t.rows[i]) {
			perm = append(perm, uint32(i))
		}
	}
	slices.SortStableFunc(perm, func(a, b uint32) int {
		return cmp.Compare(key(&t.rows[a]), key(&t.rows[b]))
	})
	if keep == nil {
		return NewIndex(t, name, key, perm)
	}
	return NewFilteredIndex(t, name, key, perm)
}

// Name returns the index name.
func (x *Index[R, K]) Name() string { return x.name }

// Table returns the indexed table.
func (x *Index[R, K]) Table() *Table[R] { return x.t }

// Full returns true if the index must list every row of its table.
func (x *Index[R, K]) Full() bool { return x.full }

// Len returns the number of indexed rows.
func (x *Index[R, K]) Len() int { return len(x.perm) }

// Positions returns the row positions in key order. The slice is shared and
// must not be modified.
func (x *Index[R, K]) Positions() []uint32 { return x.perm }

// Range returns an iterator over the rows whose key lies in the closed
// interval [start, stop], in ascending key order. The result is empty when
// stop < start.
func (x *Index[R, K]) Range(start, stop K) *Iterator[R] {
	lo, hi := x.bounds(start, stop)
	return newIndexIterator(x.t, x.perm[lo:hi])
}

// Lookup returns an iterator over the rows whose key equals k.
func (x *Index[R, K]) Lookup(k K) *Iterator[R] {
	return x.Range(k, k)
}

// First returns the first row whose key equals k.
func (x *Index[R, K]) First(k K) (Ref[R], bool) {
	it := x.Lookup(k)
	if !it.Next() {
		return Ref[R]{}, false
	}
	return it.Ref(), true
}

// Count returns the number of rows whose key lies in [start, stop].
func (x *Index[R, K]) Count(start, stop K) int {
	lo, hi := x.bounds(start, stop)
	return hi - lo
}

// bounds searches lo and hi independently over the whole index, so that a
// reversed interval clamps to an empty range.
func (x *Index[R, K]) bounds(start, stop K) (lo, hi int) {
	lo = sort.Search(len(x.perm), func(i int) bool {
		return x.keyAt(i) >= start
	})
	hi = sort.Search(len(x.perm), func(i int) bool {
		return x.keyAt(i) > stop
	})
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (x *Index[R, K]) keyAt(i int) K {
	pos := int(x.perm[i])
	if pos >= len(x.t.rows) {
		panic(outOfRange("index "+x.name, x.t.name, pos, len(x.t.rows)))
	}
	return x.key(&x.t.rows[pos])
}

// Verify checks that every entry addresses a row, that no row appears twice,
// that keys are in ascending order and that a full index lists every row.
func (x *Index[R, K]) Verify() error {
	n := len(x.t.rows)
	if len(x.perm) > n {
		return brokenf("index "+x.name, x.t.name, len(x.perm), "index holds more entries than the table")
	}

	seen := roaring.New()
	for i, p := range x.perm {
		if int(p) >= n {
			return outOfRange("index "+x.name, x.t.name, int(p), n)
		}
		if !seen.CheckedAdd(p) {
			return brokenf("index "+x.name, x.t.name, int(p), "row indexed twice")
		}
		if i > 0 && x.key(&x.t.rows[p]) < x.key(&x.t.rows[x.perm[i-1]]) {
			return brokenf("index "+x.name, x.t.name, i, "keys out of order")
		}
	}
	if x.full && len(x.perm) != n {
		return brokenf("index "+x.name, x.t.name, len(x.perm), "full index covers %d of %d rows", len(x.perm), n)
	}
	return nil
}
