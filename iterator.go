package insrcdata

import "iter"

// Iterator is a single-pass cursor over a contiguous range of either an
// index permutation or of physical table rows. It is not restartable: a
// fresh query must be issued to scan again.
//
// Iterators must not be advanced concurrently, independent iterators over the
// same table may be used from any number of goroutines.
type Iterator[R any] struct {
	t    *Table[R]
	perm []uint32 // nil for physical scans

	pos, end int
	cur      int
}

func newIndexIterator[R any](t *Table[R], perm []uint32) *Iterator[R] {
	return &Iterator[R]{t: t, perm: perm, end: len(perm), cur: -1}
}

// Next advances the cursor to the next row and returns true if successful.
func (i *Iterator[R]) Next() bool {
	if i.pos >= i.end {
		i.cur = -1
		return false
	}

	if i.perm != nil {
		i.cur = int(i.perm[i.pos])
		if i.cur >= len(i.t.rows) {
			panic(outOfRange("iterate", i.t.name, i.cur, len(i.t.rows)))
		}
	} else {
		i.cur = i.pos
	}
	i.pos++
	return true
}

// Pos returns the position of the current row, or -1 when the cursor is
// not positioned on a row.
func (i *Iterator[R]) Pos() int { return i.cur }

// Ref returns a reference to the current row.
func (i *Iterator[R]) Ref() Ref[R] {
	if i.cur < 0 {
		return Ref[R]{}
	}
	return Ref[R]{t: i.t, pos: i.cur}
}

// Row returns the current row, or nil when the cursor is not positioned on
// a row.
func (i *Iterator[R]) Row() *R {
	if i.cur < 0 {
		return nil
	}
	return &i.t.rows[i.cur]
}

// Len returns the number of rows left.
func (i *Iterator[R]) Len() int { return i.end - i.pos }

// Seq drains the iterator as a range-over-func sequence.
func (i *Iterator[R]) Seq() iter.Seq[Ref[R]] {
	return func(yield func(Ref[R]) bool) {
		for i.Next() {
			if !yield(i.Ref()) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (i *Iterator[R]) Collect() []Ref[R] {
	refs := make([]Ref[R], 0, i.Len())
	for i.Next() {
		refs = append(refs, i.Ref())
	}
	return refs
}
