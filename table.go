package insrcdata

import (
	"strconv"
	"unsafe"
)

// Table is an ordered, immutable sequence of rows. Row identity is the row
// position, stable for the lifetime of the table.
//
// Tables are built once, before the first query, and never mutated
// afterwards; any number of goroutines may read a table concurrently.
type Table[R any] struct {
	name string
	rows []R
}

// NewTable wraps generated rows. The table takes ownership of rows, which
// must not be modified afterwards.
func NewTable[R any](name string, rows []R) *Table[R] {
	return &Table[R]{name: name, rows: rows}
}

// Name returns the table name.
func (t *Table[R]) Name() string { return t.name }

// Len returns the number of rows.
func (t *Table[R]) Len() int { return len(t.rows) }

// At returns a reference to the row at pos. This is how mandatory to-one
// relations are resolved. It panics with an *InvariantError if pos is out
// of range.
func (t *Table[R]) At(pos int) Ref[R] {
	if pos < 0 || pos >= len(t.rows) {
		panic(outOfRange("at", t.name, pos, len(t.rows)))
	}
	return Ref[R]{t: t, pos: pos}
}

// PosOf returns the position of row, which must point into t (as returned
// by Ref.Row or Iterator.Row). It panics with an *InvariantError otherwise.
func (t *Table[R]) PosOf(row *R) int {
	size := unsafe.Sizeof(*row)
	if size == 0 || len(t.rows) == 0 {
		panic(brokenf("pos of", t.name, -1, "table has no addressable rows"))
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(t.rows)))
	addr := uintptr(unsafe.Pointer(row))
	if addr < base || addr >= base+size*uintptr(len(t.rows)) || (addr-base)%size != 0 {
		panic(brokenf("pos of", t.name, -1, "row does not belong to the table"))
	}
	return int((addr - base) / size)
}

// Row is a shortcut for At(pos).Row().
func (t *Table[R]) Row(pos int) *R {
	return t.At(pos).Row()
}

// All returns an iterator over all rows in physical order.
func (t *Table[R]) All() *Iterator[R] {
	return t.Scan(0, len(t.rows))
}

// Scan returns an iterator over the physical rows [lo, hi). An inverted
// range yields nothing, a range exceeding the table panics.
func (t *Table[R]) Scan(lo, hi int) *Iterator[R] {
	if lo < 0 || lo > len(t.rows) {
		panic(outOfRange("scan", t.name, lo, len(t.rows)))
	}
	if hi > len(t.rows) {
		panic(outOfRange("scan", t.name, hi, len(t.rows)))
	}
	if hi < lo {
		hi = lo
	}
	return &Iterator[R]{t: t, pos: lo, end: hi, cur: -1}
}

// --------------------------------------------------------------------

// Ref references a single row. Refs are comparable: two refs are equal
// when they address the same row of the same table. The zero Ref
// references nothing.
type Ref[R any] struct {
	t   *Table[R]
	pos int
}

// Pos returns the row position.
func (r Ref[R]) Pos() int { return r.pos }

// Table returns the owning table.
func (r Ref[R]) Table() *Table[R] { return r.t }

// Row returns the referenced row. The row is shared and must not be modified.
func (r Ref[R]) Row() *R { return &r.t.rows[r.pos] }

// IsZero returns true for the zero Ref.
func (r Ref[R]) IsZero() bool { return r.t == nil }

func (r Ref[R]) String() string {
	if r.t == nil {
		return "<nil>"
	}
	return r.t.name + "[" + strconv.Itoa(r.pos) + "]"
}
