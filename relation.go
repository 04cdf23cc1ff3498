package insrcdata

import "math"

// Link is an optional to-one relation as stored in a generated row.
// The zero Link is absent.
type Link struct {
	v uint32 // 0 is absent, v addresses row v-1
}

// NoLink is the absent Link.
var NoLink Link

// Some returns a Link to the row at pos.
func Some(pos int) Link {
	if pos < 0 || uint64(pos) >= math.MaxUint32 {
		panic(brokenf("link", "", pos, "position not addressable"))
	}
	return Link{v: uint32(pos) + 1}
}

// IsNone returns true when the link is absent.
func (l Link) IsNone() bool { return l.v == 0 }

// Pos returns the target position, if present.
func (l Link) Pos() (int, bool) {
	if l.v == 0 {
		return -1, false
	}
	return int(l.v - 1), true
}

// LinkKey returns the target position of l, or -1 when absent. It is meant
// as a key function for indices over optional relation columns.
func LinkKey(l Link) int {
	pos, _ := l.Pos()
	return pos
}

// Follow resolves an optional to-one relation into t.
// It panics with an *InvariantError if the link points past the table.
func (t *Table[R]) Follow(l Link) Optional[R] {
	pos, ok := l.Pos()
	if !ok {
		return Optional[R]{}
	}
	return Optional[R]{ref: t.At(pos), ok: true}
}

// --------------------------------------------------------------------

// Optional is the outcome of resolving an optional relation: either a
// reference to a row, or none.
type Optional[R any] struct {
	ref Ref[R]
	ok  bool
}

// Get returns the referenced row and true, or the zero Ref and false.
func (o Optional[R]) Get() (Ref[R], bool) { return o.ref, o.ok }

// MustGet returns the referenced row. It panics when nothing is referenced.
func (o Optional[R]) MustGet() Ref[R] {
	if !o.ok {
		panic("insrcdata: optional relation is none")
	}
	return o.ref
}

// IsNone returns true when nothing is referenced.
func (o Optional[R]) IsNone() bool { return !o.ok }

// Row returns the referenced row, or nil.
func (o Optional[R]) Row() *R {
	if !o.ok {
		return nil
	}
	return o.ref.Row()
}

// --------------------------------------------------------------------

// ToMany resolves the inverse of a to-one relation: all rows owned by a
// given row of the target table. It wraps an index over the foreign key
// column, keyed by the owner position.
type ToMany[R any] struct {
	x *Index[R, int]
}

// NewToMany wraps a foreign key index.
func NewToMany[R any](x *Index[R, int]) *ToMany[R] {
	return &ToMany[R]{x: x}
}

// BuildLinkIndex indexes an optional relation column. Rows without a link
// are left out.
func BuildLinkIndex[R any](t *Table[R], name string, link func(*R) Link) *Index[R, int] {
	return BuildFilteredIndex(t, name,
		func(r *R) int { return LinkKey(link(r)) },
		func(r *R) bool { return !link(r).IsNone() },
	)
}

// Of returns an iterator over the rows owned by the row at position owner.
func (m *ToMany[R]) Of(owner int) *Iterator[R] {
	return m.x.Lookup(owner)
}

// Index returns the underlying foreign key index.
func (m *ToMany[R]) Index() *Index[R, int] { return m.x }

// Verify implements Verifier.
func (m *ToMany[R]) Verify() error { return m.x.Verify() }
