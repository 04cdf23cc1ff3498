package insrcdata

import (
	"math"
	"sort"
)

// Tag names the target table of a variant: the ordinal of the target in
// its Variants schema. None is the tag of an unmatched optional variant.
type Tag int

// None is the tag of an optional variant that references nothing.
const None Tag = -1

// Target describes one target table of a variant column.
type Target struct {
	Name string // target table name
	Len  int    // number of addressable rows
}

type targetSpan struct {
	Target
	offset uint32
}

// Variants is the schema of a variant column. Encoded values address the
// targets in contiguous blocks, in declaration order; optional schemas
// reserve the value 0 for None.
type Variants struct {
	name     string
	optional bool
	spans    []targetSpan
	domain   uint32 // number of valid encoded values
}

// NewVariants defines a variant schema over targets.
func NewVariants(name string, optional bool, targets ...Target) *Variants {
	s := &Variants{name: name, optional: optional}

	var offset uint64
	if optional {
		offset = 1
	}
	for _, t := range targets {
		if t.Len < 0 {
			panic(brokenf("variants", name, t.Len, "negative length for target %q", t.Name))
		}
		s.spans = append(s.spans, targetSpan{Target: t, offset: uint32(offset)})
		offset += uint64(t.Len)
	}
	if offset > math.MaxUint32 {
		panic(brokenf("variants", name, len(targets), "encoded domain exceeds 32 bits"))
	}
	s.domain = uint32(offset)
	return s
}

// Name returns the variant column name.
func (s *Variants) Name() string { return s.name }

// Optional returns true if values may be None.
func (s *Variants) Optional() bool { return s.optional }

// NumTargets returns the number of target tables.
func (s *Variants) NumTargets() int { return len(s.spans) }

// Target returns the target of a tag.
func (s *Variants) Target(tag Tag) Target {
	return s.span(tag).Target
}

// Encode returns the stored value of a reference to row pos of target tag.
// It panics with an *InvariantError on an unknown tag or position.
func (s *Variants) Encode(tag Tag, pos int) uint32 {
	sp := s.span(tag)
	if pos < 0 || pos >= sp.Len {
		panic(outOfRange("encode variant", sp.Name, pos, sp.Len))
	}
	return sp.offset + uint32(pos)
}

// EncodeNone returns the stored value of None. It panics on mandatory schemas.
func (s *Variants) EncodeNone() uint32 {
	if !s.optional {
		panic(brokenf("encode variant", s.name, 0, "mandatory variant cannot be none"))
	}
	return 0
}

// Decode resolves a stored value. It panics with an *InvariantError when v
// lies outside of the encoded domain.
func (s *Variants) Decode(v uint32) Variant {
	if s.optional && v == 0 {
		return Variant{tag: None, pos: -1}
	}
	if v >= s.domain {
		panic(outOfRange("decode variant", s.name, int(v), int(s.domain)))
	}

	i := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].offset+uint32(s.spans[i].Len) > v
	})
	return Variant{tag: Tag(i), pos: int(v - s.spans[i].offset)}
}

func (s *Variants) span(tag Tag) targetSpan {
	if tag < 0 || int(tag) >= len(s.spans) {
		panic(outOfRange("variant tag", s.name, int(tag), len(s.spans)))
	}
	return s.spans[tag]
}

// --------------------------------------------------------------------

// Variant is a resolved variant value: a target tag and a row position in
// that target, or None.
//
//	switch v := schema.Decode(row.object); v.Tag() {
//	case insrcdata.None:
//	case ObjectPerson:
//		person := persons.At(v.Pos())
//	case ObjectLettercase:
//		lettercase := lettercases.At(v.Pos())
//	}
type Variant struct {
	tag Tag
	pos int
}

// Tag returns the target tag, or None.
func (v Variant) Tag() Tag { return v.tag }

// Pos returns the row position within the target, or -1 for None.
func (v Variant) Pos() int { return v.pos }

// IsNone returns true for an unmatched optional variant.
func (v Variant) IsNone() bool { return v.tag == None }

// Resolve returns the row of t referenced by v when v is tagged tag.
func Resolve[R any](v Variant, tag Tag, t *Table[R]) (Ref[R], bool) {
	if v.tag != tag || tag == None {
		return Ref[R]{}, false
	}
	return t.At(v.pos), true
}

// --------------------------------------------------------------------

// VariantIndex answers reverse variant lookups: which rows of the variant
// table reference a given target row. It holds one index over the encoded
// column (None excluded); the block of each target is itself an index keyed
// by the payload position.
type VariantIndex[V any] struct {
	s  *Variants
	x  *Index[V, uint32]
	by []*Index[V, int]
}

// NewVariantIndex wraps an index over an encoded variant column.
func NewVariantIndex[V any](s *Variants, x *Index[V, uint32]) *VariantIndex[V] {
	vi := &VariantIndex[V]{s: s, x: x, by: make([]*Index[V, int], len(s.spans))}
	for i, sp := range s.spans {
		lo, hi := 0, 0
		if sp.Len != 0 {
			lo, hi = x.bounds(sp.offset, sp.offset+uint32(sp.Len-1))
		}

		offset := sp.offset
		vi.by[i] = NewFilteredIndex(x.t, x.name+"."+sp.Name, func(r *V) int {
			return int(x.key(r) - offset)
		}, x.perm[lo:hi:hi])
	}
	return vi
}

// BuildVariantIndex indexes an encoded variant column of t.
func BuildVariantIndex[V any](t *Table[V], s *Variants, value func(*V) uint32) *VariantIndex[V] {
	var keep func(*V) bool
	if s.optional {
		keep = func(r *V) bool { return value(r) != 0 }
	}
	return NewVariantIndex(s, BuildFilteredIndex(t, s.name, value, keep))
}

// Schema returns the variant schema.
func (vi *VariantIndex[V]) Schema() *Variants { return vi.s }

// Resolve decodes the variant stored in row.
func (vi *VariantIndex[V]) Resolve(row *V) Variant {
	return vi.s.Decode(vi.x.key(row))
}

// Referrers returns an iterator over the variant rows referencing row pos of
// target tag. A target row without referrers yields an empty iterator.
func (vi *VariantIndex[V]) Referrers(tag Tag, pos int) *Iterator[V] {
	return vi.ByTarget(tag).Lookup(pos)
}

// ByTarget returns the index of the variant rows tagged tag, keyed by the
// payload position.
func (vi *VariantIndex[V]) ByTarget(tag Tag) *Index[V, int] {
	vi.s.span(tag)
	return vi.by[tag]
}

// Verify checks the encoded index and that every indexed value decodes to a
// target row.
func (vi *VariantIndex[V]) Verify() error {
	if err := vi.x.Verify(); err != nil {
		return err
	}
	for _, p := range vi.x.perm {
		v := vi.x.key(&vi.x.t.rows[p])
		if vi.s.optional && v == 0 {
			return brokenf("variant index", vi.x.t.name, int(p), "none value indexed")
		}
		if v >= vi.s.domain {
			return outOfRange("variant index", vi.x.t.name, int(v), int(vi.s.domain))
		}
	}
	return nil
}
