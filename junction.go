package insrcdata

import "iter"

// Side names one side of a many-to-many relation.
type Side uint8

// Junction sides.
const (
	Left Side = iota
	Right
)

// Opposite returns the other side.
func (s Side) Opposite() Side { return s ^ 1 }

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Junction resolves a many-to-many relation through a junction table whose
// rows each hold two mandatory relations, left and right. Each side has its
// own index over the junction table.
type Junction[J any] struct {
	t   *Table[J]
	idx [2]*Index[J, int]
}

// NewJunction combines the left and right foreign key indices of a junction
// table. It panics if the indices do not share the same table.
func NewJunction[J any](left, right *Index[J, int]) *Junction[J] {
	if left.t != right.t {
		panic(brokenf("junction", left.t.name, 0, "right index is over table %q", right.t.name))
	}
	return &Junction[J]{t: left.t, idx: [2]*Index[J, int]{left, right}}
}

// BuildJunction indexes both sides of a junction table.
func BuildJunction[J any](t *Table[J], left, right func(*J) int) *Junction[J] {
	return NewJunction(
		BuildIndex(t, t.name+".left", left),
		BuildIndex(t, t.name+".right", right),
	)
}

// Table returns the junction table.
func (j *Junction[J]) Table() *Table[J] { return j.t }

// From returns an iterator over the junction rows whose side key equals pos.
func (j *Junction[J]) From(side Side, pos int) *Iterator[J] {
	return j.idx[side].Lookup(pos)
}

// ByLeft is a shortcut for From(Left, pos).
func (j *Junction[J]) ByLeft(pos int) *Iterator[J] { return j.From(Left, pos) }

// ByRight is a shortcut for From(Right, pos).
func (j *Junction[J]) ByRight(pos int) *Iterator[J] { return j.From(Right, pos) }

// Key returns the side key stored in a junction row.
func (j *Junction[J]) Key(side Side, row *J) int {
	return j.idx[side].key(row)
}

// Related returns the opposite-side positions related to the entity at pos
// on side, in junction index order.
func (j *Junction[J]) Related(side Side, pos int) iter.Seq[int] {
	it := j.From(side, pos)
	other := side.Opposite()
	return func(yield func(int) bool) {
		for it.Next() {
			if !yield(j.Key(other, it.Row())) {
				return
			}
		}
	}
}

// Verify implements Verifier.
func (j *Junction[J]) Verify() error {
	for _, x := range j.idx {
		if err := x.Verify(); err != nil {
			return err
		}
	}
	return nil
}
