package insrcdata

import (
	"iter"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Hierarchy navigates a tree stored in depth-first order: every node is
// immediately followed by all of its descendants, and each node stores the
// position of its parent. The root is at position 0 and is its own parent.
type Hierarchy[N any] struct {
	t      *Table[N]
	parent func(*N) int
}

// NewHierarchy wraps a depth-first ordered node table.
func NewHierarchy[N any](t *Table[N], parent func(*N) int) *Hierarchy[N] {
	return &Hierarchy[N]{t: t, parent: parent}
}

// Table returns the node table.
func (h *Hierarchy[N]) Table() *Table[N] { return h.t }

// Parent returns the parent of the node at pos. The root is its own parent.
func (h *Hierarchy[N]) Parent(pos int) Ref[N] {
	return h.t.At(h.parent(h.t.At(pos).Row()))
}

// Bounds returns the subtree of the node at i as the physical row range
// [i, hi). The subtree ends at the first following node whose parent
// precedes i.
func (h *Hierarchy[N]) Bounds(i int) (lo, hi int) {
	h.t.At(i)

	hi = i + 1
	for hi < len(h.t.rows) && h.parent(&h.t.rows[hi]) >= i {
		hi++
	}
	return i, hi
}

// Subtree returns an iterator over the node at i and all its descendants,
// in depth-first order.
func (h *Hierarchy[N]) Subtree(i int) *Iterator[N] {
	lo, hi := h.Bounds(i)
	return h.t.Scan(lo, hi)
}

// Ancestors yields the ancestors of the node at i, nearest first, ending
// with the root.
func (h *Hierarchy[N]) Ancestors(i int) iter.Seq[Ref[N]] {
	h.t.At(i)
	return func(yield func(Ref[N]) bool) {
		for i != 0 {
			p := h.parent(&h.t.rows[i])
			if p >= i {
				panic(brokenf("ancestors", h.t.name, i, "parent %d does not precede node", p))
			}
			if !yield(h.t.At(p)) {
				return
			}
			i = p
		}
	}
}

// Cover drains roots and returns the set of node positions belonging to any
// of their subtrees.
func (h *Hierarchy[N]) Cover(roots *Iterator[N]) *roaring.Bitmap {
	cover := roaring.New()
	for roots.Next() {
		pos := roots.Pos()
		if cover.Contains(uint32(pos)) {
			continue
		}
		lo, hi := h.Bounds(pos)
		cover.AddRange(uint64(lo), uint64(hi))
	}
	return cover
}

// Verify checks the depth-first layout: the root is its own parent and the
// parent of every other node is an ancestor still open at that position.
func (h *Hierarchy[N]) Verify() error {
	n := len(h.t.rows)
	if n == 0 {
		return nil
	}
	if p := h.parent(&h.t.rows[0]); p != 0 {
		return brokenf("hierarchy", h.t.name, 0, "root is not its own parent (parent %d)", p)
	}

	open := []int{0}
	for i := 1; i < n; i++ {
		p := h.parent(&h.t.rows[i])
		if p < 0 || p >= i {
			return brokenf("hierarchy", h.t.name, i, "parent %d does not precede node", p)
		}
		for len(open) != 0 && open[len(open)-1] != p {
			open = open[:len(open)-1]
		}
		if len(open) == 0 {
			return brokenf("hierarchy", h.t.name, i, "parent %d subtree was already closed", p)
		}
		open = append(open, i)
	}
	return nil
}

// --------------------------------------------------------------------

// Contents is a companion table of a hierarchy whose rows each belong to a
// node, ordered consistently with the depth-first node order (owner
// positions never decrease).
type Contents[C any] struct {
	t     *Table[C]
	owner func(*C) int
	nodes int
}

// NewContents wraps a content table of a hierarchy with nodes rows.
func NewContents[C any](t *Table[C], nodes int, owner func(*C) int) *Contents[C] {
	return &Contents[C]{t: t, owner: owner, nodes: nodes}
}

// Table returns the content table.
func (c *Contents[C]) Table() *Table[C] { return c.t }

// Within returns an iterator over the content rows owned by the nodes in
// [lo, hi), located by binary search over the owner column.
func (c *Contents[C]) Within(lo, hi int) *Iterator[C] {
	a := sort.Search(len(c.t.rows), func(i int) bool {
		return c.owner(&c.t.rows[i]) >= lo
	})
	b := sort.Search(len(c.t.rows), func(i int) bool {
		return c.owner(&c.t.rows[i]) >= hi
	})
	return c.t.Scan(a, b)
}

// ScanWithin is the linear alternative to Within for small subtrees: it
// looks up the content of each node in [lo, hi) until one has content, then
// scans forward while the owner stays below hi.
func (c *Contents[C]) ScanWithin(by *ToMany[C], lo, hi int) *Iterator[C] {
	start := -1
	for node := lo; node < hi && start < 0; node++ {
		if it := by.Of(node); it.Next() {
			start = it.Pos()
		}
	}
	if start < 0 {
		return c.t.Scan(0, 0)
	}

	end := start
	for end < len(c.t.rows) && c.owner(&c.t.rows[end]) < hi {
		end++
	}
	return c.t.Scan(start, end)
}

// InCover yields the content rows owned by any node of cover.
func (c *Contents[C]) InCover(cover *roaring.Bitmap) iter.Seq[Ref[C]] {
	return func(yield func(Ref[C]) bool) {
		it := cover.Iterator()
		for it.HasNext() {
			node := int(it.Next())
			sub := c.Within(node, node+1)
			for sub.Next() {
				if !yield(sub.Ref()) {
					return
				}
			}
		}
	}
}

// Verify checks that owners address nodes and never decrease.
func (c *Contents[C]) Verify() error {
	prev := 0
	for i := range c.t.rows {
		o := c.owner(&c.t.rows[i])
		if o < 0 || o >= c.nodes {
			return outOfRange("contents", c.t.name, o, c.nodes)
		}
		if o < prev {
			return brokenf("contents", c.t.name, i, "owner %d precedes owner %d of previous row", o, prev)
		}
		prev = o
	}
	return nil
}
