package fixture

import "github.com/sebkeim/insrcdata"

// Chapter is a node of the taxonomy, stored in depth-first order.
type Chapter struct {
	code   string
	title  string
	parent uint8
}

func (c *Chapter) Code() string  { return c.code }
func (c *Chapter) Title() string { return c.title }

// Parent returns the enclosing chapter. The root chapter is its own parent.
func (c *Chapter) Parent() insrcdata.Ref[Chapter] { return ChapterTable.At(int(c.parent)) }

// Leaves returns the leaves directly attached to the chapter.
func (c *Chapter) Leaves() *insrcdata.Iterator[Leaf] {
	return LeafByChapter.Of(ChapterTable.PosOf(c))
}

// Leaf is a row attached to a taxonomy chapter.
type Leaf struct {
	title   string
	chapter uint8
}

func (l *Leaf) Title() string { return l.title }

// Chapter is a mandatory relation to the chapter table.
func (l *Leaf) Chapter() insrcdata.Ref[Chapter] { return ChapterTable.At(int(l.chapter)) }

// ChapterTable holds the taxonomy tree.
var ChapterTable = insrcdata.NewTable("chapter", []Chapter{
	{"ROOT", "Living things", 0},
	{"A", "Animals", 0},
	{"A1", "Mammals", 1},
	{"A11", "Primates", 2},
	{"A12", "Rodents", 2},
	{"A2", "Birds", 1},
	{"A21", "Raptors", 5},
	{"P", "Plants", 0},
	{"P1", "Trees", 7},
	{"P2", "Flowers", 7},
	{"F", "Fungi", 0},
})

// ChapterCode indexes chapters by code.
var ChapterCode = insrcdata.NewIndex(ChapterTable, "chapter.code", (*Chapter).Code, []uint32{
	1, 2, 3, 4, 5, 6, 10, 7, 8, 9, 0,
})

// ChapterTree navigates the taxonomy.
var ChapterTree = insrcdata.NewHierarchy(ChapterTable, func(c *Chapter) int { return int(c.parent) })

// LeafTable holds taxonomy leaves, ordered by chapter.
var LeafTable = insrcdata.NewTable("leaf", []Leaf{
	{"Chimpanzee", 3},
	{"Gorilla", 3},
	{"Mouse", 4},
	{"Squirrel", 4},
	{"Sparrow", 5},
	{"Eagle", 6},
	{"Falcon", 6},
	{"Oak", 8},
	{"Rose", 9},
	{"Tulip", 9},
	{"Mushroom", 10},
})

// LeafByChapter resolves the leaves of a chapter.
var LeafByChapter = insrcdata.NewToMany(insrcdata.NewIndex(LeafTable, "leaf.chapter",
	func(l *Leaf) int { return int(l.chapter) },
	[]uint32{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	}))

// LeafContents locates the leaves of a chapter subtree.
var LeafContents = insrcdata.NewContents(LeafTable, ChapterTable.Len(), func(l *Leaf) int { return int(l.chapter) })
