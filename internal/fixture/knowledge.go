package fixture

import (
	"strings"

	"github.com/sebkeim/insrcdata"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lettercase is a row of the lettercase table. Each row carries a string
// transformer.
type Lettercase struct {
	name      string
	transform func(string) string
}

func (l *Lettercase) Name() string { return l.name }

// Transform applies the lettercase to s.
func (l *Lettercase) Transform(s string) string { return l.transform(s) }

// Lettercase labels.
const (
	Capital = iota
	Upper
	Lower
)

// Casers are stateful, so each call gets its own.
func capitalize(s string) string { return cases.Title(language.Und).String(s) }

// LettercaseTable holds string transformers.
var LettercaseTable = insrcdata.NewTable("lettercase", []Lettercase{
	{"Capital", capitalize},
	{"Upper", strings.ToUpper},
	{"Lower", strings.ToLower},
})

// Variant targets of the knowledge tables.
const (
	ObjectPerson insrcdata.Tag = iota
	ObjectLettercase
)

func objectTargets() []insrcdata.Target {
	return []insrcdata.Target{
		{Name: PersonTable.Name(), Len: PersonTable.Len()},
		{Name: LettercaseTable.Name(), Len: LettercaseTable.Len()},
	}
}

// Wikidata maps a Wikidata identifier to a person or a lettercase.
type Wikidata struct {
	id     string
	object uint32
}

func (w *Wikidata) ID() string { return w.id }

// Object resolves the mandatory variant.
func (w *Wikidata) Object() insrcdata.Variant { return WikidataObject.Resolve(w) }

// WikidataSchema encodes the mandatory object variant.
var WikidataSchema = insrcdata.NewVariants("wikidata.object", false, objectTargets()...)

// WikidataTable holds Wikidata items.
var WikidataTable = insrcdata.NewTable("wikidata", []Wikidata{
	{"Q7186", 0},
	{"Q4006624", 6},
	{"Q7504", 2},
})

// WikidataObject answers reverse lookups of the object variant.
var WikidataObject = insrcdata.NewVariantIndex(WikidataSchema, insrcdata.NewIndex(WikidataTable, "wikidata.object",
	func(w *Wikidata) uint32 { return w.object },
	[]uint32{
		0, 2, 1,
	}))

// Congress records which person or lettercase a congress was about, if any.
type Congress struct {
	title  string
	object uint32
}

func (c *Congress) Title() string { return c.title }

// Object resolves the optional variant.
func (c *Congress) Object() insrcdata.Variant { return CongressSchema.Decode(c.object) }

// CongressSchema encodes the optional object variant.
var CongressSchema = insrcdata.NewVariants("congress.object", true, objectTargets()...)

// CongressTable holds congresses.
var CongressTable = insrcdata.NewTable("congress", []Congress{
	{"Solvay 1911", 1},
	{"Typography 1957", 7},
	{"Solvay 1933", 4},
	{"Unassigned", 0},
})

// CongressObject is built and verified on first use.
var CongressObject = insrcdata.NewStatic("congress.object", func() *insrcdata.VariantIndex[Congress] {
	return insrcdata.BuildVariantIndex(CongressTable, CongressSchema, func(c *Congress) uint32 { return c.object })
}, &insrcdata.StaticOptions{Verify: true})
