package fixture

import "github.com/sebkeim/insrcdata"

// Person is a row of the person table.
type Person struct {
	name   string
	woman  bool
	score  float64
	spouse uint8
	father insrcdata.Link
	mother insrcdata.Link
}

func (p *Person) Name() string   { return p.name }
func (p *Person) Woman() bool    { return p.woman }
func (p *Person) Score() float64 { return p.score }

// Spouse is a mandatory relation within the person table.
func (p *Person) Spouse() insrcdata.Ref[Person] { return PersonTable.At(int(p.spouse)) }

// Father is an optional relation within the person table.
func (p *Person) Father() insrcdata.Optional[Person] { return PersonTable.Follow(p.father) }

// Mother is an optional relation within the person table.
func (p *Person) Mother() insrcdata.Optional[Person] { return PersonTable.Follow(p.mother) }

// Persons labels person rows.
type Persons int

// Person labels.
const (
	Marie Persons = iota
	Pierre
	Irene
	Frederic
)

// Ref returns the labelled row.
func (l Persons) Ref() insrcdata.Ref[Person] { return PersonTable.At(int(l)) }

// Row returns the labelled row.
func (l Persons) Row() *Person { return PersonTable.Row(int(l)) }

// PersonTable holds the Curie family.
var PersonTable = insrcdata.NewTable("person", []Person{
	{"Marie Curie", true, 1.0, 1, insrcdata.NoLink, insrcdata.NoLink},
	{"Pierre Curie", false, 2.1, 0, insrcdata.NoLink, insrcdata.NoLink},
	{"Irène Joliot-Curie", true, 3.2, 3, insrcdata.Some(1), insrcdata.Some(0)},
	{"Frédéric Joliot-Curie", false, 2.1, 2, insrcdata.NoLink, insrcdata.NoLink},
})

// PersonScore indexes persons by score.
var PersonScore = insrcdata.NewIndex(PersonTable, "person.score", (*Person).Score, []uint32{
	0, 1, 3, 2,
})

// PersonByMother resolves the children of a mother.
var PersonByMother = insrcdata.NewToMany(insrcdata.NewFilteredIndex(PersonTable, "person.mother",
	func(p *Person) int { return insrcdata.LinkKey(p.mother) },
	[]uint32{
		2,
	}))

// PersonByFather resolves the children of a father.
var PersonByFather = insrcdata.NewToMany(insrcdata.NewFilteredIndex(PersonTable, "person.father",
	func(p *Person) int { return insrcdata.LinkKey(p.father) },
	[]uint32{
		2,
	}))
