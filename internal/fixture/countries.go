package fixture

import "github.com/sebkeim/insrcdata"

// Region is a row of the region table.
type Region struct {
	name string
	code uint8
}

func (r *Region) Name() string { return r.name }
func (r *Region) Code() uint8  { return r.code }

// Subregions returns the subregions of the region.
func (r *Region) Subregions() *insrcdata.Iterator[Subregion] {
	return SubregionByRegion.Of(RegionTable.PosOf(r))
}

// Subregion is a row of the subregion table.
type Subregion struct {
	name   string
	code   uint16
	region uint8
}

func (s *Subregion) Name() string { return s.name }
func (s *Subregion) Code() uint16 { return s.code }

// Region is a mandatory relation to the region table.
func (s *Subregion) Region() insrcdata.Ref[Region] { return RegionTable.At(int(s.region)) }

// Countries returns the countries of the subregion.
func (s *Subregion) Countries() *insrcdata.Iterator[Country] {
	return CountryBySubregion.Of(SubregionTable.PosOf(s))
}

// Country is a row of the country table.
type Country struct {
	name      string
	alpha2    string
	alpha3    string
	code      uint16
	subregion insrcdata.Link
}

func (c *Country) Name() string   { return c.name }
func (c *Country) Alpha2() string { return c.alpha2 }
func (c *Country) Alpha3() string { return c.alpha3 }
func (c *Country) Code() uint16   { return c.code }

// Subregion is an optional relation to the subregion table, Antarctica has none.
func (c *Country) Subregion() insrcdata.Optional[Subregion] {
	return SubregionTable.Follow(c.subregion)
}

// RegionTable holds UN M49 regions.
var RegionTable = insrcdata.NewTable("region", []Region{
	{"Africa", 2},
	{"Americas", 19},
	{"Asia", 142},
	{"Europe", 150},
	{"Oceania", 9},
})

// SubregionTable holds UN M49 subregions.
var SubregionTable = insrcdata.NewTable("subregion", []Subregion{
	{"Northern Africa", 15, 0},
	{"Sub-Saharan Africa", 202, 0},
	{"Western Asia", 145, 2},
	{"South-eastern Asia", 35, 2},
	{"Western Europe", 155, 3},
	{"Northern Europe", 154, 3},
	{"Melanesia", 54, 4},
	{"Latin America and the Caribbean", 419, 1},
})

// SubregionByRegion resolves the subregions of a region.
var SubregionByRegion = insrcdata.NewToMany(insrcdata.NewIndex(SubregionTable, "subregion.region",
	func(s *Subregion) int { return int(s.region) },
	[]uint32{
		0, 1, 7, 2, 3, 4, 5, 6,
	}))

// CountryTable holds ISO 3166-1 countries.
var CountryTable = insrcdata.NewTable("country", []Country{
	{"Antarctica", "AQ", "ATA", 10, insrcdata.NoLink},
	{"Belgium", "BE", "BEL", 56, insrcdata.Some(4)},
	{"Fiji", "FJ", "FJI", 242, insrcdata.Some(6)},
	{"Finland", "FI", "FIN", 246, insrcdata.Some(5)},
	{"France", "FR", "FRA", 250, insrcdata.Some(4)},
	{"Germany", "DE", "DEU", 276, insrcdata.Some(4)},
	{"Saudi Arabia", "SA", "SAU", 682, insrcdata.Some(2)},
	{"Senegal", "SN", "SEN", 686, insrcdata.Some(1)},
	{"Singapore", "SG", "SGP", 702, insrcdata.Some(3)},
	{"South Georgia and the South Sandwich Islands", "GS", "SGS", 239, insrcdata.Some(7)},
	{"Sudan", "SD", "SDN", 729, insrcdata.Some(0)},
	{"Sweden", "SE", "SWE", 752, insrcdata.Some(5)},
})

// CountryAlpha3 indexes countries by ISO alpha-3 code.
var CountryAlpha3 = insrcdata.NewIndex(CountryTable, "country.alpha3", (*Country).Alpha3, []uint32{
	0, 1, 5, 3, 2, 4, 6, 10, 7, 8, 9, 11,
})

// CountryCode indexes countries by UN M49 code.
var CountryCode = insrcdata.NewIndex(CountryTable, "country.code", (*Country).Code, []uint32{
	0, 1, 9, 2, 3, 4, 5, 6, 7, 8, 10, 11,
})

// CountryBySubregion resolves the countries of a subregion.
var CountryBySubregion = insrcdata.NewToMany(insrcdata.NewFilteredIndex(CountryTable, "country.subregion",
	func(c *Country) int { return insrcdata.LinkKey(c.subregion) },
	[]uint32{
		10, 7, 6, 8, 1, 4, 5, 3, 11, 2, 9,
	}))

// CountryLabels names well-known countries.
var CountryLabels = insrcdata.NewLabels(CountryTable, map[string]int{
	"ANTARCTICA": 0,
	"BELGIUM":    1,
})
