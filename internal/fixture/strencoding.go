package fixture

import "github.com/sebkeim/insrcdata"

// Strencoding is a row of the strencoding table.
type Strencoding struct {
	text string
}

func (s *Strencoding) Text() string { return s.text }

// StrencodingTable holds strings from various scripts.
var StrencodingTable = insrcdata.NewTable("strencoding", []Strencoding{
	{"𝒾ň𝗌яčḓẚᵵᶏ : 𝔢ᶆḃ℮𝚍 ᶌ𝖔ừᵳ ⅆằƫⱥ"},
	{"hello"},
	{"κόσμε"},
	{"いろはにほへとちりぬるを"},
	{"éventuellement validé"},
	{"Да, но фальшивый экземпляр"},
})

// StrencodingText indexes strings in byte order.
var StrencodingText = insrcdata.NewIndex(StrencodingTable, "strencoding.text", (*Strencoding).Text, []uint32{
	1, 4, 2, 5, 3, 0,
})
