package insrcdata_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sebkeim/insrcdata"
	"github.com/sebkeim/insrcdata/internal/fixture"
)

var _ = Describe("Variants", func() {
	subject := insrcdata.NewVariants("object", true,
		insrcdata.Target{Name: "person", Len: 4},
		insrcdata.Target{Name: "empty", Len: 0},
		insrcdata.Target{Name: "lettercase", Len: 3},
	)

	It("should encode contiguous blocks", func() {
		Expect(subject.NumTargets()).To(Equal(3))
		Expect(subject.EncodeNone()).To(Equal(uint32(0)))
		Expect(subject.Encode(0, 0)).To(Equal(uint32(1)))
		Expect(subject.Encode(0, 3)).To(Equal(uint32(4)))
		Expect(subject.Encode(2, 0)).To(Equal(uint32(5)))
		Expect(subject.Target(2)).To(Equal(insrcdata.Target{Name: "lettercase", Len: 3}))
	})

	It("should round-trip", func() {
		for tag := insrcdata.Tag(0); int(tag) < subject.NumTargets(); tag++ {
			for pos := 0; pos < subject.Target(tag).Len; pos++ {
				v := subject.Decode(subject.Encode(tag, pos))
				Expect(v.Tag()).To(Equal(tag))
				Expect(v.Pos()).To(Equal(pos))
			}
		}
	})

	It("should decode none", func() {
		v := subject.Decode(0)
		Expect(v.IsNone()).To(BeTrue())
		Expect(v.Tag()).To(Equal(insrcdata.None))
		Expect(v.Pos()).To(Equal(-1))
	})

	It("should reject values outside of the domain", func() {
		Expect(invariantPanic(func() { subject.Decode(8) })).To(MatchError(insrcdata.ErrInvariant))
		Expect(invariantPanic(func() { subject.Encode(1, 0) })).To(MatchError(insrcdata.ErrInvariant))
		Expect(invariantPanic(func() { subject.Encode(3, 0) })).To(MatchError(insrcdata.ErrInvariant))
		Expect(invariantPanic(func() { fixture.WikidataSchema.EncodeNone() })).To(MatchError(insrcdata.ErrInvariant))
	})

	It("should not reserve none for mandatory variants", func() {
		Expect(fixture.WikidataSchema.Optional()).To(BeFalse())
		v := fixture.WikidataSchema.Decode(0)
		Expect(v.Tag()).To(Equal(fixture.ObjectPerson))
		Expect(v.Pos()).To(Equal(0))
	})
})

var _ = Describe("VariantIndex", func() {
	It("should resolve mandatory variants", func() {
		marie := fixture.WikidataTable.Row(0).Object()
		ref, ok := insrcdata.Resolve(marie, fixture.ObjectPerson, fixture.PersonTable)
		Expect(ok).To(BeTrue())
		Expect(ref).To(Equal(fixture.Marie.Ref()))

		_, ok = insrcdata.Resolve(marie, fixture.ObjectLettercase, fixture.LettercaseTable)
		Expect(ok).To(BeFalse())

		lower, ok := insrcdata.Resolve(fixture.WikidataTable.Row(1).Object(), fixture.ObjectLettercase, fixture.LettercaseTable)
		Expect(ok).To(BeTrue())
		Expect(lower.Row().Transform("Hello World")).To(Equal("hello world"))
	})

	It("should resolve optional variants", func() {
		v := fixture.CongressTable.Row(2).Object()
		Expect(v.Tag()).To(Equal(fixture.ObjectPerson))
		Expect(fixture.PersonTable.Row(v.Pos()).Name()).To(Equal("Frédéric Joliot-Curie"))

		none := fixture.CongressTable.Row(3).Object()
		Expect(none.IsNone()).To(BeTrue())
		_, ok := insrcdata.Resolve(none, insrcdata.None, fixture.PersonTable)
		Expect(ok).To(BeFalse())
	})

	It("should find referrers", func() {
		subject := fixture.WikidataObject
		Expect(drain(subject.Referrers(fixture.ObjectPerson, int(fixture.Marie)))).To(Equal([]int{0}))
		Expect(drain(subject.Referrers(fixture.ObjectPerson, int(fixture.Irene)))).To(Equal([]int{2}))
		Expect(drain(subject.Referrers(fixture.ObjectPerson, int(fixture.Pierre)))).To(BeEmpty())
		Expect(drain(subject.Referrers(fixture.ObjectLettercase, fixture.Lower))).To(Equal([]int{1}))
		Expect(drain(subject.Referrers(fixture.ObjectLettercase, fixture.Upper))).To(BeEmpty())
		Expect(subject.ByTarget(fixture.ObjectPerson).Len()).To(Equal(2))
	})

	It("should index optional variants without none", func() {
		subject := fixture.CongressObject.Get()
		Expect(drain(subject.Referrers(fixture.ObjectPerson, int(fixture.Marie)))).To(Equal([]int{0}))
		Expect(drain(subject.Referrers(fixture.ObjectPerson, int(fixture.Frederic)))).To(Equal([]int{2}))
		Expect(drain(subject.Referrers(fixture.ObjectLettercase, fixture.Lower))).To(Equal([]int{1}))
		Expect(subject.ByTarget(fixture.ObjectPerson).Len() + subject.ByTarget(fixture.ObjectLettercase).Len()).To(Equal(3))
		Expect(subject.Resolve(fixture.CongressTable.Row(3)).IsNone()).To(BeTrue())
	})

	It("should build the generated index", func() {
		built := insrcdata.BuildVariantIndex(fixture.WikidataTable, fixture.WikidataSchema, func(w *fixture.Wikidata) uint32 {
			v := w.Object()
			return fixture.WikidataSchema.Encode(v.Tag(), v.Pos())
		})
		Expect(built.Verify()).To(Succeed())
		Expect(drain(built.ByTarget(fixture.ObjectPerson).Range(0, 3))).To(Equal([]int{0, 2}))
	})

	It("should verify", func() {
		Expect(fixture.WikidataObject.Verify()).To(Succeed())
		Expect(fixture.CongressObject.Get().Verify()).To(Succeed())

		type encoded struct{ v uint32 }
		schema := insrcdata.NewVariants("encoded", true, insrcdata.Target{Name: "person", Len: 4})
		rows := insrcdata.NewTable("encoded", []encoded{{0}, {2}, {9}})
		value := func(r *encoded) uint32 { return r.v }

		none := insrcdata.NewVariantIndex(schema, insrcdata.NewFilteredIndex(rows, "encoded.v", value, []uint32{0, 1}))
		Expect(none.Verify()).To(MatchError(`insrcdata: variant index "encoded" at 0: none value indexed`))

		outside := insrcdata.NewVariantIndex(schema, insrcdata.NewFilteredIndex(rows, "encoded.v", value, []uint32{1, 2}))
		Expect(outside.Verify()).To(MatchError(`insrcdata: variant index "encoded" position 9 out of range [0, 5)`))
		Expect(invariantPanic(func() { schema.Decode(rows.Row(2).v) })).To(MatchError(insrcdata.ErrInvariant))
	})
})
