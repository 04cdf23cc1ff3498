package insrcdata_test

import (
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sebkeim/insrcdata"
	"github.com/sebkeim/insrcdata/internal/fixture"
)

var _ = Describe("Table", func() {
	subject := fixture.PersonTable

	It("should expose rows by position", func() {
		Expect(subject.Name()).To(Equal("person"))
		Expect(subject.Len()).To(Equal(4))
		Expect(subject.At(2).Row().Name()).To(Equal("Irène Joliot-Curie"))
		Expect(subject.Row(3).Score()).To(Equal(2.1))
	})

	It("should panic on out-of-range positions", func() {
		err := invariantPanic(func() { subject.At(4) })
		Expect(err).To(MatchError(insrcdata.ErrInvariant))
		Expect(err).To(MatchError(`insrcdata: at "person" position 4 out of range [0, 4)`))
		Expect(invariantPanic(func() { subject.At(-1) })).To(MatchError(insrcdata.ErrInvariant))
	})

	It("should locate rows by pointer", func() {
		for i := 0; i < subject.Len(); i++ {
			Expect(subject.PosOf(subject.Row(i))).To(Equal(i))
		}

		stray := *subject.Row(1)
		Expect(invariantPanic(func() { subject.PosOf(&stray) })).To(MatchError(insrcdata.ErrInvariant))
	})

	It("should scan physical rows", func() {
		Expect(drain(subject.All())).To(Equal([]int{0, 1, 2, 3}))
		Expect(drain(subject.Scan(1, 3))).To(Equal([]int{1, 2}))
		Expect(drain(subject.Scan(3, 1))).To(BeEmpty())
		Expect(drain(subject.Scan(4, 4))).To(BeEmpty())
		Expect(invariantPanic(func() { subject.Scan(0, 5) })).To(MatchError(insrcdata.ErrInvariant))
	})

	It("should compare refs", func() {
		Expect(subject.At(1)).To(Equal(fixture.Pierre.Ref()))
		Expect(subject.At(1) == subject.At(1)).To(BeTrue())
		Expect(subject.At(1) == subject.At(2)).To(BeFalse())
		Expect(subject.At(1).String()).To(Equal("person[1]"))

		var zero insrcdata.Ref[fixture.Person]
		Expect(zero.IsZero()).To(BeTrue())
		Expect(zero.String()).To(Equal("<nil>"))
	})
})

var _ = Describe("Iterator", func() {
	It("should be single-pass", func() {
		it := fixture.PersonTable.All()
		Expect(it.Len()).To(Equal(4))
		Expect(it.Pos()).To(Equal(-1))
		Expect(it.Row()).To(BeNil())

		Expect(it.Next()).To(BeTrue())
		Expect(it.Row().Name()).To(Equal("Marie Curie"))
		Expect(it.Len()).To(Equal(3))

		Expect(drain(it)).To(Equal([]int{1, 2, 3}))
		Expect(it.Next()).To(BeFalse())
		Expect(it.Pos()).To(Equal(-1))
		Expect(it.Ref().IsZero()).To(BeTrue())
	})

	It("should drain into sequences", func() {
		var names []string
		for ref := range fixture.PersonScore.Range(2.1, 3.2).Seq() {
			names = append(names, ref.Row().Name())
		}
		Expect(names).To(Equal([]string{"Pierre Curie", "Frédéric Joliot-Curie", "Irène Joliot-Curie"}))
	})

	It("should stop sequences early", func() {
		it := fixture.PersonTable.All()
		for range it.Seq() {
			break
		}
		Expect(it.Len()).To(Equal(3))
	})

	It("should drain independent iterators concurrently", func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for n := 0; n < 100; n++ {
					Expect(drain(fixture.PersonScore.Range(2.1, 3.2))).To(Equal([]int{1, 3, 2}))
					Expect(drain(fixture.CountryAlpha3.Range("SDN", "SGP"))).To(Equal([]int{10, 7, 8}))
					Expect(drain(fixture.ChapterTree.Subtree(2))).To(Equal([]int{2, 3, 4}))
				}
			}()
		}
		wg.Wait()
	})

	It("should collect", func() {
		refs := fixture.PersonScore.Range(0, 2).Collect()
		Expect(refs).To(Equal([]insrcdata.Ref[fixture.Person]{fixture.Marie.Ref()}))
	})
})
