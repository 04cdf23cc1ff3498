package insrcdata_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sebkeim/insrcdata"
	"github.com/sebkeim/insrcdata/internal/fixture"
)

var _ = Describe("Static", func() {
	var logs *bytes.Buffer
	var logger *insrcdata.Logger

	BeforeEach(func() {
		logs = new(bytes.Buffer)
		logger = insrcdata.NewLogger(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	})

	It("should build once", func() {
		var calls int
		subject := insrcdata.NewStatic("score", func() *insrcdata.Index[fixture.Person, float64] {
			calls++
			return insrcdata.BuildIndex(fixture.PersonTable, "person.score", (*fixture.Person).Score)
		}, &insrcdata.StaticOptions{Logger: logger, Verify: true})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(subject.Get().Len()).To(Equal(4))
			}()
		}
		wg.Wait()

		Expect(calls).To(Equal(1))
		Expect(subject.Get()).To(BeIdenticalTo(subject.Get()))
		Expect(logs.String()).To(ContainSubstring(`msg="static build completed" name=score`))
	})

	It("should panic on broken values", func() {
		subject := insrcdata.NewStatic("broken", func() *insrcdata.Index[fixture.Person, float64] {
			return insrcdata.NewIndex(fixture.PersonTable, "person.score", (*fixture.Person).Score, []uint32{3, 2, 1, 0})
		}, &insrcdata.StaticOptions{Logger: logger, Verify: true})

		Expect(invariantPanic(func() { subject.Get() })).To(MatchError(insrcdata.ErrInvariant))
		Expect(logs.String()).To(ContainSubstring(`msg="static build failed" name=broken`))

		err := invariantPanic(func() { subject.Get() })
		Expect(err).To(MatchError(insrcdata.ErrInvariant))
		Expect(err).To(MatchError(`insrcdata: index person.score "person" at 2: keys out of order`))
	})

	It("should keep failing after a panicking build", func() {
		var calls int
		subject := insrcdata.NewStatic("panicky", func() *insrcdata.Index[fixture.Person, float64] {
			calls++
			panic("no data")
		}, &insrcdata.StaticOptions{Logger: logger})

		Expect(func() { subject.Get() }).To(PanicWith("no data"))
		Expect(func() { subject.Get() }).To(PanicWith("no data"))
		Expect(calls).To(Equal(1))
		Expect(logs.String()).To(ContainSubstring(`msg="static build failed" name=panicky`))
	})

	It("should skip verification by default", func() {
		subject := insrcdata.NewStatic("unchecked", func() *insrcdata.Index[fixture.Person, float64] {
			return insrcdata.NewIndex(fixture.PersonTable, "person.score", (*fixture.Person).Score, []uint32{3, 2, 1, 0})
		}, nil)
		Expect(subject.Get().Len()).To(Equal(4))
	})
})

var _ = Describe("VerifyAll", func() {
	It("should verify fixtures", func() {
		Expect(insrcdata.VerifyAll(context.Background(),
			fixture.PersonScore,
			fixture.PersonByMother,
			fixture.PersonByFather,
			fixture.StrencodingText,
			fixture.CountryAlpha3,
			fixture.CountryCode,
			fixture.CountryBySubregion,
			fixture.SubregionByRegion,
			fixture.TransactionJunction,
			fixture.ChapterCode,
			fixture.ChapterTree,
			fixture.LeafByChapter,
			fixture.LeafContents,
			fixture.WikidataObject,
			fixture.CongressObject.Get(),
		)).To(Succeed())
	})

	It("should report failures", func() {
		broken := insrcdata.NewIndex(fixture.PersonTable, "person.score", (*fixture.Person).Score, []uint32{1, 0})
		err := insrcdata.VerifyAll(context.Background(), fixture.PersonScore, broken)
		Expect(err).To(MatchError(insrcdata.ErrInvariant))
	})

	It("should respect cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(insrcdata.VerifyAll(ctx, fixture.PersonScore)).To(MatchError(context.Canceled))
	})
})
