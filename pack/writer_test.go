package pack_test

import (
	"bytes"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/sebkeim/insrcdata/pack"
)

var _ = Describe("Writer", func() {
	var buf *bytes.Buffer
	var subject *pack.Writer
	var testdata = []byte("testdata")

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		subject = pack.NewWriter(buf, nil)
	})

	AfterEach(func() {
		_ = subject.Close()
	})

	It("should write empty", func() {
		Expect(subject.Close()).To(Succeed())
		Expect(buf.Len()).To(Equal(16))
		Expect(subject.Close()).To(MatchError(`pack: is closed`))
	})

	It("should prevent out-of-order appends", func() {
		Expect(subject.Append(20, testdata)).To(Succeed())
		Expect(subject.Append(19, testdata)).To(MatchError(`pack: attempted an out-of-order append, 19 must be > 20`))
		Expect(subject.Append(22, testdata)).To(Succeed())
		Expect(subject.Append(23, testdata)).To(Succeed())
		Expect(subject.Append(23, testdata)).To(MatchError(`pack: attempted an out-of-order append, 23 must be > 23`))
		Expect(subject.Append(24, testdata)).To(Succeed())
	})

	It("should accept a zero first key", func() {
		Expect(subject.Append(0, nil)).To(Succeed())
		Expect(subject.Append(0, nil)).To(MatchError(`pack: attempted an out-of-order append, 0 must be > 0`))
	})

	It("should write (non-compressable)", func() {
		rnd := rand.New(rand.NewSource(1))
		val := make([]byte, 128)

		for key := uint64(0); key < 10000; key += 2 {
			_, err := rnd.Read(val)
			Expect(err).NotTo(HaveOccurred())
			Expect(subject.Append(key, val)).To(Succeed())
		}
		Expect(subject.Close()).To(Succeed())
		Expect(buf.Len()).To(BeNumerically(">", 5000*130))
		Expect(buf.String()[buf.Len()-8:]).To(Equal("insrcpk\x01"))
	})

	DescribeTable("should write (well-compressable)",
		func(c pack.Compression) {
			subject = pack.NewWriter(buf, &pack.WriterOptions{Compression: c})

			val := bytes.Repeat(testdata, 16)
			for key := uint64(0); key < 10000; key += 2 {
				Expect(subject.Append(key, val)).To(Succeed())
			}
			Expect(subject.Close()).To(Succeed())
			Expect(buf.Len()).To(BeNumerically("<", 5000*130/4))
			Expect(buf.String()[buf.Len()-8:]).To(Equal("insrcpk\x01"))
		},
		Entry("snappy", pack.SnappyCompression),
		Entry("zstd", pack.ZstdCompression),
		Entry("lz4", pack.LZ4Compression),
	)
})

var _ = Describe("Builder", func() {
	It("should reject duplicate sections", func() {
		b := pack.NewBuilder()
		Expect(b.AddPositions("person.score", []uint32{0, 1, 3, 2})).To(Succeed())
		Expect(b.AddPositions("person.score", []uint32{0})).To(MatchError(`pack: duplicate section "person.score"`))
		Expect(b.Len()).To(Equal(1))
	})

	It("should build readable packs", func() {
		b := pack.NewBuilder()
		Expect(b.AddPositions("person.score", []uint32{0, 1, 3, 2})).To(Succeed())
		Expect(b.AddPositions("strencoding.text", []uint32{1, 4, 2, 5, 3, 0})).To(Succeed())
		Expect(b.AddBytes("meta.version", []byte("0.2.0"))).To(Succeed())

		buf := new(bytes.Buffer)
		Expect(b.Build(buf, &pack.WriterOptions{Compression: pack.ZstdCompression})).To(Succeed())

		r, err := pack.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Positions("person.score")).To(Equal([]uint32{0, 1, 3, 2}))
		Expect(r.Positions("strencoding.text")).To(Equal([]uint32{1, 4, 2, 5, 3, 0}))
		Expect(r.Section("meta.version")).To(Equal([]byte("0.2.0")))

		_, err = r.Section("person.name")
		Expect(err).To(MatchError(pack.ErrNotFound))
	})
})

var _ = Describe("Positions", func() {
	It("should round-trip", func() {
		enc := pack.AppendPositions(nil, []uint32{7, 0, 300, 1 << 20})
		Expect(pack.DecodePositions(enc)).To(Equal([]uint32{7, 0, 300, 1 << 20}))

		enc = pack.AppendPositions(nil, nil)
		Expect(pack.DecodePositions(enc)).To(BeEmpty())
	})

	It("should reject malformed input", func() {
		_, err := pack.DecodePositions(nil)
		Expect(err).To(MatchError(`pack: malformed positions section`))

		enc := pack.AppendPositions(nil, []uint32{1, 2, 3})
		_, err = pack.DecodePositions(enc[:len(enc)-1])
		Expect(err).To(HaveOccurred())
		_, err = pack.DecodePositions(append(enc, 9))
		Expect(err).To(HaveOccurred())
	})
})
