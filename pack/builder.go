package pack

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// AppendPositions appends the encoded form of positions to dst.
func AppendPositions(dst []byte, positions []uint32) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(positions)))
	for _, p := range positions {
		dst = binary.AppendUvarint(dst, uint64(p))
	}
	return dst
}

// DecodePositions decodes a positions section.
func DecodePositions(p []byte) ([]uint32, error) {
	cnt, n := binary.Uvarint(p)
	if n <= 0 || cnt > uint64(len(p)) {
		return nil, errBadPositions
	}
	p = p[n:]

	positions := make([]uint32, 0, int(cnt))
	for i := uint64(0); i < cnt; i++ {
		v, n := binary.Uvarint(p)
		if n <= 0 || v > 1<<32-1 {
			return nil, errBadPositions
		}
		positions = append(positions, uint32(v))
		p = p[n:]
	}
	if len(p) != 0 {
		return nil, errBadPositions
	}
	return positions, nil
}

// --------------------------------------------------------------------

type section struct {
	key  uint64
	name string
	data []byte
}

// Builder collects named sections and writes them as a pack.
type Builder struct {
	sections []section
	names    map[uint64]string
}

// NewBuilder inits a new builder.
func NewBuilder() *Builder {
	return &Builder{names: make(map[uint64]string)}
}

// AddBytes adds a raw named section.
func (b *Builder) AddBytes(name string, data []byte) error {
	key := SectionKey(name)
	if prev, ok := b.names[key]; ok {
		if prev == name {
			return fmt.Errorf("pack: duplicate section %q", name)
		}
		return fmt.Errorf("pack: section %q collides with %q", name, prev)
	}
	b.names[key] = name
	b.sections = append(b.sections, section{key: key, name: name, data: data})
	return nil
}

// AddPositions adds a named positions section.
func (b *Builder) AddPositions(name string, positions []uint32) error {
	return b.AddBytes(name, AppendPositions(nil, positions))
}

// Len returns the number of collected sections.
func (b *Builder) Len() int { return len(b.sections) }

// Build writes all sections, ordered by key, to w.
func (b *Builder) Build(w io.Writer, o *WriterOptions) error {
	sort.Slice(b.sections, func(i, j int) bool {
		return b.sections[i].key < b.sections[j].key
	})

	pw := NewWriter(w, o)
	for _, s := range b.sections {
		if err := pw.Append(s.key, s.data); err != nil {
			return err
		}
	}
	return pw.Close()
}
