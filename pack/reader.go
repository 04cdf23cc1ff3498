package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"
)

// Reader instances can look up and iterate across entries in a pack.
// A Reader is safe for concurrent use.
type Reader struct {
	r io.ReaderAt

	index     []blockInfo
	maxOffset int64
}

// NewReader opens a pack of size bytes. The footer and the block index are
// validated up front, a corrupt pack fails here and never on lookup.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	indexOffset, err := readFooter(r, size)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, int(size-footerSize-indexOffset))
	if err := readFull(r, raw, indexOffset); err != nil {
		return nil, err
	}

	index, err := decodeIndex(raw, indexOffset)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, index: index, maxOffset: indexOffset}, nil
}

// readFooter checks the magic and returns the offset of the block index.
func readFooter(r io.ReaderAt, size int64) (int64, error) {
	if size < footerSize {
		return 0, errBadMagic
	}

	var footer [footerSize]byte
	if err := readFull(r, footer[:], size-footerSize); err != nil {
		return 0, err
	}
	if !bytes.Equal(footer[8:], magic) {
		return 0, errBadMagic
	}

	off := binary.LittleEndian.Uint64(footer[:8])
	if off > uint64(size-footerSize) {
		return 0, errBadIndex
	}
	return int64(off), nil
}

// decodeIndex decodes the delta encoded (max key, offset) pairs of the block
// index. Block offsets must not pass limit, the end of the data blocks.
func decodeIndex(p []byte, limit int64) ([]blockInfo, error) {
	var index []blockInfo
	var info blockInfo

	for len(p) != 0 {
		dk, n := binary.Uvarint(p)
		if n <= 0 || info.MaxKey+dk < info.MaxKey {
			return nil, errBadIndex
		}
		p = p[n:]

		do, n := binary.Uvarint(p)
		if n <= 0 || do > uint64(limit-info.Offset) {
			return nil, errBadIndex
		}
		p = p[n:]

		info.MaxKey += dk
		info.Offset += int64(do)
		index = append(index, info)
	}
	return index, nil
}

func readFull(r io.ReaderAt, p []byte, off int64) error {
	n, err := r.ReadAt(p, off)
	if n == len(p) {
		return nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// NumBlocks returns the number of stored blocks.
func (r *Reader) NumBlocks() int {
	return len(r.index)
}

// Get retrieves a single value for a key.
// It may return an ErrNotFound error.
func (r *Reader) Get(key uint64) ([]byte, error) {
	bpos := sort.Search(len(r.index), func(i int) bool {
		return r.index[i].MaxKey >= key
	})
	if bpos >= len(r.index) {
		return nil, ErrNotFound
	}

	b, err := r.readBlock(bpos)
	if err != nil {
		return nil, err
	}

	var e blockEntries
	e.block = b
	for e.next() {
		if e.key == key {
			return e.val, nil
		} else if e.key > key {
			break
		}
	}
	if e.err != nil {
		return nil, e.err
	}
	return nil, ErrNotFound
}

// Section retrieves a named section.
// It may return an ErrNotFound error.
func (r *Reader) Section(name string) ([]byte, error) {
	return r.Get(SectionKey(name))
}

// Positions retrieves and decodes a named positions section.
func (r *Reader) Positions(name string) ([]uint32, error) {
	raw, err := r.Section(name)
	if err != nil {
		return nil, err
	}
	return DecodePositions(raw)
}

// Iterator returns an iterator over all entries, in key order.
func (r *Reader) Iterator() *Iterator {
	return &Iterator{r: r, bpos: -1}
}

func (r *Reader) readBlock(bpos int) ([]byte, error) {
	lo, hi := r.index[bpos].Offset, r.maxOffset
	if next := bpos + 1; next < len(r.index) {
		hi = r.index[next].Offset
	}
	if hi < lo {
		return nil, errBadIndex
	}

	raw := make([]byte, int(hi-lo))
	if err := readFull(r.r, raw, lo); err != nil {
		return nil, err
	}
	return decodeBlock(raw)
}

// --------------------------------------------------------------------

// blockEntries walks the entries of a single plain block.
type blockEntries struct {
	block []byte
	read  int

	key uint64
	val []byte
	err error
}

func (e *blockEntries) next() bool {
	if e.err != nil || e.read >= len(e.block) {
		return false
	}

	inc, n := binary.Uvarint(e.block[e.read:])
	if n <= 0 {
		e.err = errShortBlock
		return false
	}
	e.read += n
	if e.read == n { // first key is stored in full
		e.key = inc
	} else {
		e.key += inc
	}

	vln, n := binary.Uvarint(e.block[e.read:])
	if n <= 0 || e.read+n+int(vln) > len(e.block) {
		e.err = errShortBlock
		return false
	}
	e.read += n
	e.val = e.block[e.read : e.read+int(vln)]
	e.read += int(vln)
	return true
}

// --------------------------------------------------------------------

// Iterator can (forward-) iterate over entries across block boundaries.
type Iterator struct {
	r    *Reader
	bpos int
	e    blockEntries
	err  error
}

// Key returns the key of the current entry.
func (i *Iterator) Key() uint64 { return i.e.key }

// Value returns the value of the current entry. Values of compressed blocks
// are only valid until the iterator moves to the next block.
func (i *Iterator) Value() []byte { return i.e.val }

// Next advances the cursor to the next entry and returns true if successful.
func (i *Iterator) Next() bool {
	for i.err == nil {
		if i.bpos >= 0 && i.e.next() {
			return true
		}
		if i.e.err != nil {
			i.err = i.e.err
			return false
		}

		if i.bpos+1 >= i.r.NumBlocks() {
			return false
		}
		i.bpos++

		block, err := i.r.readBlock(i.bpos)
		if err != nil {
			i.err = err
			return false
		}
		i.e = blockEntries{block: block}
	}
	return false
}

// Err exposes iterator errors, if any.
func (i *Iterator) Err() error {
	return i.err
}
