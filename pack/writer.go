package pack

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriterOptions define writer specific options.
type WriterOptions struct {
	// BlockSize is the minimum uncompressed size in bytes of each pack block.
	// Default: 16KiB.
	BlockSize int

	// The compression codec to use.
	// Default: SnappyCompression.
	Compression Compression
}

func (o *WriterOptions) norm() *WriterOptions {
	var oo WriterOptions
	if o != nil {
		oo = *o
	}

	if oo.BlockSize < 1 {
		oo.BlockSize = 1 << 14
	}
	if !oo.Compression.isValid() {
		oo.Compression = SnappyCompression
	}

	return &oo
}

// Writer writes a pack. Entries are appended in strictly increasing key
// order and grouped into blocks; Close writes the block index and footer.
type Writer struct {
	w io.Writer
	o *WriterOptions

	offset int64       // bytes written so far
	index  []blockInfo // flushed blocks

	plain  []byte // entries of the pending block
	packed []byte // encoded block scratch

	last   uint64 // last appended key
	count  int    // number of appended entries
	closed bool
}

// NewWriter wraps a writer and returns a Writer.
func NewWriter(w io.Writer, o *WriterOptions) *Writer {
	return &Writer{w: w, o: o.norm()}
}

// Append appends an entry to the pack. Keys must be strictly increasing.
// The first key of a block is stored in full, the others as deltas.
func (w *Writer) Append(key uint64, value []byte) error {
	if w.closed {
		return errClosed
	}
	if w.count != 0 && key <= w.last {
		return fmt.Errorf("pack: attempted an out-of-order append, %v must be > %v", key, w.last)
	}

	if len(w.plain) != 0 && len(w.plain)+len(value)+2*binary.MaxVarintLen64 > w.o.BlockSize {
		if err := w.flush(); err != nil {
			return err
		}
	}

	delta := key
	if len(w.plain) != 0 {
		delta -= w.last
	}
	w.plain = binary.AppendUvarint(w.plain, delta)
	w.plain = binary.AppendUvarint(w.plain, uint64(len(value)))
	w.plain = append(w.plain, value...)

	w.last = key
	w.count++
	return nil
}

// Close flushes the pending block and writes the block index and footer.
// It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return errClosed
	}
	if err := w.flush(); err != nil {
		return err
	}

	w.closed = true
	return w.write(w.trailer())
}

// trailer encodes the block index, then the footer pointing at it.
func (w *Writer) trailer() []byte {
	buf := make([]byte, 0, len(w.index)*2*binary.MaxVarintLen64+footerSize)

	var prev blockInfo
	for _, b := range w.index {
		buf = binary.AppendUvarint(buf, b.MaxKey-prev.MaxKey)
		buf = binary.AppendUvarint(buf, uint64(b.Offset-prev.Offset))
		prev = b
	}

	buf = binary.LittleEndian.AppendUint64(buf, uint64(w.offset))
	return append(buf, magic...)
}

func (w *Writer) flush() error {
	if len(w.plain) == 0 {
		return nil
	}

	block, err := encodeBlock(w.packed[:0], w.plain, w.o.Compression)
	if err != nil {
		return err
	}
	w.packed = block
	w.plain = w.plain[:0]

	w.index = append(w.index, blockInfo{MaxKey: w.last, Offset: w.offset})
	return w.write(block)
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.offset += int64(n)
	return err
}
