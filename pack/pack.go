package pack

import (
	"errors"

	farm "github.com/dgryski/go-farm"
)

var magic = []byte{105, 110, 115, 114, 99, 112, 107, 1}

// footerSize is the length of the index offset plus the magic.
const footerSize = 16

const (
	blockNoCompression     = 0
	blockSnappyCompression = 1
	blockZstdCompression   = 2
	blockLZ4Compression    = 3
)

// ErrNotFound is returned by the reader when a key cannot be found.
var ErrNotFound = errors.New("pack: not found")

var (
	errClosed         = errors.New("pack: is closed")
	errBadMagic       = errors.New("pack: bad magic byte sequence")
	errBadIndex       = errors.New("pack: malformed block index")
	errBadCompression = errors.New("pack: bad compression codec")
	errBadPositions   = errors.New("pack: malformed positions section")
	errShortBlock     = errors.New("pack: truncated block")
)

type blockInfo struct {
	MaxKey uint64 // maximum key in the block
	Offset int64  // block offset position
}

// SectionKey returns the key under which a named section is stored.
func SectionKey(name string) uint64 {
	return farm.Fingerprint64([]byte(name))
}

// --------------------------------------------------------------------

// Compression is the compression codec
type Compression byte

func (c Compression) isValid() bool {
	return c >= SnappyCompression && c < unknownCompression
}

// Supported compression codecs
const (
	SnappyCompression Compression = iota
	NoCompression
	ZstdCompression
	LZ4Compression
	unknownCompression
)

func (c Compression) String() string {
	switch c {
	case SnappyCompression:
		return "snappy"
	case NoCompression:
		return "none"
	case ZstdCompression:
		return "zstd"
	case LZ4Compression:
		return "lz4"
	}
	return "unknown"
}
