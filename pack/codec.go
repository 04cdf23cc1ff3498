package pack

import (
	"encoding/binary"
	"sync"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// encodeBlock compresses plain with c and appends the codec tag. Compressed
// output is only kept when it saves at least a quarter of the plain size.
func encodeBlock(dst, plain []byte, c Compression) ([]byte, error) {
	var (
		packed []byte
		tag    byte
	)

	switch c {
	case SnappyCompression:
		packed, tag = snappy.Encode(nil, plain), blockSnappyCompression
	case ZstdCompression:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		packed = binary.AppendUvarint(nil, uint64(len(plain)))
		packed = enc.EncodeAll(plain, packed)
		zstdEncoderPool.Put(enc)
		tag = blockZstdCompression
	case LZ4Compression:
		buf := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(plain)))
		n := binary.PutUvarint(buf, uint64(len(plain)))
		m, err := lz4.CompressBlock(plain, buf[n:], nil)
		if err != nil {
			return nil, err
		}
		if m != 0 { // zero means incompressible
			packed, tag = buf[:n+m], blockLZ4Compression
		}
	}

	if packed != nil && len(packed) < len(plain)-len(plain)/4 {
		dst = append(dst, packed...)
		return append(dst, tag), nil
	}
	dst = append(dst, plain...)
	return append(dst, blockNoCompression), nil
}

// decodeBlock strips the codec tag from raw and returns the plain block.
func decodeBlock(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, errShortBlock
	}

	pos := len(raw) - 1
	body := raw[:pos]

	switch raw[pos] {
	case blockNoCompression:
		return body, nil
	case blockSnappyCompression:
		return snappy.Decode(nil, body)
	case blockZstdCompression:
		sz, n := binary.Uvarint(body)
		if n <= 0 {
			return nil, errShortBlock
		}
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		plain, err := dec.DecodeAll(body[n:], make([]byte, 0, int(sz)))
		if err != nil {
			return nil, err
		}
		if uint64(len(plain)) != sz {
			return nil, errShortBlock
		}
		return plain, nil
	case blockLZ4Compression:
		sz, n := binary.Uvarint(body)
		if n <= 0 {
			return nil, errShortBlock
		}
		plain := make([]byte, int(sz))
		m, err := lz4.UncompressBlock(body[n:], plain)
		if err != nil {
			return nil, err
		}
		if m != len(plain) {
			return nil, errShortBlock
		}
		return plain, nil
	}
	return nil, errBadCompression
}
