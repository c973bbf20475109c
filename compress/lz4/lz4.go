// Package lz4 implements the LZ4_RAW and LZ4 parquet compression codecs.
//
// LZ4_RAW pages hold a single lz4 block. LZ4 pages use the framing of the
// Hadoop codec, which prefixes each block with its decompressed and compressed
// sizes.
package lz4

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
	"github.com/segmentio/parquet-page/format"
)

// The lz4 block format cannot expand data more than 255 times, which bounds
// the size of the buffers allocated while decoding.
const maxExpansion = 255

type Codec struct{}

func (c *Codec) String() string {
	return "LZ4_RAW"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Lz4Raw
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return encodeBlock(dst[:0], src)
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return decodeBlock(dst[:0], src)
}

// HadoopCodec implements the deprecated LZ4 codec.
type HadoopCodec struct{}

func (c *HadoopCodec) String() string {
	return "LZ4"
}

func (c *HadoopCodec) CompressionCodec() format.CompressionCodec {
	return format.Lz4
}

func (c *HadoopCodec) Encode(dst, src []byte) ([]byte, error) {
	dst = append(dst[:0], 0, 0, 0, 0, 0, 0, 0, 0)
	dst, err := encodeBlock(dst, src)
	if err != nil {
		return dst, err
	}
	binary.BigEndian.PutUint32(dst[0:], uint32(len(src)))
	binary.BigEndian.PutUint32(dst[4:], uint32(len(dst)-8))
	return dst, nil
}

func (c *HadoopCodec) Decode(dst, src []byte) ([]byte, error) {
	dst = dst[:0]

	for len(src) > 0 {
		if len(src) < 8 {
			return dst, fmt.Errorf("lz4: truncated block header of %d bytes", len(src))
		}
		decompressedSize := int(binary.BigEndian.Uint32(src[0:]))
		compressedSize := int(binary.BigEndian.Uint32(src[4:]))
		src = src[8:]

		if compressedSize > len(src) {
			return dst, fmt.Errorf("lz4: block of %d bytes is truncated to %d bytes", compressedSize, len(src))
		}

		if decompressedSize == 0 {
			src = src[compressedSize:]
			continue
		}

		offset := len(dst)
		dst = grow(dst, decompressedSize)
		n, err := lz4.UncompressBlock(src[:compressedSize], dst[offset:])
		if err != nil {
			return dst[:offset], fmt.Errorf("lz4: %w", err)
		}
		if n != decompressedSize {
			return dst[:offset+n], fmt.Errorf("lz4: decompressed %d bytes but the block header declared %d", n, decompressedSize)
		}
		src = src[compressedSize:]
	}

	return dst, nil
}

func encodeBlock(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		// An empty block is a single token with no literals and no match.
		return append(dst, 0), nil
	}
	offset := len(dst)
	dst = grow(dst, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst[offset:], nil)
	if err != nil {
		return dst[:offset], fmt.Errorf("lz4: %w", err)
	}
	return dst[:offset+n], nil
}

func decodeBlock(dst, src []byte) ([]byte, error) {
	if len(src) <= 1 {
		return dst, nil
	}

	offset := len(dst)
	size := 4 * len(src)
	limit := maxExpansion * len(src)

	for {
		dst = grow(dst[:offset], size)
		n, err := lz4.UncompressBlock(src, dst[offset:])
		if err == nil {
			return dst[:offset+n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || size >= limit {
			return dst[:offset], fmt.Errorf("lz4: %w", err)
		}
		if size *= 2; size > limit {
			size = limit
		}
	}
}

// grow extends b by n bytes, reallocating only when the capacity is too small.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) < n {
		c := make([]byte, len(b), len(b)+n)
		copy(c, b)
		b = c
	}
	return b[:len(b)+n]
}
