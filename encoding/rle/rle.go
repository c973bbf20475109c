// Package rle implements the hybrid RLE/Bit-Packed encoding employed in
// repetition and definition levels, and boolean values.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#run-length-encoding--bit-packing-hybrid-rle--3
package rle

import (
	"encoding/binary"
	"fmt"

	"github.com/segmentio/parquet-page/encoding"
	"github.com/segmentio/parquet-page/format"
	"github.com/segmentio/parquet-page/internal/bits"
)

type Encoding struct {
	BitWidth int
}

func (e *Encoding) String() string {
	return "RLE"
}

func (e *Encoding) Encoding() format.Encoding {
	return format.RLE
}

// EncodeLevels appends the hybrid encoding of src to dst, packing each level
// on e.BitWidth bits.
func (e *Encoding) EncodeLevels(dst []byte, src []uint8) ([]byte, error) {
	b, err := encodeBytes(dst, src, uint(e.BitWidth))
	if err != nil {
		err = encoding.Error(e, err)
	}
	return b, err
}

// encodeBytes works on groups of 8 values: runs of identical groups become a
// single RLE run, sequences of mixed groups are bit-packed together, and the
// trailing values that do not fill a group are written as RLE runs.
func encodeBytes(dst, src []byte, bitWidth uint) ([]byte, error) {
	if bitWidth == 0 || bitWidth > 8 {
		return dst, errEncodeInvalidBitWidth("INT8", bitWidth)
	}
	if maxLen := maxLenBytes(src); maxLen > bitWidth {
		return dst, errEncodeValueTooLarge(maxLen, bitWidth)
	}

	numGroups := len(src) / 8

	for i := 0; i < numGroups; {
		j := i + 1

		if isRepeatedGroup(src, i) {
			for j < numGroups && isRepeatedGroup(src, j) && src[8*j] == src[8*i] {
				j++
			}
			dst = appendRunLengthBytes(dst, 8*(j-i), src[8*i])
		} else {
			for j < numGroups && !isRepeatedGroup(src, j) {
				j++
			}
			dst = appendBitPackedBytes(dst, src[8*i:8*j], bitWidth)
		}

		i = j
	}

	for i := 8 * numGroups; i < len(src); {
		j := i + 1
		for j < len(src) && src[j] == src[i] {
			j++
		}
		dst = appendRunLengthBytes(dst, j-i, src[i])
		i = j
	}

	return dst, nil
}

func isRepeatedGroup(src []byte, group int) bool {
	word := binary.LittleEndian.Uint64(src[8*group:])
	return word == broadcast8x1(word)
}

func broadcast8x1(v uint64) uint64 {
	return (v & 0xFF) * 0x0101010101010101
}

func appendRunLengthBytes(dst []byte, count int, value byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(count)<<1)
	// Values are stored on ceil(bitWidth/8) bytes, which is always one byte
	// for the bit widths supported by encodeBytes.
	return append(dst, value)
}

func appendBitPackedBytes(dst, src []byte, bitWidth uint) []byte {
	numGroups := len(src) / 8
	dst = binary.AppendUvarint(dst, uint64(numGroups)<<1|1)

	var buffer [8]byte
	for i := 0; i < len(src); i += 8 {
		word := packGroup(binary.LittleEndian.Uint64(src[i:]), bitWidth)
		binary.LittleEndian.PutUint64(buffer[:], word)
		dst = append(dst, buffer[:bitWidth]...)
	}
	return dst
}

// packGroup packs the 8 bytes of word, taking the low bitWidth bits of each
// byte, into the low 8*bitWidth bits of the returned word. The first value
// lands in the least significant bits.
func packGroup(word uint64, bitWidth uint) uint64 {
	bitMask := uint64(1<<bitWidth) - 1
	return (word & bitMask) |
		(((word >> 8) & bitMask) << (1 * bitWidth)) |
		(((word >> 16) & bitMask) << (2 * bitWidth)) |
		(((word >> 24) & bitMask) << (3 * bitWidth)) |
		(((word >> 32) & bitMask) << (4 * bitWidth)) |
		(((word >> 40) & bitMask) << (5 * bitWidth)) |
		(((word >> 48) & bitMask) << (6 * bitWidth)) |
		(((word >> 56) & bitMask) << (7 * bitWidth))
}

func maxLenBytes(src []byte) uint {
	max := uint(0)
	for _, b := range src {
		if n := uint(bits.Len8(int8(b))); n > max {
			max = n
		}
	}
	return max
}

func errEncodeInvalidBitWidth(typ string, bitWidth uint) error {
	return fmt.Errorf("cannot encode %s with invalid bit-width=%d: %w", typ, bitWidth, encoding.ErrInvalidArgument)
}

func errEncodeValueTooLarge(valueWidth, bitWidth uint) error {
	return fmt.Errorf("cannot encode %d bits value with bit-width=%d: %w", valueWidth, bitWidth, encoding.ErrInvalidArgument)
}
