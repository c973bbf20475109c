// Package test contains helpers shared by the tests of the module.
package test

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// DecodeHybrid is a reference decoder of the RLE/bit-packed hybrid encoding.
// Each value is returned in one byte. The number of decoded values is checked
// against numValues unless it is negative.
func DecodeHybrid(src []byte, bitWidth uint, numValues int) ([]byte, error) {
	if bitWidth == 0 || bitWidth > 8 {
		return nil, fmt.Errorf("unsupported bit-width=%d", bitWidth)
	}
	dst := make([]byte, 0, max(numValues, 0))

	for len(src) > 0 {
		header, n := binary.Uvarint(src)
		if n <= 0 {
			return dst, fmt.Errorf("invalid run header after %d values", len(dst))
		}
		src = src[n:]

		if (header & 1) == 0 {
			count := int(header >> 1)
			if len(src) < 1 {
				return dst, fmt.Errorf("missing value of run-length run")
			}
			for i := 0; i < count; i++ {
				dst = append(dst, src[0])
			}
			src = src[1:]
		} else {
			numGroups := int(header >> 1)
			size := numGroups * int(bitWidth)
			if len(src) < size {
				return dst, fmt.Errorf("bit-packed run of %d bytes is truncated to %d bytes", size, len(src))
			}
			bitMask := uint64(1<<bitWidth) - 1
			for g := 0; g < numGroups; g++ {
				var buffer [8]byte
				copy(buffer[:], src[g*int(bitWidth):(g+1)*int(bitWidth)])
				word := binary.LittleEndian.Uint64(buffer[:])
				for i := uint(0); i < 8; i++ {
					dst = append(dst, byte((word>>(i*bitWidth))&bitMask))
				}
			}
			src = src[size:]
		}
	}

	if numValues >= 0 && len(dst) != numValues {
		return dst, fmt.Errorf("decoded %d values but %d were encoded", len(dst), numValues)
	}
	return dst, nil
}

// DecodeDefinitionLevels decodes the 4 bytes length-prefixed presence flags
// at the beginning of a data page payload, and returns them with the rest of
// the payload.
func DecodeDefinitionLevels(t testing.TB, data []byte, numValues int) ([]bool, []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4, "page payload is too short")

	length := int(binary.LittleEndian.Uint32(data))
	require.LessOrEqual(t, 4+length, len(data), "definition levels length out of bounds")

	levels, err := DecodeHybrid(data[4:4+length], 1, numValues)
	require.NoError(t, err)

	valid := make([]bool, len(levels))
	for i, level := range levels {
		valid[i] = level != 0
	}
	return valid, data[4+length:]
}
