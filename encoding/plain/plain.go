// Package plain implements the PLAIN parquet encoding.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#plain-plain--0
package plain

import (
	"encoding/binary"
	"math"

	"github.com/segmentio/parquet-page/deprecated"
)

// AppendInt32 appends the PLAIN representation of v to b and returns it.
func AppendInt32(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

// AppendInt64 appends the PLAIN representation of v to b and returns it.
func AppendInt64(b []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(v))
}

// AppendUint32 appends the PLAIN representation of v to b. Unsigned values use
// the INT32 physical type and share its representation.
func AppendUint32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// AppendUint64 appends the PLAIN representation of v to b. Unsigned values use
// the INT64 physical type and share its representation.
func AppendUint64(b []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, v)
}

// AppendInt96 appends the 12 bytes PLAIN representation of v to b, least
// significant word first.
func AppendInt96(b []byte, v deprecated.Int96) []byte {
	b = binary.LittleEndian.AppendUint32(b, v[0])
	b = binary.LittleEndian.AppendUint32(b, v[1])
	b = binary.LittleEndian.AppendUint32(b, v[2])
	return b
}

func AppendFloat(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

func AppendDouble(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}

// AppendFixedLenByteArray appends v to b. Fixed length byte arrays have no
// length prefix, the size is carried by the column type.
func AppendFixedLenByteArray(b []byte, v []byte) []byte {
	return append(b, v...)
}
