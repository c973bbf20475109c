package parquet

import (
	"bytes"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/segmentio/parquet-page/deprecated"
	"github.com/segmentio/parquet-page/encoding/plain"
	"github.com/segmentio/parquet-page/format"
)

// primitive is the closed set of fixed-width scalar types that can be written
// to data pages.
type primitive interface {
	int32 | int64 | uint32 | uint64 | float32 | float64 | deprecated.Int96 | uuid.UUID
}

type number interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

func compare[T number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

func ordered[T primitive](T) bool { return true }

func orderedFloat32(v float32) bool { return !math.IsNaN(float64(v)) }

func orderedFloat64(v float64) bool { return !math.IsNaN(v) }

func compareUUID(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) }

func appendUUID(b []byte, v uuid.UUID) []byte { return plain.AppendFixedLenByteArray(b, v[:]) }

// class describes how values of a primitive type are laid out in pages and
// how they are ordered for statistics.
type class[T primitive] struct {
	name    string
	kind    format.Type
	size    int
	// convertedType is the annotation that descriptors of the class must
	// carry, nil for classes of signed values.
	convertedType *deprecated.ConvertedType
	plain   func([]byte, T) []byte
	compare func(T, T) int
	// ordered reports false for values that have no position in the total
	// order of the type, those are left out of min/max statistics.
	ordered func(T) bool
}

var int32Class = class[int32]{
	name:    "INT32",
	kind:    format.Int32,
	size:    4,
	plain:   plain.AppendInt32,
	compare: compare[int32],
	ordered: ordered[int32],
}

var int64Class = class[int64]{
	name:    "INT64",
	kind:    format.Int64,
	size:    8,
	plain:   plain.AppendInt64,
	compare: compare[int64],
	ordered: ordered[int64],
}

var uint32Class = class[uint32]{
	name:          "INT32(UINT_32)",
	kind:          format.Int32,
	size:          4,
	convertedType: &unsignedConvertedTypes[0],
	plain:         plain.AppendUint32,
	compare:       compare[uint32],
	ordered:       ordered[uint32],
}

var uint64Class = class[uint64]{
	name:          "INT64(UINT_64)",
	kind:          format.Int64,
	size:          8,
	convertedType: &unsignedConvertedTypes[1],
	plain:         plain.AppendUint64,
	compare:       compare[uint64],
	ordered:       ordered[uint64],
}

var float32Class = class[float32]{
	name:    "FLOAT",
	kind:    format.Float,
	size:    4,
	plain:   plain.AppendFloat,
	compare: compare[float32],
	ordered: orderedFloat32,
}

var float64Class = class[float64]{
	name:    "DOUBLE",
	kind:    format.Double,
	size:    8,
	plain:   plain.AppendDouble,
	compare: compare[float64],
	ordered: orderedFloat64,
}

var int96Class = class[deprecated.Int96]{
	name:    "INT96",
	kind:    format.Int96,
	size:    12,
	plain:   plain.AppendInt96,
	compare: deprecated.Int96.Compare,
	ordered: ordered[deprecated.Int96],
}

var uuidClass = class[uuid.UUID]{
	name:    "FIXED_LEN_BYTE_ARRAY(16)",
	kind:    format.FixedLenByteArray,
	size:    16,
	plain:   appendUUID,
	compare: compareUUID,
	ordered: ordered[uuid.UUID],
}

func classOf[T primitive]() *class[T] {
	var z T
	var c any
	switch any(z).(type) {
	case int32:
		c = &int32Class
	case int64:
		c = &int64Class
	case uint32:
		c = &uint32Class
	case uint64:
		c = &uint64Class
	case float32:
		c = &float32Class
	case float64:
		c = &float64Class
	case deprecated.Int96:
		c = &int96Class
	case uuid.UUID:
		c = &uuidClass
	}
	return c.(*class[T])
}

func (c *class[T]) String() string { return c.name }

// check verifies that columns described by d can hold values of the class.
func (c *class[T]) check(d *ColumnDescriptor) error {
	if d.Type != c.kind {
		return fmt.Errorf("cannot write %s values to column %s of type %s", c, d, d.Type)
	}
	if c.kind == format.FixedLenByteArray && int(d.TypeLength) != c.size {
		return fmt.Errorf("cannot write %s values to column %s of length %d", c, d, d.TypeLength)
	}
	switch {
	case c.convertedType != nil:
		if d.ConvertedType == nil || *d.ConvertedType != *c.convertedType {
			return fmt.Errorf("cannot write %s values to column %s without %s annotation", c, d, c.convertedType)
		}
	case d.Unsigned():
		return fmt.Errorf("cannot write %s values to unsigned column %s of type %s", c, d, d.ConvertedType)
	}
	return nil
}
