package parquet

import (
	"fmt"
	"strings"

	"github.com/segmentio/parquet-page/deprecated"
	"github.com/segmentio/parquet-page/format"
)

// ColumnDescriptor carries the schema information of the column that pages
// are written for. Pages keep a reference to their descriptor, which must not
// be modified after pages were created from it.
type ColumnDescriptor struct {
	// Path of the column in the schema, from the root.
	Path []string
	// Physical type of the column values.
	Type format.Type
	// Size of the values of FIXED_LEN_BYTE_ARRAY columns, zero otherwise.
	TypeLength int32
	// Annotation of the column values, nil if the column has none. Unsigned
	// integer columns must carry UINT_32 or UINT_64 so readers compare their
	// values and statistics in unsigned order.
	ConvertedType *deprecated.ConvertedType

	MaxDefinitionLevel int8
	MaxRepetitionLevel int8
}

func (d *ColumnDescriptor) String() string {
	if d == nil || len(d.Path) == 0 {
		return "<root>"
	}
	return strings.Join(d.Path, ".")
}

// Optional returns a descriptor for an optional leaf column of the given type
// at path.
func Optional(typ format.Type, path ...string) *ColumnDescriptor {
	return &ColumnDescriptor{
		Path:               path,
		Type:               typ,
		MaxDefinitionLevel: 1,
	}
}

// Unsigned returns true if d annotates values as unsigned integers.
func (d *ColumnDescriptor) Unsigned() bool {
	return d.ConvertedType != nil && d.ConvertedType.Unsigned()
}

var unsignedConvertedTypes = [...]deprecated.ConvertedType{
	deprecated.Uint32,
	deprecated.Uint64,
}

// Uint returns a descriptor for an optional leaf column of unsigned integers
// of the given bit width, which must be 32 or 64.
func Uint(bitWidth int, path ...string) *ColumnDescriptor {
	var d *ColumnDescriptor
	switch bitWidth {
	case 32:
		d = Optional(format.Int32, path...)
		d.ConvertedType = &unsignedConvertedTypes[0]
	case 64:
		d = Optional(format.Int64, path...)
		d.ConvertedType = &unsignedConvertedTypes[1]
	default:
		panic(fmt.Sprintf("cannot create a %d bits unsigned column descriptor", bitWidth))
	}
	return d
}

// FixedLenByteArray returns a descriptor for an optional FIXED_LEN_BYTE_ARRAY
// leaf column of values of the given size.
func FixedLenByteArray(size int, path ...string) *ColumnDescriptor {
	d := Optional(format.FixedLenByteArray, path...)
	d.TypeLength = int32(size)
	return d
}
