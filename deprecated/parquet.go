package deprecated

// ConvertedType is the legacy annotation of parquet columns, superseded by
// logical types but still the one readers of all versions understand.
type ConvertedType int32

const (
	UTF8            ConvertedType = 0
	Map             ConvertedType = 1
	MapKeyValue     ConvertedType = 2
	List            ConvertedType = 3
	Enum            ConvertedType = 4
	Decimal         ConvertedType = 5
	Date            ConvertedType = 6
	TimeMillis      ConvertedType = 7
	TimeMicros      ConvertedType = 8
	TimestampMillis ConvertedType = 9
	TimestampMicros ConvertedType = 10

	// Unsigned integers, the values are stored in INT32 or INT64 columns and
	// sort in unsigned order.
	Uint8  ConvertedType = 11
	Uint16 ConvertedType = 12
	Uint32 ConvertedType = 13
	Uint64 ConvertedType = 14

	Int8  ConvertedType = 15
	Int16 ConvertedType = 16
	Int32 ConvertedType = 17
	Int64 ConvertedType = 18

	Json     ConvertedType = 19
	Bson     ConvertedType = 20
	Interval ConvertedType = 21
)

// Unsigned returns true if t annotates unsigned integer columns.
func (t ConvertedType) Unsigned() bool {
	return t >= Uint8 && t <= Uint64
}

func (t ConvertedType) String() string {
	switch t {
	case UTF8:
		return "UTF8"
	case Map:
		return "MAP"
	case MapKeyValue:
		return "MAP_KEY_VALUE"
	case List:
		return "LIST"
	case Enum:
		return "ENUM"
	case Decimal:
		return "DECIMAL"
	case Date:
		return "DATE"
	case TimeMillis:
		return "TIME_MILLIS"
	case TimeMicros:
		return "TIME_MICROS"
	case TimestampMillis:
		return "TIMESTAMP_MILLIS"
	case TimestampMicros:
		return "TIMESTAMP_MICROS"
	case Uint8:
		return "UINT_8"
	case Uint16:
		return "UINT_16"
	case Uint32:
		return "UINT_32"
	case Uint64:
		return "UINT_64"
	case Int8:
		return "INT_8"
	case Int16:
		return "INT_16"
	case Int32:
		return "INT_32"
	case Int64:
		return "INT_64"
	case Json:
		return "JSON"
	case Bson:
		return "BSON"
	case Interval:
		return "INTERVAL"
	default:
		return "ConvertedType(?)"
	}
}
