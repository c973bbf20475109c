package parquet

import (
	"fmt"

	"github.com/segmentio/encoding/thrift"
	"github.com/segmentio/parquet-page/format"
)

// Statistics holds the page statistics computed over a column.
//
// MinValue and MaxValue are nil if and only if the column has no present
// values. DistinctCount is never computed and always nil.
type Statistics[T primitive] struct {
	NullCount     *int64
	DistinctCount *int64
	MinValue      *T
	MaxValue      *T
}

// ComputeStatistics scans the column and returns its null count and the
// bounds of its present values.
//
// Values without a natural order (floating point NaN) are skipped when
// searching for the bounds, unless no other value is present, in which case
// the first of them is both the min and the max. When multiple values compare
// equal the first one is retained.
func ComputeStatistics[T primitive](column []Nullable[T]) Statistics[T] {
	class := classOf[T]()
	nullCount := int64(0)

	var min, max, unordered *T

	for i := range column {
		if !column[i].Valid {
			nullCount++
			continue
		}

		value := column[i].Value
		switch {
		case !class.ordered(value):
			if unordered == nil {
				unordered = &value
			}
		case min == nil:
			min, max = &value, &value
		default:
			if class.compare(value, *min) < 0 {
				min = &value
			}
			if class.compare(value, *max) > 0 {
				max = &value
			}
		}
	}

	if min == nil {
		min, max = unordered, unordered
	}

	return Statistics[T]{
		NullCount: &nullCount,
		MinValue:  min,
		MaxValue:  max,
	}
}

// Format returns the representation of s in the parquet format, with bounds
// in PLAIN encoding.
func (s *Statistics[T]) Format() format.Statistics {
	class := classOf[T]()
	stats := format.Statistics{
		NullCount:     copyInt64(s.NullCount),
		DistinctCount: copyInt64(s.DistinctCount),
	}
	if s.MinValue != nil {
		stats.MinValue = class.plain(nil, *s.MinValue)
		stats.Min = stats.MinValue // deprecated
	}
	if s.MaxValue != nil {
		stats.MaxValue = class.plain(nil, *s.MaxValue)
		stats.Max = stats.MaxValue // deprecated
	}
	return stats
}

// MarshalBinary returns the thrift compact serialization of the statistics.
func (s *Statistics[T]) MarshalBinary() ([]byte, error) {
	stats := s.Format()
	b, err := thrift.Marshal(new(thrift.CompactProtocol), &stats)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStatistics, classOf[T](), err)
	}
	return b, nil
}

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
