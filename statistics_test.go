package parquet_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/thrift"
	parquet "github.com/segmentio/parquet-page"
	"github.com/segmentio/parquet-page/deprecated"
	"github.com/segmentio/parquet-page/format"
	"github.com/segmentio/parquet-page/internal/quick"
)

func TestComputeStatistics(t *testing.T) {
	tests := []struct {
		scenario  string
		column    []parquet.Nullable[int32]
		nullCount int64
		min       *int32
		max       *int32
	}{
		{
			scenario: "empty",
		},

		{
			scenario:  "all nulls",
			column:    []parquet.Nullable[int32]{parquet.Null[int32](), parquet.Null[int32]()},
			nullCount: 2,
		},

		{
			scenario:  "single value",
			column:    []parquet.Nullable[int32]{parquet.Null[int32](), parquet.Some[int32](42)},
			nullCount: 1,
			min:       int32Ptr(42),
			max:       int32Ptr(42),
		},

		{
			scenario:  "negative values",
			column:    []parquet.Nullable[int32]{parquet.Some[int32](-1), parquet.Some[int32](math.MinInt32), parquet.Null[int32](), parquet.Some[int32](7)},
			nullCount: 1,
			min:       int32Ptr(math.MinInt32),
			max:       int32Ptr(7),
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			stats := parquet.ComputeStatistics(test.column)

			if stats.NullCount == nil || *stats.NullCount != test.nullCount {
				t.Errorf("wrong null count: want=%d got=%v", test.nullCount, stats.NullCount)
			}
			if stats.DistinctCount != nil {
				t.Errorf("unexpected distinct count: %d", *stats.DistinctCount)
			}
			assertValuePtrEqual(t, "min", test.min, stats.MinValue)
			assertValuePtrEqual(t, "max", test.max, stats.MaxValue)
		})
	}
}

func TestComputeStatisticsExtremes(t *testing.T) {
	err := quick.Check(func(values []int64) bool {
		column := make([]parquet.Nullable[int64], len(values))
		for i, v := range values {
			column[i] = parquet.Some(v)
		}
		stats := parquet.ComputeStatistics(column)

		if len(values) == 0 {
			return stats.MinValue == nil && stats.MaxValue == nil
		}

		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if *stats.MinValue != min || *stats.MaxValue != max {
			t.Errorf("wrong bounds: want=[%d,%d] got=[%d,%d]", min, max, *stats.MinValue, *stats.MaxValue)
			return false
		}
		return true
	})
	if err != nil {
		t.Error(err)
	}
}

func TestComputeStatisticsNaN(t *testing.T) {
	nan1 := math.Float64frombits(0x7FF8000000000001)
	nan2 := math.Float64frombits(0x7FF8000000000002)

	t.Run("NaN values are skipped", func(t *testing.T) {
		stats := parquet.ComputeStatistics([]parquet.Nullable[float64]{
			parquet.Some(nan1),
			parquet.Some(2.0),
			parquet.Some(nan2),
			parquet.Some(-1.0),
		})
		if *stats.MinValue != -1.0 || *stats.MaxValue != 2.0 {
			t.Errorf("wrong bounds: [%g,%g]", *stats.MinValue, *stats.MaxValue)
		}
	})

	t.Run("first NaN is retained when there are no other values", func(t *testing.T) {
		stats := parquet.ComputeStatistics([]parquet.Nullable[float64]{
			parquet.Null[float64](),
			parquet.Some(nan1),
			parquet.Some(nan2),
		})
		if stats.MinValue == nil || stats.MaxValue == nil {
			t.Fatal("missing bounds")
		}
		if math.Float64bits(*stats.MinValue) != math.Float64bits(nan1) {
			t.Errorf("wrong min value: %x", math.Float64bits(*stats.MinValue))
		}
		if math.Float64bits(*stats.MaxValue) != math.Float64bits(nan1) {
			t.Errorf("wrong max value: %x", math.Float64bits(*stats.MaxValue))
		}
	})

	t.Run("float", func(t *testing.T) {
		stats := parquet.ComputeStatistics([]parquet.Nullable[float32]{
			parquet.Some(float32(math.NaN())),
			parquet.Some(float32(0.5)),
		})
		if *stats.MinValue != 0.5 || *stats.MaxValue != 0.5 {
			t.Errorf("wrong bounds: [%g,%g]", *stats.MinValue, *stats.MaxValue)
		}
	})
}

func TestComputeStatisticsTies(t *testing.T) {
	// Positive and negative zeros compare equal, the first one is retained.
	negativeZero := math.Copysign(0, -1)
	stats := parquet.ComputeStatistics([]parquet.Nullable[float64]{
		parquet.Some(negativeZero),
		parquet.Some(0.0),
	})
	if !math.Signbit(*stats.MinValue) || !math.Signbit(*stats.MaxValue) {
		t.Errorf("the first of equal values was not retained: [%g,%g]", *stats.MinValue, *stats.MaxValue)
	}
}

func TestComputeStatisticsUnsigned(t *testing.T) {
	stats := parquet.ComputeStatistics([]parquet.Nullable[uint32]{
		parquet.Some[uint32](math.MaxUint32),
		parquet.Some[uint32](1),
	})
	if *stats.MinValue != 1 || *stats.MaxValue != math.MaxUint32 {
		t.Errorf("wrong bounds: [%d,%d]", *stats.MinValue, *stats.MaxValue)
	}
}

func TestComputeStatisticsInt96(t *testing.T) {
	stats := parquet.ComputeStatistics([]parquet.Nullable[deprecated.Int96]{
		parquet.Some(deprecated.Int64ToInt96(10)),
		parquet.Some(deprecated.Int64ToInt96(-10)),
		parquet.Some(deprecated.Int96{0, 0, 1}),
	})
	if *stats.MinValue != deprecated.Int64ToInt96(-10) {
		t.Errorf("wrong min value: %s", *stats.MinValue)
	}
	if *stats.MaxValue != (deprecated.Int96{0, 0, 1}) {
		t.Errorf("wrong max value: %s", *stats.MaxValue)
	}
}

func TestComputeStatisticsUUID(t *testing.T) {
	low := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := uuid.MustParse("ff000000-0000-0000-0000-000000000000")

	stats := parquet.ComputeStatistics([]parquet.Nullable[uuid.UUID]{
		parquet.Some(high),
		parquet.Null[uuid.UUID](),
		parquet.Some(low),
	})
	if *stats.MinValue != low || *stats.MaxValue != high {
		t.Errorf("wrong bounds: [%s,%s]", *stats.MinValue, *stats.MaxValue)
	}

	f := stats.Format()
	if string(f.MinValue) != string(low[:]) || string(f.MaxValue) != string(high[:]) {
		t.Errorf("wrong serialized bounds: [%x,%x]", f.MinValue, f.MaxValue)
	}
}

func TestStatisticsFormat(t *testing.T) {
	stats := parquet.ComputeStatistics([]parquet.Nullable[int32]{
		parquet.Some[int32](3),
		parquet.Null[int32](),
		parquet.Some[int32](1),
	})

	f := stats.Format()
	if f.NullCount == nil || *f.NullCount != 1 {
		t.Errorf("wrong null count: %v", f.NullCount)
	}
	if string(f.MinValue) != "\x01\x00\x00\x00" || string(f.Min) != string(f.MinValue) {
		t.Errorf("wrong min value: min=%x min_value=%x", f.Min, f.MinValue)
	}
	if string(f.MaxValue) != "\x03\x00\x00\x00" || string(f.Max) != string(f.MaxValue) {
		t.Errorf("wrong max value: max=%x max_value=%x", f.Max, f.MaxValue)
	}

	b, err := stats.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	decoded := format.Statistics{}
	if err := thrift.Unmarshal(new(thrift.CompactProtocol), b, &decoded); err != nil {
		t.Fatal(err)
	}
	if !statisticsEqual(&f, &decoded) {
		t.Errorf("statistics mismatch after serialization:\nwant=%+v\ngot= %+v", f, decoded)
	}
}

func TestStatisticsFormatWithoutValues(t *testing.T) {
	stats := parquet.ComputeStatistics([]parquet.Nullable[int32]{parquet.Null[int32]()})
	f := stats.Format()
	if f.MinValue != nil || f.MaxValue != nil || f.Min != nil || f.Max != nil {
		t.Errorf("bounds must be absent when there are no values: %+v", f)
	}
}

func assertValuePtrEqual[T comparable](t *testing.T, name string, want, got *T) {
	t.Helper()
	switch {
	case want == nil && got == nil:
	case want == nil:
		t.Errorf("unexpected %s value: %v", name, *got)
	case got == nil:
		t.Errorf("missing %s value: want=%v", name, *want)
	case *want != *got:
		t.Errorf("wrong %s value: want=%v got=%v", name, *want, *got)
	}
}

func int32Ptr(v int32) *int32 { return &v }
