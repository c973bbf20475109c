package parquet

import "errors"

var (
	// ErrEncoding is returned when the definition levels or the values of a
	// page cannot be encoded, including when the column descriptor does not
	// match the type of values.
	ErrEncoding = errors.New("parquet page encoding error")

	// ErrCompression is returned when the compression codec of a page is not
	// supported, or when compressing the page failed.
	ErrCompression = errors.New("parquet page compression error")

	// ErrStatistics is returned when the statistics of a page could not be
	// serialized.
	ErrStatistics = errors.New("parquet page statistics error")
)
