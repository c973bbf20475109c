package parquet

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/segmentio/encoding/thrift"
	"github.com/segmentio/parquet-page/encoding/rle"
	"github.com/segmentio/parquet-page/format"
	"github.com/segmentio/parquet-page/internal/bits"
	"github.com/segmentio/parquet-page/internal/debug"
	"github.com/segmentio/parquet-page/internal/ioext"
)

// CompressedPage is a data page ready to be appended to a column chunk.
//
// Pages are immutable, the byte slices returned by their methods must not be
// modified by the application.
type CompressedPage struct {
	header           format.DataPageHeader
	data             []byte
	compression      format.CompressionCodec
	uncompressedSize int
	dictionary       *CompressedPage
	descriptor       *ColumnDescriptor
	statistics       []byte
}

// WriteDataPage encodes column into a data page (V1) for the column described
// by descriptor.
//
// The page payload is made of the definition levels of the column, prefixed
// by their 4 bytes little-endian length, followed by the PLAIN encoding of the
// present values. When a compression codec is configured the whole payload is
// compressed.
//
// Errors wrap one of ErrEncoding, ErrCompression or ErrStatistics. No page is
// returned when an error occurs.
func WriteDataPage[T primitive](column []Nullable[T], descriptor *ColumnDescriptor, options ...PageOption) (*CompressedPage, error) {
	config, err := NewPageConfig(options...)
	if err != nil {
		return nil, err
	}
	codec, err := LookupCompressionCodec(config.Compression)
	if err != nil {
		return nil, err
	}

	class := classOf[T]()
	if descriptor == nil {
		return nil, fmt.Errorf("%w: missing column descriptor", ErrEncoding)
	}
	if err := class.check(descriptor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if descriptor.MaxRepetitionLevel != 0 || descriptor.MaxDefinitionLevel > 1 {
		return nil, fmt.Errorf("%w: nested column %s is not supported", ErrEncoding, descriptor)
	}
	if descriptor.MaxDefinitionLevel < 1 {
		return nil, fmt.Errorf("%w: required column %s cannot hold null values", ErrEncoding, descriptor)
	}
	if len(column) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: too many values in page of column %s: %d", ErrEncoding, descriptor, len(column))
	}

	numNulls := countNulls(column)
	buffer := make([]byte, 0, 4+bits.ByteCount(uint(len(column)))+8+class.size*(len(column)-numNulls))

	buffer, err = appendDefinitionLevels(buffer, column, descriptor.MaxDefinitionLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: column %s: %v", ErrEncoding, descriptor, err)
	}
	buffer = appendPlainValues(buffer, column, class)

	header := format.DataPageHeader{
		NumValues:               int32(len(column)),
		Encoding:                format.Plain,
		DefinitionLevelEncoding: format.RLE,
		RepetitionLevelEncoding: format.RLE,
	}

	var statistics []byte
	if config.WriteStatistics {
		stats := ComputeStatistics(column)
		if statistics, err = stats.MarshalBinary(); err != nil {
			return nil, err
		}
		pageStats := stats.Format()
		header.Statistics = &pageStats
	}

	uncompressedSize := len(buffer)
	if codec != nil {
		if buffer, err = codec.Encode(nil, buffer); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCompression, codec, err)
		}
	}

	debug.Format("data page of column %s: %d values, %d nulls, %s, %d bytes (%d uncompressed)",
		descriptor, len(column), numNulls, config.Compression, len(buffer), uncompressedSize)

	return &CompressedPage{
		header:           header,
		data:             buffer,
		compression:      config.Compression,
		uncompressedSize: uncompressedSize,
		descriptor:       descriptor,
		statistics:       statistics,
	}, nil
}

// appendDefinitionLevels appends the definition levels of column to buffer
// with the hybrid RLE/bit-packed encoding, and the 4 bytes length prefix that
// data pages V1 require. Present values are at maxDefinitionLevel, absent ones
// at zero.
func appendDefinitionLevels[T any](buffer []byte, column []Nullable[T], maxDefinitionLevel int8) ([]byte, error) {
	offset := len(buffer)
	buffer = append(buffer, 0, 0, 0, 0)

	levels := make([]byte, len(column))
	for i := range column {
		if column[i].Valid {
			levels[i] = byte(maxDefinitionLevel)
		}
	}

	enc := rle.Encoding{BitWidth: bits.Len8(maxDefinitionLevel)}
	buffer, err := enc.EncodeLevels(buffer, levels)
	if err != nil {
		return buffer[:offset], err
	}

	binary.LittleEndian.PutUint32(buffer[offset:], uint32(len(buffer)-(offset+4)))
	return buffer, nil
}

func appendPlainValues[T primitive](buffer []byte, column []Nullable[T], c *class[T]) []byte {
	for i := range column {
		if column[i].Valid {
			buffer = c.plain(buffer, column[i].Value)
		}
	}
	return buffer
}

// Header returns the data page header.
func (p *CompressedPage) Header() format.DataPageHeader {
	header := p.header
	if header.Statistics != nil {
		stats := *header.Statistics
		header.Statistics = &stats
	}
	return header
}

// PageHeader returns the full header written before the page payload in column
// chunks. The checksum covers the payload as stored, after compression.
func (p *CompressedPage) PageHeader() format.PageHeader {
	header := p.Header()
	return format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(p.uncompressedSize),
		CompressedPageSize:   int32(len(p.data)),
		CRC:                  int32(crc32.ChecksumIEEE(p.data)),
		DataPageHeader:       &header,
	}
}

// Data returns the page payload.
func (p *CompressedPage) Data() []byte { return p.data }

// Compression returns the codec that the payload was compressed with.
func (p *CompressedPage) Compression() format.CompressionCodec { return p.compression }

// UncompressedSize returns the size of the payload before compression.
func (p *CompressedPage) UncompressedSize() int { return p.uncompressedSize }

// Dictionary returns the dictionary page that the page refers to. Pages of
// PLAIN encoded values have none and the method always returns nil.
func (p *CompressedPage) Dictionary() *CompressedPage { return p.dictionary }

// Descriptor returns the descriptor of the column that the page belongs to.
func (p *CompressedPage) Descriptor() *ColumnDescriptor { return p.descriptor }

// NumValues returns the number of values in the page, nulls included.
func (p *CompressedPage) NumValues() int { return int(p.header.NumValues) }

// Statistics returns the thrift compact serialization of the page statistics,
// or nil if statistics were not written.
func (p *CompressedPage) Statistics() []byte { return p.statistics }

// WriteTo writes the page header followed by the payload to w.
func (p *CompressedPage) WriteTo(w io.Writer) (int64, error) {
	header := p.PageHeader()
	b, err := thrift.Marshal(new(thrift.CompactProtocol), &header)
	if err != nil {
		return 0, fmt.Errorf("writing header of data page for column %s: %w", p.descriptor, err)
	}
	cw := ioext.NewWriter(w)
	cw.Write(b)
	cw.Write(p.data)
	return cw.Offset(), cw.Err()
}
