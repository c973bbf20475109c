package parquet

import (
	"fmt"

	"github.com/segmentio/parquet-page/compress"
	"github.com/segmentio/parquet-page/compress/brotli"
	"github.com/segmentio/parquet-page/compress/gzip"
	"github.com/segmentio/parquet-page/compress/lz4"
	"github.com/segmentio/parquet-page/compress/snappy"
	"github.com/segmentio/parquet-page/compress/zstd"
	"github.com/segmentio/parquet-page/format"
)

var (
	// Table of compression codecs indexed by their code in the parquet format.
	// UNCOMPRESSED and LZO have no entry.
	compressionCodecs = [...]compress.Codec{
		format.Snappy: new(snappy.Codec),
		format.Gzip:   new(gzip.Codec),
		format.Brotli: new(brotli.Codec),
		format.Lz4:    new(lz4.HadoopCodec),
		format.Zstd:   new(zstd.Codec),
		format.Lz4Raw: new(lz4.Codec),
	}
)

// LookupCompressionCodec returns the codec that compresses pages for the given
// code of the parquet format.
//
// The function returns a nil codec and no error for UNCOMPRESSED, page
// payloads are then stored verbatim. Codes that are not supported produce an
// error wrapping ErrCompression.
func LookupCompressionCodec(codec format.CompressionCodec) (compress.Codec, error) {
	if codec == format.Uncompressed {
		return nil, nil
	}
	if codec >= 0 && int(codec) < len(compressionCodecs) {
		if c := compressionCodecs[codec]; c != nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: unsupported compression codec: %s (%d)", ErrCompression, codec, int32(codec))
}

// LookupCompressionCodecByName returns the parquet code of the compression
// codec named name, as accepted by format.ParseCompressionCodec.
//
// Unknown names and codecs that cannot compress pages produce an error
// wrapping ErrCompression.
func LookupCompressionCodecByName(name string) (format.CompressionCodec, error) {
	codec, err := format.ParseCompressionCodec(name)
	if err != nil {
		return codec, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	if _, err := LookupCompressionCodec(codec); err != nil {
		return codec, err
	}
	return codec, nil
}
