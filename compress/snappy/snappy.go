// Package snappy implements the SNAPPY parquet compression codec.
//
// Pages are compressed with the snappy block format, without stream framing.
package snappy

import (
	"github.com/klauspost/compress/snappy"
	"github.com/segmentio/parquet-page/format"
)

type Codec struct{}

func (c *Codec) String() string {
	return "SNAPPY"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Snappy
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	// Passing the full capacity lets snappy reuse dst when it is large enough.
	return snappy.Encode(dst[:cap(dst)], src), nil
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return snappy.Decode(dst[:cap(dst)], src)
}
