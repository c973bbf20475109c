// Package gzip implements the GZIP parquet compression codec.
package gzip

import (
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/segmentio/parquet-page/compress"
	"github.com/segmentio/parquet-page/format"
)

const (
	NoCompression      = gzip.NoCompression
	BestSpeed          = gzip.BestSpeed
	BestCompression    = gzip.BestCompression
	DefaultCompression = gzip.DefaultCompression
	HuffmanOnly        = gzip.HuffmanOnly
)

type Codec struct {
	Level int

	r compress.Decompressor
	w compress.Compressor
}

func (c *Codec) String() string {
	return "GZIP"
}

func (c *Codec) CompressionCodec() format.CompressionCodec {
	return format.Gzip
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return c.w.Encode(dst, src, func(w io.Writer) (compress.Writer, error) {
		z, err := gzip.NewWriterLevel(w, c.level())
		if err != nil {
			return nil, err
		}
		return z, nil
	})
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.r.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return reader{z}, nil
	})
}

// The zero value of Level is NoCompression in the gzip package, so it is
// mapped to the default level instead.
func (c *Codec) level() int {
	if c.Level == 0 {
		return DefaultCompression
	}
	return c.Level
}

type reader struct{ *gzip.Reader }

func (r reader) Reset(rr io.Reader) error {
	if rr == nil {
		// devNull implements flate.Reader, which avoids the allocation of a
		// bufio.Reader when the gzip reader is reset. Reading the header of an
		// empty input fails with io.EOF, the reader is still usable.
		if err := r.Reader.Reset(devNull{}); !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
	return r.Reader.Reset(rr)
}

type devNull struct{}

func (devNull) ReadByte() (byte, error)  { return 0, io.EOF }
func (devNull) Read([]byte) (int, error) { return 0, io.EOF }
