// Package compress provides the generic APIs implemented by parquet compression
// codecs.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/segmentio/parquet-page/format"
)

// The Codec interface represents parquet compression codecs implemented by the
// compress sub-packages.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Returns the code of the compression codec in the parquet format.
	CompressionCodec() format.CompressionCodec

	// Writes the compressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the compressed data.
	Encode(dst, src []byte) ([]byte, error)

	// Writes the uncompressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the uncompressed data.
	Decode(dst, src []byte) ([]byte, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

type Writer interface {
	io.WriteCloser
	Reset(io.Writer)
}

// Compressor implements the Encode method of codecs backed by streaming
// writers. Writers are recycled in a pool so concurrent calls never share one;
// newWriter is only called when the pool is empty.
type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, err := c.acquire(output, newWriter)
	if err != nil {
		return dst, err
	}
	defer c.release(w)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

func (c *Compressor) acquire(output io.Writer, newWriter func(io.Writer) (Writer, error)) (Writer, error) {
	if w, _ := c.writers.Get().(Writer); w != nil {
		w.Reset(output)
		return w, nil
	}
	return newWriter(output)
}

func (c *Compressor) release(w Writer) {
	// Detach the writer from the output buffer so the pool does not retain it.
	w.Reset(io.Discard)
	c.writers.Put(w)
}

// Decompressor is the counterpart of Compressor for streaming readers.
type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	r, err := d.acquire(bytes.NewReader(src), newReader)
	if err != nil {
		return dst, err
	}
	defer d.release(r)

	output := bytes.NewBuffer(dst[:0])
	_, err = output.ReadFrom(r)
	return output.Bytes(), err
}

func (d *Decompressor) acquire(input io.Reader, newReader func(io.Reader) (Reader, error)) (Reader, error) {
	if r, _ := d.readers.Get().(Reader); r != nil {
		if err := r.Reset(input); err != nil {
			return nil, err
		}
		return r, nil
	}
	return newReader(input)
}

func (d *Decompressor) release(r Reader) {
	// Readers that cannot be detached from their input are dropped.
	if err := r.Reset(nil); err == nil {
		d.readers.Put(r)
	}
}
