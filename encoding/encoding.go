// Package encoding provides the generic APIs implemented by parquet encodings
// in its sub-packages.
package encoding

import (
	"errors"
	"fmt"

	"github.com/segmentio/parquet-page/format"
)

// ErrInvalidArgument is an error returned one or more arguments passed to the
// encoding functions are incorrect.
//
// This error may be wrapped with specific information about the problem,
// applications must use errors.Is rather than equality comparisons to test the
// error values returned by encoders.
var ErrInvalidArgument = errors.New("invalid argument")

// The Encoding interface is implemented by types representing parquet column
// encodings.
type Encoding interface {
	// Returns a human-readable name for the encoding.
	String() string

	// Returns the parquet code representing the encoding.
	Encoding() format.Encoding
}

// Error constructs an error which wraps err and indicates that it originated
// from the given encoding.
func Error(e Encoding, err error) error {
	return fmt.Errorf("%s: %w", e, err)
}
